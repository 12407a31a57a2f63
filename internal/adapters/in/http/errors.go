package http

import (
	"errors"
	"net/http"

	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/batch"
	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/delivery"
	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/user"
	"github.com/rede-emergencia/euajudo-sub000/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON error envelope returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// jsonError writes the error envelope with the given status.
func jsonError(ctx echo.Context, status int, message string) error {
	return ctx.JSON(status, ErrorResponse{Code: status, Message: message})
}

// domainError maps application and domain errors onto HTTP statuses.
// Unrecognized errors become 500 without leaking internals to the client.
func domainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return jsonError(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrConflict),
		errors.Is(err, batch.ErrInsufficientQuantity),
		errors.Is(err, batch.ErrBatchNotReady):
		return jsonError(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, delivery.ErrPickupCodeMismatch):
		return jsonError(ctx, http.StatusForbidden, err.Error())
	case errors.Is(err, user.ErrInvalidCredentials):
		return jsonError(ctx, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return jsonError(ctx, http.StatusBadRequest, err.Error())
	default:
		return jsonError(ctx, http.StatusInternalServerError, "Internal server error")
	}
}
