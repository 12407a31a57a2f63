package http

import (
	"net/http"
	"strings"

	"github.com/rede-emergencia/euajudo-sub000/internal/core/application/usecases/queries"
	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/kernel"
	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/user"
	"github.com/rede-emergencia/euajudo-sub000/internal/pkg/token"

	"github.com/labstack/echo/v4"
)

// claimsContextKey is the echo context key the auth middleware stores
// verified claims under.
const claimsContextKey = "auth.claims"

// LoginResponse carries the bearer token issued on successful login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login handles POST /api/auth/login. Accepts form-encoded username and
// password and returns a signed bearer token.
func (s *Server) Login(ctx echo.Context) error {
	username := ctx.FormValue("username")
	password := ctx.FormValue("password")
	if username == "" || password == "" {
		return jsonError(ctx, http.StatusBadRequest, "Username and password are required")
	}

	query, err := queries.NewGetUserByUsernameQuery(username)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, err.Error())
	}

	account, err := s.getUserByUsernameHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		// Not-found collapses into invalid credentials so login does not
		// reveal which usernames exist.
		return jsonError(ctx, http.StatusUnauthorized, "Invalid credentials")
	}

	roles := make([]user.Role, 0, len(account.Roles))
	for _, name := range account.Roles {
		role, roleErr := user.RoleFromString(name)
		if roleErr != nil {
			return domainError(ctx, roleErr)
		}
		roles = append(roles, role)
	}

	restored, err := user.RestoreUser(
		account.ID, account.Username, account.PasswordHash,
		roles, account.Active, account.CreatedAt,
	)
	if err != nil {
		return domainError(ctx, err)
	}

	if err := restored.VerifyPassword(password); err != nil {
		return jsonError(ctx, http.StatusUnauthorized, "Invalid credentials")
	}

	signed, err := s.tokens.Issue(restored.ID(), restored.Username(), restored.Roles())
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, LoginResponse{
		AccessToken: signed,
		TokenType:   "bearer",
	})
}

// RequireAuth is the bearer-token middleware guarding every API route except
// login and health. Verified claims are stored on the request context.
func (s *Server) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		header := ctx.Request().Header.Get("Authorization")
		const prefix = "Bearer "
		if !strings.HasPrefix(header, prefix) {
			return jsonError(ctx, http.StatusUnauthorized, "Missing bearer token")
		}

		claims, err := s.tokens.Verify(strings.TrimPrefix(header, prefix))
		if err != nil {
			return jsonError(ctx, http.StatusUnauthorized, "Invalid or expired token")
		}

		ctx.Set(claimsContextKey, claims)
		return next(ctx)
	}
}

// authClaims returns the claims stored by RequireAuth.
func authClaims(ctx echo.Context) (token.Claims, bool) {
	claims, ok := ctx.Get(claimsContextKey).(token.Claims)
	return claims, ok
}

// authUserID is a shortcut for the authenticated user's id.
func authUserID(ctx echo.Context) (kernel.UUID, bool) {
	claims, ok := authClaims(ctx)
	if !ok {
		return kernel.UUID{}, false
	}
	return claims.UserID, true
}
