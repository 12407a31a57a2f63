package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/rede-emergencia/euajudo-sub000/internal/core/application/usecases/queries"
	"github.com/rede-emergencia/euajudo-sub000/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
)

// LocationResponse is the JSON shape of a pickup location.
type LocationResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Street string `json:"street"`
	Active bool   `json:"active"`
}

// GetLocations handles GET /api/locations/?active_only=.
func (s *Server) GetLocations(ctx echo.Context) error {
	activeOnly, err := boolQueryParam(ctx, "active_only")
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid active_only")
	}

	rows, err := s.getLocationsHandler.Handle(
		ctx.Request().Context(), queries.NewGetLocationsQuery(activeOnly))
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]LocationResponse, len(rows))
	for i, row := range rows {
		response[i] = LocationResponse{
			ID:     row.ID.String(),
			Name:   row.Name,
			Street: row.Street,
			Active: row.Active,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CategoryResponse is the JSON shape of a resource category.
type CategoryResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// GetCategories handles GET /api/categories/?active_only=.
func (s *Server) GetCategories(ctx echo.Context) error {
	activeOnly, err := boolQueryParam(ctx, "active_only")
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid active_only")
	}

	rows, err := s.getCategoriesHandler.Handle(
		ctx.Request().Context(), queries.NewGetCategoriesQuery(activeOnly))
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]CategoryResponse, len(rows))
	for i, row := range rows {
		response[i] = CategoryResponse{
			ID:     row.ID.String(),
			Name:   row.Name,
			Active: row.Active,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ResourceRequestResponse is the JSON shape of a shelter resource request.
type ResourceRequestResponse struct {
	ID           string    `json:"id"`
	ShelterID    string    `json:"shelter_id"`
	CategoryID   string    `json:"category_id"`
	ResourceName string    `json:"resource_name"`
	Quantity     int       `json:"quantity"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// GetResourceRequests handles GET /api/resources/requests?status=.
func (s *Server) GetResourceRequests(ctx echo.Context) error {
	query := queries.NewGetResourceRequestsQuery(ctx.QueryParam("status"))

	rows, err := s.getResourceRequestsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]ResourceRequestResponse, len(rows))
	for i, row := range rows {
		response[i] = ResourceRequestResponse{
			ID:           row.ID.String(),
			ShelterID:    row.ShelterID.String(),
			CategoryID:   row.CategoryID.String(),
			ResourceName: row.ResourceName,
			Quantity:     row.Quantity,
			Status:       row.Status,
			CreatedAt:    row.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// UserResponse is the JSON shape of a user account. The password hash never
// leaves the server.
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Roles     []string  `json:"roles"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// GetUsers handles GET /api/users/. Restricted to administrators.
func (s *Server) GetUsers(ctx echo.Context) error {
	claims, ok := authClaims(ctx)
	if !ok {
		return jsonError(ctx, http.StatusUnauthorized, "Missing bearer token")
	}
	if !claims.HasRole(user.RoleAdmin) {
		return jsonError(ctx, http.StatusForbidden, "Admin role required")
	}

	rows, err := s.getUsersHandler.Handle(ctx.Request().Context(), queries.NewGetUsersQuery())
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]UserResponse, len(rows))
	for i, row := range rows {
		response[i] = UserResponse{
			ID:        row.ID.String(),
			Username:  row.Username,
			Roles:     row.Roles,
			Active:    row.Active,
			CreatedAt: row.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func boolQueryParam(ctx echo.Context, name string) (bool, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return false, nil
	}
	return strconv.ParseBool(raw)
}
