package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"askhub/internal/errors"
	"askhub/internal/service"
)

// SeedHandler handles demo-data seeding endpoints.
type SeedHandler struct {
	userService service.UserService
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(userService service.UserService) *SeedHandler {
	return &SeedHandler{userService: userService}
}

// SeedUsersResponse reports how many users were seeded.
type SeedUsersResponse struct {
	Seeded int `json:"seeded"`
}

// SeedUsers godoc
// @Summary Create or update users from a seed payload
// @Tags seed
// @Accept json
// @Produce json
// @Param request body []service.UserSeed true "Users to seed"
// @Success 200 {object} SeedUsersResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /seed/users [post]
func (h *SeedHandler) SeedUsers(c echo.Context) error {
	var seeds []service.UserSeed
	if err := c.Bind(&seeds); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if len(seeds) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "empty seed payload",
			Code:  "INVALID_REQUEST",
		})
	}

	count, err := h.userService.SeedUsers(c.Request().Context(), seeds)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, SeedUsersResponse{Seeded: count})
}
