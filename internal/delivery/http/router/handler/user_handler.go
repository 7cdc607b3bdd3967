package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"supergames/internal/delivery/http/response"
	domainerrors "supergames/internal/domain/errors"
	"supergames/internal/usecase"
)

// UserHandler holds dependencies for the administrative user handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListUsers handles GET /users.
func (h *UserHandler) ListUsers(c echo.Context) error {
	records, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, records)
}

// GetUser handles GET /users/:id.
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return domainerrors.ErrUserNotFound
	}

	record, err := h.uc.GetUser(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, record)
}

// UpdateUser handles PUT /users/:id. The path ID wins over any ID in the body.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return domainerrors.ErrUserNotFound
	}

	input := new(usecase.UpdateUserInput)
	if err := c.Bind(input); err != nil {
		return domainerrors.ErrFieldsRequired
	}
	if input.ID != 0 && input.ID != id {
		return domainerrors.ErrFieldsRequired
	}
	input.ID = id

	if err := h.uc.UpdateUser(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeleteUser handles DELETE /users/:id.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return domainerrors.ErrUserNotFound
	}

	if err := h.uc.DeleteUser(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.String(http.StatusOK, "Server OK")
}
