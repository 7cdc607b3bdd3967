package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"supergames/internal/delivery/http/response"
	domainerrors "supergames/internal/domain/errors"
	"supergames/internal/usecase"
)

// GameHandler holds dependencies for the owned-game list handlers.
type GameHandler struct {
	uc     usecase.GameUsecase
	logger *slog.Logger
}

// NewGameHandler is the constructor for GameHandler, injected by Fx.
func NewGameHandler(uc usecase.GameUsecase, logger *slog.Logger) *GameHandler {
	return &GameHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListGames handles GET /mygames/:userId.
func (h *GameHandler) ListGames(c echo.Context) error {
	userID, err := parseUintParam(c, "userId")
	if err != nil {
		return domainerrors.ErrFieldsRequired
	}

	ids, err := h.uc.ListGames(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, ids)
}

// AddGame handles POST /mygames.
func (h *GameHandler) AddGame(c echo.Context) error {
	input := new(usecase.AddGameInput)
	if err := c.Bind(input); err != nil {
		return domainerrors.ErrFieldsRequired
	}
	if err := c.Validate(input); err != nil {
		return domainerrors.ErrFieldsRequired
	}

	output, err := h.uc.AddGame(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, output)
}

// RemoveGame handles DELETE /mygames/:userId/:gameId.
func (h *GameHandler) RemoveGame(c echo.Context) error {
	userID, err := parseUintParam(c, "userId")
	if err != nil {
		return domainerrors.ErrFieldsRequired
	}
	gameID, err := strconv.Atoi(c.Param("gameId"))
	if err != nil {
		return domainerrors.ErrFieldsRequired
	}

	output, err := h.uc.RemoveGame(c.Request().Context(), userID, gameID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, output)
}

func parseUintParam(c echo.Context, name string) (uint, error) {
	value, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}

	return uint(value), nil
}
