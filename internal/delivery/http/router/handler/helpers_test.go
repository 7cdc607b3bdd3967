package handler

import (
	"io"
	"log/slog"
	"testing"

	"github.com/labstack/echo/v4"

	"supergames/internal/delivery/http/middleware"
	"supergames/internal/delivery/http/validator"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestEcho builds an echo instance with the same error handling and
// validation the real server installs, so handler tests observe the wire
// format clients see.
func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(newDiscardLogger()).HandleHTTPError

	return e
}
