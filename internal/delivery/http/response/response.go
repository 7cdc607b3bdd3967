// Package response shapes the JSON bodies returned by the HTTP layer.
package response

import (
	"github.com/labstack/echo/v4"
)

// ErrorBody is the uniform failure payload: every failed request answers with
// a {status, message} pair, nothing else.
type ErrorBody struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// Error writes the failure payload with the matching HTTP status code.
func Error(c echo.Context, status int, message string) error {
	return c.JSON(status, ErrorBody{
		Status:  status,
		Message: message,
	})
}

// JSON writes a success payload as-is with the given status code.
func JSON(c echo.Context, status int, body any) error {
	return c.JSON(status, body)
}
