package serviceutils

import (
	"github.com/labstack/echo/v4"

	"github.com/hrops/onboarding-admin/internal/logger"
)

// Response is the JSON envelope returned by the API handlers.
type Response struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ResponseSuccess writes a success envelope with optional data.
func ResponseSuccess(c echo.Context, status int, message string, data interface{}) error {
	return c.JSON(status, Response{Message: message, Data: data})
}

// ResponseError logs the underlying error and writes an error envelope.
// The envelope carries only the generic message, not the internal error.
func ResponseError(c echo.Context, status int, message string, err error) error {
	if err != nil {
		logger.ErrorLog(c.Request().Context(), message, err)
	}
	return c.JSON(status, Response{Message: message, Error: message})
}
