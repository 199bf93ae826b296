package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Envelope is the unified API response structure. Every endpoint answers
// with it: Response carries the payload on success and the user-facing
// message on failure.
type Envelope struct {
	Response any  `json:"response"`
	Success  bool `json:"success"`
}

// Success writes a successful response with the given payload.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, Envelope{
		Response: data,
		Success:  true,
	})
}

// Error writes a failure response carrying a user-facing message.
func Error(c echo.Context, statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Envelope{
		Response: message,
		Success:  false,
	})
}

// BadRequest 400 error
func BadRequest(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, message)
}

// BindingError binding error response
func BindingError(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, message)
}

// Unauthorized 401 error
func Unauthorized(c echo.Context, message string) error {
	return Error(c, http.StatusUnauthorized, message)
}

// NotFound 404 error
func NotFound(c echo.Context, message string) error {
	return Error(c, http.StatusNotFound, message)
}

// InternalServerError 500 error
func InternalServerError(c echo.Context, message string) error {
	return Error(c, http.StatusInternalServerError, message)
}
