// Package response writes the JSON bodies returned by the API.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Errors []ErrorItem `json:"errors"`
	Code   string      `json:"code,omitempty"` // Machine-readable error code, e.g. "VALIDATION_FAILED"
}

// ErrorItem is one reason a request failed. Param names the offending input field.
type ErrorItem struct {
	Msg   string `json:"msg"`
	Param string `json:"param,omitempty"`
}

// MessageResponse is returned by operations that have no resource to send back.
type MessageResponse struct {
	Msg string `json:"msg"`
}

// Success writes the resource itself as the body.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// Message writes {"msg": msg}.
func Message(c echo.Context, statusCode int, msg string) error {
	return c.JSON(statusCode, MessageResponse{Msg: msg})
}

// PNG writes an image body.
func PNG(c echo.Context, data []byte) error {
	return c.Blob(http.StatusOK, "image/png", data)
}

// Error writes an error body with a single message.
func Error(c echo.Context, statusCode int, errorCode, message string) error {
	return Errors(c, statusCode, errorCode, []ErrorItem{{Msg: message}})
}

// Errors writes an error body with one entry per reason.
func Errors(c echo.Context, statusCode int, errorCode string, items []ErrorItem) error {
	return c.JSON(statusCode, ErrorResponse{
		Errors: items,
		Code:   errorCode,
	})
}

// BindingError returns a 400 error for a body that could not be decoded
func BindingError(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, "INVALID_INPUT", message)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context) error {
	return Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Server error")
}
