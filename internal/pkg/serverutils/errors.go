package serverutils

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// AppError is the error shape every handler-level failure is reduced to.
// The error middleware turns it into its status code plus a {"detail": ...}
// body; anything that is not an AppError becomes a bare 500.
type AppError struct {
	Code    int
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewNotFoundError(message string) *AppError {
	return &AppError{
		Code:    fiber.StatusNotFound,
		Message: message,
	}
}

func NewUnprocessableEntityError(message string) *AppError {
	return &AppError{
		Code:    fiber.StatusUnprocessableEntity,
		Message: message,
	}
}

// NewUpstreamError wraps a failed generative-API call. The raw error text is
// kept in the message so the caller can see what the upstream actually said.
func NewUpstreamError(message string, err error) *AppError {
	return &AppError{
		Code:    fiber.StatusInternalServerError,
		Message: fmt.Sprintf("%s: %v", message, err),
	}
}
