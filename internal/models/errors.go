package models

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse represents a standardized API error response.
// Fields holds per-field validation messages so form clients can attach
// each message to the offending input.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Code    string            `json:"code,omitempty"`
	Details string            `json:"details,omitempty"`
	Fields  map[string]string `json:"errors,omitempty"`
}

// AppError represents a custom application error
type AppError struct {
	Code    string
	Message string
	Fields  map[string]string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Predefined error constructors
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s with ID %v not found", resource, id),
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    "VALIDATION_ERROR",
		Message: message,
	}
}

// NewFieldValidationError builds a validation error carrying a field-keyed
// message map. The top-level message stays generic; the map is what form
// clients consume.
func NewFieldValidationError(fields map[string]string) *AppError {
	return &AppError{
		Code:    "VALIDATION_ERROR",
		Message: "The given data was invalid",
		Fields:  fields,
	}
}

// NewReferentialError reports a foreign-key style failure (e.g. a comment
// referencing a nonexistent post), keyed to the offending field.
func NewReferentialError(field, message string) *AppError {
	return &AppError{
		Code:    "REFERENTIAL_INTEGRITY",
		Message: message,
		Fields:  map[string]string{field: message},
	}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Code:    "UNAUTHORIZED",
		Message: message,
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    "INTERNAL_ERROR",
		Message: "Internal server error",
		Err:     err,
	}
}

// RespondWithError creates a standardized error response
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	var response ErrorResponse

	if appErr, ok := err.(*AppError); ok {
		response = ErrorResponse{
			Error:  appErr.Message,
			Code:   appErr.Code,
			Fields: appErr.Fields,
		}
		if appErr.Err != nil {
			response.Details = appErr.Err.Error()
		}
	} else {
		response = ErrorResponse{
			Error: err.Error(),
		}
	}

	return c.Status(status).JSON(response)
}
