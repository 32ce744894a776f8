package server

import (
	"errors"
	"strings"
	"unicode"

	"github.com/gofiber/fiber/v2"

	"talento/internal/models"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper.  Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// parseID extracts a route parameter by name as a positive uint.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid "+humanizeParam(param)))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// humanizeParam converts a route param name into a human-readable label.
// Examples: "id" -> "ID", "userId" -> "user ID".
func humanizeParam(param string) string {
	if param == "id" {
		return "ID"
	}
	if strings.HasSuffix(param, "Id") {
		prefix := param[:len(param)-2]
		words := splitCamel(prefix)
		return strings.ToLower(strings.Join(words, " ")) + " ID"
	}
	return param
}

// splitCamel splits a camelCase string into words.
func splitCamel(s string) []string {
	var words []string
	start := 0
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			words = append(words, s[start:i])
			start = i
		}
	}
	words = append(words, s[start:])
	return words
}

// respondServiceError maps a service error to its HTTP status and writes the
// standard error body. Validation and referential failures share 422 so form
// clients get the field map either way.
func respondServiceError(c *fiber.Ctx, err error) error {
	var appErr *models.AppError
	if !errors.As(err, &appErr) {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	status := fiber.StatusInternalServerError
	switch appErr.Code {
	case "VALIDATION_ERROR", "REFERENTIAL_INTEGRITY":
		status = fiber.StatusUnprocessableEntity
	case "NOT_FOUND":
		status = fiber.StatusNotFound
	case "UNAUTHORIZED":
		status = fiber.StatusForbidden
	}
	return models.RespondWithError(c, status, appErr)
}
