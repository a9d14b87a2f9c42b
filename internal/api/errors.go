package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/phrazzld/scora-api/internal/domain"
	"github.com/phrazzld/scora-api/internal/domain/outline"
	"github.com/phrazzld/scora-api/internal/service/explain"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes based on the error kind. This prevents leaking internal error
// types or messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Bad request: payload missing fields or carrying out-of-range values
	case errors.Is(err, domain.ErrMalformedInput),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidTier):
		return http.StatusBadRequest

	// Upstream generation service failed or timed out
	case errors.Is(err, explain.ErrGenerationUnavailable):
		return http.StatusBadGateway

	// Internal pipeline inconsistency (parser contract violation)
	case errors.Is(err, outline.ErrMalformedSection):
		return http.StatusInternalServerError

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error kind, never the raw internal error text.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, domain.ErrMalformedInput):
		return "Invalid request data"

	case errors.Is(err, domain.ErrInvalidTier):
		return "Unknown explanation tier"

	case errors.Is(err, explain.ErrGenerationUnavailable):
		return "Explanation generation is temporarily unavailable"

	case errors.Is(err, outline.ErrMalformedSection):
		return "Failed to decompose explanation"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError removes sensitive details from validation
// errors and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	// Example format: "Key: 'ScoreRequest.Metadata.Age' Error:Field
	// validation for 'Age' failed on the 'gt' tag"
	if strings.Contains(errMsg, "Field validation") {
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}
				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "gt", "min":
		return "too small"
	case "lt", "max":
		return "too large"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
