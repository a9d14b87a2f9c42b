package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrMalformedInput is returned when a request payload is missing
	// required fields or carries out-of-range values. It is recovered at
	// the API boundary and never reaches the scoring engine.
	ErrMalformedInput = errors.New("malformed input")
)
