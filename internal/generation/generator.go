package generation

import "context"

// TextGenerator defines the interface for generating explanation text
// from a prompt. It is the boundary between the application core and the
// external generation service.
//
// Implementations own their retry policy; callers bound each call with a
// context deadline and treat any error as a tier failure.
type TextGenerator interface {
	// GenerateText produces free-form text for the given prompt. It
	// returns a non-empty string on success, or an error from errors.go
	// identifying the failure kind.
	GenerateText(ctx context.Context, prompt string) (string, error)
}
