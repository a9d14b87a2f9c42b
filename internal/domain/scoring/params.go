package scoring

// Params defines all configurable parameters for the comprehension scorer.
type Params struct {
	// Weights for the raw score. Must sum to 1.0.
	TermWeight float64
	StepWeight float64

	// Hint selection thresholds.
	NoneThreshold    float64 // comprehension score at or above → no hint
	TermGapThreshold float64 // term coverage below → clarify_term
	StepGapThreshold float64 // step coverage below → show_step

	// ElementaryBoost scales the raw score up for elementary learners to
	// offset vocabulary mismatch expectations. Capped at 1.0 after scaling.
	ElementaryBoost float64

	// ContentWordMinLength is the minimum rune length for a step word to
	// count toward step coverage.
	ContentWordMinLength int
}

// NewDefaultParams creates a Params instance with the default weights and
// thresholds.
func NewDefaultParams() *Params {
	return &Params{
		TermWeight:           0.6,
		StepWeight:           0.4,
		NoneThreshold:        0.85,
		TermGapThreshold:     0.5,
		StepGapThreshold:     0.5,
		ElementaryBoost:      1.1,
		ContentWordMinLength: 4,
	}
}
