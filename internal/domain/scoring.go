package domain

// HintType is the kind of follow-up hint recommended to a learner after
// their answer has been scored.
type HintType string

// The hint types, ordered roughly by how much help they imply.
const (
	// HintNone means the answer demonstrated sufficient comprehension.
	HintNone HintType = "none"

	// HintClarifyTerm means the answer missed too many key terms.
	HintClarifyTerm HintType = "clarify_term"

	// HintShowStep means the answer missed too many procedure steps.
	HintShowStep HintType = "show_step"

	// HintSimplifyLanguage means coverage was moderate on both axes and a
	// simpler restatement is the most useful next step.
	HintSimplifyLanguage HintType = "simplify_language"

	// HintUnknown is reserved for the boundary failure fallback. It is
	// never produced for a legitimately low score.
	HintUnknown HintType = "unknown"
)

// ScoringRequest bundles everything the scoring engine needs for one call.
// It is created per scoring call and never persisted by this core.
type ScoringRequest struct {
	Outline    Outline
	AnswerText string
	Metadata   LearnerMetadata
}

// ScoringResult is the outcome of comparing a learner's answer against a
// reference outline. A fresh result is produced per request; results are
// never cached across requests with differing answer text.
type ScoringResult struct {
	ComprehensionScore  float64  `json:"comprehension_score"`
	RecommendedHintType HintType `json:"recommended_hint_type"`
}

// FallbackScoringResult is the safe result returned at the outermost
// boundary when an unrecovered error must still yield a typed answer.
func FallbackScoringResult() ScoringResult {
	return ScoringResult{
		ComprehensionScore:  0,
		RecommendedHintType: HintUnknown,
	}
}
