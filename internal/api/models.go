package api

import "github.com/phrazzld/scora-api/internal/domain"

// Common request/response structures

// ExplainRequest defines the payload for the tiered-explanation endpoint.
type ExplainRequest struct {
	Question string `json:"question" validate:"required"`
}

// SectionPayload mirrors domain.Section in request bodies.
type SectionPayload struct {
	Type    string `json:"type"    validate:"required,oneof=definition procedure example note"`
	Content string `json:"content" validate:"required"`
}

// OutlinePayload mirrors domain.Outline in request bodies. Clients send
// back the outline they received from the explanation endpoint.
type OutlinePayload struct {
	KeyTerms      []string         `json:"key_terms"`
	NumberedSteps []string         `json:"numbered_steps"`
	Sections      []SectionPayload `json:"sections" validate:"dive"`
}

// ToDomain converts the payload into a domain.Outline (not yet validated).
func (p OutlinePayload) ToDomain() domain.Outline {
	sections := make([]domain.Section, 0, len(p.Sections))
	for _, s := range p.Sections {
		sections = append(sections, domain.Section{
			Type:    domain.SectionType(s.Type),
			Content: s.Content,
		})
	}
	return domain.Outline{
		KeyTerms:      p.KeyTerms,
		NumberedSteps: p.NumberedSteps,
		Sections:      sections,
	}
}

// LearnerMetadataPayload mirrors domain.LearnerMetadata in request bodies.
type LearnerMetadataPayload struct {
	Age            int    `json:"age"             validate:"required,gt=0"`
	EducationLevel string `json:"education_level" validate:"required,oneof=elementary highschool college graduate"`
}

// TierOutlineResponse holds one tier's outline, or its failure marker.
type TierOutlineResponse struct {
	Outline *domain.Outline `json:"outline,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// ExplainResponse defines the response for the tiered-explanation endpoint.
// Failed tiers carry an explicit error marker instead of being dropped.
type ExplainResponse struct {
	ID       string                         `json:"id"`
	Question string                         `json:"question"`
	Tiers    map[string]TierOutlineResponse `json:"tiers"`
}

// ScoreRequest defines the payload for the answer-scoring endpoint.
// AnswerText may legitimately be empty; an empty answer scores 0.
type ScoreRequest struct {
	Outline    OutlinePayload         `json:"outline"     validate:"required"`
	AnswerText string                 `json:"answer_text"`
	Metadata   LearnerMetadataPayload `json:"metadata"    validate:"required"`
}

// ScoreResponse defines the response for the answer-scoring endpoint.
type ScoreResponse struct {
	ComprehensionScore  float64 `json:"comprehension_score"`
	RecommendedHintType string  `json:"recommended_hint_type"`
}

// ExportRequest defines the payload for the plain-text export endpoint.
type ExportRequest struct {
	Question string                    `json:"question" validate:"required"`
	Tiers    map[string]OutlinePayload `json:"tiers"    validate:"required,min=1"`
}
