package domain

import "errors"

// Learner metadata validation errors
var (
	// ErrLearnerAgeInvalid is returned when a learner's age is not positive.
	ErrLearnerAgeInvalid = errors.New("learner age must be greater than zero")

	// ErrEducationLevelInvalid is returned when an education level is not
	// one of the known levels.
	ErrEducationLevelInvalid = errors.New("invalid education level")
)

// EducationLevel is the learner's current stage of schooling.
type EducationLevel string

// The known education levels.
const (
	EducationElementary EducationLevel = "elementary"
	EducationHighschool EducationLevel = "highschool"
	EducationCollege    EducationLevel = "college"
	EducationGraduate   EducationLevel = "graduate"
)

// IsValid reports whether l is one of the known education levels.
func (l EducationLevel) IsValid() bool {
	switch l {
	case EducationElementary, EducationHighschool, EducationCollege, EducationGraduate:
		return true
	default:
		return false
	}
}

// LearnerMetadata describes the learner submitting an answer. It is
// immutable once submitted for a scoring request.
type LearnerMetadata struct {
	Age            int            `json:"age"             validate:"required,gt=0"`
	EducationLevel EducationLevel `json:"education_level" validate:"required,oneof=elementary highschool college graduate"`
}

// Validate checks that the metadata values are in range.
func (m LearnerMetadata) Validate() error {
	if m.Age <= 0 {
		return ErrLearnerAgeInvalid
	}
	if !m.EducationLevel.IsValid() {
		return ErrEducationLevelInvalid
	}
	return nil
}
