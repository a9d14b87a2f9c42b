package domain

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// Outline-specific validation errors
var (
	// ErrOutlineTermTooShort is returned when a key term is shorter than
	// MinKeyTermLength characters.
	ErrOutlineTermTooShort = errors.New("outline key term is too short")

	// ErrOutlineTermNotNormalized is returned when a key term is not lower-cased.
	ErrOutlineTermNotNormalized = errors.New("outline key term must be lower-cased")

	// ErrOutlineTermDuplicate is returned when the same key term appears twice.
	ErrOutlineTermDuplicate = errors.New("outline key terms must be unique")

	// ErrOutlineTermNotInSections is returned when a key term does not occur
	// (case-insensitively) in any section content.
	ErrOutlineTermNotInSections = errors.New("outline key term does not occur in any section")

	// ErrOutlineStepOutsideProcedure is returned when a numbered step is not
	// contained in exactly one procedure section.
	ErrOutlineStepOutsideProcedure = errors.New(
		"outline step must appear in exactly one procedure section",
	)
)

// MinKeyTermLength is the minimum length, in runes, of an outline key term.
// Shorter candidates are treated as tokenizer noise.
const MinKeyTermLength = 3

// Outline is the structured decomposition of one explanation tier.
//
// KeyTerms is a set: normalized (lower-cased), de-duplicated, order
// irrelevant. NumberedSteps is an ordered sequence whose order is semantic
// and must be preserved. Sections hold the typed blocks in document order.
//
// An Outline is a pure function of the raw explanation text. It lives for
// a single question/answer cycle and is never mutated after creation.
type Outline struct {
	KeyTerms      []string  `json:"key_terms"`
	NumberedSteps []string  `json:"numbered_steps"`
	Sections      []Section `json:"sections"`
}

// NewOutline creates an Outline and validates its structural invariants.
func NewOutline(keyTerms, numberedSteps []string, sections []Section) (*Outline, error) {
	o := &Outline{
		KeyTerms:      keyTerms,
		NumberedSteps: numberedSteps,
		Sections:      sections,
	}

	if err := o.Validate(); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate checks the Outline invariants:
//   - key terms are lower-cased, unique, and at least MinKeyTermLength runes
//   - every key term occurs case-insensitively in some section content
//   - every numbered step is contained in exactly one procedure section
func (o *Outline) Validate() error {
	seen := make(map[string]bool, len(o.KeyTerms))
	for _, term := range o.KeyTerms {
		if utf8.RuneCountInString(term) < MinKeyTermLength {
			return ErrOutlineTermTooShort
		}
		if term != strings.ToLower(term) {
			return ErrOutlineTermNotNormalized
		}
		if seen[term] {
			return ErrOutlineTermDuplicate
		}
		seen[term] = true

		if !o.termOccursInSections(term) {
			return ErrOutlineTermNotInSections
		}
	}

	for _, step := range o.NumberedSteps {
		if o.procedureSectionsContaining(step) != 1 {
			return ErrOutlineStepOutsideProcedure
		}
	}

	return nil
}

// termOccursInSections reports whether term appears case-insensitively in
// the content of any section.
func (o *Outline) termOccursInSections(term string) bool {
	for _, s := range o.Sections {
		if strings.Contains(strings.ToLower(s.Content), term) {
			return true
		}
	}
	return false
}

// procedureSectionsContaining counts the procedure sections whose content
// contains step.
func (o *Outline) procedureSectionsContaining(step string) int {
	count := 0
	for _, s := range o.Sections {
		if s.Type == SectionProcedure && strings.Contains(s.Content, step) {
			count++
		}
	}
	return count
}
