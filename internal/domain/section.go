package domain

// SectionType classifies a block of explanation text by its structural role.
type SectionType string

// The section taxonomy. Four types are sufficient for the structural cues
// the generation service produces; extend only if real explanation data
// demonstrates additional categories.
const (
	// SectionDefinition is a block whose first sentence defines a term
	// ("X is Y", "X refers to Y").
	SectionDefinition SectionType = "definition"

	// SectionProcedure is a run of ordinal-prefixed lines describing
	// ordered steps.
	SectionProcedure SectionType = "procedure"

	// SectionExample is a block carrying a concrete illustrative marker
	// such as "for example" or "e.g.".
	SectionExample SectionType = "example"

	// SectionNote is any block that matches none of the other types.
	SectionNote SectionType = "note"
)

// Section is one typed block of an explanation, in document order.
type Section struct {
	Type    SectionType `json:"type"`
	Content string      `json:"content"`
}
