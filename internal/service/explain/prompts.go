package explain

import (
	"fmt"

	"github.com/phrazzld/scora-api/internal/domain"
)

// tierInstructions carries the per-tier prompt fragment. Each tier asks
// for a different depth of treatment of the same question.
var tierInstructions = map[domain.Tier]string{
	domain.TierPlain: "Provide a simple, easy-to-understand explanation with basic examples. " +
		"Focus on fundamental concepts and everyday applications.",
	domain.TierMid: "Provide a detailed explanation with real-world examples. " +
		"Include step-by-step processes and practical applications.",
	domain.TierDeep: "Provide an in-depth explanation with complex examples. " +
		"Include advanced applications, edge cases, and industry-specific implementations.",
}

// structureInstruction asks the model for the structural cues the section
// parser keys on: blank-line separated blocks, a defining first sentence,
// numbered steps, emphasized key terms.
const structureInstruction = "Structure the explanation as short paragraphs separated by " +
	"blank lines. Begin with a single sentence that defines the main concept " +
	"(\"X is ...\"). Present any process as a numbered list (1., 2., 3.). Give at " +
	"least one concrete example introduced with \"for example\". Mark the most " +
	"important terms in **bold**."

// buildPrompt assembles the full generation prompt for one tier.
func buildPrompt(tier domain.Tier, question string) string {
	return fmt.Sprintf("%s\n\n%s\n\nQuestion: %s",
		tierInstructions[tier], structureInstruction, question)
}
