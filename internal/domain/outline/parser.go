package outline

import (
	"regexp"
	"strings"

	"github.com/phrazzld/scora-api/internal/domain"
)

// Structural cue patterns. These are the minimal set of cues the
// generation service is prompted to produce; the classifier falls back to
// SectionNote for anything they miss.
var (
	// ordinalPattern matches a leading ordinal marker such as "1." or "2)".
	ordinalPattern = regexp.MustCompile(`^\s*\d+[.)]\s+`)

	// copulaPattern matches a defining first sentence ("X is Y",
	// "X refers to Y"). The first capture group is the subject phrase.
	copulaPattern = regexp.MustCompile(`(?i)^(.+?)\s+(?:is|are|refers? to|means)\s+\S`)

	// blockSeparator splits raw text into candidate blocks on blank-line
	// boundaries.
	blockSeparator = regexp.MustCompile(`\n[ \t]*\n`)
)

// illustrativeMarkers flag a block as a concrete example.
var illustrativeMarkers = []string{"for example", "e.g.", "for instance", "such as"}

// Parse splits raw explanation text into typed sections.
//
// Blocks are delimited by blank lines. A run of two or more consecutive
// ordinal lines (whether inside one block or spread across consecutive
// blocks) merges into a single procedure section whose content is the
// ordinal lines in original order. A block whose first sentence matches a
// copula pattern and carries no ordinal markers is a definition. Remaining
// blocks are examples when they contain an illustrative marker, otherwise
// notes. Section order always equals block order of first occurrence.
//
// Empty or whitespace-only input yields an empty sequence, not an error.
func Parse(rawText string) []domain.Section {
	if strings.TrimSpace(rawText) == "" {
		return nil
	}

	blocks := splitBlocks(rawText)

	var sections []domain.Section
	for i := 0; i < len(blocks); {
		if isOrdinalBlock(blocks[i]) {
			// Collect the run of consecutive ordinal-led blocks.
			j := i
			var lines []string
			for j < len(blocks) && isOrdinalBlock(blocks[j]) {
				lines = append(lines, ordinalLines(blocks[j])...)
				j++
			}

			// A lone ordinal line is not a procedure; classify its block
			// like any other.
			if len(lines) >= 2 {
				sections = append(sections, domain.Section{
					Type:    domain.SectionProcedure,
					Content: strings.Join(lines, "\n"),
				})
				i = j
				continue
			}
		}

		sections = append(sections, classifyBlock(blocks[i]))
		i++
	}

	return sections
}

// splitBlocks cuts raw text on blank-line boundaries and trims each
// candidate block, dropping empties.
func splitBlocks(rawText string) []string {
	raw := strings.ReplaceAll(rawText, "\r\n", "\n")

	var blocks []string
	for _, candidate := range blockSeparator.Split(raw, -1) {
		if trimmed := strings.TrimSpace(candidate); trimmed != "" {
			blocks = append(blocks, trimmed)
		}
	}
	return blocks
}

// isOrdinalBlock reports whether the block's first line carries an
// ordinal marker.
func isOrdinalBlock(block string) bool {
	first, _, _ := strings.Cut(block, "\n")
	return ordinalPattern.MatchString(first)
}

// ordinalLines returns the block's ordinal-prefixed lines, trimmed, in
// original order.
func ordinalLines(block string) []string {
	var lines []string
	for _, line := range strings.Split(block, "\n") {
		if ordinalPattern.MatchString(line) {
			lines = append(lines, strings.TrimSpace(line))
		}
	}
	return lines
}

// classifyBlock types a non-procedure block as definition, example, or note.
func classifyBlock(block string) domain.Section {
	if copulaPattern.MatchString(firstSentence(block)) && !containsOrdinal(block) {
		return domain.Section{Type: domain.SectionDefinition, Content: block}
	}

	lower := strings.ToLower(block)
	for _, marker := range illustrativeMarkers {
		if strings.Contains(lower, marker) {
			return domain.Section{Type: domain.SectionExample, Content: block}
		}
	}

	return domain.Section{Type: domain.SectionNote, Content: block}
}

// firstSentence returns the block text up to and including the first
// sentence terminator, or the whole block if there is none.
func firstSentence(block string) string {
	for i, r := range block {
		if r == '.' || r == '!' || r == '?' {
			return block[:i+1]
		}
	}
	return block
}

// containsOrdinal reports whether any line of the block carries an
// ordinal marker.
func containsOrdinal(block string) bool {
	for _, line := range strings.Split(block, "\n") {
		if ordinalPattern.MatchString(line) {
			return true
		}
	}
	return false
}
