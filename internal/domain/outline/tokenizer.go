package outline

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/phrazzld/scora-api/internal/domain"
)

// ErrMalformedSection is returned when a parsed section violates the
// parser's contract, such as a procedure section with no extractable
// steps. It indicates an internal inconsistency, not bad user input.
var ErrMalformedSection = errors.New("malformed section")

// emphasisPattern captures terms marked up with **bold**, *italic*, or
// _underscore_ emphasis in the raw text.
var emphasisPattern = regexp.MustCompile(`\*\*([^*\n]+)\*\*|\*([^*\n]+)\*|_([^_\n]+)_`)

// Tokenize builds a domain.Outline from parsed sections.
//
// Numbered steps come from procedure sections with the ordinal marker
// stripped and whitespace trimmed, preserving relative order. Steps that
// repeat (case-insensitively) are kept: repetition in source explanations
// is meaningful, e.g. loop instructions. Key terms come from the subject
// noun phrase of each definition section plus any emphasized span, are
// lower-cased and de-duplicated, and candidates shorter than
// domain.MinKeyTermLength runes are discarded as noise.
//
// Returns ErrMalformedSection if a procedure section yields zero steps,
// which would mean the parser violated its contract.
func Tokenize(sections []domain.Section) (*domain.Outline, error) {
	var steps []string
	for i, section := range sections {
		if section.Type != domain.SectionProcedure {
			continue
		}

		extracted := extractSteps(section.Content)
		if len(extracted) == 0 {
			return nil, fmt.Errorf(
				"%w: procedure section %d has no extractable steps", ErrMalformedSection, i)
		}
		steps = append(steps, extracted...)
	}

	terms := extractKeyTerms(sections)

	return domain.NewOutline(terms, steps, sections)
}

// extractSteps scans procedure content for ordinal-prefixed lines and
// returns the step text with the marker stripped.
func extractSteps(content string) []string {
	var steps []string
	for _, line := range strings.Split(content, "\n") {
		if !ordinalPattern.MatchString(line) {
			continue
		}
		step := strings.TrimSpace(ordinalPattern.ReplaceAllString(line, ""))
		if step != "" {
			steps = append(steps, step)
		}
	}
	return steps
}

// extractKeyTerms collects definition subjects and emphasized spans,
// normalized and de-duplicated in first-seen order.
func extractKeyTerms(sections []domain.Section) []string {
	var terms []string
	seen := make(map[string]bool)

	add := func(candidate string) {
		term := normalizeTerm(candidate)
		if utf8.RuneCountInString(term) < domain.MinKeyTermLength || seen[term] {
			return
		}
		seen[term] = true
		terms = append(terms, term)
	}

	for _, section := range sections {
		if section.Type == domain.SectionDefinition {
			if subject := definitionSubject(section.Content); subject != "" {
				add(subject)
			}
		}

		for _, match := range emphasisPattern.FindAllStringSubmatch(section.Content, -1) {
			// The pattern has one capture group per emphasis style; only
			// one is non-empty per match.
			for _, group := range match[1:] {
				if group != "" {
					add(group)
				}
			}
		}
	}

	return terms
}

// definitionSubject returns the phrase preceding the copula in the first
// sentence of a definition block, or "" when no copula is found.
func definitionSubject(content string) string {
	match := copulaPattern.FindStringSubmatch(firstSentence(content))
	if match == nil {
		return ""
	}
	return stripLeadingArticle(match[1])
}

// stripLeadingArticle drops a leading "a", "an", or "the" from a subject
// phrase so "The cell membrane" and "cell membrane" normalize identically.
func stripLeadingArticle(phrase string) string {
	fields := strings.Fields(phrase)
	if len(fields) > 1 {
		switch strings.ToLower(fields[0]) {
		case "a", "an", "the":
			return strings.Join(fields[1:], " ")
		}
	}
	return phrase
}

// normalizeTerm lower-cases a candidate term and trims surrounding
// punctuation and markup characters.
func normalizeTerm(candidate string) string {
	term := strings.ToLower(strings.TrimSpace(candidate))
	return strings.TrimFunc(term, func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	})
}
