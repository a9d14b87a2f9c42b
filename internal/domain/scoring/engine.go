// Package scoring compares a learner's free-text answer against a
// reference outline, producing a comprehension score in [0,1] and a
// recommended hint type. The scorer is a deterministic, rule-based
// comparator: no external calls, no randomness, no shared state. A future
// learned-model scorer is a drop-in alternative implementation of the
// same score contract.
package scoring

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/phrazzld/scora-api/internal/domain"
)

// Score compares the request's answer text against its outline and
// learner metadata.
//
// Term coverage is the fraction of outline key terms present in the
// answer's word tokens (1.0 when the outline has no terms: an outline
// with nothing extractable cannot penalize the learner). Step coverage is
// the fraction of numbered steps with at least one content word in the
// answer tokens (1.0 when there are no steps). The raw score is their
// weighted average; elementary learners get the configured boost, capped
// at 1.0. An empty answer short-circuits to {0.0, clarify_term}.
func Score(req domain.ScoringRequest, params *Params) domain.ScoringResult {
	if strings.TrimSpace(req.AnswerText) == "" {
		// Maximal term gap; skip the full computation.
		return domain.ScoringResult{
			ComprehensionScore:  0.0,
			RecommendedHintType: domain.HintClarifyTerm,
		}
	}

	tokens := tokenizeAnswer(req.AnswerText)

	termCoverage := termCoverage(req.Outline.KeyTerms, tokens)
	stepCoverage := stepCoverage(req.Outline.NumberedSteps, tokens, params.ContentWordMinLength)

	raw := params.TermWeight*termCoverage + params.StepWeight*stepCoverage

	if req.Metadata.EducationLevel == domain.EducationElementary {
		raw *= params.ElementaryBoost
	}

	score := clamp(raw, 0.0, 1.0)

	return domain.ScoringResult{
		ComprehensionScore:  score,
		RecommendedHintType: selectHint(score, termCoverage, stepCoverage, params),
	}
}

// selectHint applies the hint rules in order; the first match wins.
func selectHint(score, termCoverage, stepCoverage float64, params *Params) domain.HintType {
	switch {
	case score >= params.NoneThreshold:
		return domain.HintNone
	case termCoverage < params.TermGapThreshold:
		return domain.HintClarifyTerm
	case stepCoverage < params.StepGapThreshold:
		return domain.HintShowStep
	default:
		return domain.HintSimplifyLanguage
	}
}

// tokenizeAnswer normalizes answer text into a set of word tokens:
// lower-cased, punctuation stripped, split on whitespace.
func tokenizeAnswer(answerText string) map[string]bool {
	normalized := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			return unicode.ToLower(r)
		default:
			return ' '
		}
	}, answerText)

	tokens := make(map[string]bool)
	for _, word := range strings.Fields(normalized) {
		tokens[word] = true
	}
	return tokens
}

// termCoverage is the fraction of key terms matched by the answer tokens.
// A multi-word term matches when every one of its words is present.
func termCoverage(keyTerms []string, tokens map[string]bool) float64 {
	if len(keyTerms) == 0 {
		return 1.0
	}

	matched := 0
	for _, term := range keyTerms {
		if termMatches(term, tokens) {
			matched++
		}
	}
	return float64(matched) / float64(len(keyTerms))
}

func termMatches(term string, tokens map[string]bool) bool {
	words := strings.Fields(strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return ' '
	}, term))

	if len(words) == 0 {
		return false
	}
	for _, word := range words {
		if !tokens[word] {
			return false
		}
	}
	return true
}

// stepCoverage is the fraction of steps with at least one content word
// (length >= minContentWordLength runes) present in the answer tokens.
func stepCoverage(steps []string, tokens map[string]bool, minContentWordLength int) float64 {
	if len(steps) == 0 {
		return 1.0
	}

	covered := 0
	for _, step := range steps {
		if stepCovered(step, tokens, minContentWordLength) {
			covered++
		}
	}
	return float64(covered) / float64(len(steps))
}

func stepCovered(step string, tokens map[string]bool, minContentWordLength int) bool {
	for word := range tokenizeAnswer(step) {
		if utf8.RuneCountInString(word) >= minContentWordLength && tokens[word] {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
