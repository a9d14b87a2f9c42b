// Package explain orchestrates tiered explanation generation: for each
// difficulty tier it requests text from the external generation service,
// then decomposes the text into a structured outline.
package explain

import (
	"context"
	"errors"

	"github.com/phrazzld/scora-api/internal/domain"
)

// ErrGenerationUnavailable is the per-tier failure marker: the external
// generation service errored, timed out, or returned empty text for that
// tier.
var ErrGenerationUnavailable = errors.New("explanation generation unavailable")

// ExplanationService produces tiered outlines for a question.
type ExplanationService interface {
	// Explain requests one explanation per tier (plain, mid, deep) and
	// decomposes each into an outline. The tier requests run concurrently,
	// each bounded by a per-tier timeout, so end-to-end latency tracks the
	// slowest single tier.
	//
	// Tiers fail independently: a partial result (fewer than three
	// populated tiers) is returned to the caller with an explicit failure
	// marker per failed tier, never silently dropped. Explain itself only
	// returns an error for malformed input (empty question).
	Explain(ctx context.Context, question string) (*Result, error)
}

// TierResult holds one tier's outline, or the error that prevented it.
type TierResult struct {
	Outline *domain.Outline
	Err     error
}

// OK reports whether the tier produced an outline.
func (r TierResult) OK() bool {
	return r.Err == nil && r.Outline != nil
}

// Result is the outcome of one Explain call: a mapping from tier to
// outline or failure marker, for every tier.
type Result struct {
	Question string
	Tiers    map[domain.Tier]TierResult
}

// PopulatedCount returns how many tiers produced an outline.
func (r *Result) PopulatedCount() int {
	n := 0
	for _, tr := range r.Tiers {
		if tr.OK() {
			n++
		}
	}
	return n
}

// Complete reports whether every tier produced an outline.
func (r *Result) Complete() bool {
	return r.PopulatedCount() == len(r.Tiers)
}

// FirstErr returns the first tier failure in tier order, or nil when all
// tiers succeeded. Useful for choosing a status when nothing succeeded.
func (r *Result) FirstErr() error {
	for _, tier := range domain.Tiers {
		if tr, ok := r.Tiers[tier]; ok && tr.Err != nil {
			return tr.Err
		}
	}
	return nil
}
