// Package score wraps the rule-based comprehension scorer behind a
// service interface so a learned-model scorer can replace it without
// touching callers.
package score

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/scora-api/internal/domain"
	"github.com/phrazzld/scora-api/internal/domain/scoring"
	"github.com/phrazzld/scora-api/internal/platform/logger"
)

// Scorer is the capability "score a request, get a result". The default
// implementation is the deterministic rule engine in domain/scoring.
type Scorer interface {
	// Score validates the request and compares the answer against the
	// outline. Out-of-range or missing metadata is rejected as
	// domain.ErrMalformedInput before the engine runs; the engine itself
	// never fails for well-formed input.
	Score(ctx context.Context, req domain.ScoringRequest) (domain.ScoringResult, error)
}

// Verify interface compliance at compile time
var _ Scorer = (*ruleScorer)(nil)

// ruleScorer implements Scorer with the deterministic comparator.
type ruleScorer struct {
	params *scoring.Params
	logger *slog.Logger
}

// NewScorer creates the rule-based Scorer. A nil params uses the defaults.
func NewScorer(params *scoring.Params, log *slog.Logger) Scorer {
	if params == nil {
		params = scoring.NewDefaultParams()
	}
	if log == nil {
		log = slog.Default()
	}

	return &ruleScorer{
		params: params,
		logger: log.With(slog.String("component", "rule_scorer")),
	}
}

// Score implements Scorer.Score.
func (s *ruleScorer) Score(
	ctx context.Context,
	req domain.ScoringRequest,
) (domain.ScoringResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := req.Metadata.Validate(); err != nil {
		return domain.ScoringResult{}, fmt.Errorf("%w: %v", domain.ErrMalformedInput, err)
	}

	if err := req.Outline.Validate(); err != nil {
		return domain.ScoringResult{}, fmt.Errorf("%w: %v", domain.ErrMalformedInput, err)
	}

	result := scoring.Score(req, s.params)

	log.Debug("answer scored",
		slog.Float64("comprehension_score", result.ComprehensionScore),
		slog.String("hint_type", string(result.RecommendedHintType)),
		slog.Int("key_terms", len(req.Outline.KeyTerms)),
		slog.Int("numbered_steps", len(req.Outline.NumberedSteps)))

	return result, nil
}
