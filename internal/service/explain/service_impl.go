package explain

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/phrazzld/scora-api/internal/domain"
	"github.com/phrazzld/scora-api/internal/domain/outline"
	"github.com/phrazzld/scora-api/internal/generation"
	"github.com/phrazzld/scora-api/internal/platform/logger"
)

// Verify interface compliance at compile time
var _ ExplanationService = (*explanationService)(nil)

// explanationService implements ExplanationService on top of a
// generation.TextGenerator.
type explanationService struct {
	generator      generation.TextGenerator
	logger         *slog.Logger
	tierTimeout    time.Duration
	maxQuestionLen int
}

// NewExplanationService creates an ExplanationService implementation.
// tierTimeout bounds each tier's generation call; maxQuestionLen caps the
// question text, in runes, before prompting.
func NewExplanationService(
	generator generation.TextGenerator,
	log *slog.Logger,
	tierTimeout time.Duration,
	maxQuestionLen int,
) ExplanationService {
	if generator == nil {
		panic("generator cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	if tierTimeout <= 0 {
		tierTimeout = 30 * time.Second
	}
	if maxQuestionLen <= 0 {
		maxQuestionLen = 2000
	}

	return &explanationService{
		generator:      generator,
		logger:         log.With(slog.String("component", "explanation_service")),
		tierTimeout:    tierTimeout,
		maxQuestionLen: maxQuestionLen,
	}
}

// Explain implements ExplanationService.Explain.
func (s *explanationService) Explain(ctx context.Context, question string) (*Result, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	question = trimQuestion(question, s.maxQuestionLen)
	if question == "" {
		return nil, fmt.Errorf("%w: question text is required", domain.ErrMalformedInput)
	}

	log.Debug("generating tiered explanations",
		slog.Int("question_length", len(question)))

	// One independent fetch per tier, joined below. Each goroutine owns
	// exactly one slot of results, so no further coordination is needed.
	results := make([]TierResult, len(domain.Tiers))
	var wg sync.WaitGroup
	for i, tier := range domain.Tiers {
		wg.Add(1)
		go func(i int, tier domain.Tier) {
			defer wg.Done()
			results[i] = s.explainTier(ctx, tier, question)
		}(i, tier)
	}
	wg.Wait()

	result := &Result{
		Question: question,
		Tiers:    make(map[domain.Tier]TierResult, len(domain.Tiers)),
	}
	for i, tier := range domain.Tiers {
		result.Tiers[tier] = results[i]
		if err := results[i].Err; err != nil {
			log.Warn("tier failed",
				slog.String("tier", string(tier)),
				slog.String("error", err.Error()))
		}
	}

	log.Debug("tiered explanations generated",
		slog.Int("populated_tiers", result.PopulatedCount()),
		slog.Int("total_tiers", len(domain.Tiers)))

	return result, nil
}

// explainTier generates and decomposes a single tier, bounded by the
// per-tier timeout. Any failure becomes the tier's failure marker.
func (s *explanationService) explainTier(
	ctx context.Context,
	tier domain.Tier,
	question string,
) TierResult {
	tierCtx, cancel := context.WithTimeout(ctx, s.tierTimeout)
	defer cancel()

	text, err := s.generator.GenerateText(tierCtx, buildPrompt(tier, question))
	if err != nil {
		return TierResult{Err: fmt.Errorf("%w: tier %s: %v", ErrGenerationUnavailable, tier, err)}
	}

	sections := outline.Parse(text)
	if len(sections) == 0 {
		return TierResult{Err: fmt.Errorf(
			"%w: tier %s: service returned empty text", ErrGenerationUnavailable, tier)}
	}

	o, err := outline.Tokenize(sections)
	if err != nil {
		// Tokenizer consistency failures are internal errors, not
		// generation failures; keep the original kind for status mapping.
		return TierResult{Err: fmt.Errorf("tier %s: %w", tier, err)}
	}

	return TierResult{Outline: o}
}

// trimQuestion trims whitespace and truncates the question to maxLen runes.
func trimQuestion(question string, maxLen int) string {
	trimmed := []rune(strings.TrimSpace(question))
	if len(trimmed) > maxLen {
		trimmed = trimmed[:maxLen]
	}
	return string(trimmed)
}
