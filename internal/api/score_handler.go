package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/phrazzld/scora-api/internal/api/shared"
	"github.com/phrazzld/scora-api/internal/domain"
	"github.com/phrazzld/scora-api/internal/platform/logger"
	"github.com/phrazzld/scora-api/internal/redact"
	"github.com/phrazzld/scora-api/internal/service/score"
)

// ScoreHandler handles answer-scoring HTTP requests
type ScoreHandler struct {
	scorer score.Scorer
	logger *slog.Logger
}

// NewScoreHandler creates a new ScoreHandler
func NewScoreHandler(scorer score.Scorer, log *slog.Logger) *ScoreHandler {
	if scorer == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("scorer cannot be nil for ScoreHandler")
	}
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ScoreHandler")
	}

	return &ScoreHandler{
		scorer: scorer,
		logger: log.With(slog.String("component", "score_handler")),
	}
}

// SubmitAnswer handles POST /api/answers/score requests. Malformed
// payloads are rejected before the scoring engine runs. Once a request is
// accepted this endpoint always answers with a typed result: an
// unexpected internal failure falls back to {score: 0, hint: unknown}
// rather than an opaque error.
func (h *ScoreHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req ScoreRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		log.Warn("validation error", slog.String("error", redact.Error(err)))
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	scoringReq := domain.ScoringRequest{
		Outline:    req.Outline.ToDomain(),
		AnswerText: req.AnswerText,
		Metadata: domain.LearnerMetadata{
			Age:            req.Metadata.Age,
			EducationLevel: domain.EducationLevel(req.Metadata.EducationLevel),
		},
	}

	result, err := h.scorer.Score(r.Context(), scoringReq)
	if err != nil {
		if errors.Is(err, domain.ErrMalformedInput) {
			shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, GetSafeErrorMessage(err), err)
			return
		}

		// Outermost boundary: must always answer with a typed result.
		log.Error("scoring failed, returning fallback result",
			slog.String("error", redact.Error(err)))
		result = domain.FallbackScoringResult()
	}

	response := ScoreResponse{
		ComprehensionScore:  result.ComprehensionScore,
		RecommendedHintType: string(result.RecommendedHintType),
	}

	log.Debug("answer scored",
		slog.Float64("comprehension_score", response.ComprehensionScore),
		slog.String("hint_type", response.RecommendedHintType))
	shared.RespondWithJSON(w, r, http.StatusOK, response)
}
