// Package api provides HTTP handlers for the API.
package api

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/phrazzld/scora-api/internal/api/shared"
	"github.com/phrazzld/scora-api/internal/domain"
	"github.com/phrazzld/scora-api/internal/platform/logger"
	"github.com/phrazzld/scora-api/internal/redact"
	"github.com/phrazzld/scora-api/internal/service/explain"
)

// ExplanationHandler handles explanation-related HTTP requests
type ExplanationHandler struct {
	explanationService explain.ExplanationService
	logger             *slog.Logger
}

// NewExplanationHandler creates a new ExplanationHandler
func NewExplanationHandler(
	explanationService explain.ExplanationService,
	log *slog.Logger,
) *ExplanationHandler {
	if explanationService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("explanationService cannot be nil for ExplanationHandler")
	}
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ExplanationHandler")
	}

	return &ExplanationHandler{
		explanationService: explanationService,
		logger:             log.With(slog.String("component", "explanation_handler")),
	}
}

// CreateExplanation handles POST /api/explanations requests. It produces
// one outline per tier; tiers whose generation failed are reported with
// an explicit per-tier error marker. The response is an error status only
// when the request is malformed or no tier could be produced at all.
func (h *ExplanationHandler) CreateExplanation(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req ExplainRequest
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

	result, err := h.explanationService.Explain(r.Context(), req.Question)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	// All three tiers failing means the caller gets nothing usable; map
	// the first failure to a status instead of returning an empty shell.
	if result.PopulatedCount() == 0 {
		err := result.FirstErr()
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	response := explainResultToResponse(result)

	log.Debug("explanation created",
		slog.String("explanation_id", response.ID),
		slog.Int("populated_tiers", result.PopulatedCount()))
	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// explainResultToResponse converts an explain.Result to an ExplainResponse.
// Failed tiers keep only a sanitized failure marker.
func explainResultToResponse(result *explain.Result) ExplainResponse {
	tiers := make(map[string]TierOutlineResponse, len(result.Tiers))
	for tier, tr := range result.Tiers {
		if tr.OK() {
			tiers[string(tier)] = TierOutlineResponse{Outline: tr.Outline}
		} else {
			tiers[string(tier)] = TierOutlineResponse{Error: GetSafeErrorMessage(tr.Err)}
		}
	}

	return ExplainResponse{
		ID:       uuid.New().String(),
		Question: result.Question,
		Tiers:    tiers,
	}
}

// tierFromString validates a client-supplied tier name.
func tierFromString(name string) (domain.Tier, bool) {
	tier := domain.Tier(name)
	return tier, tier.IsValid()
}
