package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/scora-api/internal/api/shared"
	"github.com/phrazzld/scora-api/internal/domain"
	"github.com/phrazzld/scora-api/internal/export"
	"github.com/phrazzld/scora-api/internal/platform/logger"
	"github.com/phrazzld/scora-api/internal/redact"
)

// ExportHandler renders tiered outlines as a downloadable plain-text document.
type ExportHandler struct {
	logger *slog.Logger
}

// NewExportHandler creates a new ExportHandler
func NewExportHandler(log *slog.Logger) *ExportHandler {
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ExportHandler")
	}

	return &ExportHandler{
		logger: log.With(slog.String("component", "export_handler")),
	}
}

// ExportExplanations handles POST /api/explanations/export requests.
func (h *ExportHandler) ExportExplanations(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req ExportRequest
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

	tiers := make(map[domain.Tier]*domain.Outline, len(req.Tiers))
	for name, payload := range req.Tiers {
		tier, ok := tierFromString(name)
		if !ok {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Unknown explanation tier")
			return
		}
		o := payload.ToDomain()
		tiers[tier] = &o
	}

	document := export.RenderText(req.Question, tiers)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="explanations.txt"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(document)); err != nil {
		log.Error("failed to write export response", slog.String("error", err.Error()))
	}
}
