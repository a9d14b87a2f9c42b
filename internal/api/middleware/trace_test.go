package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/scora-api/internal/api/shared"
	"github.com/phrazzld/scora-api/internal/platform/logger"
)

func TestTrace(t *testing.T) {
	t.Parallel()

	var gotTraceID string
	var gotLogger bool

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTraceID = shared.GetTraceID(r.Context())
		gotLogger = logger.FromContext(r.Context()) != nil
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	Trace(next).ServeHTTP(w, req)

	if gotTraceID == "" {
		t.Error("Expected a trace ID in the handler's context")
	}
	if !gotLogger {
		t.Error("Expected a trace-scoped logger in the handler's context")
	}
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
}
