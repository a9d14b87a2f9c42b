package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/scora-api/internal/api"
	"github.com/phrazzld/scora-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubScorer returns a canned result from Score.
type stubScorer struct {
	result domain.ScoringResult
	err    error

	lastRequest domain.ScoringRequest
}

func (s *stubScorer) Score(ctx context.Context, req domain.ScoringRequest) (domain.ScoringResult, error) {
	s.lastRequest = req
	return s.result, s.err
}

func validScorePayload() api.ScoreRequest {
	return api.ScoreRequest{
		Outline: api.OutlinePayload{
			KeyTerms:      []string{"osmosis"},
			NumberedSteps: []string{"Water moves toward higher solute concentration."},
			Sections: []api.SectionPayload{
				{
					Type:    "definition",
					Content: "Osmosis is the movement of water across a membrane.",
				},
				{
					Type:    "procedure",
					Content: "1. Water moves toward higher solute concentration.",
				},
			},
		},
		AnswerText: "Osmosis is when water moves toward higher solute concentration.",
		Metadata:   api.LearnerMetadataPayload{Age: 20, EducationLevel: "college"},
	}
}

func TestSubmitAnswerSuccess(t *testing.T) {
	t.Parallel()

	scorer := &stubScorer{
		result: domain.ScoringResult{
			ComprehensionScore:  0.92,
			RecommendedHintType: domain.HintNone,
		},
	}
	handler := api.NewScoreHandler(scorer, testLogger())

	w := postJSON(t, handler.SubmitAnswer, "/api/answers/score", validScorePayload())

	require.Equal(t, http.StatusOK, w.Code)

	var resp api.ScoreResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0.92, resp.ComprehensionScore)
	assert.Equal(t, string(domain.HintNone), resp.RecommendedHintType)

	assert.Equal(t, domain.EducationCollege, scorer.lastRequest.Metadata.EducationLevel)
	assert.Equal(t, []string{"osmosis"}, scorer.lastRequest.Outline.KeyTerms)
}

func TestSubmitAnswerEmptyAnswerIsAccepted(t *testing.T) {
	t.Parallel()

	scorer := &stubScorer{
		result: domain.ScoringResult{
			ComprehensionScore:  0.0,
			RecommendedHintType: domain.HintClarifyTerm,
		},
	}
	handler := api.NewScoreHandler(scorer, testLogger())

	payload := validScorePayload()
	payload.AnswerText = ""

	w := postJSON(t, handler.SubmitAnswer, "/api/answers/score", payload)

	require.Equal(t, http.StatusOK, w.Code)

	var resp api.ScoreResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0.0, resp.ComprehensionScore)
	assert.Equal(t, string(domain.HintClarifyTerm), resp.RecommendedHintType)
}

func TestSubmitAnswerMalformedInput(t *testing.T) {
	t.Parallel()

	scorer := &stubScorer{
		err: fmt.Errorf("%w: learner age must be greater than zero", domain.ErrMalformedInput),
	}
	handler := api.NewScoreHandler(scorer, testLogger())

	w := postJSON(t, handler.SubmitAnswer, "/api/answers/score", validScorePayload())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitAnswerFallbackOnInternalError(t *testing.T) {
	t.Parallel()

	scorer := &stubScorer{err: errors.New("unexpected internal failure")}
	handler := api.NewScoreHandler(scorer, testLogger())

	w := postJSON(t, handler.SubmitAnswer, "/api/answers/score", validScorePayload())

	// The scoring boundary always answers with a typed result.
	require.Equal(t, http.StatusOK, w.Code)

	var resp api.ScoreResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0.0, resp.ComprehensionScore)
	assert.Equal(t, string(domain.HintUnknown), resp.RecommendedHintType)
}

func TestSubmitAnswerInvalidRequests(t *testing.T) {
	t.Parallel()

	handler := api.NewScoreHandler(&stubScorer{}, testLogger())

	t.Run("invalid JSON body", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(
			http.MethodPost, "/api/answers/score", bytes.NewReader([]byte("{not json")))
		w := httptest.NewRecorder()
		handler.SubmitAnswer(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing metadata", func(t *testing.T) {
		t.Parallel()

		payload := validScorePayload()
		payload.Metadata = api.LearnerMetadataPayload{}

		w := postJSON(t, handler.SubmitAnswer, "/api/answers/score", payload)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid education level", func(t *testing.T) {
		t.Parallel()

		payload := validScorePayload()
		payload.Metadata.EducationLevel = "bootcamp"

		w := postJSON(t, handler.SubmitAnswer, "/api/answers/score", payload)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid section type", func(t *testing.T) {
		t.Parallel()

		payload := validScorePayload()
		payload.Outline.Sections[0].Type = "chapter"

		w := postJSON(t, handler.SubmitAnswer, "/api/answers/score", payload)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
