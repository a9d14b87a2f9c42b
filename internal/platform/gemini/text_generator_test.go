package gemini

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/phrazzld/scora-api/internal/config"
	"github.com/phrazzld/scora-api/internal/generation"
)

func testConfig() config.LLMConfig {
	return config.LLMConfig{
		GeminiAPIKey:      "test-api-key",
		ModelName:         "gemini-2.0-flash",
		MaxRetries:        2,
		RetryDelaySeconds: 1,
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewTextGeneratorValidation(t *testing.T) {
	t.Parallel()

	t.Run("nil logger", func(t *testing.T) {
		t.Parallel()

		_, err := NewTextGenerator(context.Background(), nil, testConfig())
		if err == nil {
			t.Fatal("Expected an error for nil logger")
		}
	})

	t.Run("empty API key", func(t *testing.T) {
		t.Parallel()

		cfg := testConfig()
		cfg.GeminiAPIKey = ""

		_, err := NewTextGenerator(context.Background(), discardLogger(), cfg)
		if !errors.Is(err, generation.ErrInvalidConfig) {
			t.Errorf("Expected error %v, got %v", generation.ErrInvalidConfig, err)
		}
	})

	t.Run("empty model name", func(t *testing.T) {
		t.Parallel()

		cfg := testConfig()
		cfg.ModelName = ""

		_, err := NewTextGenerator(context.Background(), discardLogger(), cfg)
		if !errors.Is(err, generation.ErrInvalidConfig) {
			t.Errorf("Expected error %v, got %v", generation.ErrInvalidConfig, err)
		}
	})
}

func TestGenerateTextEmptyPrompt(t *testing.T) {
	t.Parallel()

	generator, err := NewTextGenerator(context.Background(), discardLogger(), testConfig())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	_, err = generator.GenerateText(context.Background(), "")
	if !errors.Is(err, ErrEmptyPrompt) {
		t.Errorf("Expected error %v, got %v", ErrEmptyPrompt, err)
	}
}
