package logger

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/phrazzld/scora-api/internal/config"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
		want     slog.Level
	}{
		{name: "debug level", logLevel: "debug", want: slog.LevelDebug},
		{name: "info level", logLevel: "info", want: slog.LevelInfo},
		{name: "warn level", logLevel: "warn", want: slog.LevelWarn},
		{name: "error level", logLevel: "error", want: slog.LevelError},
		{name: "mixed case", logLevel: "DEBUG", want: slog.LevelDebug},
		{name: "invalid level falls back to info", logLevel: "verbose", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := Setup(config.ServerConfig{Port: 8080, LogLevel: tt.logLevel})
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if logger == nil {
				t.Fatal("Expected a logger")
			}

			if !logger.Enabled(context.Background(), tt.want) {
				t.Errorf("Expected level %v to be enabled", tt.want)
			}
			if tt.want > slog.LevelDebug && logger.Enabled(context.Background(), tt.want-1) {
				t.Errorf("Expected levels below %v to be disabled", tt.want)
			}
		})
	}
}

func TestLoggerContextRoundTrip(t *testing.T) {
	t.Parallel()

	base := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx := WithLogger(context.Background(), base)
	if got := FromContext(ctx); got != base {
		t.Error("Expected the stored logger back from the context")
	}

	if got := FromContext(context.Background()); got != nil {
		t.Error("Expected nil from a bare context")
	}
}

func TestFromContextOrDefault(t *testing.T) {
	t.Parallel()

	stored := slog.New(slog.NewTextHandler(io.Discard, nil))
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx := WithLogger(context.Background(), stored)
	if got := FromContextOrDefault(ctx, fallback); got != stored {
		t.Error("Expected the stored logger to win over the fallback")
	}

	if got := FromContextOrDefault(context.Background(), fallback); got != fallback {
		t.Error("Expected the fallback when the context carries no logger")
	}

	if got := FromContextOrDefault(context.Background(), nil); got == nil {
		t.Error("Expected the process default logger, not nil")
	}
}
