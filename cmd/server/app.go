package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/scora-api/internal/config"
	"github.com/phrazzld/scora-api/internal/platform/gemini"
	"github.com/phrazzld/scora-api/internal/platform/logger"
	"github.com/phrazzld/scora-api/internal/service/explain"
	"github.com/phrazzld/scora-api/internal/service/score"
)

// application holds the initialized dependencies of the server.
type application struct {
	config *config.Config
	logger *slog.Logger

	explanationService explain.ExplanationService
	scorer             score.Scorer
}

// newApplication loads configuration, sets up logging, and wires the
// service dependencies. Configuration is loaded once here; components
// receive their settings explicitly rather than reading ambient globals.
func newApplication(ctx context.Context) (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"model_name", cfg.LLM.ModelName,
		"api_key_present", cfg.LLM.GeminiAPIKey != "")

	generator, err := gemini.NewTextGenerator(ctx, appLogger, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to create text generator: %w", err)
	}

	explanationService := explain.NewExplanationService(
		generator,
		appLogger,
		time.Duration(cfg.LLM.TierTimeoutSeconds)*time.Second,
		cfg.LLM.MaxQuestionLength,
	)

	scorer := score.NewScorer(nil, appLogger)

	return &application{
		config:             cfg,
		logger:             appLogger,
		explanationService: explanationService,
		scorer:             scorer,
	}, nil
}
