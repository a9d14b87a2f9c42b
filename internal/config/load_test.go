package config

import (
	"strings"
	"testing"
)

// setRequiredEnv sets the minimum environment needed for Load to succeed.
func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SCORA_LLM_GEMINI_API_KEY", "test-api-key")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Server.LogLevel != "info" {
		t.Errorf("Expected default log level info, got %q", cfg.Server.LogLevel)
	}
	if cfg.LLM.ModelName != "gemini-2.0-flash" {
		t.Errorf("Expected default model, got %q", cfg.LLM.ModelName)
	}
	if cfg.LLM.MaxRetries != 3 {
		t.Errorf("Expected default max retries 3, got %d", cfg.LLM.MaxRetries)
	}
	if cfg.LLM.TierTimeoutSeconds != 30 {
		t.Errorf("Expected default tier timeout 30, got %d", cfg.LLM.TierTimeoutSeconds)
	}
	if cfg.LLM.MaxQuestionLength != 2000 {
		t.Errorf("Expected default max question length 2000, got %d", cfg.LLM.MaxQuestionLength)
	}
	if cfg.LLM.GeminiAPIKey != "test-api-key" {
		t.Errorf("Expected API key from environment, got %q", cfg.LLM.GeminiAPIKey)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SCORA_SERVER_PORT", "9090")
	t.Setenv("SCORA_SERVER_LOG_LEVEL", "debug")
	t.Setenv("SCORA_LLM_MODEL_NAME", "gemini-2.0-pro")
	t.Setenv("SCORA_LLM_TIER_TIMEOUT_SECONDS", "60")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Server.LogLevel != "debug" {
		t.Errorf("Expected log level debug, got %q", cfg.Server.LogLevel)
	}
	if cfg.LLM.ModelName != "gemini-2.0-pro" {
		t.Errorf("Expected model gemini-2.0-pro, got %q", cfg.LLM.ModelName)
	}
	if cfg.LLM.TierTimeoutSeconds != 60 {
		t.Errorf("Expected tier timeout 60, got %d", cfg.LLM.TierTimeoutSeconds)
	}
}

func TestLoadMissingAPIKey(t *testing.T) {
	t.Setenv("SCORA_LLM_GEMINI_API_KEY", "")

	_, err := Load()
	if err == nil {
		t.Fatal("Expected validation error for missing API key")
	}
	if !strings.Contains(err.Error(), "invalid configuration") {
		t.Errorf("Expected validation failure, got %v", err)
	}
}

func TestLoadInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "invalid log level", key: "SCORA_SERVER_LOG_LEVEL", value: "verbose"},
		{name: "zero port", key: "SCORA_SERVER_PORT", value: "0"},
		{name: "port out of range", key: "SCORA_SERVER_PORT", value: "70000"},
		{name: "retries out of range", key: "SCORA_LLM_MAX_RETRIES", value: "99"},
		{name: "tier timeout too large", key: "SCORA_LLM_TIER_TIMEOUT_SECONDS", value: "1000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.key, tt.value)

			if _, err := Load(); err == nil {
				t.Errorf("Expected error for %s=%s", tt.key, tt.value)
			}
		})
	}
}
