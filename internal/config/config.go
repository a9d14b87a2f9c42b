package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// LLMConfig contains all settings for the external generation service.
type LLMConfig struct {
	GeminiAPIKey string `mapstructure:"gemini_api_key" validate:"required"`
	ModelName    string `mapstructure:"model_name"     validate:"required"`

	// MaxRetries bounds the retry loop for transient generation errors.
	MaxRetries int `mapstructure:"max_retries" validate:"gte=0,lte=10"`

	// RetryDelaySeconds is the base delay for exponential backoff.
	RetryDelaySeconds int `mapstructure:"retry_delay_seconds" validate:"gte=1,lte=30"`

	// TierTimeoutSeconds bounds each tier's generation call so a slow
	// tier degrades to a partial result instead of hanging the request.
	TierTimeoutSeconds int `mapstructure:"tier_timeout_seconds" validate:"gte=1,lte=300"`

	// MaxQuestionLength caps question text, in runes, before prompting.
	MaxQuestionLength int `mapstructure:"max_question_length" validate:"gte=1"`
}
