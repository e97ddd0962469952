package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	EnvAPIKey  = "MISTRAL_API_KEY"
	EnvModel   = "MISTRAL_MODEL"
	EnvBaseURL = "MISTRAL_BASE_URL"

	DefaultModel     = "mistral-tiny"
	DefaultBaseURL   = "https://api.mistral.ai/v1"
	DefaultLogLevel  = "INFO"
	DefaultLogDir    = "logs"
	DefaultLogName   = "ai-playground"
	DefaultGamesFile = "games.yaml"
)

var (
	ErrMissingAPIKey    = errors.New(EnvAPIKey + " is not set")
	ErrInvalidLogLevel  = errors.New("invalid log level")
	ErrMissingGamesFile = errors.New("games file is not set")
)

// LogLevels lists the accepted --logLevel values, lowest first.
var LogLevels = []string{"DEBUG", "INFO", "WARNING", "ERROR", "CRITICAL"}

// Config holds all runtime configuration for the chat client.
type Config struct {
	LogLevel  string
	LogDir    string
	LogName   string
	GamesFile string

	APIKey  string
	BaseURL string
	Model   string
}

// DefaultConfig returns a baseline configuration without side effects.
func DefaultConfig() Config {
	return Config{
		LogLevel:  DefaultLogLevel,
		LogDir:    DefaultLogDir,
		LogName:   DefaultLogName,
		GamesFile: DefaultGamesFile,
		BaseURL:   DefaultBaseURL,
		Model:     DefaultModel,
	}
}

// FromEnv overlays the Mistral environment variables onto cfg. Unset model and
// base URL variables keep the values already in cfg.
func FromEnv(cfg Config, getenv func(string) string) Config {
	if getenv == nil {
		return cfg
	}
	cfg.APIKey = strings.TrimSpace(getenv(EnvAPIKey))
	if v := strings.TrimSpace(getenv(EnvModel)); v != "" {
		cfg.Model = v
	}
	if v := strings.TrimSpace(getenv(EnvBaseURL)); v != "" {
		cfg.BaseURL = v
	}
	return cfg
}

// Normalize sanitizes configuration values and applies defaults.
func Normalize(cfg Config) Config {
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	cfg.Model = strings.TrimSpace(cfg.Model)
	cfg.LogDir = strings.TrimSpace(cfg.LogDir)
	cfg.LogName = strings.TrimSpace(cfg.LogName)
	cfg.GamesFile = strings.TrimSpace(cfg.GamesFile)
	cfg.LogLevel = strings.ToUpper(strings.TrimSpace(cfg.LogLevel))

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.LogLevel == "WARN" {
		cfg.LogLevel = "WARNING"
	}
	if cfg.LogDir == "" {
		cfg.LogDir = DefaultLogDir
	}
	if cfg.LogName == "" {
		cfg.LogName = DefaultLogName
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	return cfg
}

// ValidateLogLevel reports whether the configured level is one of LogLevels.
func (c Config) ValidateLogLevel() error {
	for _, level := range LogLevels {
		if c.LogLevel == level {
			return nil
		}
	}
	return fmt.Errorf("%w %q: expected one of %s", ErrInvalidLogLevel, c.LogLevel, strings.Join(LogLevels, ", "))
}

// Validate checks the settings every command needs before talking to the API.
func (c Config) Validate() error {
	if err := c.ValidateLogLevel(); err != nil {
		return err
	}
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}
