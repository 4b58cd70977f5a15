// File path: internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	// DefaultTemperature keeps the model close to the supplied data.
	DefaultTemperature float32 = 0.10
	// DefaultMaxOutputTokens bounds a single generated report.
	DefaultMaxOutputTokens int32 = 8192

	defaultAddr      = ":8080"
	defaultExportDir = "reports"
)

// Config holds the process-wide settings resolved once at startup.
type Config struct {
	Addr      string
	ExportDir string

	// Provider selects the generation backend: gemini (default), openai,
	// or local.
	Provider string

	// Project and Location address the Vertex AI generation service. Both
	// are required when the gemini provider is selected.
	Project  string
	Location string

	GeminiModel string
	OpenAIModel string

	Temperature     float32
	MaxOutputTokens int32
}

// Load resolves configuration from the environment. Missing required
// settings are a startup error, before any form is served.
func Load() (*Config, error) {
	cfg := &Config{
		Addr:            envOr("UNDERWRITER_ADDR", defaultAddr),
		ExportDir:       envOr("UNDERWRITER_EXPORT_DIR", defaultExportDir),
		Provider:        strings.ToLower(envOr("UNDERWRITER_PROVIDER", "gemini")),
		Project:         strings.TrimSpace(os.Getenv("GCP_PROJECT")),
		Location:        strings.TrimSpace(os.Getenv("GCP_REGION")),
		GeminiModel:     envOr("GEMINI_MODEL", "gemini-1.0-pro"),
		OpenAIModel:     envOr("OPENAI_CHAT_MODEL", "gpt-4o"),
		Temperature:     DefaultTemperature,
		MaxOutputTokens: DefaultMaxOutputTokens,
	}

	if raw := strings.TrimSpace(os.Getenv("UNDERWRITER_TEMPERATURE")); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 32)
		if err != nil {
			return nil, fmt.Errorf("parse UNDERWRITER_TEMPERATURE %q: %w", raw, err)
		}
		cfg.Temperature = float32(parsed)
	}
	if raw := strings.TrimSpace(os.Getenv("UNDERWRITER_MAX_OUTPUT_TOKENS")); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("parse UNDERWRITER_MAX_OUTPUT_TOKENS %q: %w", raw, err)
		}
		cfg.MaxOutputTokens = int32(parsed)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Provider {
	case "gemini":
		if c.Project == "" {
			return fmt.Errorf("GCP_PROJECT is required")
		}
		if c.Location == "" {
			return fmt.Errorf("GCP_REGION is required")
		}
	case "openai":
		if strings.TrimSpace(os.Getenv("OPENAI_API_KEY")) == "" {
			return fmt.Errorf("OPENAI_API_KEY is required for the openai provider")
		}
	case "local":
	default:
		return fmt.Errorf("unknown provider %q", c.Provider)
	}
	return nil
}

func envOr(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}
