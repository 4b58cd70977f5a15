// File path: internal/llm/llm.go
package llm

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/underwritehq/underwriter/internal/common"
	"github.com/underwritehq/underwriter/internal/config"
	"github.com/underwritehq/underwriter/internal/llm/providers"
)

type Request = providers.Request

type Provider = providers.Provider

var (
	defaultProvider Provider
	defaultErr      error
	defaultOnce     sync.Once
)

// Default returns the process-wide provider, building it on first use. The
// handle is shared by every request and never mutated after construction.
func Default(ctx context.Context, cfg *config.Config) (Provider, error) {
	defaultOnce.Do(func() {
		defaultProvider, defaultErr = NewProvider(ctx, cfg)
	})
	return defaultProvider, defaultErr
}

// NewProvider builds the generation backend named by the configuration.
func NewProvider(ctx context.Context, cfg *config.Config) (Provider, error) {
	logger := common.Logger()
	switch cfg.Provider {
	case "gemini":
		return providers.NewGeminiProvider(ctx, cfg.Project, cfg.Location, cfg.GeminiModel)
	case "openai":
		apiKey := strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY not set")
		}
		return providers.NewOpenAIProvider(apiKey, cfg.OpenAIModel), nil
	case "local":
		logger.Warn("llm: local stub provider selected; reports are not model output")
		return providers.NewLocalProvider(), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}
