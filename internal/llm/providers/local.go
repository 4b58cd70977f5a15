// File path: internal/llm/providers/local.go
package providers

import (
	"context"
	"fmt"
	"strings"
)

// LocalProvider is a deterministic stand-in for development without remote
// credentials. It must be selected explicitly; it is never a silent fallback.
type LocalProvider struct{}

func NewLocalProvider() *LocalProvider {
	return &LocalProvider{}
}

func (l *LocalProvider) Generate(ctx context.Context, req Request) (string, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return "", fmt.Errorf("empty prompt")
	}
	return "Underwriting Risk Assessment Report\n\n" +
		"__Assessment__: generated by the local stub provider; no remote model was called.\n" +
		"Prompt length: " + fmt.Sprint(len(req.Prompt)) + " characters.", nil
}

func (l *LocalProvider) Name() string {
	return "local"
}
