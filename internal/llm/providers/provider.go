// File path: internal/llm/providers/provider.go
package providers

import "context"

// Request carries one prompt plus its fixed decoding configuration.
type Request struct {
	Prompt          string
	Temperature     float32
	MaxOutputTokens int32
}

// Provider issues a single text-generation call. Implementations do not
// retry, cache, or time out on their own; transport failures propagate.
type Provider interface {
	Generate(ctx context.Context, req Request) (string, error)
	Name() string
}
