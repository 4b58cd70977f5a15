// File path: internal/llm/providers/openai.go
package providers

import (
	"context"
	"strings"

	openai "github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"

	"github.com/underwritehq/underwriter/internal/common"
)

// OpenAIProvider is the alternate generation backend, selected via
// UNDERWRITER_PROVIDER=openai. Streamed deltas are concatenated as-is;
// the space-joined fragment behavior is specific to the Gemini path.
type OpenAIProvider struct {
	client openai.Client
	model  string
}

func NewOpenAIProvider(apiKey, model string) *OpenAIProvider {
	common.Logger().Info("llm: openai provider configured", "model", model)
	return &OpenAIProvider{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}
}

func (o *OpenAIProvider) Generate(ctx context.Context, req Request) (string, error) {
	logger := common.Logger()
	logger.Debug("llm: streaming chat completion", "model", o.model, "prompt_length", len(req.Prompt))
	stream := o.client.Chat.Completions.NewStreaming(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(req.Prompt),
		},
		Temperature:         openai.Float(float64(req.Temperature)),
		MaxCompletionTokens: openai.Int(int64(req.MaxOutputTokens)),
	})
	var b strings.Builder
	for stream.Next() {
		chunk := stream.Current()
		if len(chunk.Choices) == 0 {
			continue
		}
		b.WriteString(chunk.Choices[0].Delta.Content)
	}
	if err := stream.Err(); err != nil {
		logger.Error("llm: chat completion stream failed", "error", err)
		return "", err
	}
	logger.Debug("llm: chat completion stream complete", "length", b.Len())
	return b.String(), nil
}

func (o *OpenAIProvider) Name() string {
	return "openai"
}
