// File path: internal/llm/providers/gemini.go
package providers

import (
	"context"
	"fmt"
	"iter"
	"strings"

	"google.golang.org/genai"

	"github.com/underwritehq/underwriter/internal/common"
)

// GeminiProvider generates reports through the Vertex AI backend. The client
// is built once and reused for every request.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

func NewGeminiProvider(ctx context.Context, project, location, model string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Project:  project,
		Location: location,
		Backend:  genai.BackendVertexAI,
	})
	if err != nil {
		return nil, fmt.Errorf("init vertex client: %w", err)
	}
	common.Logger().Info("llm: gemini provider configured", "model", model, "project", project, "location", location)
	return &GeminiProvider{client: client, model: model}, nil
}

// safetySettings fixes every harm category at block-only-high severity.
func safetySettings() []*genai.SafetySetting {
	categories := []genai.HarmCategory{
		genai.HarmCategoryHarassment,
		genai.HarmCategoryHateSpeech,
		genai.HarmCategorySexuallyExplicit,
		genai.HarmCategoryDangerousContent,
	}
	settings := make([]*genai.SafetySetting, 0, len(categories))
	for _, category := range categories {
		settings = append(settings, &genai.SafetySetting{
			Category:  category,
			Threshold: genai.HarmBlockThresholdBlockOnlyHigh,
		})
	}
	return settings
}

func (g *GeminiProvider) Generate(ctx context.Context, req Request) (string, error) {
	logger := common.Logger()
	logger.Debug("llm: streaming generation request", "model", g.model, "prompt_length", len(req.Prompt))
	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(req.Temperature),
		MaxOutputTokens: req.MaxOutputTokens,
		SafetySettings:  safetySettings(),
	}
	stream := g.client.Models.GenerateContentStream(ctx, g.model, genai.Text(req.Prompt), config)
	text, err := drain(stream)
	if err != nil {
		logger.Error("llm: generation stream failed", "error", err)
		return "", err
	}
	logger.Debug("llm: generation stream complete", "length", len(text))
	return text, nil
}

// drain consumes the fragment stream to completion and joins the fragments
// with a single space. A fragment with no retrievable text contributes an
// empty string instead of aborting the response; a stream error aborts the
// whole call.
func drain(stream iter.Seq2[*genai.GenerateContentResponse, error]) (string, error) {
	var fragments []string
	for resp, err := range stream {
		if err != nil {
			return "", err
		}
		fragments = append(fragments, resp.Text())
	}
	return strings.Join(fragments, " "), nil
}

func (g *GeminiProvider) Name() string {
	return "gemini"
}
