package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const narrativeInstruction = `You write short financial summaries for a household ledger.
You receive a JSON document with aggregates, forecasts, risk scores, goal predictions and scenarios.
Sections whose status is "unavailable" must be mentioned as missing, never guessed.
Answer with at most three short paragraphs of plain text, no markdown, no invented numbers.`

var ErrEmptyNarrative = errors.New("narrative generator returned no text")

// GeminiNarrator asks a Gemini model to describe an insight payload.
type GeminiNarrator struct {
	client *genai.Client
	model  string
}

func NewGeminiNarrator(ctx context.Context, apiKey, model string) (*GeminiNarrator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: missing API key", ErrNarrativeDisabled)
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	return &GeminiNarrator{client: client, model: model}, nil
}

func (g *GeminiNarrator) Narrate(ctx context.Context, payload []byte) (string, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: narrativeInstruction}}},
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(string(payload)), config)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyNarrative
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		b.WriteString(part.Text)
	}
	text := strings.TrimSpace(b.String())
	if text == "" {
		return "", ErrEmptyNarrative
	}
	return text, nil
}
