package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiAssistClient implements TextAssistClient using Google's Gemini models
type GeminiAssistClient struct {
	client *genai.Client
	model  string
}

// NewGeminiAssistClient creates a new Gemini client
func NewGeminiAssistClient(apiKey, model string) (TextAssistClient, error) {
	if model == "" {
		model = "gemini-1.5-flash" // Free tier model
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiAssistClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiAssistClient) GenerateJSON(ctx context.Context, prompt string, out interface{}) error {
	m := c.client.GenerativeModel(c.model)
	// Force JSON-only output so no brace-matching cleanup is needed.
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.7)
	m.SetTopP(0.9)
	m.SetMaxOutputTokens(1024)

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	resp, err := m.GenerateContent(ctxWithTimeout, genai.Text(prompt))
	if err != nil {
		return fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return ErrModelNoContent
	}

	content := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	if !json.Valid([]byte(content)) {
		return ErrModelNoContent
	}
	if err := json.Unmarshal([]byte(content), out); err != nil {
		return ErrModelNoContent
	}
	return nil
}
