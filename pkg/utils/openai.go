package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIAssistClient implements TextAssistClient using OpenAI chat models
type OpenAIAssistClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIAssistClient(apiKey, model string) TextAssistClient {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIAssistClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAIAssistClient) GenerateJSON(ctx context.Context, prompt string, out interface{}) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctxWithTimeout, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		MaxTokens: 1024,
	})
	if err != nil {
		return fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return ErrModelNoContent
	}

	content := resp.Choices[0].Message.Content
	if err := json.Unmarshal([]byte(content), out); err != nil {
		return ErrModelNoContent
	}
	return nil
}
