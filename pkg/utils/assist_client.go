package utils

import "context"

// TextAssistClient is one request in, one response out: build a prompt,
// get JSON back, decode it. No retries, no streaming, no caching.
type TextAssistClient interface {
	GenerateJSON(ctx context.Context, prompt string, out interface{}) error
}
