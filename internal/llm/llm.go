// Package llm holds the minimal chat-completion surface the ingestion tool
// needs from an OpenAI-compatible backend.
package llm

import (
	"context"

	openai "github.com/sashabaranov/go-openai"
)

// Client is the single capability study-aid generation relies on. Any
// OpenAI-compatible or local backend can be adapted to it.
type Client interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// NewOpenAIClient builds a client for an OpenAI-compatible endpoint. baseURL
// may be empty for the default hosted endpoint.
func NewOpenAIClient(baseURL, apiKey string) Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return openai.NewClientWithConfig(cfg)
}
