// Package studygen turns extracted document text into study aids. It is the
// downstream consumer the extraction core exists to feed: the extractors
// guarantee bounded, non-empty input, so the prompt here never needs its own
// length management.
package studygen

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/notewise/docingest/internal/llm"
)

// ErrNoContent indicates the model returned no usable study aids.
var ErrNoContent = errors.New("no study aid content")

// Generator produces study aids from source text with one chat completion.
type Generator struct {
	Client llm.Client
	Model  string
	// QuestionCount is the number of study questions to request; zero means
	// the default of 10.
	QuestionCount int
}

const systemPrompt = "You are a study assistant. From the provided document text, " +
	"write a concise summary followed by standalone study questions with answers. " +
	"Use only information present in the document. Respond in Markdown."

// StudyAids asks the model for a summary and study questions over the
// extracted text. The text must be non-empty; extraction guarantees that.
func (g *Generator) StudyAids(ctx context.Context, sourceText string) (string, error) {
	if g.Client == nil || strings.TrimSpace(g.Model) == "" {
		return "", errors.New("generator not configured")
	}
	text := strings.TrimSpace(sourceText)
	if text == "" {
		return "", errors.New("empty source text")
	}

	n := g.QuestionCount
	if n <= 0 {
		n = 10
	}
	user := fmt.Sprintf("Create %d study questions.\n\nDocument text:\n\n%s", n, text)

	resp, err := g.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: 0.2,
		N:           1,
	})
	if err != nil {
		return "", fmt.Errorf("study aid call: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrNoContent
	}
	out := strings.TrimSpace(resp.Choices[0].Message.Content)
	if out == "" {
		return "", ErrNoContent
	}
	return out, nil
}
