package process

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

var ErrEmptyCompletion = errors.New("completion has no content")

type CompletionRequest struct {
	System      string
	User        string
	Temperature float32
	MaxTokens   int
	// JSON asks the model for a single JSON object instead of free text.
	JSON bool
}

// Completer returns the trimmed model output. Blank output is reported as
// ErrEmptyCompletion, never as an empty string with a nil error.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

type OpenAI struct {
	client *openai.Client
	model  string
}

func NewOpenAI(client *openai.Client, model string) *OpenAI {
	if model == "" {
		model = openai.GPT3Dot5Turbo
	}
	return &OpenAI{
		client: client,
		model:  model,
	}
}

func (o *OpenAI) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	ccr := openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: req.System,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: req.User,
			},
		},
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.JSON {
		ccr.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := o.client.CreateChatCompletion(ctx, ccr)
	if err != nil {
		return "", fmt.Errorf("failed to create completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	content := strings.TrimSpace(resp.Choices[len(resp.Choices)-1].Message.Content)
	if content == "" {
		return "", ErrEmptyCompletion
	}

	return content, nil
}
