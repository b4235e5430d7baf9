package process

import (
	"context"
	"fmt"
	"time"

	"ewintr.nl/ytsum/model"
)

type SummaryGenerator struct {
	completer Completer
	language  string
	timeout   time.Duration
}

func NewSummaryGenerator(completer Completer, language string, timeout time.Duration) *SummaryGenerator {
	return &SummaryGenerator{
		completer: completer,
		language:  language,
		timeout:   timeout,
	}
}

// Generate returns the summary text. Failures are returned, never masked, so
// the caller can decide on a fallback.
func (sg *SummaryGenerator) Generate(ctx context.Context, transcript, title string, mode model.SummaryMode) (string, error) {
	if sg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, sg.timeout)
		defer cancel()
	}

	prompt := PromptFor(mode)
	text, err := sg.completer.Complete(ctx, CompletionRequest{
		System:      withLanguage(prompt.Instruction, sg.language),
		User:        userMessage(title, transcript),
		Temperature: summaryTemperature,
		MaxTokens:   prompt.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate %s summary: %w", mode, err)
	}

	return text, nil
}
