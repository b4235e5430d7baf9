package process

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"ewintr.nl/ytsum/model"
	"golang.org/x/exp/slog"
)

var ErrMalformedTimeline = errors.New("malformed timeline")

type TimelineGenerator struct {
	completer Completer
	language  string
	timeout   time.Duration
	intn      func(n int) int
	logger    *slog.Logger
}

func NewTimelineGenerator(completer Completer, language string, timeout time.Duration, logger *slog.Logger) *TimelineGenerator {
	return &TimelineGenerator{
		completer: completer,
		language:  language,
		timeout:   timeout,
		intn:      rand.Intn,
		logger:    logger,
	}
}

// Generate always returns a timeline of mode.TimelineSize() items. When the
// model cannot deliver one, the result is a placeholder marked as fallback.
func (tg *TimelineGenerator) Generate(ctx context.Context, transcript, title string, mode model.SummaryMode) model.Timeline {
	if tg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, tg.timeout)
		defer cancel()
	}

	prompt := timelinePrompt(mode)
	raw, err := tg.completer.Complete(ctx, CompletionRequest{
		System:      withLanguage(prompt.Instruction, tg.language),
		User:        userMessage(title, transcript),
		Temperature: summaryTemperature,
		MaxTokens:   prompt.MaxTokens,
		JSON:        true,
	})
	if err != nil {
		tg.logger.Warn("timeline generation failed, using fallback", slog.String("mode", string(mode)), slog.String("error", err.Error()))
		return model.Timeline{Items: fallbackTimeline(mode, tg.intn), Source: model.SourceFallback}
	}

	items, err := parseTimeline(raw, mode.TimelineSize())
	if err != nil {
		tg.logger.Warn("could not parse timeline, using fallback", slog.String("mode", string(mode)), slog.String("error", err.Error()))
		return model.Timeline{Items: fallbackTimeline(mode, tg.intn), Source: model.SourceFallback}
	}

	return model.Timeline{Items: items, Source: model.SourceGenerated}
}

type timelinePayload struct {
	Timeline []model.TimelineItem `json:"timeline"`
}

// parseTimeline accepts the JSON object the timeline prompt asks for, with or
// without markdown fences. Surplus items are dropped, too few is an error.
// Timestamps must strictly increase and are rewritten as mm:ss.
func parseTimeline(raw string, size int) ([]model.TimelineItem, error) {
	raw = stripFences(raw)
	if raw == "" {
		return nil, fmt.Errorf("%w: empty response", ErrMalformedTimeline)
	}

	var payload timelinePayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedTimeline, err)
	}
	if len(payload.Timeline) < size {
		return nil, fmt.Errorf("%w: got %d items, want %d", ErrMalformedTimeline, len(payload.Timeline), size)
	}

	items := payload.Timeline[:size]
	prev := time.Duration(-1)
	for i, item := range items {
		at, err := model.ParseTimestamp(strings.TrimSpace(item.Time))
		if err != nil {
			return nil, fmt.Errorf("%w: item %d: %v", ErrMalformedTimeline, i, err)
		}
		if at <= prev {
			return nil, fmt.Errorf("%w: item %d at %s is not after %s", ErrMalformedTimeline, i, model.FormatTimestamp(at), model.FormatTimestamp(prev))
		}
		prev = at
		item.Time = model.FormatTimestamp(at)
		if strings.TrimSpace(item.Title) == "" {
			return nil, fmt.Errorf("%w: item %d has no title", ErrMalformedTimeline, i)
		}
		items[i] = item
	}

	return items, nil
}

// stripFences removes markdown code fences from LLM output.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
