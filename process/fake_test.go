package process

import (
	"context"
	"errors"
	"io"
	"sync"

	"ewintr.nl/ytsum/fetcher"
	"ewintr.nl/ytsum/model"
	"golang.org/x/exp/slog"
)

var errUpstream = errors.New("upstream unavailable")

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type completeFunc func(ctx context.Context, req CompletionRequest) (string, error)

// fakeCompleter routes JSON requests to timeline and free text requests to
// summary.
type fakeCompleter struct {
	summary  completeFunc
	timeline completeFunc

	mu   sync.Mutex
	reqs []CompletionRequest
}

func (fc *fakeCompleter) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	fc.mu.Lock()
	fc.reqs = append(fc.reqs, req)
	fc.mu.Unlock()

	if req.JSON {
		if fc.timeline == nil {
			return "", errUpstream
		}
		return fc.timeline(ctx, req)
	}
	if fc.summary == nil {
		return "", errUpstream
	}
	return fc.summary(ctx, req)
}

func (fc *fakeCompleter) requests() []CompletionRequest {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	out := make([]CompletionRequest, len(fc.reqs))
	copy(out, fc.reqs)
	return out
}

func reply(text string) completeFunc {
	return func(context.Context, CompletionRequest) (string, error) {
		return text, nil
	}
}

func fail(err error) completeFunc {
	return func(context.Context, CompletionRequest) (string, error) {
		return "", err
	}
}

// blockUntilDone waits for the context, like a call that never answers.
func blockUntilDone(ctx context.Context, _ CompletionRequest) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

type fakeMetadata struct {
	md  *model.Metadata
	err error

	mu    sync.Mutex
	calls int
}

func (fm *fakeMetadata) FetchMetadata(_ context.Context, ytID model.YoutubeVideoID) (*model.Metadata, error) {
	fm.mu.Lock()
	fm.calls++
	fm.mu.Unlock()
	if fm.err != nil {
		return nil, fm.err
	}
	md := *fm.md
	md.ID = ytID
	return &md, nil
}

type fakeTranscript struct {
	text string
	err  error
}

func (ft *fakeTranscript) FetchTranscript(ctx context.Context, _ model.YoutubeVideoID) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return ft.text, ft.err
}

var (
	_ fetcher.MetadataFetcher   = &fakeMetadata{}
	_ fetcher.TranscriptFetcher = &fakeTranscript{}
	_ Completer                 = &fakeCompleter{}
	_ Completer                 = &OpenAI{}
)
