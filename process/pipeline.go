package process

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ewintr.nl/ytsum/fetcher"
	"ewintr.nl/ytsum/model"
	"golang.org/x/exp/slog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrMissingURL         = errors.New("no video URL was provided")
	ErrInvalidURL         = errors.New("not a valid YouTube URL")
	ErrVideoNotFound      = errors.New("video not found")
	ErrTranscriptNotFound = errors.New("transcript not found")
)

type stage string

const (
	stageValidating         stage = "validating"
	stageFetchingMetadata   stage = "fetching_metadata"
	stageFetchingTranscript stage = "fetching_transcript"
	stageGenerating         stage = "generating"
	stageResponding         stage = "responding"
)

type Pipeline struct {
	metadata    fetcher.MetadataFetcher
	transcripts fetcher.TranscriptFetcher
	summary     *SummaryGenerator
	timeline    *TimelineGenerator
	logger      *slog.Logger
}

func NewPipeline(metadata fetcher.MetadataFetcher, transcripts fetcher.TranscriptFetcher, summary *SummaryGenerator, timeline *TimelineGenerator, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		metadata:    metadata,
		transcripts: transcripts,
		summary:     summary,
		timeline:    timeline,
		logger:      logger,
	}
}

// Run takes a request from URL to summary. Once metadata and transcript are
// in, it no longer fails: a failing summary call is replaced by fallback
// content.
func (p *Pipeline) Run(ctx context.Context, req model.Request) (*model.Summary, error) {
	logger := p.logger.With(slog.String("requestid", req.ID.String()))
	mode := model.ParseSummaryMode(string(req.Mode))

	logger.Debug("processing request", slog.String("stage", string(stageValidating)))
	if strings.TrimSpace(req.VideoURL) == "" {
		return nil, ErrMissingURL
	}
	ytID, ok := fetcher.ExtractVideoID(req.VideoURL)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidURL, req.VideoURL)
	}
	logger = logger.With(slog.String("video", string(ytID)))

	logger.Debug("processing request", slog.String("stage", string(stageFetchingMetadata)))
	md, err := p.metadata.FetchMetadata(ctx, ytID)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("fetching metadata: %w", ctxErr)
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("fetching metadata: %w", err)
		}
		logger.Info("could not fetch metadata", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %v", ErrVideoNotFound, err)
	}

	logger.Debug("processing request", slog.String("stage", string(stageFetchingTranscript)))
	transcript, err := p.transcripts.FetchTranscript(ctx, ytID)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("fetching transcript: %w", ctxErr)
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("fetching transcript: %w", err)
		}
		logger.Info("could not fetch transcript", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %v", ErrTranscriptNotFound, err)
	}
	if strings.TrimSpace(transcript) == "" {
		return nil, fmt.Errorf("%w: %s has no captions", ErrTranscriptNotFound, ytID)
	}

	logger.Debug("processing request", slog.String("stage", string(stageGenerating)), slog.String("mode", string(mode)), slog.Bool("timeline", req.Timeline))
	result := p.generate(ctx, logger, *md, transcript, mode, req.Timeline)

	logger.Debug("processing request", slog.String("stage", string(stageResponding)), slog.Bool("degraded", result.Degraded()))
	return result, nil
}

// generate runs the summary and the optional timeline call side by side. A
// summary failure cancels the timeline call; both are then replaced by
// content derived from the metadata.
func (p *Pipeline) generate(ctx context.Context, logger *slog.Logger, md model.Metadata, transcript string, mode model.SummaryMode, withTimeline bool) *model.Summary {
	var (
		text     string
		timeline model.Timeline
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		text, err = p.summary.Generate(gctx, transcript, md.Title, mode)
		return err
	})
	if withTimeline {
		g.Go(func() error {
			timeline = p.timeline.Generate(gctx, transcript, md.Title, mode)
			return nil
		})
	}

	result := &model.Summary{Metadata: md}
	if err := g.Wait(); err != nil {
		logger.Warn("summary generation failed, using fallback", slog.String("error", err.Error()))
		result.Text = fallbackSummary(md)
		result.SummarySource = model.SourceFallback
		if withTimeline {
			result.Timeline = durationTimeline(md)
			result.TimelineSource = model.SourceFallback
		}
		return result
	}

	result.Text = text
	result.SummarySource = model.SourceGenerated
	if withTimeline {
		result.Timeline = timeline.Items
		result.TimelineSource = timeline.Source
	}
	return result
}
