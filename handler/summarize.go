package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"ewintr.nl/ytsum/model"
	"ewintr.nl/ytsum/process"
	"golang.org/x/exp/slog"
)

const maxBodyBytes = 1 << 20

type Summarizer interface {
	Run(ctx context.Context, req model.Request) (*model.Summary, error)
}

type SummarizeAPI struct {
	summarizer Summarizer
	timeout    time.Duration
	metrics    *Metrics
	logger     *slog.Logger
}

func NewSummarizeAPI(summarizer Summarizer, timeout time.Duration, metrics *Metrics, logger *slog.Logger) *SummarizeAPI {
	return &SummarizeAPI{
		summarizer: summarizer,
		timeout:    timeout,
		metrics:    metrics,
		logger:     logger,
	}
}

type summarizeRequest struct {
	VideoURL         string `json:"videoUrl"`
	SummaryType      string `json:"summaryType"`
	GenerateTimeline bool   `json:"generateTimeline"`
}

type provenance struct {
	Summary  model.Source `json:"summary"`
	Timeline model.Source `json:"timeline,omitempty"`
}

type summarizeResponse struct {
	Summary      string               `json:"summary"`
	SummaryHTML  string               `json:"summaryHtml"`
	VideoDetails model.Metadata       `json:"videoDetails"`
	Timeline     []model.TimelineItem `json:"timeline,omitempty"`
	Provenance   provenance           `json:"provenance"`
}

func (sa *SummarizeAPI) Summarize(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if sa.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, sa.timeout)
		defer cancel()
	}

	var body summarizeRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&body); err != nil {
		sa.returnErr(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	mode := model.ParseSummaryMode(body.SummaryType)
	summary, err := sa.summarizer.Run(ctx, model.Request{
		ID:       requestIDFrom(r.Context()),
		VideoURL: body.VideoURL,
		Mode:     mode,
		Timeline: body.GenerateTimeline,
	})
	if err != nil {
		status, message := classify(err)
		sa.returnErr(ctx, w, status, message, err)
		return
	}

	sa.metrics.Summaries.WithLabelValues(string(mode), string(summary.SummarySource), string(summary.TimelineSource)).Inc()
	JSON(w, http.StatusOK, summarizeResponse{
		Summary:      summary.Text,
		SummaryHTML:  model.FormatSummaryHTML(summary.Text),
		VideoDetails: summary.Metadata,
		Timeline:     summary.Timeline,
		Provenance: provenance{
			Summary:  summary.SummarySource,
			Timeline: summary.TimelineSource,
		},
	})
}

// classify maps pipeline errors to a status code and a message that is safe
// to show to users.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, process.ErrMissingURL):
		return http.StatusBadRequest, "no video URL was provided"
	case errors.Is(err, process.ErrInvalidURL):
		return http.StatusBadRequest, "not a valid YouTube URL"
	case errors.Is(err, process.ErrVideoNotFound):
		return http.StatusNotFound, "video not found"
	case errors.Is(err, process.ErrTranscriptNotFound):
		return http.StatusNotFound, "transcript not found"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "the request timed out, please try again"
	case errors.Is(err, context.Canceled):
		return http.StatusRequestTimeout, "the request was cancelled"
	default:
		return http.StatusInternalServerError, "an error occurred while generating the summary"
	}
}

func (sa *SummarizeAPI) returnErr(ctx context.Context, w http.ResponseWriter, status int, message string, err error, details ...any) {
	level := slog.LevelInfo
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	sa.logger.Log(ctx, level, message,
		slog.String("requestid", requestIDFrom(ctx).String()),
		slog.Int("status", status),
		slog.String("error", err.Error()),
	)
	Error(w, status, message, details...)
}
