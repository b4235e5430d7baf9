package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ewintr.nl/ytsum/config"
	"ewintr.nl/ytsum/fetcher"
	"ewintr.nl/ytsum/handler"
	"ewintr.nl/ytsum/process"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sashabaranov/go-openai"
	"golang.org/x/exp/slog"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

func main() {
	ctx := context.Background()

	if err := config.LoadEnvFile(); err != nil {
		slog.New(slog.NewTextHandler(os.Stderr, nil)).Error("unable to load env file", slog.String("error", err.Error()))
		os.Exit(1)
	}
	cfg, err := config.Load()
	if err != nil {
		slog.New(slog.NewTextHandler(os.Stderr, nil)).Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	if cfg.YoutubeAPIKey == "" {
		logger.Warn("YOUTUBE_API_KEY is not set, metadata lookups will fail")
	}
	if cfg.OpenAIAPIKey == "" {
		logger.Warn("OPENAI_API_KEY is not set, all summaries will be fallback content")
	}

	ytClient, err := youtube.NewService(ctx, option.WithAPIKey(cfg.YoutubeAPIKey))
	if err != nil {
		logger.Error("unable to create youtube service", slog.String("error", err.Error()))
		os.Exit(1)
	}
	yt := fetcher.NewYoutube(ytClient, cfg.MetadataTimeout)

	oaConfig := openai.DefaultConfig(cfg.OpenAIAPIKey)
	if cfg.OpenAIBaseURL != "" {
		oaConfig.BaseURL = cfg.OpenAIBaseURL
	}
	completer := process.NewOpenAI(openai.NewClientWithConfig(oaConfig), cfg.OpenAIModel)

	pipeline := process.NewPipeline(
		yt,
		fetcher.NewPlaceholderTranscript(),
		process.NewSummaryGenerator(completer, cfg.SummaryLanguage, cfg.GenerationTimeout),
		process.NewTimelineGenerator(completer, cfg.SummaryLanguage, cfg.GenerationTimeout, logger),
		logger,
	)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.APIPort),
		Handler:           handler.NewServer(pipeline, cfg.RequestTimeout, reg, logger),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.RequestTimeout + 10*time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()
	logger.Info("http server started", slog.Int("port", cfg.APIPort), slog.String("model", cfg.OpenAIModel))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	<-done

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.RequestTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("unable to shut down cleanly", slog.String("error", err.Error()))
	}

	logger.Info("service stopped")
}
