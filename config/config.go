package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/exp/slog"
)

type Config struct {
	APIPort           int
	YoutubeAPIKey     string
	OpenAIAPIKey      string
	OpenAIModel       string
	OpenAIBaseURL     string
	SummaryLanguage   string
	RequestTimeout    time.Duration
	MetadataTimeout   time.Duration
	GenerationTimeout time.Duration
	LogLevel          slog.Level
}

// LoadEnvFile reads variables from the given .env files into the process
// environment. Variables that are already set win. Missing files are fine.
func LoadEnvFile(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("unable to load env file: %w", err)
	}
	return nil
}

func Load() (Config, error) {
	return load(os.LookupEnv)
}

func load(lookup func(string) (string, bool)) (Config, error) {
	getParam := func(param, def string) string {
		if val, ok := lookup(param); ok {
			return val
		}
		return def
	}

	cfg := Config{
		YoutubeAPIKey:   getParam("YOUTUBE_API_KEY", ""),
		OpenAIAPIKey:    getParam("OPENAI_API_KEY", ""),
		OpenAIModel:     getParam("OPENAI_MODEL", "gpt-3.5-turbo"),
		OpenAIBaseURL:   getParam("OPENAI_BASE_URL", ""),
		SummaryLanguage: getParam("SUMMARY_LANGUAGE", "English"),
	}

	port, err := strconv.Atoi(getParam("API_PORT", "8080"))
	if err != nil || port <= 0 || port > 65535 {
		return Config{}, fmt.Errorf("invalid API_PORT %q", getParam("API_PORT", ""))
	}
	cfg.APIPort = port

	for _, d := range []struct {
		param string
		def   string
		dst   *time.Duration
	}{
		{param: "REQUEST_TIMEOUT", def: "60s", dst: &cfg.RequestTimeout},
		{param: "METADATA_TIMEOUT", def: "10s", dst: &cfg.MetadataTimeout},
		{param: "GENERATION_TIMEOUT", def: "45s", dst: &cfg.GenerationTimeout},
	} {
		val, err := time.ParseDuration(getParam(d.param, d.def))
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", d.param, err)
		}
		if val < 0 {
			return Config{}, fmt.Errorf("invalid %s: negative duration", d.param)
		}
		*d.dst = val
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(getParam("LOG_LEVEL", "info"))); err != nil {
		return Config{}, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	return cfg, nil
}
