package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the environment-driven CLI configuration. Flags override it.
type Config struct {
	Glyphs      string `env:"GLYPHSIFT_GLYPHS" env-default:""`
	Seed        int64  `env:"GLYPHSIFT_SEED" env-default:"0"`
	Vocab       string `env:"GLYPHSIFT_VOCAB" env-default:""`
	VocabData   string `env:"GLYPHSIFT_VOCAB_DATA" env-default:""`
	VocabMeta   string `env:"GLYPHSIFT_VOCAB_META" env-default:""`
	LogLevel    string `env:"GLYPHSIFT_LOG_LEVEL" env-default:"warn"`
	RaiseErrors bool   `env:"GLYPHSIFT_RAISE_ERRORS" env-default:"false"`
}

// loadConfig reads configuration from the environment.
func loadConfig() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	return &cfg, nil
}

// newLogger builds the CLI logger at the configured level.
func newLogger(level string) *slog.Logger {
	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "info":
		l = slog.LevelInfo
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelWarn
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}
