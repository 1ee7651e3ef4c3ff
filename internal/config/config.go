// Package config loads runtime settings for the arith command from the
// environment, optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/leofalp/arith/providers/observability/slogobs"
)

// Environment variables. The ARITH_ names win over the generic fallbacks.
const (
	EnvLogLevel         = "ARITH_LOG_LEVEL"
	EnvLogLevelFallback = "LOG_LEVEL"

	EnvLogFormat         = "ARITH_LOG_FORMAT"
	EnvLogFormatFallback = "LOG_FORMAT"
)

// DefaultEnvFile is read by Load when no paths are given.
const DefaultEnvFile = ".env"

// Config holds the settings read by Load.
type Config struct {
	LogLevel  slog.Level
	LogFormat slogobs.Format

	// Warnings lists values that were present but not understood and were
	// replaced by defaults.
	Warnings []string
}

// Load reads the given .env files (DefaultEnvFile when none are given) into
// the process environment and then builds a Config from it. Variables already
// set in the environment are never overwritten by file values. Missing files
// are skipped; unreadable or malformed files are an error.
func Load(paths ...string) (Config, error) {
	if len(paths) == 0 {
		paths = []string{DefaultEnvFile}
	}

	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Config{}, fmt.Errorf("load env file %s: %w", path, err)
		}
	}

	return FromEnv(), nil
}

// FromEnv builds a Config from the current environment only.
func FromEnv() Config {
	cfg := Config{
		LogLevel:  slog.LevelInfo,
		LogFormat: slogobs.FormatCompact,
	}

	if raw := lookup(EnvLogLevel, EnvLogLevelFallback); raw != "" {
		level, ok := slogobs.ParseLevel(raw)
		if !ok {
			cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("unknown log level %q, using INFO", raw))
		}
		cfg.LogLevel = level
	}

	if raw := lookup(EnvLogFormat, EnvLogFormatFallback); raw != "" {
		cfg.LogFormat = slogobs.ParseFormat(raw)
		switch strings.ToLower(strings.TrimSpace(raw)) {
		case string(slogobs.FormatCompact), string(slogobs.FormatJSON):
		default:
			cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("unknown log format %q, using compact", raw))
		}
	}

	return cfg
}

// ObserverOptions converts the Config into slogobs options.
func (c Config) ObserverOptions() []slogobs.Option {
	return []slogobs.Option{
		slogobs.WithLevel(c.LogLevel),
		slogobs.WithFormat(c.LogFormat),
	}
}

func lookup(primary, fallback string) string {
	if v := os.Getenv(primary); v != "" {
		return v
	}
	return os.Getenv(fallback)
}
