package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/leofalp/arith/providers/observability/slogobs"
)

var allKeys = []string{EnvLogLevel, EnvLogLevelFallback, EnvLogFormat, EnvLogFormatFallback}

// clearEnv unsets keys for the duration of the test. godotenv treats a
// variable set to "" as present, so t.Setenv(key, "") is not enough here.
func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		old, had := os.LookupEnv(key)
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("unset %s: %v", key, err)
		}
		t.Cleanup(func() {
			if had {
				_ = os.Setenv(key, old)
			} else {
				_ = os.Unsetenv(key)
			}
		})
	}
}

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	return path
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t, allKeys...)

	cfg := FromEnv()
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("expected INFO, got %v", cfg.LogLevel)
	}
	if cfg.LogFormat != slogobs.FormatCompact {
		t.Errorf("expected compact, got %v", cfg.LogFormat)
	}
	if len(cfg.Warnings) != 0 {
		t.Errorf("expected no warnings, got %v", cfg.Warnings)
	}
}

func TestFromEnv_Precedence(t *testing.T) {
	tests := []struct {
		name           string
		env            map[string]string
		expectedLevel  slog.Level
		expectedFormat slogobs.Format
	}{
		{
			name:           "ARITH_ variables take precedence",
			env:            map[string]string{EnvLogLevel: "debug", EnvLogLevelFallback: "error", EnvLogFormat: "json", EnvLogFormatFallback: "compact"},
			expectedLevel:  slog.LevelDebug,
			expectedFormat: slogobs.FormatJSON,
		},
		{
			name:           "generic fallbacks",
			env:            map[string]string{EnvLogLevelFallback: "WARN", EnvLogFormatFallback: "json"},
			expectedLevel:  slog.LevelWarn,
			expectedFormat: slogobs.FormatJSON,
		},
		{
			name:           "trace level",
			env:            map[string]string{EnvLogLevel: "trace"},
			expectedLevel:  slogobs.LevelTrace,
			expectedFormat: slogobs.FormatCompact,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t, allKeys...)
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			cfg := FromEnv()
			if cfg.LogLevel != tt.expectedLevel {
				t.Errorf("expected level %v, got %v", tt.expectedLevel, cfg.LogLevel)
			}
			if cfg.LogFormat != tt.expectedFormat {
				t.Errorf("expected format %v, got %v", tt.expectedFormat, cfg.LogFormat)
			}
		})
	}
}

func TestFromEnv_UnknownValuesWarn(t *testing.T) {
	clearEnv(t, allKeys...)
	t.Setenv(EnvLogLevel, "loud")
	t.Setenv(EnvLogFormat, "pretty")

	cfg := FromEnv()
	if cfg.LogLevel != slog.LevelInfo || cfg.LogFormat != slogobs.FormatCompact {
		t.Errorf("expected defaults, got %v / %v", cfg.LogLevel, cfg.LogFormat)
	}
	if len(cfg.Warnings) != 2 {
		t.Errorf("expected two warnings, got %v", cfg.Warnings)
	}
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t, allKeys...)
	path := writeEnvFile(t, "ARITH_LOG_LEVEL=error\nARITH_LOG_FORMAT=json\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LogLevel != slog.LevelError {
		t.Errorf("expected ERROR from file, got %v", cfg.LogLevel)
	}
	if cfg.LogFormat != slogobs.FormatJSON {
		t.Errorf("expected json from file, got %v", cfg.LogFormat)
	}
}

func TestLoad_EnvironmentWinsOverFile(t *testing.T) {
	clearEnv(t, allKeys...)
	t.Setenv(EnvLogLevel, "debug")
	path := writeEnvFile(t, "ARITH_LOG_LEVEL=error\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("expected environment value DEBUG, got %v", cfg.LogLevel)
	}
}

func TestLoad_MissingFileIsSkipped(t *testing.T) {
	clearEnv(t, allKeys...)

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	if err != nil {
		t.Fatalf("expected missing file to be skipped, got %v", err)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("expected default level, got %v", cfg.LogLevel)
	}
}

func TestLoad_DirectoryIsAnError(t *testing.T) {
	clearEnv(t, allKeys...)

	if _, err := Load(t.TempDir()); err == nil {
		t.Error("expected an error when the env path is a directory")
	}
}

func TestConfig_ObserverOptions(t *testing.T) {
	cfg := Config{LogLevel: slog.LevelDebug, LogFormat: slogobs.FormatJSON}
	if got := len(cfg.ObserverOptions()); got != 2 {
		t.Errorf("expected two options, got %d", got)
	}
}
