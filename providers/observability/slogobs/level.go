package slogobs

import (
	"fmt"
	"log/slog"
	"strings"
)

// LevelTrace sits below slog.LevelDebug for very chatty output.
const LevelTrace = slog.LevelDebug - 4

// ParseLevel parses TRACE, DEBUG, INFO, WARN/WARNING or ERROR, ignoring case
// and surrounding whitespace. The boolean is false for anything else, in which
// case slog.LevelInfo is returned.
func ParseLevel(s string) (slog.Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return LevelTrace, true
	case "DEBUG":
		return slog.LevelDebug, true
	case "INFO":
		return slog.LevelInfo, true
	case "WARN", "WARNING":
		return slog.LevelWarn, true
	case "ERROR":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// LevelString names level using the same bands as ParseLevel.
func LevelString(level slog.Level) string {
	switch {
	case level < slog.LevelDebug:
		return "TRACE"
	case level < slog.LevelInfo:
		return "DEBUG"
	case level < slog.LevelWarn:
		return "INFO"
	case level < slog.LevelError:
		return "WARN"
	case level == slog.LevelError:
		return "ERROR"
	default:
		return fmt.Sprintf("ERROR+%d", level-slog.LevelError)
	}
}
