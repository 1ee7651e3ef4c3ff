package observability

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"
)

// Provider bundles tracing, metrics and structured logging behind one
// injectable dependency.
type Provider interface {
	Tracer
	Metrics
	Logger
}

// --- TRACING ---

// Tracer starts spans.
type Tracer interface {
	// StartSpan starts a span and returns ctx with the span attached
	StartSpan(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span)
}

// Span is a single timed unit of work, such as one tool call.
type Span interface {
	// End completes the span
	End()
	// SetAttributes adds attributes to the span
	SetAttributes(attrs ...Attribute)
	// SetStatus sets the span outcome
	SetStatus(code StatusCode, description string)
	// RecordError attaches an error to the span
	RecordError(err error)
	// AddEvent records a named point in time within the span
	AddEvent(name string, attrs ...Attribute)
}

// StatusCode is the outcome recorded on a span.
type StatusCode int

const (
	StatusUnset StatusCode = iota
	StatusOK
	StatusError
)

// --- METRICS ---

// Metrics hands out named instruments. Asking twice for the same name returns
// the same instrument.
type Metrics interface {
	// Counter creates or retrieves a counter
	Counter(name string) Counter
	// Histogram creates or retrieves a histogram
	Histogram(name string) Histogram
}

// Counter is a monotonically increasing metric.
type Counter interface {
	Add(ctx context.Context, value int64, attrs ...Attribute)
}

// Histogram records a distribution of observed values.
type Histogram interface {
	Record(ctx context.Context, value float64, attrs ...Attribute)
}

// --- LOGGING ---

// Logger writes leveled, structured log lines.
type Logger interface {
	// Trace logs below DEBUG, for per-step detail
	Trace(ctx context.Context, msg string, attrs ...Attribute)
	// Debug logs diagnostic detail
	Debug(ctx context.Context, msg string, attrs ...Attribute)
	// Info logs normal operation
	Info(ctx context.Context, msg string, attrs ...Attribute)
	// Warn logs recoverable problems
	Warn(ctx context.Context, msg string, attrs ...Attribute)
	// Error logs failures
	Error(ctx context.Context, msg string, attrs ...Attribute)
}

// --- ATTRIBUTES ---

// Attribute is a key/value pair attached to spans, metrics and log lines.
type Attribute struct {
	Key   string
	Value any
}

func String(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

func Int64(key string, value int64) Attribute {
	return Attribute{Key: key, Value: value}
}

func Float64(key string, value float64) Attribute {
	return Attribute{Key: key, Value: value}
}

func Bool(key string, value bool) Attribute {
	return Attribute{Key: key, Value: value}
}

func Duration(key string, value time.Duration) Attribute {
	return Attribute{Key: key, Value: value}
}

// Error returns an attribute under AttrError holding err's message, or an
// empty string for a nil error.
func Error(err error) Attribute {
	if err == nil {
		return Attribute{Key: AttrError, Value: ""}
	}
	return Attribute{Key: AttrError, Value: err.Error()}
}

// --- UTILITIES ---

// DefaultMaxStringLength caps raw payloads copied into attributes.
const DefaultMaxStringLength = 500

// Truncate shortens s to at most maxLen bytes and notes the original length.
// The cut never splits a UTF-8 sequence. A non-positive maxLen means
// DefaultMaxStringLength.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = DefaultMaxStringLength
	}
	if len(s) <= maxLen {
		return s
	}
	for maxLen > 0 && !utf8.RuneStart(s[maxLen]) {
		maxLen--
	}
	return fmt.Sprintf("%s... (truncated, total: %d chars)", s[:maxLen], len(s))
}
