package slogobs

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"
	"sync"
)

// Handler is a slog.Handler that writes compact or JSON lines.
type Handler struct {
	format Format
	level  slog.Leveler
	output io.Writer
	mu     *sync.Mutex // shared with handlers derived through WithAttrs/WithGroup
	attrs  []slog.Attr
	groups []string
}

// HandlerOptions configures a Handler. Zero values mean compact format,
// INFO level and os.Stderr.
type HandlerOptions struct {
	Format Format
	Level  slog.Leveler
	Output io.Writer
}

func NewHandler(opts *HandlerOptions) *Handler {
	if opts == nil {
		opts = &HandlerOptions{}
	}
	h := &Handler{
		format: opts.Format,
		level:  opts.Level,
		output: opts.Output,
		mu:     &sync.Mutex{},
	}
	if h.format == "" {
		h.format = FormatCompact
	}
	if h.level == nil {
		h.level = slog.LevelInfo
	}
	if h.output == nil {
		h.output = os.Stderr
	}
	return h
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var (
		line []byte
		err  error
	)
	if h.format == FormatJSON {
		line, err = h.formatJSON(r)
	} else {
		line, err = h.formatCompact(r)
	}
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err = h.output.Write(line)
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	clone.attrs = append(clone.attrs, h.attrs...)
	for _, attr := range attrs {
		attr.Key = h.qualify(attr.Key)
		clone.attrs = append(clone.attrs, attr)
	}
	return &clone
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.groups = append(append([]string{}, h.groups...), name)
	return &clone
}

// formatCompact renders "2006-01-02 15:04:05 LEVEL message → {attrs}".
func (h *Handler) formatCompact(r slog.Record) ([]byte, error) {
	var b strings.Builder
	b.WriteString(r.Time.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, " %5s ", LevelString(r.Level))
	b.WriteString(r.Message)

	if attrs := h.collect(r); len(attrs) > 0 {
		encoded, err := json.Marshal(attrs)
		if err != nil {
			return nil, fmt.Errorf("encode log attributes: %w", err)
		}
		b.WriteString(" → ")
		b.Write(encoded)
	}
	b.WriteByte('\n')
	return []byte(b.String()), nil
}

func (h *Handler) formatJSON(r slog.Record) ([]byte, error) {
	data := h.collect(r)
	data["time"] = r.Time.Format("2006-01-02T15:04:05")
	data["level"] = LevelString(r.Level)
	data["msg"] = r.Message

	encoded, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("encode log record: %w", err)
	}
	return append(encoded, '\n'), nil
}

// collect merges handler and record attributes into one map keyed by their
// group-qualified names.
func (h *Handler) collect(r slog.Record) map[string]any {
	attrs := make(map[string]any, len(h.attrs)+r.NumAttrs())
	for _, attr := range h.attrs {
		attrs[attr.Key] = jsonValue(attr.Value)
	}
	r.Attrs(func(attr slog.Attr) bool {
		attrs[h.qualify(attr.Key)] = jsonValue(attr.Value)
		return true
	})
	return attrs
}

// jsonValue resolves v for encoding/json, which rejects ±Inf and NaN; those
// are written as "+Inf", "-Inf" and "NaN".
func jsonValue(v slog.Value) any {
	v = v.Resolve()
	if v.Kind() == slog.KindFloat64 {
		if f := v.Float64(); math.IsInf(f, 0) || math.IsNaN(f) {
			return strconv.FormatFloat(f, 'g', -1, 64)
		}
	}
	return v.Any()
}

func (h *Handler) qualify(key string) string {
	if len(h.groups) == 0 {
		return key
	}
	return strings.Join(h.groups, ".") + "." + key
}
