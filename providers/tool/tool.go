package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/leofalp/arith/core/parse"
	"github.com/leofalp/arith/providers/observability"
)

// Info describes a tool to whoever lists or dispatches it.
type Info struct {
	Name        string
	Description string
}

// GenericTool hides the type parameters of [Tool] so tools with different
// input and output types can share a [Catalog].
type GenericTool interface {
	ToolInfo() Info
	// Call runs the tool on a JSON-encoded input and returns its JSON-encoded output.
	Call(ctx context.Context, inputJSON string) (string, error)
}

// Tool binds a name and description to a typed handler.
type Tool[I, O any] struct {
	Name        string
	Description string
	Function    func(ctx context.Context, input I) (O, error)
}

var _ GenericTool = (*Tool[struct{}, struct{}])(nil)

type toolOptions struct {
	description string
}

// Option configures a Tool created by [NewTool].
type Option func(*toolOptions)

// WithDescription sets the human-readable description reported by ToolInfo.
func WithDescription(description string) Option {
	return func(o *toolOptions) {
		o.description = description
	}
}

// NewTool creates a Tool named name that runs function.
//
//	calc := tool.NewTool("Calculator", calculator.Calc,
//	    tool.WithDescription("Adds, subtracts, multiplies or divides two numbers."),
//	)
func NewTool[I, O any](name string, function func(ctx context.Context, input I) (O, error), options ...Option) *Tool[I, O] {
	opts := &toolOptions{}
	for _, option := range options {
		option(opts)
	}

	return &Tool[I, O]{
		Name:        name,
		Description: opts.description,
		Function:    function,
	}
}

func (t *Tool[I, O]) ToolInfo() Info {
	return Info{Name: t.Name, Description: t.Description}
}

// Call decodes inputJSON into I with parse.ParseStringAs, so slightly
// malformed JSON is repaired first, runs the handler and encodes its output.
// Handler errors are returned unchanged so callers can match them with
// errors.Is. When ctx carries a span, start and end events plus input, output
// and duration attributes are recorded on it; when it carries an observer,
// the call duration is recorded in MetricToolDuration.
func (t *Tool[I, O]) Call(ctx context.Context, inputJSON string) (string, error) {
	span := observability.SpanFromContext(ctx)
	observer := observability.ObserverFromContext(ctx)
	if span != nil {
		span.AddEvent(observability.EventToolExecutionStart,
			observability.String(observability.AttrToolName, t.Name),
			observability.String(observability.AttrToolInput, observability.Truncate(inputJSON, 0)),
		)
		defer span.AddEvent(observability.EventToolExecutionEnd)
	}

	start := time.Now()

	input, err := parse.ParseStringAs[I](inputJSON)
	if err != nil {
		err = fmt.Errorf("tool %s: decode input: %w", t.Name, err)
		if span != nil {
			span.RecordError(err)
		}
		return "", err
	}
	if observer != nil {
		observer.Trace(ctx, "tool input decoded",
			observability.String(observability.AttrToolName, t.Name),
			observability.String(observability.AttrToolInput, observability.Truncate(inputJSON, 0)),
		)
	}

	output, err := t.Function(ctx, input)
	duration := time.Since(start)

	if observer != nil {
		observer.Histogram(observability.MetricToolDuration).Record(ctx,
			float64(duration.Microseconds())/1000,
			observability.String(observability.AttrToolName, t.Name),
		)
	}

	if err != nil {
		if span != nil {
			span.RecordError(err)
			span.SetAttributes(observability.Duration(observability.AttrToolDuration, duration))
		}
		return "", err
	}

	encoded, err := json.Marshal(output)
	if err != nil {
		err = fmt.Errorf("tool %s: encode output: %w", t.Name, err)
		if span != nil {
			span.RecordError(err)
		}
		return "", err
	}

	if span != nil {
		span.SetAttributes(
			observability.String(observability.AttrToolOutput, string(encoded)),
			observability.Duration(observability.AttrToolDuration, duration),
		)
	}

	return string(encoded), nil
}
