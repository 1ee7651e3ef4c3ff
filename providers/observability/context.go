package observability

import "context"

type contextKey int

const (
	spanKey contextKey = iota
	observerKey
)

// SpanFromContext returns the span stored in ctx, or nil.
func SpanFromContext(ctx context.Context) Span {
	if ctx == nil {
		return nil
	}
	span, _ := ctx.Value(spanKey).(Span)
	return span
}

// ContextWithSpan returns a copy of ctx carrying span. A nil ctx is treated as
// context.Background().
func ContextWithSpan(ctx context.Context, span Span) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, spanKey, span)
}

// ObserverFromContext returns the Provider stored in ctx, or nil.
func ObserverFromContext(ctx context.Context) Provider {
	if ctx == nil {
		return nil
	}
	provider, _ := ctx.Value(observerKey).(Provider)
	return provider
}

// ContextWithObserver returns a copy of ctx carrying provider. A nil ctx is
// treated as context.Background().
func ContextWithObserver(ctx context.Context, provider Provider) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, observerKey, provider)
}
