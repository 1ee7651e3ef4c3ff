// Package observability defines the tracing, metrics and logging interfaces
// shared by the arith packages, plus the attribute and span names they emit.
//
// [Provider] composes [Tracer], [Metrics] and [Logger]. A Provider and the
// current [Span] travel through a [context.Context]; store them with
// [ContextWithObserver] and [ContextWithSpan] and read them back with
// [ObserverFromContext] and [SpanFromContext]. Both lookups return nil when
// nothing is stored, and instrumented code must tolerate that.
//
// The slogobs subpackage provides a log/slog backed implementation.
package observability
