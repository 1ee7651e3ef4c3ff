// Package slogobs implements observability.Provider on top of log/slog.
//
// Spans and metric updates are written as DEBUG log lines, so a plain
// invocation at INFO stays quiet while ARITH_LOG_LEVEL=debug shows every tool
// call. Counter totals are also kept in memory and can be read back with
// [Observer.CounterValue].
//
// Output goes through [Handler], which renders either a compact single-line
// format or one JSON object per line.
package slogobs
