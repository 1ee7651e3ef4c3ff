// Command arith evaluates one arithmetic operation.
//
//	arith add 2 3                          # 5
//	arith div -6 3                         # -2
//	arith call '{"A": 6, "B": 3, "Op": "/"}' # {"result":2}
//
// Logging is configured through ARITH_LOG_LEVEL and ARITH_LOG_FORMAT, read
// from the environment or from a .env file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/leofalp/arith/core/parse"
	"github.com/leofalp/arith/internal/config"
	"github.com/leofalp/arith/operations"
	"github.com/leofalp/arith/providers/observability"
	"github.com/leofalp/arith/providers/observability/slogobs"
	"github.com/leofalp/arith/providers/tool"
	"github.com/leofalp/arith/providers/tool/calculator"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("arith", flag.ContinueOnError)
	flags.SetOutput(stderr)
	envFile := flags.String("env", config.DefaultEnvFile, "path of the .env file to load")
	logLevel := flags.String("log-level", "", "override the log level (trace, debug, info, warn, error)")
	flags.Usage = func() { usage(stderr) }

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	cfg, err := config.Load(*envFile)
	if err != nil {
		fmt.Fprintf(stderr, "arith: %v\n", err)
		return exitUsage
	}
	if *logLevel != "" {
		level, ok := slogobs.ParseLevel(*logLevel)
		if !ok {
			fmt.Fprintf(stderr, "arith: unknown log level %q\n", *logLevel)
			return exitUsage
		}
		cfg.LogLevel = level
	}

	observer := slogobs.New(append(cfg.ObserverOptions(), slogobs.WithOutput(stderr))...)
	ctx = observability.ContextWithObserver(ctx, observer)
	for _, warning := range cfg.Warnings {
		observer.Warn(ctx, warning)
	}

	ctx, span := observer.StartSpan(ctx, observability.SpanCommand,
		observability.String("args", strings.Join(flags.Args(), " ")))
	defer span.End()

	catalog := tool.NewCatalogWithTools(calculator.NewCalculatorTool())

	rest := flags.Args()
	switch {
	case len(rest) == 2 && rest[0] == "call":
		return runCall(ctx, catalog, rest[1], stdout, stderr)
	case len(rest) == 3:
		return runOperation(ctx, rest[0], rest[1], rest[2], stdout, stderr)
	default:
		usage(stderr)
		return exitUsage
	}
}

// runOperation handles "arith <op> <a> <b>".
func runOperation(ctx context.Context, opName, rawA, rawB string, stdout, stderr io.Writer) int {
	span := observability.SpanFromContext(ctx)

	op, err := operations.ParseOperation(opName)
	if err != nil {
		fmt.Fprintf(stderr, "arith: %v\n", err)
		return exitUsage
	}
	a, err := parse.ParseOperand(rawA)
	if err != nil {
		fmt.Fprintf(stderr, "arith: %v\n", err)
		return exitUsage
	}
	b, err := parse.ParseOperand(rawB)
	if err != nil {
		fmt.Fprintf(stderr, "arith: %v\n", err)
		return exitUsage
	}

	out, err := calculator.Calc(ctx, calculator.Input{A: a, B: b, Op: op.String()})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(observability.StatusError, err.Error())
		fmt.Fprintf(stderr, "arith: %v\n", err)
		return exitError
	}

	span.SetStatus(observability.StatusOK, "")
	fmt.Fprintln(stdout, strconv.FormatFloat(out.Result, 'g', -1, 64))
	return exitOK
}

// runCall handles "arith call <json>" by dispatching through the tool catalog.
func runCall(ctx context.Context, catalog *tool.Catalog, input string, stdout, stderr io.Writer) int {
	span := observability.SpanFromContext(ctx)

	output, err := catalog.Call(ctx, calculator.Name, input)
	if err != nil {
		span.SetStatus(observability.StatusError, err.Error())
		fmt.Fprintf(stderr, "arith: %v\n", err)
		return exitError
	}

	span.SetStatus(observability.StatusOK, "")
	fmt.Fprintln(stdout, output)
	return exitOK
}

func usage(w io.Writer) {
	fmt.Fprint(w, `usage:
  arith [flags] <op> <a> <b>    op: add|+ sub|- mul|*|x div|/
  arith [flags] call <json>     e.g. '{"A": 6, "B": 3, "Op": "div"}'

flags:
  -env string        path of the .env file to load (default ".env")
  -log-level string  override the log level (trace, debug, info, warn, error)
`)
}
