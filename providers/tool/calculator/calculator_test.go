package calculator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/leofalp/arith/operations"
	"github.com/leofalp/arith/providers/observability"
	"github.com/leofalp/arith/providers/observability/slogobs"
)

func TestCalc(t *testing.T) {
	tests := []struct {
		name     string
		op       string
		a, b     float64
		expected float64
	}{
		{"add keyword", "add", 2, 3, 5},
		{"plus symbol", "+", -2.5, 3.5, 1.0},
		{"sub keyword", "sub", 5, 3, 2},
		{"minus symbol", "-", -10.5, -5.5, -5.0},
		{"mul keyword", "mul", -2, -3, 6},
		{"star symbol", "*", 2.5, 4.0, 10.0},
		{"div keyword", "div", 6, 3, 2.0},
		{"slash symbol", "/", -6.0, 3.0, -2.0},
		{"noun form", "Division", 10, 4, 2.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			output, err := Calc(context.Background(), Input{A: tc.a, B: tc.b, Op: tc.op})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if output.Result != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, output.Result)
			}
		})
	}
}

// TestCalc_DivByZero verifies the tool reports division by zero as an error
// rather than returning an infinity.
func TestCalc_DivByZero(t *testing.T) {
	for _, a := range []float64{1, -1, 0} {
		_, err := Calc(context.Background(), Input{A: a, B: 0, Op: "div"})
		if !errors.Is(err, operations.ErrInvalidOperation) {
			t.Errorf("Calc(%v / 0): expected ErrInvalidOperation, got %v", a, err)
		}
	}
}

func TestCalc_UnknownOp(t *testing.T) {
	_, err := Calc(context.Background(), Input{A: 5, B: 3, Op: "pow"})
	if !errors.Is(err, operations.ErrUnknownOperation) {
		t.Errorf("expected ErrUnknownOperation, got %v", err)
	}
}

func TestCalc_Overflow(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"positive overflow", `{"A": 1e308, "B": 10, "Op": "mul"}`, `{"result":"+Inf"}`},
		{"negative overflow", `{"A": -1e308, "B": 10, "Op": "*"}`, `{"result":"-Inf"}`},
		{"tiny divisor", `{"A": 1e308, "B": 1e-10, "Op": "div"}`, `{"result":"+Inf"}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			observer := slogobs.New(slogobs.WithLevel(slog.LevelDebug), slogobs.WithOutput(&buf))
			ctx := observability.ContextWithObserver(context.Background(), observer)

			got, err := NewCalculatorTool().Call(ctx, tc.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.expected {
				t.Errorf("expected %s, got %s", tc.expected, got)
			}
			if !strings.Contains(buf.String(), "calculation") || !strings.Contains(buf.String(), `"arith.result":"`) {
				t.Errorf("expected the calculation debug line, got %s", buf.String())
			}
		})
	}
}

func TestOutput_JSON(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
		check   func(float64) bool
	}{
		{"finite", `{"result":2.5}`, func(f float64) bool { return f == 2.5 }},
		{"positive infinity", `{"result":"+Inf"}`, func(f float64) bool { return math.IsInf(f, 1) }},
		{"negative infinity", `{"result":"-Inf"}`, func(f float64) bool { return math.IsInf(f, -1) }},
		{"not a number", `{"result":"NaN"}`, math.IsNaN},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out Output
			if err := json.Unmarshal([]byte(tc.encoded), &out); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if !tc.check(out.Result) {
				t.Fatalf("unexpected result %v", out.Result)
			}
			encoded, err := json.Marshal(out)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(encoded) != tc.encoded {
				t.Errorf("expected %s, got %s", tc.encoded, encoded)
			}
		})
	}

	var out Output
	if err := json.Unmarshal([]byte(`{"result":"lots"}`), &out); err == nil {
		t.Error("expected an error for a non-numeric result string")
	}
}

func TestCalc_Counters(t *testing.T) {
	observer := slogobs.New(slogobs.WithOutput(&bytes.Buffer{}))
	ctx := observability.ContextWithObserver(context.Background(), observer)

	_, _ = Calc(ctx, Input{A: 1, B: 2, Op: "add"})
	_, _ = Calc(ctx, Input{A: 1, B: 2, Op: "mul"})
	_, _ = Calc(ctx, Input{A: 1, B: 0, Op: "div"})
	_, _ = Calc(ctx, Input{A: 1, B: 0, Op: "mod"})

	if got := observer.CounterValue(observability.MetricCalculations); got != 2 {
		t.Errorf("expected 2 calculations, got %d", got)
	}
	if got := observer.CounterValue(observability.MetricErrors); got != 2 {
		t.Errorf("expected 2 errors, got %d", got)
	}
}

func TestNewCalculatorTool(t *testing.T) {
	calculatorTool := NewCalculatorTool()

	if info := calculatorTool.ToolInfo(); info.Name != Name || info.Description == "" {
		t.Errorf("unexpected tool info %+v", info)
	}

	got, err := calculatorTool.Call(context.Background(), `{"A": 6, "B": 3, "Op": "div"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != `{"result":2}` {
		t.Errorf("unexpected output %s", got)
	}

	_, err = calculatorTool.Call(context.Background(), `{A: 1, B: 0, Op: '/'}`)
	if !errors.Is(err, operations.ErrInvalidOperation) {
		t.Errorf("expected ErrInvalidOperation through the tool, got %v", err)
	}
	if err != nil && err.Error() != "Division by zero is not allowed." {
		t.Errorf("unexpected message %q", err.Error())
	}
}
