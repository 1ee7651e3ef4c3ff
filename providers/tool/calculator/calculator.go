package calculator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/leofalp/arith/operations"
	"github.com/leofalp/arith/providers/observability"
	"github.com/leofalp/arith/providers/tool"
)

// Name is the catalog name of the calculator tool.
const Name = "Calculator"

// NewCalculatorTool returns a [tool.Tool] that runs [Calc].
func NewCalculatorTool() *tool.Tool[Input, Output] {
	return tool.NewTool(
		Name,
		Calc,
		tool.WithDescription("Adds, subtracts, multiplies or divides two numbers. Division by zero is rejected."),
	)
}

// Calc applies req.Op to req.A and req.B. Op accepts anything
// [operations.ParseOperation] does ("add", "+", "division", ...).
//
// Division by zero fails with [operations.ErrInvalidOperation] and an
// unrecognised Op with [operations.ErrUnknownOperation]. When ctx carries an
// observer, MetricCalculations or MetricErrors is incremented.
//
//	out, err := calculator.Calc(ctx, calculator.Input{A: 10, B: 4, Op: "div"})
//	// out.Result == 2.5
func Calc(ctx context.Context, req Input) (Output, error) {
	observer := observability.ObserverFromContext(ctx)

	op, err := operations.ParseOperation(req.Op)
	if err != nil {
		countError(ctx, observer, req.Op, err)
		return Output{}, err
	}

	result, err := operations.Apply(op, req.A, req.B)
	if err != nil {
		countError(ctx, observer, op.String(), err)
		return Output{}, err
	}

	if observer != nil {
		observer.Counter(observability.MetricCalculations).Add(ctx, 1,
			observability.String(observability.AttrOperation, op.String()))
		observer.Debug(ctx, "calculation",
			observability.String(observability.AttrOperation, op.String()),
			observability.Float64(observability.AttrOperandA, req.A),
			observability.Float64(observability.AttrOperandB, req.B),
			observability.Float64(observability.AttrResult, result),
		)
	}

	return Output{Result: result}, nil
}

func countError(ctx context.Context, observer observability.Provider, op string, err error) {
	if observer == nil {
		return
	}
	observer.Counter(observability.MetricErrors).Add(ctx, 1,
		observability.String(observability.AttrOperation, op),
		observability.Bool("arith.division_by_zero", errors.Is(err, operations.ErrInvalidOperation)),
	)
}

// Input is the JSON request accepted by the calculator tool.
type Input struct {
	A  float64 `json:"A"`
	B  float64 `json:"B"`
	Op string  `json:"Op"`
}

// Output carries the result of [Calc]. Overflowing operands give an
// infinite Result, which JSON encodes as the string "+Inf", "-Inf" or "NaN".
type Output struct {
	Result float64 `json:"result"`
}

type plainOutput Output

func (o Output) MarshalJSON() ([]byte, error) {
	if math.IsInf(o.Result, 0) || math.IsNaN(o.Result) {
		return json.Marshal(struct {
			Result string `json:"result"`
		}{strconv.FormatFloat(o.Result, 'g', -1, 64)})
	}
	return json.Marshal(plainOutput(o))
}

// UnmarshalJSON accepts the result as a number or as the strings written by
// MarshalJSON.
func (o *Output) UnmarshalJSON(data []byte) error {
	var raw struct {
		Result json.RawMessage `json:"result"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw.Result) == 0 {
		return nil
	}

	var text string
	if err := json.Unmarshal(raw.Result, &text); err == nil {
		result, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return fmt.Errorf("calculator output: result %q: %w", text, err)
		}
		o.Result = result
		return nil
	}
	return json.Unmarshal(raw.Result, &o.Result)
}
