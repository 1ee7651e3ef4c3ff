package operations

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownOperation is returned when an operator name or [Operation] value
// does not match one of the four supported operations.
var ErrUnknownOperation = errors.New("unknown operation")

// Operation identifies one of the four arithmetic operations.
type Operation int

const (
	OpAdd Operation = iota + 1
	OpSubtract
	OpMultiply
	OpDivide
)

// String returns the short name of the operation ("add", "sub", "mul", "div").
func (o Operation) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpSubtract:
		return "sub"
	case OpMultiply:
		return "mul"
	case OpDivide:
		return "div"
	default:
		return fmt.Sprintf("Operation(%d)", int(o))
	}
}

// Symbol returns the infix symbol of the operation, or "?" when o is invalid.
func (o Operation) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	default:
		return "?"
	}
}

// Valid reports whether o is one of the four defined operations.
func (o Operation) Valid() bool {
	return o >= OpAdd && o <= OpDivide
}

var operationNames = map[string]Operation{
	"add":            OpAdd,
	"+":              OpAdd,
	"addition":       OpAdd,
	"sub":            OpSubtract,
	"-":              OpSubtract,
	"subtract":       OpSubtract,
	"subtraction":    OpSubtract,
	"mul":            OpMultiply,
	"*":              OpMultiply,
	"x":              OpMultiply,
	"multiply":       OpMultiply,
	"multiplication": OpMultiply,
	"div":            OpDivide,
	"/":              OpDivide,
	"divide":         OpDivide,
	"division":       OpDivide,
}

// ParseOperation maps an operator name or symbol to an [Operation].
// Matching ignores case and surrounding whitespace. Short names ("add"),
// symbols ("+"), verbs ("subtract") and nouns ("multiplication") are all
// accepted.
//
// Example:
//
//	op, err := operations.ParseOperation("Division")
//	// op == operations.OpDivide
func ParseOperation(s string) (Operation, error) {
	op, ok := operationNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownOperation, s)
	}
	return op, nil
}

// Apply evaluates op over the float64 operands a and b.
// It returns [ErrInvalidOperation] for division by zero and
// [ErrUnknownOperation] when op is not a valid [Operation].
func Apply(op Operation, a, b float64) (float64, error) {
	switch op {
	case OpAdd:
		return Add(a, b), nil
	case OpSubtract:
		return Subtract(a, b), nil
	case OpMultiply:
		return Multiply(a, b), nil
	case OpDivide:
		return Divide(a, b)
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownOperation, op)
	}
}
