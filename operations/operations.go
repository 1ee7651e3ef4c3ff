package operations

import "errors"

// ErrInvalidOperation is returned by [Divide] when the divisor is zero.
var ErrInvalidOperation = errors.New("Division by zero is not allowed.") //nolint:staticcheck // message is part of the public contract

// Number is the set of operand types accepted by the arithmetic functions.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Add returns a + b.
func Add[T Number](a, b T) T {
	return a + b
}

// Subtract returns a - b.
func Subtract[T Number](a, b T) T {
	return a - b
}

// Multiply returns a * b.
func Multiply[T Number](a, b T) T {
	return a * b
}

// Divide returns a / b as a float64, promoting integer operands first so that
// Divide(1, 2) is 0.5 rather than 0.
// A zero divisor yields [ErrInvalidOperation], including for 0/0.
func Divide[T Number](a, b T) (float64, error) {
	if b == 0 {
		return 0, ErrInvalidOperation
	}
	return float64(a) / float64(b), nil
}
