// Package operations implements the four basic arithmetic operations over two
// numeric operands: [Add], [Subtract], [Multiply] and [Divide].
//
// The functions are generic over [Number], so integer operands keep their type
// for addition, subtraction and multiplication while [Divide] always returns a
// float64. Division by zero is the only failure and is reported as
// [ErrInvalidOperation].
//
// For callers that receive the operator as text (CLI arguments, JSON tool
// calls), [ParseOperation] maps names and symbols to an [Operation] and
// [Apply] dispatches it over float64 operands.
//
// All functions are pure and safe for concurrent use.
package operations
