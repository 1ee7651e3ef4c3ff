// Package calculator exposes the arithmetic operations as a [tool.Tool], so a
// JSON request such as {"A": 6, "B": 3, "Op": "div"} can be dispatched through
// a [tool.Catalog].
//
// [NewCalculatorTool] returns the ready-to-register tool; [Calc] is the
// underlying handler for direct use.
package calculator
