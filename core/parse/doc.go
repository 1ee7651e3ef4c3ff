// Package parse turns loosely formatted text into typed values.
//
// Calculation requests arrive as hand-typed command-line arguments or as JSON
// produced by other programs, and neither source is reliably well formed.
// [ParseStringAs] decodes scalars with strconv and composite types with
// encoding/json, retrying after automatic JSON repair and after unwrapping
// {"type": ..., "value": ...} envelopes. [ParseOperand] is the strict
// counterpart used for numeric operands.
package parse
