package observability

// Attribute keys.
const (
	AttrOperation = "arith.operation"
	AttrOperandA  = "arith.operand.a"
	AttrOperandB  = "arith.operand.b"
	AttrResult    = "arith.result"

	AttrToolName     = "tool.name"
	AttrToolInput    = "tool.input"
	AttrToolOutput   = "tool.output"
	AttrToolDuration = "tool.duration"

	AttrError             = "error"
	AttrStatus            = "status"
	AttrStatusDescription = "status.description"
)

// Span names.
const (
	SpanCommand       = "arith.command"
	SpanToolExecution = "tool.execution"
)

// Event names.
const (
	EventToolExecutionStart = "tool.execution.start"
	EventToolExecutionEnd   = "tool.execution.end"
)

// Metric names.
const (
	// MetricCalculations counts successful calculations, labelled by operation.
	MetricCalculations = "arith.calculations"
	// MetricErrors counts failed calculations, labelled by operation when known.
	MetricErrors = "arith.errors"
	// MetricToolDuration records tool call latency in milliseconds.
	MetricToolDuration = "arith.tool.duration_ms"
)
