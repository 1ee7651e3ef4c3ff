package slogobs

import "strings"

// Format selects how Handler renders a record.
type Format string

const (
	// FormatCompact renders one line per record:
	//	2026-10-19 10:40:35  INFO calculation → {"arith.operation":"add"}
	FormatCompact Format = "compact"

	// FormatJSON renders one JSON object per record:
	//	{"time":"2026-10-19T10:40:35","level":"INFO","msg":"calculation","arith.operation":"add"}
	FormatJSON Format = "json"
)

// ParseFormat maps a case-insensitive name to a Format. Unknown names, and
// the empty string, yield FormatCompact.
func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON
	default:
		return FormatCompact
	}
}

func (f Format) String() string {
	return string(f)
}
