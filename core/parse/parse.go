package parse

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// ErrInvalidOperand is returned by [ParseOperand] for text that is not a
// finite number.
var ErrInvalidOperand = errors.New("invalid operand")

// ParseOperand parses s as a finite float64 operand. Surrounding whitespace is
// ignored. NaN and infinities are rejected even though strconv accepts them.
func ParseOperand(s string) (float64, error) {
	trimmed := strings.TrimSpace(s)
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidOperand, s)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%w: %q is not a finite number", ErrInvalidOperand, s)
	}
	return value, nil
}

// ParseStringAs parses content into a value of type T.
//
// Strings are returned as-is unless content is a {"type","value"} envelope.
// Bools, integers, unsigned integers and floats go through strconv, sized to
// the target type. Every other type (structs, maps, slices, interfaces) is
// JSON-decoded; on failure the JSON is repaired with jsonrepair and decoded
// again, and as a last resort schema-style envelopes are unwrapped.
//
// Example:
//
//	type request struct {
//	    A  float64 `json:"A"`
//	    B  float64 `json:"B"`
//	    Op string  `json:"Op"`
//	}
//
//	// Unquoted keys and single quotes are repaired before decoding.
//	req, err := ParseStringAs[request](`{A: 6, B: 3, Op: 'div'}`)
func ParseStringAs[T any](content string) (T, error) {
	var result T
	target := reflect.ValueOf(&result).Elem()

	switch target.Kind() {
	case reflect.String:
		if strings.HasPrefix(content, "{") {
			if inner, err := unwrapPrimitive(content); err == nil {
				content = inner
			}
		}
		target.SetString(content)
		return result, nil

	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		err := setScalar(target, strings.TrimSpace(content))
		if err == nil {
			return result, nil
		}
		// An LLM or script may have wrapped the scalar in an envelope.
		if inner, unwrapErr := unwrapPrimitive(content); unwrapErr == nil {
			if setScalar(target, inner) == nil {
				return result, nil
			}
		}
		return result, fmt.Errorf("failed to parse content as %s: %w", target.Kind(), err)

	default:
		if err := decodeJSON(content, &result); err != nil {
			return result, err
		}
		return result, nil
	}
}

// setScalar parses text into the scalar held by v, using the bit size of v's
// type so that out-of-range values are reported instead of truncated.
func setScalar(v reflect.Value, text string) error {
	switch v.Kind() {
	case reflect.Bool:
		b, err := strconv.ParseBool(text)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(text, 10, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(text, 10, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(text, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(f)
	default:
		return fmt.Errorf("unsupported scalar kind %s", v.Kind())
	}
	return nil
}

// decodeJSON decodes content into out, falling back to a repaired copy of the
// JSON and then to an envelope-free copy. out is reset before every attempt.
func decodeJSON[T any](content string, out *T) error {
	var zero T

	err := json.Unmarshal([]byte(content), out)
	if err == nil {
		return nil
	}

	repaired, repairErr := jsonrepair.JSONRepair(content)
	if repairErr != nil {
		*out = zero
		return fmt.Errorf("failed to unmarshal content as %T and failed to repair JSON: %w (repair error: %v)", zero, err, repairErr)
	}

	*out = zero
	err = json.Unmarshal([]byte(repaired), out)
	if err == nil {
		return nil
	}

	if unwrapped, unwrapErr := unwrapEnvelopes(repaired); unwrapErr == nil {
		*out = zero
		if json.Unmarshal([]byte(unwrapped), out) == nil {
			return nil
		}
	}

	*out = zero
	return fmt.Errorf("failed to unmarshal repaired JSON as %T: %w (repaired: %s)", zero, err, repaired)
}

// unwrapPrimitive returns the textual form of v when content is exactly
// {"type": ..., "value": v}.
func unwrapPrimitive(content string) (string, error) {
	var data map[string]any
	if err := json.Unmarshal([]byte(content), &data); err != nil {
		return "", err
	}

	value, ok := envelopeValue(data)
	if !ok {
		return "", errors.New("not a schema-wrapped value")
	}

	switch v := value.(type) {
	case string:
		return v, nil
	case float64, bool:
		return fmt.Sprintf("%v", v), nil
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(encoded), nil
	}
}

// unwrapEnvelopes rewrites every {"type": ..., "value": v} object in the JSON
// document to v.
//
//	{"A": {"type": "number", "value": 6}, "Op": "div"}  ->  {"A": 6, "Op": "div"}
func unwrapEnvelopes(document string) (string, error) {
	var data any
	if err := json.Unmarshal([]byte(document), &data); err != nil {
		return "", err
	}

	encoded, err := json.Marshal(unwrapValue(data))
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

func unwrapValue(data any) any {
	switch v := data.(type) {
	case map[string]any:
		if inner, ok := envelopeValue(v); ok {
			return unwrapValue(inner)
		}
		out := make(map[string]any, len(v))
		for key, val := range v {
			out[key] = unwrapValue(val)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, val := range v {
			out[i] = unwrapValue(val)
		}
		return out
	default:
		return data
	}
}

// envelopeValue reports whether m has exactly the keys "type" and "value".
func envelopeValue(m map[string]any) (any, bool) {
	if len(m) != 2 {
		return nil, false
	}
	if _, hasType := m["type"]; !hasType {
		return nil, false
	}
	value, hasValue := m["value"]
	return value, hasValue
}
