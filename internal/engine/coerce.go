package engine

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// This file pins down the coercion semantics the operators rely on, so that
// comparisons stay deterministic instead of depending on implicit conversion
// rules of any particular data source.

// toFloat reads v as a number: any Go numeric width, or a string holding a
// decimal number.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// numeric is toFloat plus the boolean-to-0/1 reading loose equality uses.
func numeric(v any) (float64, bool) {
	if b, ok := v.(bool); ok {
		if b {
			return 1, true
		}
		return 0, true
	}
	return toFloat(v)
}

// looseEqual compares across types: string pairs byte-wise, numeric pairs
// (including numeric strings and booleans as 0/1) as numbers, nil only equal
// to nil, everything else by deep equality.
func looseEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if as, ok := a.(string); ok {
		if bs, ok := b.(string); ok {
			return as == bs
		}
	}
	if af, ok := numeric(a); ok {
		if bf, ok := numeric(b); ok {
			return af == bf
		}
	}
	return reflect.DeepEqual(a, b)
}

// strictEqual compares sequence elements: no cross-type coercion beyond
// collapsing numeric widths into one number type.
func strictEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	_, aStr := a.(string)
	_, bStr := b.(string)
	if !aStr && !bStr {
		if af, ok := toFloat(a); ok {
			if bf, ok := toFloat(b); ok {
				return af == bf
			}
		}
	}
	return reflect.DeepEqual(a, b)
}

// compareOrder orders a against b. String pairs compare lexicographically,
// numeric pairs (including numeric strings) numerically; any other pair is
// incomparable and the second return is false.
func compareOrder(a, b any) (int, bool) {
	if as, ok := a.(string); ok {
		if bs, ok := b.(string); ok {
			return strings.Compare(as, bs), true
		}
	}
	af, aok := numeric(a)
	bf, bok := numeric(b)
	if !aok || !bok {
		return 0, false
	}
	switch {
	case af < bf:
		return -1, true
	case af > bf:
		return 1, true
	default:
		return 0, true
	}
}

// isTruthy follows the usual dynamic-data notion of truthiness: nil, false,
// zero and the empty string are falsy; containers are truthy even when empty.
func isTruthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	}
	if f, ok := toFloat(v); ok {
		return f != 0 && !math.IsNaN(f)
	}
	return true
}

// asSequence normalizes any slice or array into []any. Operators that
// assert over elements always go through this, no matter how the value was
// produced.
func asSequence(v any) ([]any, bool) {
	if v == nil {
		return nil, false
	}
	if s, ok := v.([]any); ok {
		return s, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

const joinSeparator = ","

// stringify renders a value for the string operators: nil becomes the empty
// string, sequences stringify their elements (nil elements stay empty) and
// join with commas, scalars use their plain textual form.
func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		if t {
			return "true"
		}
		return "false"
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	}
	if seq, ok := asSequence(v); ok {
		parts := make([]string, len(seq))
		for i, el := range seq {
			if el == nil {
				continue
			}
			parts[i] = stringify(el)
		}
		return strings.Join(parts, joinSeparator)
	}
	if f, ok := toFloat(v); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return fmt.Sprint(v)
}
