package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/athahersirnaik/json-conditions/internal/core"
)

// traceBuilder accumulates the line-oriented evaluation trace.
type traceBuilder struct {
	sb strings.Builder
}

func (t *traceBuilder) linef(format string, args ...any) {
	fmt.Fprintf(&t.sb, format, args...)
	t.sb.WriteByte('\n')
}

func (t *traceBuilder) String() string {
	return t.sb.String()
}

// renderValue renders a value for trace lines: missing values as <missing>,
// nil as null, strings quoted, sequences bracketed.
func renderValue(v any, found bool) string {
	if !found && v == nil {
		return "<missing>"
	}
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return strconv.Quote(t)
	case bool:
		return strconv.FormatBool(t)
	}
	if seq, ok := asSequence(v); ok {
		parts := make([]string, len(seq))
		for i, el := range seq {
			parts[i] = renderValue(el, true)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
	if f, ok := toFloat(v); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return fmt.Sprint(v)
}

// ruleLine renders the per-rule trace line. Unary operators are shown
// without the comparison value.
func ruleLine(res core.RuleResult) string {
	outcome := "fail"
	if res.Passed {
		outcome = "pass"
	}
	if res.Op.Unary() {
		return fmt.Sprintf("#%d %q = %s | %s => %s",
			res.Index, res.Property, renderValue(res.Resolved, res.Found), res.Op, outcome)
	}
	return fmt.Sprintf("#%d %q = %s | %s %s => %s",
		res.Index, res.Property, renderValue(res.Resolved, res.Found), res.Op,
		renderValue(res.Target, true), outcome)
}
