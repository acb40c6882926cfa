package engine

import (
	"fmt"
	"strings"

	"github.com/athahersirnaik/json-conditions/internal/core"
)

// boolAlternate gives the boolean reading of a string comparison value,
// used by eq/ne when the resolved value is a boolean.
func boolAlternate(target any) (bool, bool) {
	s, ok := target.(string)
	if !ok {
		return false, false
	}
	switch {
	case strings.EqualFold(s, "true"):
		return true, true
	case strings.EqualFold(s, "false"):
		return false, true
	}
	return false, false
}

// applyOperator computes the boolean result of a single rule. The operator
// is already known to be valid. Only the crosses operator can error, when no
// previous-value source is configured.
func (ev *evaluation) applyOperator(idx int, rule core.Rule, value any, target any) (bool, string, error) {
	switch rule.Op {
	case core.OpEq:
		if b, ok := value.(bool); ok {
			if alt, hasAlt := boolAlternate(target); hasAlt && b == alt {
				return true, "", nil
			}
		}
		return looseEqual(value, target), "", nil

	case core.OpNe, core.OpNeq:
		if b, ok := value.(bool); ok {
			if alt, hasAlt := boolAlternate(target); hasAlt && b == alt {
				return false, "", nil
			}
		}
		return !looseEqual(value, target), "", nil

	case core.OpGt:
		c, ok := compareOrder(value, target)
		return ok && c > 0, "", nil
	case core.OpGte:
		c, ok := compareOrder(value, target)
		return ok && c >= 0, "", nil
	case core.OpLt:
		c, ok := compareOrder(value, target)
		return ok && c < 0, "", nil
	case core.OpLte:
		c, ok := compareOrder(value, target)
		return ok && c <= 0, "", nil

	case core.OpStartsWith:
		return strings.HasPrefix(stringify(value), stringify(target)), "", nil
	case core.OpEndsWith:
		return strings.HasSuffix(stringify(value), stringify(target)), "", nil
	case core.OpContains:
		return strings.Contains(stringify(value), stringify(target)), "", nil

	case core.OpPresent:
		return isTruthy(value), "", nil
	case core.OpEmpty, core.OpAbsent:
		return !isTruthy(value), "", nil

	case core.OpAll:
		seq, ok := asSequence(value)
		if !ok {
			return false, "", nil
		}
		for _, el := range seq {
			if !strictEqual(el, target) {
				return false, "", nil
			}
		}
		// vacuously true for an empty sequence
		return true, "", nil

	case core.OpSome:
		seq, ok := asSequence(value)
		if !ok {
			return false, "", nil
		}
		for _, el := range seq {
			if strictEqual(el, target) {
				return true, "", nil
			}
		}
		return false, "", nil

	case core.OpNone:
		seq, ok := asSequence(value)
		if !ok && value != nil {
			return false, "", nil
		}
		for _, el := range seq {
			if strictEqual(el, target) {
				return false, "", nil
			}
		}
		return true, "", nil

	case core.OpCrosses:
		return ev.crosses(idx, rule, value, target)
	}

	return false, "", core.NewUnknownOperator(idx, rule)
}

// crosses tests an upward crossing: the threshold lies strictly above the
// previously observed value and at or below the current one.
func (ev *evaluation) crosses(idx int, rule core.Rule, value any, target any) (bool, string, error) {
	if ev.settings.PreviousValue == nil {
		return false, "", fmt.Errorf("rule #%d (%s): %w", idx, rule.Property, core.ErrPreviousValueRequired)
	}
	last := ev.settings.PreviousValue(ev.reference, rule.Property)

	abovePrev, aok := compareOrder(target, last)
	atOrBelowCur, bok := compareOrder(target, value)
	crossed := aok && bok && abovePrev > 0 && atOrBelowCur <= 0

	word := "not crossed"
	if crossed {
		word = "crossed"
	}
	detail := fmt.Sprintf("crosses: previous %s -> current %s, threshold %s => %s",
		renderValue(last, last != nil),
		renderValue(value, true),
		renderValue(target, true),
		word)
	return crossed, detail, nil
}
