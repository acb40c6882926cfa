package core

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Operator defines how a resolved value is compared against a rule's value.
type Operator string

const (
	// OpEq passes on loose equality (numeric strings match numbers,
	// booleans match the strings "true"/"false").
	OpEq Operator = "eq"
	// OpNe passes on loose inequality. OpNeq is an alias.
	OpNe  Operator = "ne"
	OpNeq Operator = "neq"

	// Ordering comparisons. Defined for numeric pairs (including numeric
	// strings) and for string pairs; anything else fails the comparison.
	OpGt  Operator = "gt"
	OpGte Operator = "gte"
	OpLt  Operator = "lt"
	OpLte Operator = "lte"

	// String containment. The resolved value is stringified first,
	// sequences joined with commas.
	OpStartsWith Operator = "startsWith"
	OpEndsWith   Operator = "endsWith"
	OpContains   Operator = "contains"

	// OpPresent passes when the resolved value is truthy.
	OpPresent Operator = "present"
	// OpEmpty passes when the resolved value is falsy. OpAbsent is an alias.
	OpEmpty  Operator = "empty"
	OpAbsent Operator = "absent"

	// Sequence assertions against every / some / no element.
	OpAll  Operator = "all"
	OpSome Operator = "some"
	OpNone Operator = "none"

	// OpCrosses passes when the rule's value lies strictly above the
	// previously observed value and at or below the current one.
	// Requires Settings.PreviousValue.
	OpCrosses Operator = "crosses"
)

func (op Operator) IsValid() bool {
	switch op {
	case OpEq, OpNe, OpNeq,
		OpGt, OpGte, OpLt, OpLte,
		OpStartsWith, OpEndsWith, OpContains,
		OpPresent, OpEmpty, OpAbsent,
		OpAll, OpSome, OpNone,
		OpCrosses:
		return true
	default:
		return false
	}
}

// Unary reports whether the operator ignores the rule's comparison value.
// Unary operators are rendered without it in traces.
func (op Operator) Unary() bool {
	switch op {
	case OpPresent, OpEmpty, OpAbsent:
		return true
	default:
		return false
	}
}

// Satisfy is the aggregation policy for the non-required rules.
type Satisfy string

const (
	// SatisfyAny passes when at least one normal rule passes. Default.
	SatisfyAny Satisfy = "ANY"
	// SatisfyAll passes only when every normal rule passes.
	SatisfyAll Satisfy = "ALL"
)

func (s Satisfy) IsValid() bool {
	return s == "" || s == SatisfyAny || s == SatisfyAll
}

// Rule is a single declarative comparison against a path in the reference.
type Rule struct {
	// Property is the path into the reference, e.g. "sensor.readings[0].value".
	// It may contain the collection marker "[]" exactly once, which maps the
	// remainder of the path over every element of the collection.
	Property string `yaml:"property" json:"property"`

	// Op selects the comparison semantics.
	Op Operator `yaml:"op" json:"op"`

	// Value is the comparison operand. Its type depends on Op.
	Value any `yaml:"value" json:"value"`

	// Required puts the rule into the required subset, which must pass
	// unanimously regardless of the satisfaction policy.
	Required bool `yaml:"required" json:"required"`
}

// TransformFunc maps a rule's value before comparison. It receives the
// original rule value, the whole reference, and the rule's property path,
// and must be pure.
type TransformFunc func(value any, reference any, property string) any

// PreviousFunc yields the previously observed value for a property.
// Only consulted by the crosses operator.
type PreviousFunc func(reference any, property string) any

// TraceFunc receives the complete evaluation trace. Diagnostics only; it
// never influences the outcome.
type TraceFunc func(trace string)

// Settings is the full input of an evaluation besides the reference itself.
type Settings struct {
	Rules          []Rule
	Satisfy        Satisfy
	TransformValue TransformFunc
	PreviousValue  PreviousFunc
	Log            TraceFunc
}

// DecodeRules decodes rules arriving as dynamic maps (e.g. from a JSON
// document) into typed rules.
func DecodeRules(raw []map[string]any) ([]Rule, error) {
	rules := make([]Rule, 0, len(raw))
	for i, m := range raw {
		var rule Rule
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:  &rule,
			TagName: "json",
		})
		if err != nil {
			return nil, err
		}
		if err := dec.Decode(m); err != nil {
			return nil, fmt.Errorf("decoding rule #%d: %w", i, err)
		}
		rules = append(rules, rule)
	}
	return rules, nil
}
