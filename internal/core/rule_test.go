package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOperatorIsValid(t *testing.T) {
	valid := []Operator{
		OpEq, OpNe, OpNeq, OpGt, OpGte, OpLt, OpLte,
		OpStartsWith, OpEndsWith, OpContains,
		OpPresent, OpEmpty, OpAbsent,
		OpAll, OpSome, OpNone, OpCrosses,
	}
	for _, op := range valid {
		if !op.IsValid() {
			t.Errorf("IsValid(%q) = false, want true", op)
		}
	}

	invalid := []Operator{"", "equals", "matches", "EQ", "starts_with"}
	for _, op := range invalid {
		if op.IsValid() {
			t.Errorf("IsValid(%q) = true, want false", op)
		}
	}
}

func TestOperatorUnary(t *testing.T) {
	for _, op := range []Operator{OpPresent, OpEmpty, OpAbsent} {
		if !op.Unary() {
			t.Errorf("Unary(%q) = false, want true", op)
		}
	}
	for _, op := range []Operator{OpEq, OpAll, OpCrosses} {
		if op.Unary() {
			t.Errorf("Unary(%q) = true, want false", op)
		}
	}
}

func TestSatisfyIsValid(t *testing.T) {
	for _, s := range []Satisfy{"", SatisfyAny, SatisfyAll} {
		if !s.IsValid() {
			t.Errorf("IsValid(%q) = false, want true", s)
		}
	}
	if Satisfy("SOME").IsValid() {
		t.Error(`IsValid("SOME") = true, want false`)
	}
}

func TestDecodeRules(t *testing.T) {
	raw := []map[string]any{
		{"property": "env", "op": "eq", "value": "prod", "required": true},
		{"property": "tags[]", "op": "some", "value": "beta"},
	}

	rules, err := DecodeRules(raw)
	if err != nil {
		t.Fatalf("DecodeRules: %v", err)
	}

	want := []Rule{
		{Property: "env", Op: OpEq, Value: "prod", Required: true},
		{Property: "tags[]", Op: OpSome, Value: "beta"},
	}
	if diff := cmp.Diff(want, rules); diff != "" {
		t.Errorf("rules mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeRulesBadShape(t *testing.T) {
	raw := []map[string]any{
		{"property": "env", "required": "definitely"},
	}
	if _, err := DecodeRules(raw); err == nil {
		t.Error("DecodeRules should reject a non-boolean required flag")
	}
}
