package engine

import (
	"testing"

	"github.com/athahersirnaik/json-conditions/internal/core"
)

// evalOne evaluates a single rule against a reference and returns whether
// it passed overall.
func evalOne(t *testing.T, rule core.Rule, reference any) bool {
	t.Helper()
	report, err := Evaluate(&core.Settings{Rules: []core.Rule{rule}}, reference)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	return report.Verdict.Passed()
}

func TestOperators(t *testing.T) {
	tests := []struct {
		name      string
		rule      core.Rule
		reference any
		want      bool
	}{
		// --- eq / ne ---
		{
			name:      "eq - string match",
			rule:      core.Rule{Property: "env", Op: core.OpEq, Value: "prod"},
			reference: map[string]any{"env": "prod"},
			want:      true,
		},
		{
			name:      "eq - loose numeric string",
			rule:      core.Rule{Property: "count", Op: core.OpEq, Value: "5"},
			reference: map[string]any{"count": 5.0},
			want:      true,
		},
		{
			name:      "eq - boolean against string true",
			rule:      core.Rule{Property: "enabled", Op: core.OpEq, Value: "true"},
			reference: map[string]any{"enabled": true},
			want:      true,
		},
		{
			name:      "eq - boolean against string TRUE (case-insensitive)",
			rule:      core.Rule{Property: "enabled", Op: core.OpEq, Value: "TRUE"},
			reference: map[string]any{"enabled": true},
			want:      true,
		},
		{
			name:      "ne - boolean against string false",
			rule:      core.Rule{Property: "enabled", Op: core.OpNe, Value: "false"},
			reference: map[string]any{"enabled": true},
			want:      true,
		},
		{
			name:      "ne - boolean alternate blocks inequality",
			rule:      core.Rule{Property: "enabled", Op: core.OpNe, Value: "true"},
			reference: map[string]any{"enabled": true},
			want:      false,
		},
		{
			name:      "neq - alias of ne",
			rule:      core.Rule{Property: "env", Op: core.OpNeq, Value: "prod"},
			reference: map[string]any{"env": "dev"},
			want:      true,
		},

		// --- ordering ---
		{
			name:      "gt - pass",
			rule:      core.Rule{Property: "temp", Op: core.OpGt, Value: 20},
			reference: map[string]any{"temp": 22.5},
			want:      true,
		},
		{
			name:      "gte - equal passes",
			rule:      core.Rule{Property: "temp", Op: core.OpGte, Value: 22.5},
			reference: map[string]any{"temp": 22.5},
			want:      true,
		},
		{
			name:      "lt - numeric string",
			rule:      core.Rule{Property: "temp", Op: core.OpLt, Value: "30"},
			reference: map[string]any{"temp": 22.5},
			want:      true,
		},
		{
			name:      "lte - fail",
			rule:      core.Rule{Property: "temp", Op: core.OpLte, Value: 20},
			reference: map[string]any{"temp": 22.5},
			want:      false,
		},
		{
			name:      "gt - incomparable types fail",
			rule:      core.Rule{Property: "env", Op: core.OpGt, Value: 3},
			reference: map[string]any{"env": "prod"},
			want:      false,
		},

		// --- string containment ---
		{
			name:      "startsWith",
			rule:      core.Rule{Property: "email", Op: core.OpStartsWith, Value: "admin@"},
			reference: map[string]any{"email": "admin@acme.com"},
			want:      true,
		},
		{
			name:      "endsWith",
			rule:      core.Rule{Property: "email", Op: core.OpEndsWith, Value: "@acme.com"},
			reference: map[string]any{"email": "admin@acme.com"},
			want:      true,
		},
		{
			name:      "contains - stringified sequence",
			rule:      core.Rule{Property: "tags", Op: core.OpContains, Value: "beta"},
			reference: map[string]any{"tags": []any{"alpha", "beta"}},
			want:      true,
		},
		{
			name:      "contains - missing value is empty string",
			rule:      core.Rule{Property: "nope", Op: core.OpContains, Value: "x"},
			reference: map[string]any{},
			want:      false,
		},

		// --- present / empty / absent ---
		{
			name:      "present - truthy",
			rule:      core.Rule{Property: "name", Op: core.OpPresent},
			reference: map[string]any{"name": "x"},
			want:      true,
		},
		{
			name:      "present - zero is falsy",
			rule:      core.Rule{Property: "count", Op: core.OpPresent},
			reference: map[string]any{"count": 0.0},
			want:      false,
		},
		{
			name:      "empty - missing path",
			rule:      core.Rule{Property: "missing.deep", Op: core.OpEmpty},
			reference: map[string]any{},
			want:      true,
		},
		{
			name:      "absent - alias of empty",
			rule:      core.Rule{Property: "flag", Op: core.OpAbsent},
			reference: map[string]any{"flag": false},
			want:      true,
		},

		// --- all / some / none ---
		{
			name:      "all - every element equal",
			rule:      core.Rule{Property: "states", Op: core.OpAll, Value: "on"},
			reference: map[string]any{"states": []any{"on", "on"}},
			want:      true,
		},
		{
			name:      "all - one element differs",
			rule:      core.Rule{Property: "states", Op: core.OpAll, Value: "on"},
			reference: map[string]any{"states": []any{"on", "off"}},
			want:      false,
		},
		{
			name:      "all - empty sequence is vacuously true",
			rule:      core.Rule{Property: "states", Op: core.OpAll, Value: "on"},
			reference: map[string]any{"states": []any{}},
			want:      true,
		},
		{
			name:      "all - non-sequence fails",
			rule:      core.Rule{Property: "states", Op: core.OpAll, Value: "on"},
			reference: map[string]any{"states": "on"},
			want:      false,
		},
		{
			name:      "some - element found",
			rule:      core.Rule{Property: "states", Op: core.OpSome, Value: "off"},
			reference: map[string]any{"states": []any{"on", "off"}},
			want:      true,
		},
		{
			name:      "some - empty sequence fails",
			rule:      core.Rule{Property: "states", Op: core.OpSome, Value: "off"},
			reference: map[string]any{"states": []any{}},
			want:      false,
		},
		{
			name:      "none - target absent from sequence",
			rule:      core.Rule{Property: "states", Op: core.OpNone, Value: "error"},
			reference: map[string]any{"states": []any{"on", "off"}},
			want:      true,
		},
		{
			name:      "none - target present fails",
			rule:      core.Rule{Property: "states", Op: core.OpNone, Value: "off"},
			reference: map[string]any{"states": []any{"on", "off"}},
			want:      false,
		},
		{
			name:      "none - missing path passes",
			rule:      core.Rule{Property: "nope", Op: core.OpNone, Value: "x"},
			reference: map[string]any{},
			want:      true,
		},
		{
			name:      "none - null passes",
			rule:      core.Rule{Property: "states", Op: core.OpNone, Value: "x"},
			reference: map[string]any{"states": nil},
			want:      true,
		},
		{
			name:      "none - scalar fails",
			rule:      core.Rule{Property: "states", Op: core.OpNone, Value: "x"},
			reference: map[string]any{"states": "on"},
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := evalOne(t, tt.rule, tt.reference); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCrosses(t *testing.T) {
	reference := map[string]any{"load": 10.0}
	previous := func(_ any, _ string) any { return 5.0 }

	tests := []struct {
		name      string
		threshold any
		want      bool
	}{
		{"threshold within (previous, current]", 7.0, true},
		{"threshold equals current", 10.0, true},
		{"threshold above current", 12.0, false},
		{"threshold at previous", 5.0, false},
		{"threshold below previous", 3.0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := &core.Settings{
				Rules: []core.Rule{
					{Property: "load", Op: core.OpCrosses, Value: tt.threshold},
				},
				PreviousValue: previous,
			}
			report, err := Evaluate(settings, reference)
			if err != nil {
				t.Fatalf("Evaluate: %v", err)
			}
			if got := report.Verdict.Passed(); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
			if report.Results[0].Detail == "" {
				t.Error("crosses rule should always carry a trace detail")
			}
		})
	}
}
