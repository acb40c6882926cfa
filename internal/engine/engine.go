// Package engine evaluates declarative comparison rules against a structured
// reference document and produces a pass/fail verdict with a diagnostic
// trace.
package engine

import (
	"strings"

	"github.com/rs/xid"
	"github.com/rs/zerolog/log"

	"github.com/athahersirnaik/json-conditions/internal/core"
	"github.com/athahersirnaik/json-conditions/internal/objpath"
)

// wildcardMarker maps the rest of a property path over every element of the
// collection resolved by the text before the marker.
const wildcardMarker = "[]"

type evaluation struct {
	settings  *core.Settings
	reference any
	trace     traceBuilder
}

// Evaluate runs every rule of settings against the reference and folds the
// per-rule results into a verdict. A nil settings or a missing rules slice
// yields the Skipped verdict, which is distinct from a failing one. Authoring
// errors (missing property, unknown operator, crosses without a
// previous-value source) abort the evaluation.
//
// The complete trace is stored in the report and, when a log sink is
// configured, handed to it. The sink never influences the outcome.
func Evaluate(settings *core.Settings, reference any) (*core.Report, error) {
	report := &core.Report{
		CorrelationID: xid.New().String(),
		Verdict:       core.VerdictSkipped,
	}
	if settings == nil || settings.Rules == nil {
		return report, nil
	}

	satisfy := settings.Satisfy
	if satisfy == "" {
		satisfy = core.SatisfyAny
	}
	report.Satisfy = satisfy

	ev := &evaluation{
		settings:  settings,
		reference: reference,
	}

	for i, rule := range settings.Rules {
		if rule.Property == "" {
			return nil, core.NewMissingProperty(i, rule)
		}
		if !rule.Op.IsValid() {
			return nil, core.NewUnknownOperator(i, rule)
		}

		value, found := ev.resolveProperty(rule.Property)

		target := rule.Value
		if settings.TransformValue != nil {
			target = settings.TransformValue(rule.Value, reference, rule.Property)
		}

		passed, detail, err := ev.applyOperator(i, rule, value, target)
		if err != nil {
			return nil, err
		}

		res := core.RuleResult{
			Index:    i,
			Property: rule.Property,
			Op:       rule.Op,
			Resolved: value,
			Found:    found,
			Target:   target,
			Required: rule.Required,
			Passed:   passed,
			Detail:   detail,
		}
		report.Results = append(report.Results, res)

		if rule.Required {
			report.RequiredTotal++
			if passed {
				report.RequiredPassed++
			}
		} else {
			report.NormalTotal++
			if passed {
				report.NormalPassed++
			}
		}

		ev.trace.linef("%s", ruleLine(res))
		if detail != "" {
			ev.trace.linef("    %s", detail)
		}
	}

	requiredSatisfied := report.RequiredTotal == 0 ||
		report.RequiredPassed == report.RequiredTotal

	normalSatisfied := report.NormalTotal == 0
	if !normalSatisfied {
		if satisfy == core.SatisfyAll {
			normalSatisfied = report.NormalPassed == report.NormalTotal
		} else {
			normalSatisfied = report.NormalPassed > 0
		}
	}

	if normalSatisfied && requiredSatisfied {
		report.Verdict = core.VerdictPass
	} else {
		report.Verdict = core.VerdictFail
	}

	if report.NormalTotal > 0 {
		ev.trace.linef("normal: %d/%d passed (satisfy %s)",
			report.NormalPassed, report.NormalTotal, satisfy)
	}
	if report.RequiredTotal > 0 {
		ev.trace.linef("required: %d/%d passed",
			report.RequiredPassed, report.RequiredTotal)
	}
	ev.trace.linef("Result: %s", report.Verdict)

	report.Trace = ev.trace.String()
	if settings.Log != nil {
		settings.Log(report.Trace)
	}

	log.Debug().
		Str("correlation_id", report.CorrelationID).
		Int("rules", len(settings.Rules)).
		Str("verdict", report.Verdict.String()).
		Msg("evaluation finished")

	return report, nil
}

// resolveProperty resolves a rule's property, expanding the collection
// marker when present: the text before "[]" must resolve to a sequence, and
// the text after it (leading dot stripped) is resolved against each element.
// A collection that is not a sequence degrades to a missing value.
func (ev *evaluation) resolveProperty(property string) (any, bool) {
	if strings.Count(property, wildcardMarker) != 1 {
		return objpath.Lookup(ev.reference, property)
	}

	collectionPath, itemPath, _ := strings.Cut(property, wildcardMarker)
	itemPath = strings.TrimPrefix(itemPath, ".")

	collection := objpath.Resolve(ev.reference, collectionPath)
	seq, ok := asSequence(collection)
	if !ok {
		return nil, false
	}

	out := make([]any, len(seq))
	for i, item := range seq {
		if itemPath == "" {
			out[i] = item
			continue
		}
		out[i] = objpath.Resolve(item, itemPath)
	}
	return out, true
}
