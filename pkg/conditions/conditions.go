// Package conditions is the embeddable surface of the rule engine: evaluate
// a declarative set of comparison rules against an arbitrary structured
// reference and get a pass/fail verdict, optionally with a diagnostic trace.
package conditions

import (
	"github.com/athahersirnaik/json-conditions/internal/core"
	"github.com/athahersirnaik/json-conditions/internal/engine"
)

// Re-exported domain types, so embedders never import internal packages.
type (
	Rule       = core.Rule
	Operator   = core.Operator
	Satisfy    = core.Satisfy
	Settings   = core.Settings
	Verdict    = core.Verdict
	Report     = core.Report
	RuleResult = core.RuleResult

	TransformFunc = core.TransformFunc
	PreviousFunc  = core.PreviousFunc
	TraceFunc     = core.TraceFunc

	AuthoringError = core.AuthoringError
)

const (
	OpEq         = core.OpEq
	OpNe         = core.OpNe
	OpNeq        = core.OpNeq
	OpGt         = core.OpGt
	OpGte        = core.OpGte
	OpLt         = core.OpLt
	OpLte        = core.OpLte
	OpStartsWith = core.OpStartsWith
	OpEndsWith   = core.OpEndsWith
	OpContains   = core.OpContains
	OpPresent    = core.OpPresent
	OpEmpty      = core.OpEmpty
	OpAbsent     = core.OpAbsent
	OpAll        = core.OpAll
	OpSome       = core.OpSome
	OpNone       = core.OpNone
	OpCrosses    = core.OpCrosses

	SatisfyAny = core.SatisfyAny
	SatisfyAll = core.SatisfyAll

	VerdictSkipped = core.VerdictSkipped
	VerdictPass    = core.VerdictPass
	VerdictFail    = core.VerdictFail
)

// ErrPreviousValueRequired is returned when a crosses rule runs without a
// previous-value source.
var ErrPreviousValueRequired = core.ErrPreviousValueRequired

// Option tweaks the settings built by Evaluate.
type Option func(*core.Settings)

// WithSatisfy selects the aggregation policy for non-required rules.
func WithSatisfy(s Satisfy) Option {
	return func(set *core.Settings) { set.Satisfy = s }
}

// WithTransform applies fn to every rule's value before comparison.
func WithTransform(fn TransformFunc) Option {
	return func(set *core.Settings) { set.TransformValue = fn }
}

// WithPreviousValue supplies the previous-value source crosses rules need.
func WithPreviousValue(fn PreviousFunc) Option {
	return func(set *core.Settings) { set.PreviousValue = fn }
}

// WithLog delivers the evaluation trace to fn.
func WithLog(fn TraceFunc) Option {
	return func(set *core.Settings) { set.Log = fn }
}

// Evaluate runs the rules against the reference. A nil rules slice yields
// VerdictSkipped rather than a failure.
func Evaluate(rules []Rule, reference any, opts ...Option) (Verdict, error) {
	report, err := EvaluateReport(rules, reference, opts...)
	if err != nil {
		return VerdictFail, err
	}
	return report.Verdict, nil
}

// EvaluateReport is Evaluate with the full structured report.
func EvaluateReport(rules []Rule, reference any, opts ...Option) (*Report, error) {
	settings := &core.Settings{Rules: rules}
	for _, opt := range opts {
		opt(settings)
	}
	return engine.Evaluate(settings, reference)
}

// EvaluateSettings evaluates fully caller-assembled settings.
func EvaluateSettings(settings *Settings, reference any) (*Report, error) {
	return engine.Evaluate(settings, reference)
}

// DecodeRules decodes rules arriving as dynamic maps.
func DecodeRules(raw []map[string]any) ([]Rule, error) {
	return core.DecodeRules(raw)
}

// Checker holds settings and evaluates references against them; settings
// can be swapped at runtime.
type Checker struct {
	manager *engine.Manager
}

// NewChecker creates a Checker with the given settings.
func NewChecker(settings *Settings) *Checker {
	return &Checker{manager: engine.NewManager(settings)}
}

// Evaluate runs the current settings against the reference.
func (c *Checker) Evaluate(reference any) (*Report, error) {
	return c.manager.Evaluate(reference)
}

// Update validates the candidate settings and swaps them in.
func (c *Checker) Update(settings *Settings) error {
	return c.manager.Update(settings)
}
