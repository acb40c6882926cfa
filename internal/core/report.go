package core

// Verdict is the tri-state outcome of an evaluation.
type Verdict int

const (
	// VerdictSkipped means no rules were configured. It is distinct from
	// VerdictFail: "no rule set" is not "failed".
	VerdictSkipped Verdict = iota
	VerdictPass
	VerdictFail
)

func (v Verdict) String() string {
	switch v {
	case VerdictPass:
		return "PASS"
	case VerdictFail:
		return "FAIL"
	default:
		return "SKIPPED"
	}
}

// Passed reports whether the evaluation concluded with a pass.
func (v Verdict) Passed() bool {
	return v == VerdictPass
}

// RuleResult captures how a single rule was evaluated.
type RuleResult struct {
	Index    int      `yaml:"index" json:"index"`
	Property string   `yaml:"property" json:"property"`
	Op       Operator `yaml:"op" json:"op"`

	// Resolved is the value read from the reference; Found is false when
	// the path did not resolve.
	Resolved any  `yaml:"resolved" json:"resolved"`
	Found    bool `yaml:"found" json:"found"`

	// Target is the comparison value after the optional transform.
	Target any `yaml:"target" json:"target"`

	Required bool `yaml:"required" json:"required"`
	Passed   bool `yaml:"passed" json:"passed"`

	// Detail carries extra operator output, e.g. the crossing description.
	Detail string `yaml:"detail,omitempty" json:"detail,omitempty"`
}

// Report is the structured form of an evaluation trace.
type Report struct {
	// CorrelationID uniquely identifies this evaluation in logs.
	CorrelationID string `yaml:"correlation_id" json:"correlation_id"`

	Results []RuleResult `yaml:"results" json:"results"`

	Satisfy Satisfy `yaml:"satisfy" json:"satisfy"`

	NormalPassed   int `yaml:"normal_passed" json:"normal_passed"`
	NormalTotal    int `yaml:"normal_total" json:"normal_total"`
	RequiredPassed int `yaml:"required_passed" json:"required_passed"`
	RequiredTotal  int `yaml:"required_total" json:"required_total"`

	Verdict Verdict `yaml:"verdict" json:"verdict"`

	// Trace is the line-oriented rendering delivered to Settings.Log.
	Trace string `yaml:"trace" json:"trace"`
}
