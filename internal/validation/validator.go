package validation

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/athahersirnaik/json-conditions/internal/core"
)

// ValidateRules checks a rule set for authoring errors before any
// evaluation: every rule needs a property and a recognized operator, and the
// collection marker may appear at most once. The engine enforces the same
// property/operator checks lazily per rule; this is the eager front door for
// tooling.
func ValidateRules(rules []core.Rule) error {
	for i, rule := range rules {
		if rule.Property == "" {
			return core.NewMissingProperty(i, rule)
		}
		if !rule.Op.IsValid() {
			return core.NewUnknownOperator(i, rule)
		}
		if strings.Count(rule.Property, "[]") > 1 {
			return fmt.Errorf("rule #%d: nested collection markers are not supported in %q", i, rule.Property)
		}
	}
	return nil
}

// UsesCrosses reports whether any rule needs a previous-value source.
func UsesCrosses(rules []core.Rule) bool {
	for _, rule := range rules {
		if rule.Op == core.OpCrosses {
			return true
		}
	}
	return false
}

// CompileExpr compiles a transform or previous-value expression. The
// expression environment is only known at run time, so undefined variables
// are allowed here.
func CompileExpr(code string) (*vm.Program, error) {
	prog, err := expr.Compile(code, expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("compiling expression %q: %w", code, err)
	}
	return prog, nil
}
