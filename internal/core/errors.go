package core

import (
	"errors"
	"fmt"
)

// ErrPreviousValueRequired is raised when a crosses rule is evaluated
// without a previous-value source configured.
var ErrPreviousValueRequired = errors.New("crosses operator requires a previous-value source")

// AuthoringError marks a rule that is malformed at the authoring level.
// Unlike a failing comparison, it aborts the whole evaluation.
type AuthoringError struct {
	Index  int
	Rule   Rule
	Reason string
}

func (e *AuthoringError) Error() string {
	return fmt.Sprintf("rule #%d: %s", e.Index, e.Reason)
}

func NewMissingProperty(index int, rule Rule) *AuthoringError {
	return &AuthoringError{
		Index:  index,
		Rule:   rule,
		Reason: fmt.Sprintf("missing property (op: %q, value: %v)", rule.Op, rule.Value),
	}
}

func NewUnknownOperator(index int, rule Rule) *AuthoringError {
	return &AuthoringError{
		Index:  index,
		Rule:   rule,
		Reason: fmt.Sprintf("unknown operator %q for property %q", rule.Op, rule.Property),
	}
}
