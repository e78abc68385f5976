// Package controlrule provides the compiled form of the required,
// repetition and manual activation rules of a planned item.
package controlrule

import (
	"fmt"

	"github.com/specialistvlad/casegrid/internal/expr"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// Rule is a compiled control rule. A rule without a condition always holds.
type Rule struct {
	condition expr.Evaluable
}

// New wraps a compiled condition. A nil condition yields a rule that always holds.
func New(condition expr.Evaluable) *Rule {
	return &Rule{condition: condition}
}

// Condition returns the compiled condition, or nil.
func (r *Rule) Condition() expr.Evaluable {
	return r.condition
}

// Text returns the condition source text, empty when the rule has no condition.
func (r *Rule) Text() string {
	if r.condition == nil {
		return ""
	}
	return r.condition.Text()
}

// Evaluate evaluates the rule against the variables of a case execution.
// A null result counts as false.
func (r *Rule) Evaluate(vars map[string]cty.Value) (bool, error) {
	if r.condition == nil {
		return true, nil
	}

	val, err := r.condition.Evaluate(vars)
	if err != nil {
		return false, err
	}
	if val.IsNull() {
		return false, nil
	}
	if !val.IsKnown() {
		return false, fmt.Errorf("rule %q evaluated to an unknown value", r.condition.Text())
	}

	boolVal, err := convert.Convert(val, cty.Bool)
	if err != nil {
		return false, fmt.Errorf("rule %q did not evaluate to a boolean: %w", r.condition.Text(), err)
	}
	if boolVal.IsNull() {
		return false, nil
	}
	return boolVal.True(), nil
}
