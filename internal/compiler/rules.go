package compiler

import (
	"github.com/specialistvlad/casegrid/internal/activity"
	"github.com/specialistvlad/casegrid/internal/casemodel"
	"github.com/specialistvlad/casegrid/internal/controlrule"
)

type ruleKind struct {
	key    activity.PropertyKey
	what   string
	pick   func(*casemodel.Control) *casemodel.Rule
}

var ruleKinds = []ruleKind{
	{activity.PropRequiredRule, "required rule", func(c *casemodel.Control) *casemodel.Rule { return c.Required }},
	{activity.PropRepetitionRule, "repetition rule", func(c *casemodel.Control) *casemodel.Rule { return c.Repetition }},
	{activity.PropManualActivationRule, "manual activation rule", func(c *casemodel.Control) *casemodel.Rule { return c.ManualActivation }},
}

// compileRules attaches the required, repetition and manual activation
// rules. The item control wins over the default control of the definition.
func compileRules(a *activity.Activity, src source, cc *Context) error {
	for _, kind := range ruleKinds {
		decl := findRule(src, kind)
		if decl == nil {
			continue
		}

		rule := controlrule.New(nil)
		if decl.Condition != "" {
			condition, err := cc.compileExpression(a.ID(), kind.what, decl.Condition)
			if err != nil {
				return err
			}
			rule = controlrule.New(condition)
		}
		a.SetProperty(kind.key, rule)

		if kind.key == activity.PropRepetitionRule {
			events := activity.DefaultRepeatOnStandardEvents()
			if decl.RepeatOnStandardEvent != "" {
				events = []string{decl.RepeatOnStandardEvent}
			}
			a.SetProperty(activity.PropRepeatOnStandardEvents, events)
		}
	}
	return nil
}

func findRule(src source, kind ruleKind) *casemodel.Rule {
	if src.item != nil && src.item.ItemControl != nil {
		if r := kind.pick(src.item.ItemControl); r != nil {
			return r
		}
	}
	if src.def.DefaultControl != nil {
		return kind.pick(src.def.DefaultControl)
	}
	return nil
}
