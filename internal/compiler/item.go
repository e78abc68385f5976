package compiler

import (
	"context"
	"strconv"

	"github.com/specialistvlad/casegrid/internal/activity"
	"github.com/specialistvlad/casegrid/internal/casemodel"
)

// itemSpec describes what a handler contributes to the shared item steps.
type itemSpec struct {
	activityType   string
	standardEvents []string
	behavior       func(src source) (activity.Behavior, error)

	// ownCriteria marks criteria that reference the activity's own sentries.
	// The handler links them once the sentries exist.
	ownCriteria bool
}

// compileItem resolves el, builds its activity and attaches control rules,
// listeners and entry and exit criteria, in that order.
func compileItem(ctx context.Context, el *casemodel.Element, cc *Context, spec itemSpec) (*activity.Activity, source, error) {
	src, err := resolve(el, cc)
	if err != nil {
		return nil, source{}, err
	}

	behavior, err := spec.behavior(src)
	if err != nil {
		return nil, source{}, err
	}

	a, err := buildActivity(ctx, src, behavior, cc)
	if err != nil {
		return nil, source{}, err
	}
	a.SetProperty(activity.PropActivityType, spec.activityType)

	if err := compileRules(a, src, cc); err != nil {
		return nil, source{}, err
	}
	if err := compileListeners(a, src, spec.standardEvents, cc); err != nil {
		return nil, source{}, err
	}
	if !spec.ownCriteria {
		if err := linkCriteria(a, src, cc.Parent()); err != nil {
			return nil, source{}, err
		}
	}
	return a, src, nil
}

// boolAttribute reads a boolean attribute of the definition, falling back
// to fallback when it is not declared.
func boolAttribute(el *casemodel.Element, name string, fallback bool) (bool, error) {
	raw, ok := el.Attribute(name)
	if !ok || raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, modelError(el, "attribute %s: %q is not a boolean", name, raw)
	}
	return v, nil
}
