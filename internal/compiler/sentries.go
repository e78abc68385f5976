package compiler

import (
	"fmt"

	"github.com/specialistvlad/casegrid/internal/activity"
	"github.com/specialistvlad/casegrid/internal/casemodel"
	"github.com/specialistvlad/casegrid/internal/controlrule"
)

// compileSentries declares the sentries of a stage definition on stage.
func compileSentries(stage *activity.Activity, def *casemodel.Element, cc *Context) error {
	for _, el := range def.ChildrenOfKind(casemodel.KindSentry) {
		if el.ID == "" {
			return modelError(el, "missing id")
		}

		decl := &activity.SentryDeclaration{ID: el.ID}
		if spec := el.Sentry; spec != nil {
			if spec.IfPart != "" {
				condition, err := cc.compileExpression(el.ID, "sentry if part", spec.IfPart)
				if err != nil {
					return err
				}
				decl.IfPart = controlrule.New(condition)
			}
			for _, on := range spec.OnParts {
				if on.SourceRef == "" {
					return modelError(el, "on part without a source")
				}
				decl.OnParts = append(decl.OnParts, activity.OnPartDeclaration{
					SourceID:      on.SourceRef,
					StandardEvent: on.StandardEvent,
				})
			}
		}

		if !stage.AddSentry(decl) {
			return modelError(el, "duplicate sentry id")
		}
	}
	return nil
}

// checkOnParts verifies that every on part in the tree rooted at root names
// an activity compiled in this pass.
func checkOnParts(root *activity.Activity, cc *Context) error {
	return root.Walk(func(a *activity.Activity) error {
		for _, s := range a.Sentries() {
			for _, on := range s.OnParts {
				if _, ok := cc.Index.Activity(on.SourceID); !ok {
					return &ModelError{
						ElementID: s.ID,
						Kind:      casemodel.KindSentry,
						Reason:    fmt.Sprintf("on part references unknown plan item %q", on.SourceID),
					}
				}
			}
		}
		return nil
	})
}

// linkCriteria resolves the entry and exit criteria of the element against
// the sentries of owner.
func linkCriteria(a *activity.Activity, src source, owner *activity.Activity) error {
	el := src.element()
	if len(el.EntryCriteria) == 0 && len(el.ExitCriteria) == 0 {
		return nil
	}

	lookup := func(id string) (*activity.SentryDeclaration, error) {
		if owner != nil {
			if s, ok := owner.Sentry(id); ok {
				return s, nil
			}
		}
		return nil, modelError(el, "criterion references unknown sentry %q", id)
	}

	for _, id := range el.EntryCriteria {
		s, err := lookup(id)
		if err != nil {
			return err
		}
		a.AddEntryCriterion(s)
	}
	for _, id := range el.ExitCriteria {
		s, err := lookup(id)
		if err != nil {
			return err
		}
		a.AddExitCriterion(s)
	}
	return nil
}
