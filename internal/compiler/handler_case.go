package compiler

import (
	"context"

	"github.com/specialistvlad/casegrid/internal/activity"
	"github.com/specialistvlad/casegrid/internal/casemodel"
	"github.com/specialistvlad/casegrid/internal/ctxlog"
)

// caseHandler compiles the case root. Together with casePlanModelHandler it
// is the only handler that writes case level state to the index.
type caseHandler struct{}

func (caseHandler) Handle(ctx context.Context, el *casemodel.Element, cc *Context) (*activity.Activity, error) {
	root, err := buildActivity(ctx, source{def: el}, activity.None{}, cc)
	if err != nil {
		return nil, err
	}
	cc.Index.CaseKey = el.ID
	cc.Index.DeploymentID = cc.DeploymentID

	err = cc.WithParent(root, func() error {
		for _, planModel := range el.ChildrenOfKind(casemodel.KindCasePlanModel) {
			if _, err := CompileElement(ctx, planModel, cc); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return root, nil
}

type casePlanModelHandler struct{}

func (casePlanModelHandler) Handle(ctx context.Context, el *casemodel.Element, cc *Context) (*activity.Activity, error) {
	a, src, err := compileItem(ctx, el, cc, itemSpec{
		activityType:   "casePlanModel",
		standardEvents: activity.CasePlanModelEvents(),
		ownCriteria:    true,
		behavior: func(src source) (activity.Behavior, error) {
			autoComplete, err := boolAttribute(src.def, casemodel.AttrAutoComplete, false)
			if err != nil {
				return nil, err
			}
			return &activity.Stage{PlanModel: true, AutoComplete: autoComplete}, nil
		},
	})
	if err != nil {
		return nil, err
	}
	a.SetProperty(activity.PropAutoComplete, a.Behavior().(*activity.Stage).AutoComplete)

	if err := compileStageBody(ctx, a, src.def, cc); err != nil {
		return nil, err
	}
	if err := linkCriteria(a, src, a); err != nil {
		return nil, err
	}
	if err := checkOnParts(a, cc); err != nil {
		return nil, err
	}

	for _, def := range cc.taskDefinitions {
		cc.Index.PutTaskDefinition(def)
	}
	cc.taskDefinitions = nil

	ctxlog.FromContext(ctx).Debug("Compiled case plan model.",
		"id", a.ID(),
		"activities", cc.Index.ActivityCount(),
		"task_definitions", len(cc.Index.TaskDefinitionKeys()),
	)
	return a, nil
}
