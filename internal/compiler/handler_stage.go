package compiler

import (
	"context"

	"github.com/specialistvlad/casegrid/internal/activity"
	"github.com/specialistvlad/casegrid/internal/casemodel"
)

type stageHandler struct{}

func (stageHandler) Handle(ctx context.Context, el *casemodel.Element, cc *Context) (*activity.Activity, error) {
	a, src, err := compileItem(ctx, el, cc, itemSpec{
		activityType:   "stage",
		standardEvents: activity.TaskOrStageEvents(),
		behavior: func(src source) (activity.Behavior, error) {
			autoComplete, err := boolAttribute(src.def, casemodel.AttrAutoComplete, false)
			if err != nil {
				return nil, err
			}
			return &activity.Stage{AutoComplete: autoComplete}, nil
		},
	})
	if err != nil {
		return nil, err
	}
	a.SetProperty(activity.PropAutoComplete, a.Behavior().(*activity.Stage).AutoComplete)

	if err := compileStageBody(ctx, a, src.def, cc); err != nil {
		return nil, err
	}
	return a, nil
}
