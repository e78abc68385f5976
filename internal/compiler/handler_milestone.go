package compiler

import (
	"context"

	"github.com/specialistvlad/casegrid/internal/activity"
	"github.com/specialistvlad/casegrid/internal/casemodel"
)

type milestoneHandler struct{}

func (milestoneHandler) Handle(ctx context.Context, el *casemodel.Element, cc *Context) (*activity.Activity, error) {
	a, _, err := compileItem(ctx, el, cc, itemSpec{
		activityType:   "milestone",
		standardEvents: activity.EventListenerOrMilestoneEvents(),
		behavior: func(source) (activity.Behavior, error) {
			return activity.Milestone{}, nil
		},
	})
	return a, err
}

type eventListenerHandler struct{}

func (eventListenerHandler) Handle(ctx context.Context, el *casemodel.Element, cc *Context) (*activity.Activity, error) {
	a, _, err := compileItem(ctx, el, cc, itemSpec{
		activityType:   "eventListener",
		standardEvents: activity.EventListenerOrMilestoneEvents(),
		behavior: func(source) (activity.Behavior, error) {
			return activity.EventListener{}, nil
		},
	})
	return a, err
}
