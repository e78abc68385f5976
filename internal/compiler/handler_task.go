package compiler

import (
	"context"
	"strings"

	"github.com/specialistvlad/casegrid/internal/activity"
	"github.com/specialistvlad/casegrid/internal/casemeta"
	"github.com/specialistvlad/casegrid/internal/casemodel"
	"github.com/specialistvlad/casegrid/internal/expr"
)

// taskHandler compiles the generic, human, process and decision tasks. They
// share the task behavior and differ in its payload.
type taskHandler struct {
	taskType activity.TaskType
}

func (h taskHandler) Handle(ctx context.Context, el *casemodel.Element, cc *Context) (*activity.Activity, error) {
	a, src, err := compileItem(ctx, el, cc, itemSpec{
		activityType:   "task",
		standardEvents: activity.TaskOrStageEvents(),
		behavior: func(src source) (activity.Behavior, error) {
			return h.behavior(src, cc)
		},
	})
	if err != nil {
		return nil, err
	}
	a.SetProperty(activity.PropIsBlocking, a.Behavior().(*activity.Task).Blocking)

	if h.taskType == activity.TaskHuman && !cc.hasTaskDefinition(src.def.ID) {
		def, err := compileTaskDefinition(src, cc)
		if err != nil {
			return nil, err
		}
		cc.taskDefinitions = append(cc.taskDefinitions, def)
	}
	return a, nil
}

func (h taskHandler) behavior(src source, cc *Context) (activity.Behavior, error) {
	blocking, err := boolAttribute(src.def, casemodel.AttrIsBlocking, true)
	if err != nil {
		return nil, err
	}
	task := &activity.Task{Type: h.taskType, Blocking: blocking}

	var refAttr string
	switch h.taskType {
	case activity.TaskHuman:
		task.TaskDefinitionKey = src.def.ID
	case activity.TaskProcess:
		refAttr = casemodel.AttrProcessRef
	case activity.TaskDecision:
		refAttr = casemodel.AttrDecisionRef
	}

	if refAttr != "" {
		if text, ok := src.def.Attribute(refAttr); ok && text != "" {
			task.Ref, err = cc.compileExpression(src.def.ID, refAttr, text)
			if err != nil {
				return nil, err
			}
		}
		task.Binding, _ = src.def.Attribute(casemodel.AttrBinding)
		task.Version, _ = src.def.Attribute(casemodel.AttrVersion)
	}
	return task, nil
}

// compileTaskDefinition describes how the runtime creates the human task of
// src. The key is the id of the human task definition; when several items
// wrap the same definition the first one compiled defines the task.
func compileTaskDefinition(src source, cc *Context) (*casemeta.TaskDefinition, error) {
	def := src.def
	td := &casemeta.TaskDefinition{Key: def.ID}

	optional := func(what, text string) (expr.Evaluable, error) {
		if text == "" {
			return nil, nil
		}
		return cc.compileExpression(def.ID, what, text)
	}
	attr := func(name string) string {
		v, _ := def.Attribute(name)
		return v
	}

	assignee := attr(casemodel.AttrAssignee)
	if assignee == "" {
		assignee = attr(casemodel.AttrPerformer)
	}

	var err error
	for _, f := range []struct {
		what   string
		text   string
		target *expr.Evaluable
	}{
		{"task name", effectiveName(src), &td.NameExpression},
		{"task description", effectiveDescription(src), &td.DescriptionExpression},
		{casemodel.AttrDueDate, attr(casemodel.AttrDueDate), &td.DueDateExpression},
		{casemodel.AttrFollowUpDate, attr(casemodel.AttrFollowUpDate), &td.FollowUpDateExpression},
		{casemodel.AttrPriority, attr(casemodel.AttrPriority), &td.PriorityExpression},
		{casemodel.AttrAssignee, assignee, &td.AssigneeExpression},
		{casemodel.AttrFormKey, attr(casemodel.AttrFormKey), &td.FormKey},
	} {
		if *f.target, err = optional(f.what, f.text); err != nil {
			return nil, err
		}
	}

	if td.CandidateUserExpressions, err = compileList(def.ID, casemodel.AttrCandidateUsers, attr(casemodel.AttrCandidateUsers), cc); err != nil {
		return nil, err
	}
	if td.CandidateGroupExpressions, err = compileList(def.ID, casemodel.AttrCandidateGroups, attr(casemodel.AttrCandidateGroups), cc); err != nil {
		return nil, err
	}
	return td, nil
}

// compileList compiles every entry of a comma separated list.
func compileList(elementID, what, text string, cc *Context) ([]expr.Evaluable, error) {
	var out []expr.Evaluable
	for _, part := range strings.Split(text, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		ev, err := cc.compileExpression(elementID, what, part)
		if err != nil {
			return nil, err
		}
		out = append(out, ev)
	}
	return out, nil
}

type caseTaskHandler struct{}

func (caseTaskHandler) Handle(ctx context.Context, el *casemodel.Element, cc *Context) (*activity.Activity, error) {
	a, _, err := compileItem(ctx, el, cc, itemSpec{
		activityType:   "caseTask",
		standardEvents: activity.TaskOrStageEvents(),
		behavior: func(src source) (activity.Behavior, error) {
			blocking, err := boolAttribute(src.def, casemodel.AttrIsBlocking, true)
			if err != nil {
				return nil, err
			}
			task := &activity.CaseTask{Blocking: blocking}
			if text, ok := src.def.Attribute(casemodel.AttrCaseRef); ok && text != "" {
				if task.CaseRef, err = cc.compileExpression(src.def.ID, casemodel.AttrCaseRef, text); err != nil {
					return nil, err
				}
			}
			task.Binding, _ = src.def.Attribute(casemodel.AttrBinding)
			task.Version, _ = src.def.Attribute(casemodel.AttrVersion)
			return task, nil
		},
	})
	if err != nil {
		return nil, err
	}
	a.SetProperty(activity.PropIsBlocking, a.Behavior().(*activity.CaseTask).Blocking)
	return a, nil
}
