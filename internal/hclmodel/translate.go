package hclmodel

import (
	"context"
	"strconv"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/casegrid/internal/casemodel"
)

// translator converts decoded blocks of one file into model elements.
type translator struct {
	ctx    context.Context
	src    []byte
	fsInfo *casemodel.FSInfo
}

func (t *translator) expr(e hcl.Expression, attrName string) string {
	return expressionText(t.ctx, e, attrName, t.src)
}

func (t *translator) element(kind casemodel.Kind, id, name, description string, documentation []string) *casemodel.Element {
	return &casemodel.Element{
		ID:            id,
		Name:          name,
		Description:   description,
		Documentation: documentation,
		Kind:          kind,
		Attributes:    make(map[string]string),
		FSInformation: t.fsInfo,
	}
}

func (t *translator) translateCase(b *caseBlock) *casemodel.Element {
	el := t.element(casemodel.KindCase, b.ID, b.Name, b.Description, b.Documentation)
	if b.PlanModel != nil {
		el.Children = append(el.Children, t.translateStage(casemodel.KindCasePlanModel, b.PlanModel))
	}
	return el
}

func (t *translator) translateStage(kind casemodel.Kind, b *stageBlock) *casemodel.Element {
	el := t.element(kind, b.ID, b.Name, b.Description, b.Documentation)
	if b.AutoComplete != nil {
		el.Attributes[casemodel.AttrAutoComplete] = strconv.FormatBool(*b.AutoComplete)
	}
	el.ExitCriteria = b.ExitCriteria
	el.DefaultControl = t.translateControl(b.DefaultControl)
	el.Extensions = t.translateExtensions(b.CaseExecutionListeners, b.VariableListeners)

	for _, s := range b.Stages {
		el.Children = append(el.Children, t.translateStage(casemodel.KindStage, s))
	}
	for _, group := range []struct {
		kind   casemodel.Kind
		blocks []*taskBlock
	}{
		{casemodel.KindTask, b.Tasks},
		{casemodel.KindHumanTask, b.HumanTasks},
		{casemodel.KindProcessTask, b.ProcessTasks},
		{casemodel.KindDecisionTask, b.DecisionTasks},
		{casemodel.KindCaseTask, b.CaseTasks},
	} {
		for _, tb := range group.blocks {
			el.Children = append(el.Children, t.translateTask(group.kind, tb))
		}
	}
	for _, m := range b.Milestones {
		el.Children = append(el.Children, t.translateSimple(casemodel.KindMilestone, m))
	}
	for _, l := range b.EventListeners {
		el.Children = append(el.Children, t.translateSimple(casemodel.KindEventListener, l))
	}
	for _, s := range b.Sentries {
		el.Children = append(el.Children, t.translateSentry(s))
	}
	for _, item := range b.PlanItems {
		el.Children = append(el.Children, t.translateItem(casemodel.KindPlanItem, item))
	}
	for _, table := range b.PlanningTables {
		el.Children = append(el.Children, t.translatePlanningTable(table))
	}
	return el
}

func (t *translator) translateTask(kind casemodel.Kind, b *taskBlock) *casemodel.Element {
	el := t.element(kind, b.ID, b.Name, b.Description, b.Documentation)
	if b.IsBlocking != nil {
		el.Attributes[casemodel.AttrIsBlocking] = strconv.FormatBool(*b.IsBlocking)
	}
	el.DefaultControl = t.translateControl(b.DefaultControl)
	el.Extensions = t.translateExtensions(b.CaseExecutionListeners, b.VariableListeners)

	exprAttrs := []struct {
		name string
		expr hcl.Expression
	}{
		{casemodel.AttrAssignee, b.Assignee},
		{casemodel.AttrCandidateUsers, b.CandidateUsers},
		{casemodel.AttrCandidateGroups, b.CandidateGroups},
		{casemodel.AttrDueDate, b.DueDate},
		{casemodel.AttrFollowUpDate, b.FollowUpDate},
		{casemodel.AttrPriority, b.Priority},
		{casemodel.AttrFormKey, b.FormKey},
		{casemodel.AttrProcessRef, b.ProcessRef},
		{casemodel.AttrDecisionRef, b.DecisionRef},
		{casemodel.AttrCaseRef, b.CaseRef},
	}
	for _, a := range exprAttrs {
		if text := t.expr(a.expr, a.name); text != "" {
			el.Attributes[a.name] = text
		}
	}
	for name, value := range map[string]string{
		casemodel.AttrPerformer: b.Performer,
		casemodel.AttrBinding:   b.Binding,
		casemodel.AttrVersion:   b.Version,
	} {
		if value != "" {
			el.Attributes[name] = value
		}
	}
	return el
}

func (t *translator) translateSimple(kind casemodel.Kind, b *simpleBlock) *casemodel.Element {
	el := t.element(kind, b.ID, b.Name, b.Description, b.Documentation)
	el.DefaultControl = t.translateControl(b.DefaultControl)
	el.Extensions = t.translateExtensions(b.CaseExecutionListeners, b.VariableListeners)
	return el
}

func (t *translator) translateItem(kind casemodel.Kind, b *itemBlock) *casemodel.Element {
	el := t.element(kind, b.ID, b.Name, b.Description, b.Documentation)
	el.DefinitionRef = b.Definition
	el.EntryCriteria = b.EntryCriteria
	el.ExitCriteria = b.ExitCriteria
	el.ItemControl = t.translateControl(b.ItemControl)
	el.Extensions = t.translateExtensions(b.CaseExecutionListeners, b.VariableListeners)
	return el
}

func (t *translator) translatePlanningTable(b *planningTableBlock) *casemodel.Element {
	el := t.element(casemodel.KindPlanningTable, b.ID, "", "", nil)
	for _, item := range b.Items {
		el.Children = append(el.Children, t.translateItem(casemodel.KindDiscretionaryItem, item))
	}
	for _, nested := range b.Tables {
		el.Children = append(el.Children, t.translatePlanningTable(nested))
	}
	return el
}

func (t *translator) translateSentry(b *sentryBlock) *casemodel.Element {
	el := t.element(casemodel.KindSentry, b.ID, "", "", nil)
	spec := &casemodel.SentrySpec{IfPart: t.expr(b.IfPart, "if_part")}
	for _, on := range b.OnParts {
		spec.OnParts = append(spec.OnParts, &casemodel.OnPart{
			SourceRef:     on.Source,
			StandardEvent: on.StandardEvent,
		})
	}
	el.Sentry = spec
	return el
}

func (t *translator) translateControl(b *controlBlock) *casemodel.Control {
	if b == nil {
		return nil
	}
	return &casemodel.Control{
		Required:         t.translateRule(b.Required),
		Repetition:       t.translateRule(b.Repetition),
		ManualActivation: t.translateRule(b.ManualActivation),
	}
}

func (t *translator) translateRule(b *ruleBlock) *casemodel.Rule {
	if b == nil {
		return nil
	}
	return &casemodel.Rule{
		Condition:             t.expr(b.Condition, "condition"),
		RepeatOnStandardEvent: b.RepeatOnStandardEvent,
	}
}

func (t *translator) translateExtensions(caseListeners, variableListeners []*listenerBlock) []*casemodel.ExtensionBlock {
	if len(caseListeners) == 0 && len(variableListeners) == 0 {
		return nil
	}
	ext := &casemodel.ExtensionBlock{}
	for _, l := range caseListeners {
		ext.CaseExecutionListeners = append(ext.CaseExecutionListeners, t.translateListener(l))
	}
	for _, l := range variableListeners {
		ext.VariableListeners = append(ext.VariableListeners, t.translateListener(l))
	}
	return []*casemodel.ExtensionBlock{ext}
}

func (t *translator) translateListener(b *listenerBlock) *casemodel.ListenerDecl {
	decl := &casemodel.ListenerDecl{
		Event:              b.Event,
		Class:              b.Class,
		DelegateExpression: t.expr(b.DelegateExpression, "delegate_expression"),
		Expression:         t.expr(b.Expression, "expression"),
	}
	for _, f := range b.Fields {
		decl.Fields = append(decl.Fields, &casemodel.FieldDecl{
			Name:        f.Name,
			StringValue: f.StringValue,
			Expression:  t.expr(f.Expression, "expression"),
		})
	}
	return decl
}
