package hclmodel

import "github.com/hashicorp/hcl/v2"

// fileRoot decodes the top level blocks of a file.
type fileRoot struct {
	Cases  []*caseBlock `hcl:"case,block"`
	Remain hcl.Body     `hcl:",remain"`
}

type caseBlock struct {
	ID            string      `hcl:"id,label"`
	Name          string      `hcl:"name,optional"`
	Description   string      `hcl:"description,optional"`
	Documentation []string    `hcl:"documentation,optional"`
	PlanModel     *stageBlock `hcl:"plan_model,block"`
}

// stageBlock is used for plan_model and stage blocks.
type stageBlock struct {
	ID             string        `hcl:"id,label"`
	Name           string        `hcl:"name,optional"`
	Description    string        `hcl:"description,optional"`
	Documentation  []string      `hcl:"documentation,optional"`
	AutoComplete   *bool         `hcl:"auto_complete,optional"`
	ExitCriteria   []string      `hcl:"exit_criteria,optional"`
	DefaultControl *controlBlock `hcl:"default_control,block"`

	CaseExecutionListeners []*listenerBlock `hcl:"case_execution_listener,block"`
	VariableListeners      []*listenerBlock `hcl:"variable_listener,block"`

	Stages         []*stageBlock         `hcl:"stage,block"`
	Tasks          []*taskBlock          `hcl:"task,block"`
	HumanTasks     []*taskBlock          `hcl:"human_task,block"`
	ProcessTasks   []*taskBlock          `hcl:"process_task,block"`
	DecisionTasks  []*taskBlock          `hcl:"decision_task,block"`
	CaseTasks      []*taskBlock          `hcl:"case_task,block"`
	Milestones     []*simpleBlock        `hcl:"milestone,block"`
	EventListeners []*simpleBlock        `hcl:"event_listener,block"`
	Sentries       []*sentryBlock        `hcl:"sentry,block"`
	PlanItems      []*itemBlock          `hcl:"plan_item,block"`
	PlanningTables []*planningTableBlock `hcl:"planning_table,block"`
}

// taskBlock is shared by all task flavours. Attributes that do not apply to
// a flavour are ignored.
type taskBlock struct {
	ID             string        `hcl:"id,label"`
	Name           string        `hcl:"name,optional"`
	Description    string        `hcl:"description,optional"`
	Documentation  []string      `hcl:"documentation,optional"`
	IsBlocking     *bool         `hcl:"is_blocking,optional"`
	DefaultControl *controlBlock `hcl:"default_control,block"`

	Assignee        hcl.Expression `hcl:"assignee,optional"`
	Performer       string         `hcl:"performer,optional"`
	CandidateUsers  hcl.Expression `hcl:"candidate_users,optional"`
	CandidateGroups hcl.Expression `hcl:"candidate_groups,optional"`
	DueDate         hcl.Expression `hcl:"due_date,optional"`
	FollowUpDate    hcl.Expression `hcl:"follow_up_date,optional"`
	Priority        hcl.Expression `hcl:"priority,optional"`
	FormKey         hcl.Expression `hcl:"form_key,optional"`

	ProcessRef  hcl.Expression `hcl:"process_ref,optional"`
	DecisionRef hcl.Expression `hcl:"decision_ref,optional"`
	CaseRef     hcl.Expression `hcl:"case_ref,optional"`
	Binding     string         `hcl:"binding,optional"`
	Version     string         `hcl:"version,optional"`

	CaseExecutionListeners []*listenerBlock `hcl:"case_execution_listener,block"`
	VariableListeners      []*listenerBlock `hcl:"variable_listener,block"`
}

// simpleBlock is used for milestones and event listeners.
type simpleBlock struct {
	ID             string        `hcl:"id,label"`
	Name           string        `hcl:"name,optional"`
	Description    string        `hcl:"description,optional"`
	Documentation  []string      `hcl:"documentation,optional"`
	DefaultControl *controlBlock `hcl:"default_control,block"`

	CaseExecutionListeners []*listenerBlock `hcl:"case_execution_listener,block"`
	VariableListeners      []*listenerBlock `hcl:"variable_listener,block"`
}

// itemBlock is used for plan_item and discretionary_item blocks.
type itemBlock struct {
	ID            string        `hcl:"id,label"`
	Definition    string        `hcl:"definition"`
	Name          string        `hcl:"name,optional"`
	Description   string        `hcl:"description,optional"`
	Documentation []string      `hcl:"documentation,optional"`
	EntryCriteria []string      `hcl:"entry_criteria,optional"`
	ExitCriteria  []string      `hcl:"exit_criteria,optional"`
	ItemControl   *controlBlock `hcl:"item_control,block"`

	CaseExecutionListeners []*listenerBlock `hcl:"case_execution_listener,block"`
	VariableListeners      []*listenerBlock `hcl:"variable_listener,block"`
}

type planningTableBlock struct {
	ID     string                `hcl:"id,label"`
	Items  []*itemBlock          `hcl:"discretionary_item,block"`
	Tables []*planningTableBlock `hcl:"planning_table,block"`
}

type controlBlock struct {
	Required         *ruleBlock `hcl:"required,block"`
	Repetition       *ruleBlock `hcl:"repetition,block"`
	ManualActivation *ruleBlock `hcl:"manual_activation,block"`
}

type ruleBlock struct {
	Condition             hcl.Expression `hcl:"condition,optional"`
	RepeatOnStandardEvent string         `hcl:"repeat_on_standard_event,optional"`
}

type sentryBlock struct {
	ID      string         `hcl:"id,label"`
	IfPart  hcl.Expression `hcl:"if_part,optional"`
	OnParts []*onPartBlock `hcl:"on_part,block"`
}

type onPartBlock struct {
	Source        string `hcl:"source"`
	StandardEvent string `hcl:"standard_event,optional"`
}

type listenerBlock struct {
	Event              string         `hcl:"event,optional"`
	Class              string         `hcl:"class,optional"`
	DelegateExpression hcl.Expression `hcl:"delegate_expression,optional"`
	Expression         hcl.Expression `hcl:"expression,optional"`
	Fields             []*fieldBlock  `hcl:"field,block"`
}

type fieldBlock struct {
	Name        string         `hcl:"name,label"`
	StringValue *string        `hcl:"string_value,optional"`
	Expression  hcl.Expression `hcl:"expression,optional"`
}
