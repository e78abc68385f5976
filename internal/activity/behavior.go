package activity

import "github.com/specialistvlad/casegrid/internal/expr"

// BehaviorKind names a behavior variant.
type BehaviorKind int

const (
	BehaviorNone BehaviorKind = iota
	BehaviorStage
	BehaviorTask
	BehaviorCaseTask
	BehaviorMilestone
	BehaviorEventListener
)

func (k BehaviorKind) String() string {
	switch k {
	case BehaviorNone:
		return "none"
	case BehaviorStage:
		return "stage"
	case BehaviorTask:
		return "task"
	case BehaviorCaseTask:
		return "caseTask"
	case BehaviorMilestone:
		return "milestone"
	case BehaviorEventListener:
		return "eventListener"
	}
	return "unknown"
}

// Behavior is the runtime behavior attached to an activity.
type Behavior interface {
	Kind() BehaviorKind
}

// None is the behavior of a bare case root.
type None struct{}

func (None) Kind() BehaviorKind { return BehaviorNone }

// Stage is the behavior of stages and of the case plan model.
type Stage struct {
	// PlanModel is set for the case plan model.
	PlanModel    bool
	AutoComplete bool
}

func (*Stage) Kind() BehaviorKind { return BehaviorStage }

// TaskType distinguishes the task flavours sharing the task behavior.
type TaskType int

const (
	TaskGeneric TaskType = iota
	TaskHuman
	TaskProcess
	TaskDecision
)

func (t TaskType) String() string {
	switch t {
	case TaskGeneric:
		return "task"
	case TaskHuman:
		return "humanTask"
	case TaskProcess:
		return "processTask"
	case TaskDecision:
		return "decisionTask"
	}
	return "unknown"
}

// Task is the behavior of tasks.
type Task struct {
	Type     TaskType
	Blocking bool
	// TaskDefinitionKey is set for human tasks and names the entry in the
	// case metadata index.
	TaskDefinitionKey string
	// Ref is the compiled process or decision reference.
	Ref     expr.Evaluable
	Binding string
	Version string
}

func (*Task) Kind() BehaviorKind { return BehaviorTask }

// CaseTask is the behavior of tasks that start another case.
type CaseTask struct {
	CaseRef  expr.Evaluable
	Blocking bool
	Binding  string
	Version  string
}

func (*CaseTask) Kind() BehaviorKind { return BehaviorCaseTask }

// Milestone is the behavior of milestones.
type Milestone struct{}

func (Milestone) Kind() BehaviorKind { return BehaviorMilestone }

// EventListener is the behavior of user event listeners.
type EventListener struct{}

func (EventListener) Kind() BehaviorKind { return BehaviorEventListener }
