package activity

// Lifecycle events of case executions.
const (
	EventCreate          = "create"
	EventEnable          = "enable"
	EventDisable         = "disable"
	EventReenable        = "reenable"
	EventStart           = "start"
	EventManualStart     = "manualStart"
	EventSuspend         = "suspend"
	EventParentSuspend   = "parentSuspend"
	EventResume          = "resume"
	EventParentResume    = "parentResume"
	EventTerminate       = "terminate"
	EventParentTerminate = "parentTerminate"
	EventExit            = "exit"
	EventComplete        = "complete"
	EventParentComplete  = "parentComplete"
	EventOccur           = "occur"
	EventReactivate      = "reactivate"
	EventClose           = "close"
)

// Variable events.
const (
	VariableCreate = "create"
	VariableUpdate = "update"
	VariableDelete = "delete"
)

// TaskOrStageEvents are the standard events of tasks and stages.
func TaskOrStageEvents() []string {
	return []string{
		EventCreate, EventEnable, EventDisable, EventReenable, EventStart,
		EventManualStart, EventSuspend, EventParentSuspend, EventResume,
		EventParentResume, EventTerminate, EventExit, EventComplete,
		EventParentComplete,
	}
}

// EventListenerOrMilestoneEvents are the standard events of milestones and
// event listeners.
func EventListenerOrMilestoneEvents() []string {
	return []string{
		EventCreate, EventSuspend, EventResume, EventTerminate,
		EventParentTerminate, EventOccur, EventParentComplete,
	}
}

// CasePlanModelEvents are the standard events of the case plan model.
func CasePlanModelEvents() []string {
	return []string{
		EventCreate, EventTerminate, EventSuspend, EventComplete,
		EventReactivate, EventClose,
	}
}

// VariableEvents are the events a variable listener can subscribe to.
func VariableEvents() []string {
	return []string{VariableCreate, VariableUpdate, VariableDelete}
}

// DefaultRepeatOnStandardEvents are the events that trigger a repetition
// when the repetition rule names none.
func DefaultRepeatOnStandardEvents() []string {
	return []string{EventComplete, EventTerminate}
}
