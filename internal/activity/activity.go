package activity

import (
	"fmt"
	"sort"

	"github.com/specialistvlad/casegrid/internal/listener"
)

// Activity is one node of the compiled activity tree.
type Activity struct {
	id       string
	name     string
	parent   *Activity
	children []*Activity
	behavior Behavior

	properties        map[PropertyKey]any
	listeners         map[string][]listener.Listener
	variableListeners map[string][]listener.Listener

	sentries      []*SentryDeclaration
	entryCriteria []*SentryDeclaration
	exitCriteria  []*SentryDeclaration
}

// New creates a root activity.
func New(id, name string, behavior Behavior) *Activity {
	if behavior == nil {
		behavior = None{}
	}
	return &Activity{
		id:                id,
		name:              name,
		behavior:          behavior,
		properties:        make(map[PropertyKey]any),
		listeners:         make(map[string][]listener.Listener),
		variableListeners: make(map[string][]listener.Listener),
	}
}

// CreateChild creates an activity under a and appends it to a's children.
func (a *Activity) CreateChild(id, name string, behavior Behavior) *Activity {
	child := New(id, name, behavior)
	a.Attach(child)
	return child
}

// Attach appends a detached activity to a's children. It panics when child
// already has a parent.
func (a *Activity) Attach(child *Activity) {
	if child.parent != nil {
		panic(fmt.Sprintf("activity %q is already attached to %q", child.id, child.parent.id))
	}
	child.parent = a
	a.children = append(a.children, child)
}

// ID returns the id of the model element the activity was compiled from.
func (a *Activity) ID() string { return a.id }

// Name returns the display name.
func (a *Activity) Name() string { return a.name }

// Behavior returns the behavior fixed at creation.
func (a *Activity) Behavior() Behavior { return a.behavior }

// Parent returns the owning activity, or nil for a root.
func (a *Activity) Parent() *Activity { return a.parent }

// Children returns the child activities in creation order.
func (a *Activity) Children() []*Activity {
	return append([]*Activity(nil), a.children...)
}

// AddListener appends l to the bucket of event.
func (a *Activity) AddListener(event string, l listener.Listener) {
	a.listeners[event] = append(a.listeners[event], l)
}

// Listeners returns the listeners of event in declaration order.
func (a *Activity) Listeners(event string) []listener.Listener {
	return append([]listener.Listener(nil), a.listeners[event]...)
}

// ListenerEvents returns the events that have listeners, sorted.
func (a *Activity) ListenerEvents() []string {
	return sortedKeys(a.listeners)
}

// AddVariableListener appends l to the bucket of the variable event.
func (a *Activity) AddVariableListener(event string, l listener.Listener) {
	a.variableListeners[event] = append(a.variableListeners[event], l)
}

// VariableListeners returns the variable listeners of event in declaration order.
func (a *Activity) VariableListeners(event string) []listener.Listener {
	return append([]listener.Listener(nil), a.variableListeners[event]...)
}

// VariableListenerEvents returns the variable events that have listeners, sorted.
func (a *Activity) VariableListenerEvents() []string {
	return sortedKeys(a.variableListeners)
}

// AddSentry declares a sentry on a. It reports false when a already owns a
// sentry with the same id.
func (a *Activity) AddSentry(s *SentryDeclaration) bool {
	if _, exists := a.Sentry(s.ID); exists {
		return false
	}
	a.sentries = append(a.sentries, s)
	return true
}

// Sentry returns the sentry with the given id owned by a.
func (a *Activity) Sentry(id string) (*SentryDeclaration, bool) {
	for _, s := range a.sentries {
		if s.ID == id {
			return s, true
		}
	}
	return nil, false
}

// Sentries returns the sentries owned by a in declaration order.
func (a *Activity) Sentries() []*SentryDeclaration {
	return append([]*SentryDeclaration(nil), a.sentries...)
}

// AddEntryCriterion appends a sentry guarding the activity's entry.
func (a *Activity) AddEntryCriterion(s *SentryDeclaration) {
	a.entryCriteria = append(a.entryCriteria, s)
}

// AddExitCriterion appends a sentry guarding the activity's exit.
func (a *Activity) AddExitCriterion(s *SentryDeclaration) {
	a.exitCriteria = append(a.exitCriteria, s)
}

// EntryCriteria returns the entry criteria in declaration order.
func (a *Activity) EntryCriteria() []*SentryDeclaration {
	return append([]*SentryDeclaration(nil), a.entryCriteria...)
}

// ExitCriteria returns the exit criteria in declaration order.
func (a *Activity) ExitCriteria() []*SentryDeclaration {
	return append([]*SentryDeclaration(nil), a.exitCriteria...)
}

// Walk visits a and its descendants depth first, parents before children.
// It stops at the first error returned by fn.
func (a *Activity) Walk(fn func(*Activity) error) error {
	if err := fn(a); err != nil {
		return err
	}
	for _, child := range a.children {
		if err := child.Walk(fn); err != nil {
			return err
		}
	}
	return nil
}

// Find returns the activity with the given id in the subtree rooted at a.
func (a *Activity) Find(id string) (*Activity, bool) {
	if a.id == id {
		return a, true
	}
	for _, child := range a.children {
		if found, ok := child.Find(id); ok {
			return found, true
		}
	}
	return nil, false
}

func sortedKeys(m map[string][]listener.Listener) []string {
	keys := make([]string, 0, len(m))
	for k, v := range m {
		if len(v) > 0 {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
