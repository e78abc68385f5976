// Package casemeta holds the per case data collected while a case model is
// compiled that does not belong to the activity tree itself.
package casemeta

import (
	"sort"

	"github.com/specialistvlad/casegrid/internal/activity"
	"github.com/specialistvlad/casegrid/internal/expr"
)

// Index accumulates case level metadata during one compile pass.
type Index struct {
	// CaseKey is the id of the compiled case.
	CaseKey      string
	DeploymentID string

	taskDefinitions map[string]*TaskDefinition
	activities      map[string]*activity.Activity
}

// NewIndex creates an empty index.
func NewIndex() *Index {
	return &Index{
		taskDefinitions: make(map[string]*TaskDefinition),
		activities:      make(map[string]*activity.Activity),
	}
}

// Register records a under its id. It reports false when another activity
// already uses that id.
func (idx *Index) Register(a *activity.Activity) bool {
	if _, exists := idx.activities[a.ID()]; exists {
		return false
	}
	idx.activities[a.ID()] = a
	return true
}

// Unregister removes the activity registered under id, if any.
func (idx *Index) Unregister(id string) {
	delete(idx.activities, id)
}

// Activity returns the registered activity with the given id.
func (idx *Index) Activity(id string) (*activity.Activity, bool) {
	a, ok := idx.activities[id]
	return a, ok
}

// ActivityCount returns the number of registered activities.
func (idx *Index) ActivityCount() int {
	return len(idx.activities)
}

// PutTaskDefinition stores def under its key, replacing any previous one.
func (idx *Index) PutTaskDefinition(def *TaskDefinition) {
	idx.taskDefinitions[def.Key] = def
}

// TaskDefinition returns the task definition with the given key.
func (idx *Index) TaskDefinition(key string) (*TaskDefinition, bool) {
	def, ok := idx.taskDefinitions[key]
	return def, ok
}

// TaskDefinitionKeys returns all task definition keys, sorted.
func (idx *Index) TaskDefinitionKeys() []string {
	keys := make([]string, 0, len(idx.taskDefinitions))
	for k := range idx.taskDefinitions {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// TaskDefinition describes how the runtime creates a human task. Every
// expression is compiled; nil means the attribute was not declared.
type TaskDefinition struct {
	Key string

	NameExpression         expr.Evaluable
	DescriptionExpression  expr.Evaluable
	DueDateExpression      expr.Evaluable
	FollowUpDateExpression expr.Evaluable
	PriorityExpression     expr.Evaluable
	AssigneeExpression     expr.Evaluable
	FormKey                expr.Evaluable

	CandidateUserExpressions  []expr.Evaluable
	CandidateGroupExpressions []expr.Evaluable
}
