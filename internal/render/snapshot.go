// Package render turns compiled activity trees into plain data and prints
// them as YAML or as tables.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/specialistvlad/casegrid/internal/activity"
	"github.com/specialistvlad/casegrid/internal/casemeta"
	"github.com/specialistvlad/casegrid/internal/controlrule"
	"github.com/specialistvlad/casegrid/internal/expr"
	"github.com/specialistvlad/casegrid/internal/listener"
)

// Case is the plain form of one compiled case.
type Case struct {
	Key             string           `yaml:"key"`
	DeploymentID    string           `yaml:"deploymentId,omitempty"`
	TaskDefinitions []TaskDefinition `yaml:"taskDefinitions,omitempty"`
	Root            *Node            `yaml:"root"`
}

// Node is the plain form of one activity.
type Node struct {
	ID                string              `yaml:"id"`
	Name              string              `yaml:"name,omitempty"`
	Behavior          string              `yaml:"behavior"`
	Properties        map[string]string   `yaml:"properties,omitempty"`
	Listeners         map[string][]string `yaml:"listeners,omitempty"`
	VariableListeners map[string][]string `yaml:"variableListeners,omitempty"`
	Sentries          []Sentry            `yaml:"sentries,omitempty"`
	EntryCriteria     []string            `yaml:"entryCriteria,omitempty"`
	ExitCriteria      []string            `yaml:"exitCriteria,omitempty"`
	Children          []*Node             `yaml:"children,omitempty"`
}

// Sentry is the plain form of a sentry declaration.
type Sentry struct {
	ID      string   `yaml:"id"`
	IfPart  string   `yaml:"ifPart,omitempty"`
	OnParts []string `yaml:"onParts,omitempty"`
}

// TaskDefinition is the plain form of a human task definition. Only the
// declared expressions are listed.
type TaskDefinition struct {
	Key         string            `yaml:"key"`
	Expressions map[string]string `yaml:"expressions,omitempty"`
}

// Snapshot converts a compiled case. index may be nil.
func Snapshot(root *activity.Activity, index *casemeta.Index) *Case {
	c := &Case{Root: node(root)}
	if index == nil {
		return c
	}

	c.Key = index.CaseKey
	c.DeploymentID = index.DeploymentID
	for _, key := range index.TaskDefinitionKeys() {
		def, _ := index.TaskDefinition(key)
		c.TaskDefinitions = append(c.TaskDefinitions, taskDefinition(def))
	}
	return c
}

func node(a *activity.Activity) *Node {
	n := &Node{
		ID:                a.ID(),
		Name:              a.Name(),
		Behavior:          behavior(a.Behavior()),
		Properties:        properties(a),
		Listeners:         listeners(a.ListenerEvents(), a.Listeners),
		VariableListeners: listeners(a.VariableListenerEvents(), a.VariableListeners),
	}
	for _, s := range a.Sentries() {
		sentry := Sentry{ID: s.ID}
		if s.IfPart != nil {
			sentry.IfPart = s.IfPart.Text()
		}
		for _, on := range s.OnParts {
			sentry.OnParts = append(sentry.OnParts, on.SourceID+"."+on.StandardEvent)
		}
		n.Sentries = append(n.Sentries, sentry)
	}
	for _, s := range a.EntryCriteria() {
		n.EntryCriteria = append(n.EntryCriteria, s.ID)
	}
	for _, s := range a.ExitCriteria() {
		n.ExitCriteria = append(n.ExitCriteria, s.ID)
	}
	for _, child := range a.Children() {
		n.Children = append(n.Children, node(child))
	}
	return n
}

func behavior(b activity.Behavior) string {
	switch v := b.(type) {
	case *activity.Stage:
		if v.PlanModel {
			return "stage(planModel)"
		}
	case *activity.Task:
		s := "task(" + v.Type.String()
		if v.Ref != nil {
			s += " " + v.Ref.Text()
		}
		return s + ")"
	case *activity.CaseTask:
		if v.CaseRef != nil {
			return "caseTask(" + v.CaseRef.Text() + ")"
		}
	}
	return b.Kind().String()
}

func properties(a *activity.Activity) map[string]string {
	props := make(map[string]string)
	for _, key := range activity.PropertyKeys() {
		v, ok := a.Property(key)
		if !ok {
			continue
		}
		props[string(key)] = FormatValue(v)
	}
	if len(props) == 0 {
		return nil
	}
	return props
}

// FormatValue renders a property value as text.
func FormatValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case *controlrule.Rule:
		if val.Text() == "" {
			return "always"
		}
		return val.Text()
	case []string:
		return strings.Join(val, ",")
	}
	return fmt.Sprint(v)
}

func listeners(events []string, bucket func(string) []listener.Listener) map[string][]string {
	if len(events) == 0 {
		return nil
	}
	out := make(map[string][]string, len(events))
	for _, event := range events {
		for _, l := range bucket(event) {
			out[event] = append(out[event], DescribeListener(l))
		}
	}
	return out
}

// DescribeListener returns a one line description of a compiled listener.
func DescribeListener(l listener.Listener) string {
	switch v := l.(type) {
	case *listener.ClassDelegate:
		return v.Strategy().String() + " " + v.TypeName + fields(v.Fields)
	case *listener.DelegateExpression:
		return v.Strategy().String() + " " + v.Expression.Text() + fields(v.Fields)
	case *listener.ExpressionListener:
		return v.Strategy().String() + " " + v.Expression.Text()
	}
	return l.Strategy().String()
}

func fields(decls []*listener.FieldDeclaration) string {
	if len(decls) == 0 {
		return ""
	}
	parts := make([]string, 0, len(decls))
	for _, f := range decls {
		parts = append(parts, f.Name+"="+f.Value.Text())
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func taskDefinition(def *casemeta.TaskDefinition) TaskDefinition {
	exprs := map[string]expr.Evaluable{
		"name":         def.NameExpression,
		"description":  def.DescriptionExpression,
		"dueDate":      def.DueDateExpression,
		"followUpDate": def.FollowUpDateExpression,
		"priority":     def.PriorityExpression,
		"assignee":     def.AssigneeExpression,
		"formKey":      def.FormKey,
	}
	td := TaskDefinition{Key: def.Key, Expressions: make(map[string]string)}
	for name, e := range exprs {
		if e != nil {
			td.Expressions[name] = e.Text()
		}
	}
	if list := texts(def.CandidateUserExpressions); list != "" {
		td.Expressions["candidateUsers"] = list
	}
	if list := texts(def.CandidateGroupExpressions); list != "" {
		td.Expressions["candidateGroups"] = list
	}
	if len(td.Expressions) == 0 {
		td.Expressions = nil
	}
	return td
}

func texts(list []expr.Evaluable) string {
	parts := make([]string, 0, len(list))
	for _, e := range list {
		parts = append(parts, e.Text())
	}
	return strings.Join(parts, ",")
}

// sortedKeys returns the keys of m in order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
