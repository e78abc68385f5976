package compiler

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/casegrid/internal/activity"
	"github.com/specialistvlad/casegrid/internal/casemeta"
	"github.com/specialistvlad/casegrid/internal/casemodel"
	"github.com/specialistvlad/casegrid/internal/expr"
)

// Context is the state shared by the handlers of one compile pass. It must
// not be shared between passes.
type Context struct {
	Index        *casemeta.Index
	DeploymentID string
	Expressions  expr.Compiler
	// Model resolves definition references of plan items.
	Model *casemodel.Index

	parent *activity.Activity
	// registered lists the ids registered in Index, in order, so a failed
	// element can take its subtree back out.
	registered []string
	// taskDefinitions collects human task definitions until the case plan
	// model hands them over to the index.
	taskDefinitions []*casemeta.TaskDefinition
}

// NewContext creates the context of a compile pass.
func NewContext(model *casemodel.Index, expressions expr.Compiler, deploymentID string) *Context {
	index := casemeta.NewIndex()
	index.DeploymentID = deploymentID
	return &Context{
		Index:        index,
		DeploymentID: deploymentID,
		Expressions:  expressions,
		Model:        model,
	}
}

// Parent returns the activity new activities are created under.
func (c *Context) Parent() *activity.Activity {
	return c.parent
}

// SetParent sets the activity new activities are created under.
func (c *Context) SetParent(a *activity.Activity) {
	c.parent = a
}

// WithParent runs fn with a as the current parent and restores the previous
// parent afterwards.
func (c *Context) WithParent(a *activity.Activity, fn func() error) error {
	previous := c.parent
	c.parent = a
	defer func() { c.parent = previous }()
	return fn()
}

func (c *Context) register(a *activity.Activity) bool {
	if !c.Index.Register(a) {
		return false
	}
	c.registered = append(c.registered, a.ID())
	return true
}

// hasTaskDefinition reports whether a task definition with key was already
// collected in this pass.
func (c *Context) hasTaskDefinition(key string) bool {
	if _, ok := c.Index.TaskDefinition(key); ok {
		return true
	}
	for _, def := range c.taskDefinitions {
		if def.Key == key {
			return true
		}
	}
	return false
}

// passMark records how much case state has been collected so far.
type passMark struct {
	registered      int
	taskDefinitions int
}

func (c *Context) mark() passMark {
	return passMark{registered: len(c.registered), taskDefinitions: len(c.taskDefinitions)}
}

// rollback drops the activities and task definitions collected since m.
func (c *Context) rollback(m passMark) {
	for _, id := range c.registered[m.registered:] {
		c.Index.Unregister(id)
	}
	c.registered = c.registered[:m.registered]
	c.taskDefinitions = c.taskDefinitions[:m.taskDefinitions]
}

// compileExpression compiles text for the element with the given id. Any
// failure is reported as an *expr.CompileError.
func (c *Context) compileExpression(elementID, what, text string) (expr.Evaluable, error) {
	ev, err := c.Expressions.Compile(text)
	if err != nil {
		var compileErr *expr.CompileError
		if !errors.As(err, &compileErr) {
			err = &expr.CompileError{Text: text, Err: err}
		}
		return nil, fmt.Errorf("element %q: %s: %w", elementID, what, err)
	}
	return ev, nil
}
