package listener

import (
	"context"
	"fmt"

	"github.com/specialistvlad/casegrid/internal/expr"
	"github.com/zclconf/go-cty/cty"
)

// Strategy identifies how a listener delegates its work.
type Strategy int

const (
	StrategyClassDelegate Strategy = iota
	StrategyDelegateExpression
	StrategyExpression
)

func (s Strategy) String() string {
	switch s {
	case StrategyClassDelegate:
		return "class"
	case StrategyDelegateExpression:
		return "delegateExpression"
	case StrategyExpression:
		return "expression"
	}
	return "unknown"
}

// Instantiator creates objects by qualified type name.
type Instantiator interface {
	Instantiate(typeName string) (any, error)
}

// VariableChange describes the variable a variable event is about.
type VariableChange struct {
	Name  string
	Value cty.Value
}

// Invocation is everything a listener needs when the runtime fires an event.
type Invocation struct {
	ActivityID string
	Event      string
	Variables  map[string]cty.Value
	// Variable is nil for lifecycle events.
	Variable     *VariableChange
	Instantiator Instantiator
}

// CaseExecutionListener is implemented by objects that react to lifecycle events.
type CaseExecutionListener interface {
	Notify(ctx context.Context, inv *Invocation) error
}

// VariableListener is implemented by objects that react to variable events.
type VariableListener interface {
	NotifyVariable(ctx context.Context, inv *Invocation) error
}

// Listener is a compiled listener declaration.
type Listener interface {
	Strategy() Strategy
	Notify(ctx context.Context, inv *Invocation) error
}

// ClassDelegate instantiates TypeName on every invocation and injects Fields.
type ClassDelegate struct {
	TypeName string
	Fields   []*FieldDeclaration
}

// Strategy implements Listener.
func (l *ClassDelegate) Strategy() Strategy { return StrategyClassDelegate }

// Notify implements Listener.
func (l *ClassDelegate) Notify(ctx context.Context, inv *Invocation) error {
	if inv.Instantiator == nil {
		return fmt.Errorf("class delegate %q: no instantiator available", l.TypeName)
	}
	target, err := inv.Instantiator.Instantiate(l.TypeName)
	if err != nil {
		return fmt.Errorf("class delegate %q: %w", l.TypeName, err)
	}
	if err := injectFields(target, l.Fields, inv.Variables); err != nil {
		return fmt.Errorf("class delegate %q: %w", l.TypeName, err)
	}
	return dispatch(ctx, target, inv)
}

// DelegateExpression resolves the listener object from an expression.
type DelegateExpression struct {
	Expression expr.Evaluable
	Fields     []*FieldDeclaration
}

// Strategy implements Listener.
func (l *DelegateExpression) Strategy() Strategy { return StrategyDelegateExpression }

// Notify implements Listener.
func (l *DelegateExpression) Notify(ctx context.Context, inv *Invocation) error {
	val, err := l.Expression.Evaluate(inv.Variables)
	if err != nil {
		return err
	}
	target, ok := BeanFromVal(val)
	if !ok {
		return fmt.Errorf("delegate expression %q did not resolve to an object", l.Expression.Text())
	}
	if err := injectFields(target, l.Fields, inv.Variables); err != nil {
		return fmt.Errorf("delegate expression %q: %w", l.Expression.Text(), err)
	}
	return dispatch(ctx, target, inv)
}

// ExpressionListener evaluates Expression as the listener body.
type ExpressionListener struct {
	Expression expr.Evaluable
}

// Strategy implements Listener.
func (l *ExpressionListener) Strategy() Strategy { return StrategyExpression }

// Notify implements Listener. The result of the expression is discarded.
func (l *ExpressionListener) Notify(_ context.Context, inv *Invocation) error {
	_, err := l.Expression.Evaluate(inv.Variables)
	return err
}

func dispatch(ctx context.Context, target any, inv *Invocation) error {
	if inv.Variable != nil {
		vl, ok := target.(VariableListener)
		if !ok {
			return fmt.Errorf("%T does not implement VariableListener", target)
		}
		return vl.NotifyVariable(ctx, inv)
	}
	cl, ok := target.(CaseExecutionListener)
	if !ok {
		return fmt.Errorf("%T does not implement CaseExecutionListener", target)
	}
	return cl.Notify(ctx, inv)
}
