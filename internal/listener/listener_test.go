package listener_test

import (
	"context"
	"errors"
	"testing"

	"github.com/specialistvlad/casegrid/internal/expr"
	"github.com/specialistvlad/casegrid/internal/listener"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

type recordingListener struct {
	Greeting string
	Limit    int `field:"max"`
	Template expr.Evaluable

	events    []string
	variables []string
}

func (r *recordingListener) Notify(_ context.Context, inv *listener.Invocation) error {
	r.events = append(r.events, inv.Event)
	return nil
}

func (r *recordingListener) NotifyVariable(_ context.Context, inv *listener.Invocation) error {
	r.variables = append(r.variables, inv.Variable.Name)
	return nil
}

type stubInstantiator struct {
	objects map[string]any
}

func (s *stubInstantiator) Instantiate(typeName string) (any, error) {
	obj, ok := s.objects[typeName]
	if !ok {
		return nil, errors.New("unknown type " + typeName)
	}
	return obj, nil
}

func compile(t *testing.T, text string) expr.Evaluable {
	t.Helper()
	e, err := expr.NewHCLCompiler(nil).Compile(text)
	require.NoError(t, err)
	return e
}

func TestClassDelegate_Notify(t *testing.T) {
	target := &recordingListener{}
	inst := &stubInstantiator{objects: map[string]any{"a.class.Name": target}}

	l := &listener.ClassDelegate{
		TypeName: "a.class.Name",
		Fields: []*listener.FieldDeclaration{
			{Name: "greeting", Value: listener.FixedValue{Value: "a string value"}},
			{Name: "max", Value: compile(t, "${limit * 2}")},
			{Name: "template", Value: compile(t, "${name}")},
		},
	}
	require.Equal(t, listener.StrategyClassDelegate, l.Strategy())

	err := l.Notify(context.Background(), &listener.Invocation{
		Event:        "create",
		Variables:    map[string]cty.Value{"limit": cty.NumberIntVal(21)},
		Instantiator: inst,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"create"}, target.events)
	assert.Equal(t, "a string value", target.Greeting)
	assert.Equal(t, 42, target.Limit)
	require.NotNil(t, target.Template)
	assert.Equal(t, "${name}", target.Template.Text())
}

func TestClassDelegate_NotifyErrors(t *testing.T) {
	l := &listener.ClassDelegate{TypeName: "missing.Type"}

	err := l.Notify(context.Background(), &listener.Invocation{Event: "create"})
	require.ErrorContains(t, err, "no instantiator")

	err = l.Notify(context.Background(), &listener.Invocation{
		Event:        "create",
		Instantiator: &stubInstantiator{},
	})
	require.ErrorContains(t, err, "unknown type missing.Type")

	withField := &listener.ClassDelegate{
		TypeName: "t",
		Fields:   []*listener.FieldDeclaration{{Name: "nope", Value: listener.FixedValue{Value: "x"}}},
	}
	err = withField.Notify(context.Background(), &listener.Invocation{
		Instantiator: &stubInstantiator{objects: map[string]any{"t": &recordingListener{}}},
	})
	require.ErrorContains(t, err, `no settable field "nope"`)
}

func TestDelegateExpression_Notify(t *testing.T) {
	target := &recordingListener{}
	l := &listener.DelegateExpression{Expression: compile(t, "${beans.recorder}")}
	require.Equal(t, listener.StrategyDelegateExpression, l.Strategy())

	vars := map[string]cty.Value{
		"beans": cty.ObjectVal(map[string]cty.Value{"recorder": listener.BeanVal(target)}),
	}

	err := l.Notify(context.Background(), &listener.Invocation{
		Variables: vars,
		Variable:  &listener.VariableChange{Name: "amount", Value: cty.NumberIntVal(1)},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"amount"}, target.variables)

	notABean := &listener.DelegateExpression{Expression: compile(t, "plain")}
	err = notABean.Notify(context.Background(), &listener.Invocation{})
	require.ErrorContains(t, err, "did not resolve to an object")
}

func TestExpressionListener_Notify(t *testing.T) {
	l := &listener.ExpressionListener{Expression: compile(t, "${upper(name)}")}
	require.Equal(t, listener.StrategyExpression, l.Strategy())

	require.NoError(t, l.Notify(context.Background(), &listener.Invocation{
		Variables: map[string]cty.Value{"name": cty.StringVal("x")},
	}))
	require.Error(t, l.Notify(context.Background(), &listener.Invocation{}))
}

func TestBean_RoundTrip(t *testing.T) {
	obj := &recordingListener{}
	got, ok := listener.BeanFromVal(listener.BeanVal(obj))
	require.True(t, ok)
	assert.Same(t, obj, got)

	_, ok = listener.BeanFromVal(cty.StringVal("x"))
	assert.False(t, ok)
}
