package print

import (
	"bytes"
	"context"
	"testing"

	"github.com/specialistvlad/casegrid/internal/listener"
	"github.com/specialistvlad/casegrid/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestListener_ThroughClassDelegate(t *testing.T) {
	var out bytes.Buffer
	reg := registry.New()
	(&Module{Out: &out}).Register(reg)

	delegate := &listener.ClassDelegate{
		TypeName: TypeName,
		Fields: []*listener.FieldDeclaration{
			{Name: "prefix", Value: listener.FixedValue{Value: "> "}},
		},
	}

	err := delegate.Notify(context.Background(), &listener.Invocation{
		ActivityID:   "PI_1",
		Event:        "complete",
		Variables:    map[string]cty.Value{"b": cty.NumberIntVal(2), "a": cty.StringVal("x")},
		Instantiator: reg,
	})
	require.NoError(t, err)
	assert.Equal(t, "> PI_1 complete\n      a = cty.StringVal(\"x\")\n      b = cty.NumberIntVal(2)\n", out.String())

	out.Reset()
	err = delegate.Notify(context.Background(), &listener.Invocation{
		ActivityID:   "PI_1",
		Event:        "update",
		Variable:     &listener.VariableChange{Name: "a", Value: cty.StringVal("y")},
		Instantiator: reg,
	})
	require.NoError(t, err)
	assert.Equal(t, "> PI_1 variable update a = cty.StringVal(\"y\")\n", out.String())
}

func TestModule_Register(t *testing.T) {
	reg := registry.New()
	(&Module{}).Register(reg)

	assert.Equal(t, []string{TypeName}, reg.TypeNames())
	obj, err := reg.Instantiate(TypeName)
	require.NoError(t, err)
	assert.IsType(t, &Listener{}, obj)
}
