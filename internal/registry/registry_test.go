package registry

import (
	"testing"

	"github.com/specialistvlad/casegrid/internal/listener"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct{ n int }

type sampleModule struct{}

func (sampleModule) Register(r *Registry) {
	r.RegisterType("test.Sample", func() any { return &sample{} })
}

var _ listener.Instantiator = (*Registry)(nil)

func TestRegistry_Instantiate(t *testing.T) {
	r := New()
	sampleModule{}.Register(r)

	first, err := r.Instantiate("test.Sample")
	require.NoError(t, err)
	second, err := r.Instantiate("test.Sample")
	require.NoError(t, err)

	require.IsType(t, &sample{}, first)
	assert.NotSame(t, first, second, "every call creates a fresh instance")

	_, err = r.Instantiate("test.Unknown")
	require.ErrorContains(t, err, "not registered")
}

func TestRegistry_NilFactoryResult(t *testing.T) {
	r := New()
	r.RegisterType("test.Nil", func() any { return nil })

	_, err := r.Instantiate("test.Nil")
	require.ErrorContains(t, err, "returned nil")
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	r := New()
	sampleModule{}.Register(r)

	require.Panics(t, func() { sampleModule{}.Register(r) })
}

func TestRegistry_TypeNamesAndMissing(t *testing.T) {
	r := New()
	r.RegisterType("b.Type", func() any { return &sample{} })
	r.RegisterType("a.Type", func() any { return &sample{} })

	assert.Equal(t, []string{"a.Type", "b.Type"}, r.TypeNames())
	assert.Equal(t, []string{"c.Type", "d.Type"}, r.Missing([]string{"d.Type", "a.Type", "c.Type", "d.Type"}))
	assert.Empty(t, r.Missing(nil))
}
