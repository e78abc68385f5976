package controlrule_test

import (
	"testing"

	"github.com/specialistvlad/casegrid/internal/controlrule"
	"github.com/specialistvlad/casegrid/internal/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestRule_Evaluate(t *testing.T) {
	c := expr.NewHCLCompiler(nil)

	compile := func(t *testing.T, text string) expr.Evaluable {
		t.Helper()
		e, err := c.Compile(text)
		require.NoError(t, err)
		return e
	}

	t.Run("no condition always holds", func(t *testing.T) {
		rule := controlrule.New(nil)
		ok, err := rule.Evaluate(nil)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Empty(t, rule.Text())
	})

	t.Run("boolean condition", func(t *testing.T) {
		rule := controlrule.New(compile(t, "${count < 3}"))

		ok, err := rule.Evaluate(map[string]cty.Value{"count": cty.NumberIntVal(2)})
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = rule.Evaluate(map[string]cty.Value{"count": cty.NumberIntVal(3)})
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, "${count < 3}", rule.Text())
	})

	t.Run("string booleans convert", func(t *testing.T) {
		rule := controlrule.New(compile(t, "true"))
		ok, err := rule.Evaluate(nil)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("null counts as false", func(t *testing.T) {
		rule := controlrule.New(compile(t, "${flag}"))
		ok, err := rule.Evaluate(map[string]cty.Value{"flag": cty.NullVal(cty.Bool)})
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("non boolean result fails", func(t *testing.T) {
		rule := controlrule.New(compile(t, "not a bool"))
		_, err := rule.Evaluate(nil)
		require.Error(t, err)
	})
}
