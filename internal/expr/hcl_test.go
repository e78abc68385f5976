package expr_test

import (
	"errors"
	"testing"

	"github.com/specialistvlad/casegrid/internal/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestHCLCompiler_Compile(t *testing.T) {
	c := expr.NewHCLCompiler(nil)

	testCases := []struct {
		name     string
		text     string
		vars     map[string]cty.Value
		expected cty.Value
	}{
		{
			name:     "single interpolation keeps the value type",
			text:     "${amount > 1000}",
			vars:     map[string]cty.Value{"amount": cty.NumberIntVal(1500)},
			expected: cty.True,
		},
		{
			name:     "literal text",
			text:     "aPriority",
			expected: cty.StringVal("aPriority"),
		},
		{
			name:     "mixed template",
			text:     "Review of ${caseId}",
			vars:     map[string]cty.Value{"caseId": cty.StringVal("C-7")},
			expected: cty.StringVal("Review of C-7"),
		},
		{
			name: "standard function",
			text: "${upper(customer.name)}",
			vars: map[string]cty.Value{
				"customer": cty.ObjectVal(map[string]cty.Value{"name": cty.StringVal("ada")}),
			},
			expected: cty.StringVal("ADA"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			compiled, err := c.Compile(tc.text)
			require.NoError(t, err)
			require.Equal(t, tc.text, compiled.Text())

			got, err := compiled.Evaluate(tc.vars)
			require.NoError(t, err)
			assert.True(t, tc.expected.RawEquals(got), "expected %#v, got %#v", tc.expected, got)
		})
	}
}

func TestHCLCompiler_CompileErrors(t *testing.T) {
	c := expr.NewHCLCompiler(nil)

	for _, text := range []string{"${1 +}", "${amount >", "${nope(1)}"} {
		t.Run(text, func(t *testing.T) {
			compiled, err := c.Compile(text)
			require.Error(t, err)
			require.Nil(t, compiled)

			var compileErr *expr.CompileError
			require.True(t, errors.As(err, &compileErr))
			assert.Equal(t, text, compileErr.Text)
		})
	}
}

func TestExpression_Analysis(t *testing.T) {
	c := expr.NewHCLCompiler(nil)

	compiled, err := c.Compile("${lower(customer.name) == var.expected && upper(customer.name) != \"\"}")
	require.NoError(t, err)

	e, ok := compiled.(*expr.Expression)
	require.True(t, ok)
	assert.Equal(t, []string{"customer.name", "var.expected"}, e.References())
	assert.Equal(t, []string{"customer", "var"}, e.RootNames())
	assert.Equal(t, []string{"lower", "upper"}, e.CalledFunctions())
}

func TestExpression_EvaluateUnknownVariable(t *testing.T) {
	c := expr.NewHCLCompiler(nil)

	compiled, err := c.Compile("${missing}")
	require.NoError(t, err)

	_, err = compiled.Evaluate(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
}
