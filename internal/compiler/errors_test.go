package compiler_test

import (
	"context"
	"errors"
	"testing"

	"github.com/specialistvlad/casegrid/internal/casemodel"
	"github.com/specialistvlad/casegrid/internal/compiler"
	"github.com/specialistvlad/casegrid/internal/expr"
	"github.com/specialistvlad/casegrid/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingCompiler struct{}

func (failingCompiler) Compile(string) (expr.Evaluable, error) {
	return nil, errors.New("engine unavailable")
}

func compileCase(planModelChildren ...*casemodel.Element) error {
	_, _, err := compiler.Compile(context.Background(),
		testutil.Case("Case_1", testutil.Children(
			testutil.PlanModel("CasePlanModel_1", testutil.Children(planModelChildren...)),
		)),
		compiler.Options{},
	)
	return err
}

func TestCompile_ModelErrors(t *testing.T) {
	testCases := []struct {
		name      string
		children  []*casemodel.Element
		elementID string
		reason    string
	}{
		{
			name:      "unresolved definition",
			children:  []*casemodel.Element{testutil.PlanItem("PI_1", "Missing")},
			elementID: "PI_1",
			reason:    `unresolved definition reference "Missing"`,
		},
		{
			name:      "missing definition reference",
			children:  []*casemodel.Element{testutil.New(casemodel.KindPlanItem, "PI_1")},
			elementID: "PI_1",
			reason:    "missing definition reference",
		},
		{
			name: "definition that cannot be planned",
			children: []*casemodel.Element{
				testutil.PlanningTable("PT_1"),
				testutil.PlanItem("PI_1", "PT_1"),
			},
			elementID: "PI_1",
			reason:    "cannot be planned",
		},
		{
			name: "missing id",
			children: []*casemodel.Element{
				testutil.New(casemodel.KindTask, "Task_1"),
				testutil.PlanItem("", "Task_1"),
			},
			reason: "missing id",
		},
		{
			name: "duplicate id",
			children: []*casemodel.Element{
				testutil.New(casemodel.KindTask, "Task_1"),
				testutil.PlanItem("PI_1", "Task_1"),
				testutil.PlanItem("PI_1", "Task_1"),
			},
			elementID: "PI_1",
			reason:    "duplicate activity id",
		},
		{
			name: "invalid boolean attribute",
			children: []*casemodel.Element{
				testutil.New(casemodel.KindTask, "Task_1", testutil.Attr(casemodel.AttrIsBlocking, "sometimes")),
				testutil.PlanItem("PI_1", "Task_1"),
			},
			elementID: "Task_1",
			reason:    "is not a boolean",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := compileCase(tc.children...)

			var modelErr *compiler.ModelError
			require.ErrorAs(t, err, &modelErr)
			assert.Equal(t, tc.elementID, modelErr.ElementID)
			assert.Contains(t, modelErr.Reason, tc.reason)
		})
	}
}

func TestCompile_UnsupportedKind(t *testing.T) {
	cc := newContext()
	_, err := compiler.CompileElement(context.Background(), testutil.New(casemodel.KindSentry, "Sentry_1"), cc)

	var unsupported *compiler.UnsupportedElementKindError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, casemodel.KindSentry, unsupported.Kind)
	assert.Equal(t, "Sentry_1", unsupported.ElementID)
}

func TestCompile_NotACase(t *testing.T) {
	_, _, err := compiler.Compile(context.Background(), testutil.PlanModel("CasePlanModel_1"), compiler.Options{})

	var modelErr *compiler.ModelError
	require.ErrorAs(t, err, &modelErr)
}

func TestCompile_ExpressionEngineFailure(t *testing.T) {
	planModel := testutil.PlanModel("CasePlanModel_1", testutil.Children(
		testutil.New(casemodel.KindTask, "Task_1", testutil.CaseListeners(&casemodel.ListenerDecl{Expression: "${x}"})),
		testutil.PlanItem("PI_1", "Task_1"),
	))

	_, _, err := compiler.Compile(context.Background(),
		testutil.Case("Case_1", testutil.Children(planModel)),
		compiler.Options{Expressions: failingCompiler{}},
	)

	var compileErr *expr.CompileError
	require.ErrorAs(t, err, &compileErr)
	assert.Equal(t, "${x}", compileErr.Text)
	assert.ErrorContains(t, err, "engine unavailable")
}

func TestCompile_UnknownFunction(t *testing.T) {
	err := compileCase(
		testutil.New(casemodel.KindTask, "Task_1"),
		testutil.PlanItem("PI_1", "Task_1", testutil.ItemControl(&casemodel.Control{
			Repetition: &casemodel.Rule{Condition: "${nope(1)}"},
		})),
	)

	var compileErr *expr.CompileError
	require.ErrorAs(t, err, &compileErr)
}
