package compiler_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/casegrid/internal/activity"
	"github.com/specialistvlad/casegrid/internal/casemodel"
	"github.com/specialistvlad/casegrid/internal/compiler"
	"github.com/specialistvlad/casegrid/internal/render"
	"github.com/specialistvlad/casegrid/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleCase covers every plan item definition kind, planned both as plan
// items and as discretionary items.
func sampleCase() *casemodel.Element {
	definitions := []*casemodel.Element{
		testutil.New(casemodel.KindStage, "Stage_1", testutil.Name("Stage")),
		testutil.New(casemodel.KindTask, "Task_1"),
		testutil.New(casemodel.KindHumanTask, "HumanTask_1", testutil.Name("Review")),
		testutil.New(casemodel.KindProcessTask, "ProcessTask_1", testutil.Attr(casemodel.AttrProcessRef, "invoice")),
		testutil.New(casemodel.KindDecisionTask, "DecisionTask_1", testutil.Attr(casemodel.AttrDecisionRef, "rules")),
		testutil.New(casemodel.KindCaseTask, "CaseTask_1", testutil.Attr(casemodel.AttrCaseRef, "subCase")),
		testutil.New(casemodel.KindMilestone, "Milestone_1"),
		testutil.New(casemodel.KindEventListener, "EventListener_1"),
	}

	children := append([]*casemodel.Element{}, definitions...)
	var discretionary []*casemodel.Element
	for _, def := range definitions {
		children = append(children, testutil.PlanItem("PI_"+def.ID, def.ID))
		discretionary = append(discretionary, testutil.DiscretionaryItem("DI_"+def.ID, def.ID))
	}
	children = append(children, testutil.PlanningTable("PlanningTable_1", discretionary...))

	children = append(children,
		testutil.New(casemodel.KindStage, "Stage_Nested", testutil.Children(
			testutil.New(casemodel.KindTask, "Task_Inner"),
			testutil.PlanItem("PI_Task_Inner", "Task_Inner"),
		)),
		testutil.PlanItem("PI_Stage_Nested", "Stage_Nested"),
	)

	return testutil.Case("Case_1", testutil.Name("A Case"), testutil.Children(
		testutil.PlanModel("CasePlanModel_1", testutil.Children(children...)),
	))
}

func TestCompile_BehaviorTable(t *testing.T) {
	root, _, err := compiler.Compile(context.Background(), sampleCase(), compiler.Options{})
	require.NoError(t, err)

	expected := map[string]struct {
		behavior     activity.BehaviorKind
		activityType string
	}{
		"Stage_1":         {activity.BehaviorStage, "stage"},
		"Task_1":          {activity.BehaviorTask, "task"},
		"HumanTask_1":     {activity.BehaviorTask, "task"},
		"ProcessTask_1":   {activity.BehaviorTask, "task"},
		"DecisionTask_1":  {activity.BehaviorTask, "task"},
		"CaseTask_1":      {activity.BehaviorCaseTask, "caseTask"},
		"Milestone_1":     {activity.BehaviorMilestone, "milestone"},
		"EventListener_1": {activity.BehaviorEventListener, "eventListener"},
	}

	for defID, want := range expected {
		for _, prefix := range []string{"PI_", "DI_"} {
			a, ok := root.Find(prefix + defID)
			require.True(t, ok, prefix+defID)
			assert.Equal(t, want.behavior, a.Behavior().Kind(), a.ID())
			assert.Equal(t, want.activityType, a.ActivityType(), a.ID())
		}
	}

	assert.Equal(t, activity.BehaviorNone, root.Behavior().Kind())
	planModel, ok := root.Find("CasePlanModel_1")
	require.True(t, ok)
	assert.Equal(t, activity.BehaviorStage, planModel.Behavior().Kind())
	assert.Equal(t, "casePlanModel", planModel.ActivityType())
}

func TestCompile_TaskPayload(t *testing.T) {
	root, index, err := compiler.Compile(context.Background(), sampleCase(), compiler.Options{})
	require.NoError(t, err)

	human, _ := root.Find("PI_HumanTask_1")
	task := human.Behavior().(*activity.Task)
	assert.Equal(t, activity.TaskHuman, task.Type)
	assert.True(t, task.Blocking)
	assert.True(t, human.IsBlocking())
	assert.Equal(t, "HumanTask_1", task.TaskDefinitionKey)

	def, ok := index.TaskDefinition("HumanTask_1")
	require.True(t, ok)
	require.NotNil(t, def.NameExpression)
	assert.Equal(t, "Review", def.NameExpression.Text())
	assert.Equal(t, []string{"HumanTask_1"}, index.TaskDefinitionKeys())

	process, _ := root.Find("PI_ProcessTask_1")
	require.NotNil(t, process.Behavior().(*activity.Task).Ref)
	assert.Equal(t, "invoice", process.Behavior().(*activity.Task).Ref.Text())

	caseTask, _ := root.Find("DI_CaseTask_1")
	assert.Equal(t, "subCase", caseTask.Behavior().(*activity.CaseTask).CaseRef.Text())
}

func TestCompile_DiscretionaryFlag(t *testing.T) {
	root, _, err := compiler.Compile(context.Background(), sampleCase(), compiler.Options{})
	require.NoError(t, err)

	require.NoError(t, root.Walk(func(a *activity.Activity) error {
		assert.Equal(t, strings.HasPrefix(a.ID(), "DI_"), a.IsDiscretionary(), a.ID())
		return nil
	}))
}

func TestCompile_Parents(t *testing.T) {
	root, _, err := compiler.Compile(context.Background(), sampleCase(), compiler.Options{})
	require.NoError(t, err)

	planModel, _ := root.Find("CasePlanModel_1")
	assert.Same(t, root, planModel.Parent())

	for _, child := range planModel.Children() {
		assert.Same(t, planModel, child.Parent(), child.ID())
	}

	inner, ok := root.Find("PI_Task_Inner")
	require.True(t, ok)
	assert.Equal(t, "PI_Stage_Nested", inner.Parent().ID())

	seen := make(map[*activity.Activity]bool)
	require.NoError(t, root.Walk(func(a *activity.Activity) error {
		for _, child := range a.Children() {
			assert.False(t, seen[child], "activity %s has more than one parent", child.ID())
			seen[child] = true
		}
		return nil
	}))
}

func TestCompile_Idempotent(t *testing.T) {
	first, firstIndex, err := compiler.Compile(context.Background(), sampleCase(), compiler.Options{DeploymentID: "d"})
	require.NoError(t, err)
	second, secondIndex, err := compiler.Compile(context.Background(), sampleCase(), compiler.Options{DeploymentID: "d"})
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	if diff := cmp.Diff(render.Snapshot(first, firstIndex), render.Snapshot(second, secondIndex)); diff != "" {
		t.Errorf("compiled trees differ (-first +second):\n%s", diff)
	}
}
