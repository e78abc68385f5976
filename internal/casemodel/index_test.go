package casemodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex_Lookup(t *testing.T) {
	milestone := &Element{ID: "M_1", Kind: KindMilestone}
	shadow := &Element{ID: "M_1", Kind: KindTask}
	root := &Element{
		ID:   "Case_1",
		Kind: KindCase,
		Children: []*Element{
			{
				ID:       "CasePlanModel_1",
				Kind:     KindCasePlanModel,
				Children: []*Element{milestone, {Kind: KindPlanningTable}, shadow},
			},
		},
	}

	idx := NewIndex(root)

	got, ok := idx.Lookup("M_1")
	require.True(t, ok)
	assert.Same(t, milestone, got, "first element in depth-first order wins")

	_, ok = idx.Lookup("missing")
	assert.False(t, ok)
	assert.Equal(t, 3, idx.Len())
}

func TestKind(t *testing.T) {
	assert.Equal(t, "humanTask", KindHumanTask.String())
	assert.Equal(t, "unknown", Kind(999).String())

	assert.True(t, KindDecisionTask.IsTask())
	assert.False(t, KindCaseTask.IsTask())
	assert.True(t, KindCaseTask.IsPlanItemDefinition())
	assert.False(t, KindSentry.IsPlanItemDefinition())
	assert.True(t, KindDiscretionaryItem.IsItem())
}

func TestElement_Helpers(t *testing.T) {
	e := &Element{
		Kind:       KindStage,
		Attributes: map[string]string{AttrAutoComplete: "true"},
		Children: []*Element{
			{ID: "PI_1", Kind: KindPlanItem},
			{ID: "S_1", Kind: KindSentry},
			{ID: "PI_2", Kind: KindPlanItem},
		},
		Extensions: []*ExtensionBlock{
			{CaseExecutionListeners: []*ListenerDecl{{Class: "a"}}},
			{CaseExecutionListeners: []*ListenerDecl{{Class: "b"}}, VariableListeners: []*ListenerDecl{{Expression: "c"}}},
		},
	}

	v, ok := e.Attribute(AttrAutoComplete)
	assert.True(t, ok)
	assert.Equal(t, "true", v)
	_, ok = e.Attribute(AttrIsBlocking)
	assert.False(t, ok)

	items := e.ChildrenOfKind(KindPlanItem)
	require.Len(t, items, 2)
	assert.Equal(t, "PI_1", items[0].ID)
	assert.Equal(t, "PI_2", items[1].ID)

	listeners := e.CaseExecutionListeners()
	require.Len(t, listeners, 2)
	assert.Equal(t, "a", listeners[0].Class)
	assert.Equal(t, "b", listeners[1].Class)
	assert.Len(t, e.VariableListeners(), 1)
}
