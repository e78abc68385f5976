// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package casemodel

// Kind is the type tag of a model element.
type Kind int

const (
	KindUnknown Kind = iota
	KindDefinitions
	KindCase
	KindCasePlanModel
	KindStage
	KindTask
	KindHumanTask
	KindProcessTask
	KindDecisionTask
	KindCaseTask
	KindMilestone
	KindEventListener
	KindPlanItem
	KindDiscretionaryItem
	KindPlanningTable
	KindSentry
)

var kindNames = map[Kind]string{
	KindUnknown:           "unknown",
	KindDefinitions:       "definitions",
	KindCase:              "case",
	KindCasePlanModel:     "casePlanModel",
	KindStage:             "stage",
	KindTask:              "task",
	KindHumanTask:         "humanTask",
	KindProcessTask:       "processTask",
	KindDecisionTask:      "decisionTask",
	KindCaseTask:          "caseTask",
	KindMilestone:         "milestone",
	KindEventListener:     "eventListener",
	KindPlanItem:          "planItem",
	KindDiscretionaryItem: "discretionaryItem",
	KindPlanningTable:     "planningTable",
	KindSentry:            "sentry",
}

// String returns the model type name of the kind, e.g. "humanTask".
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// IsItem reports whether elements of this kind wrap a definition.
func (k Kind) IsItem() bool {
	return k == KindPlanItem || k == KindDiscretionaryItem
}

// IsTask reports whether the kind is one of the task flavours sharing the
// task behavior.
func (k Kind) IsTask() bool {
	switch k {
	case KindTask, KindHumanTask, KindProcessTask, KindDecisionTask:
		return true
	}
	return false
}

// IsPlanItemDefinition reports whether the kind can be referenced by a plan
// item or a discretionary item.
func (k Kind) IsPlanItemDefinition() bool {
	switch k {
	case KindStage, KindCaseTask, KindMilestone, KindEventListener:
		return true
	}
	return k.IsTask()
}
