// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package casemodel

// Control groups the rule declarations of an item control or a default control.
// A nil rule means the rule was not declared.
type Control struct {
	Required         *Rule
	Repetition       *Rule
	ManualActivation *Rule
}

// Rule is a declared control rule. An empty Condition declares a rule that
// always holds.
type Rule struct {
	Condition string
	// RepeatOnStandardEvent only applies to repetition rules.
	RepeatOnStandardEvent string
}

// SentrySpec is the payload of a sentry element.
type SentrySpec struct {
	// IfPart is the condition text of the if part, empty if none.
	IfPart  string
	OnParts []*OnPart
}

// OnPart references a plan item and the standard event that satisfies it.
type OnPart struct {
	SourceRef     string
	StandardEvent string
}
