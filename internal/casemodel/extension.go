// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package casemodel

// ExtensionBlock carries vendor specific declarations that are not part of
// the core modeling language.
type ExtensionBlock struct {
	CaseExecutionListeners []*ListenerDecl
	VariableListeners      []*ListenerDecl
}

// ListenerDecl declares one listener. Exactly one of Class,
// DelegateExpression and Expression is expected to be set.
type ListenerDecl struct {
	// Event restricts the listener to one event, empty means the standard
	// events of the element.
	Event              string
	Class              string
	DelegateExpression string
	Expression         string
	Fields             []*FieldDecl
}

// FieldDecl declares a value injected into a class delegate.
type FieldDecl struct {
	Name string
	// StringValue is a literal value; nil when the field uses an expression.
	StringValue *string
	Expression  string
}

// String returns a pointer to s, for building literal field declarations.
func String(s string) *string {
	return &s
}
