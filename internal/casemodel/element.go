// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines Element, the single node type of the case model.
//
// Why one node type instead of a struct per kind?
//
// The compiler dispatches on Kind and reads a handful of common attributes
// from every node (id, name, description, extension blocks). Keeping those
// on one type lets the shared tree building logic stay kind agnostic, while
// kind specific data lives in Attributes or in the optional payload fields.
package casemodel

// Element is a typed, read-only declarative model node.
type Element struct {
	ID            string
	Name          string
	Description   string
	Documentation []string
	Kind          Kind

	// Attributes holds kind specific scalar attributes, see the Attr* constants.
	Attributes map[string]string

	Children   []*Element
	Extensions []*ExtensionBlock

	// DefinitionRef is the id of the definition wrapped by a plan item or a
	// discretionary item.
	DefinitionRef string
	// ItemControl is the control declared on a plan item or discretionary item.
	ItemControl *Control
	// DefaultControl is the control declared on a plan item definition.
	DefaultControl *Control

	// EntryCriteria and ExitCriteria reference sentry ids of the enclosing stage.
	EntryCriteria []string
	ExitCriteria  []string

	// Sentry is set for elements of KindSentry.
	Sentry *SentrySpec

	FSInformation *FSInfo
}

// Attribute names understood by the compiler.
const (
	AttrIsBlocking      = "isBlocking"
	AttrAutoComplete    = "autoComplete"
	AttrDueDate         = "dueDate"
	AttrFollowUpDate    = "followUpDate"
	AttrPriority        = "priority"
	AttrAssignee        = "assignee"
	AttrPerformer       = "performer"
	AttrCandidateUsers  = "candidateUsers"
	AttrCandidateGroups = "candidateGroups"
	AttrFormKey         = "formKey"
	AttrProcessRef      = "processRef"
	AttrDecisionRef     = "decisionRef"
	AttrCaseRef         = "caseRef"
	AttrBinding         = "binding"
	AttrVersion         = "version"
)

// Attribute returns the named attribute and whether it was declared.
func (e *Element) Attribute(name string) (string, bool) {
	if e == nil || e.Attributes == nil {
		return "", false
	}
	v, ok := e.Attributes[name]
	return v, ok
}

// ChildrenOfKind returns the direct children of the given kind, in source order.
func (e *Element) ChildrenOfKind(kind Kind) []*Element {
	var children []*Element
	for _, child := range e.Children {
		if child.Kind == kind {
			children = append(children, child)
		}
	}
	return children
}

// CaseExecutionListeners returns the case execution listener declarations
// of all extension blocks, in source order.
func (e *Element) CaseExecutionListeners() []*ListenerDecl {
	var decls []*ListenerDecl
	for _, ext := range e.Extensions {
		decls = append(decls, ext.CaseExecutionListeners...)
	}
	return decls
}

// VariableListeners returns the variable listener declarations of all
// extension blocks, in source order.
func (e *Element) VariableListeners() []*ListenerDecl {
	var decls []*ListenerDecl
	for _, ext := range e.Extensions {
		decls = append(decls, ext.VariableListeners...)
	}
	return decls
}

// Location returns a short source description for error messages.
func (e *Element) Location() string {
	if e == nil || e.FSInformation == nil {
		return ""
	}
	return e.FSInformation.FilePath
}
