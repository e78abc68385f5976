package compiler

import (
	"slices"

	"github.com/specialistvlad/casegrid/internal/activity"
	"github.com/specialistvlad/casegrid/internal/casemodel"
	"github.com/specialistvlad/casegrid/internal/listener"
)

// compileListeners attaches the case execution and variable listeners
// declared on the definition and then on the item. A declaration without an
// event lands in the bucket of every event in standardEvents, sharing one
// compiled listener.
func compileListeners(a *activity.Activity, src source, standardEvents []string, cc *Context) error {
	elements := []*casemodel.Element{src.def}
	if src.item != nil {
		elements = append(elements, src.item)
	}

	for _, el := range elements {
		for _, decl := range el.CaseExecutionListeners() {
			l, err := compileListener(a.ID(), el, decl, cc)
			if err != nil {
				return err
			}
			events := standardEvents
			if decl.Event != "" {
				events = []string{decl.Event}
			}
			for _, event := range events {
				a.AddListener(event, l)
			}
		}

		for _, decl := range el.VariableListeners() {
			l, err := compileListener(a.ID(), el, decl, cc)
			if err != nil {
				return err
			}
			events := activity.VariableEvents()
			if decl.Event != "" {
				if !slices.Contains(events, decl.Event) {
					return modelError(el, "unknown variable event %q", decl.Event)
				}
				events = []string{decl.Event}
			}
			for _, event := range events {
				a.AddVariableListener(event, l)
			}
		}
	}
	return nil
}

// compileListener picks the first strategy present in the order class,
// delegate expression, expression and ignores the others.
func compileListener(activityID string, el *casemodel.Element, decl *casemodel.ListenerDecl, cc *Context) (listener.Listener, error) {
	switch {
	case decl.Class != "":
		fields, err := compileFields(activityID, el, decl.Fields, cc)
		if err != nil {
			return nil, err
		}
		return &listener.ClassDelegate{TypeName: decl.Class, Fields: fields}, nil

	case decl.DelegateExpression != "":
		ev, err := cc.compileExpression(activityID, "listener delegate expression", decl.DelegateExpression)
		if err != nil {
			return nil, err
		}
		fields, err := compileFields(activityID, el, decl.Fields, cc)
		if err != nil {
			return nil, err
		}
		return &listener.DelegateExpression{Expression: ev, Fields: fields}, nil

	case decl.Expression != "":
		ev, err := cc.compileExpression(activityID, "listener expression", decl.Expression)
		if err != nil {
			return nil, err
		}
		return &listener.ExpressionListener{Expression: ev}, nil
	}

	return nil, modelError(el, "listener declares no class, delegateExpression or expression")
}

func compileFields(activityID string, el *casemodel.Element, decls []*casemodel.FieldDecl, cc *Context) ([]*listener.FieldDeclaration, error) {
	fields := make([]*listener.FieldDeclaration, 0, len(decls))
	for _, decl := range decls {
		if decl.Name == "" {
			return nil, modelError(el, "listener field without a name")
		}

		switch {
		case decl.StringValue != nil:
			fields = append(fields, &listener.FieldDeclaration{
				Name:  decl.Name,
				Value: listener.FixedValue{Value: *decl.StringValue},
			})
		case decl.Expression != "":
			ev, err := cc.compileExpression(activityID, "listener field "+decl.Name, decl.Expression)
			if err != nil {
				return nil, err
			}
			fields = append(fields, &listener.FieldDeclaration{Name: decl.Name, Value: ev})
		default:
			return nil, modelError(el, "listener field %q has neither a string value nor an expression", decl.Name)
		}
	}
	return fields, nil
}
