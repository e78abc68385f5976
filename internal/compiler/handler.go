package compiler

import (
	"context"

	"github.com/specialistvlad/casegrid/internal/activity"
	"github.com/specialistvlad/casegrid/internal/casemodel"
)

// Handler compiles one element kind. The element is either a plan item
// definition or a plan item or discretionary item wrapping one.
type Handler interface {
	Handle(ctx context.Context, el *casemodel.Element, cc *Context) (*activity.Activity, error)
}

var handlers map[casemodel.Kind]Handler

func init() {
	handlers = map[casemodel.Kind]Handler{
		casemodel.KindCase:          caseHandler{},
		casemodel.KindCasePlanModel: casePlanModelHandler{},
		casemodel.KindStage:         stageHandler{},
		casemodel.KindTask:          taskHandler{taskType: activity.TaskGeneric},
		casemodel.KindHumanTask:     taskHandler{taskType: activity.TaskHuman},
		casemodel.KindProcessTask:   taskHandler{taskType: activity.TaskProcess},
		casemodel.KindDecisionTask:  taskHandler{taskType: activity.TaskDecision},
		casemodel.KindCaseTask:      caseTaskHandler{},
		casemodel.KindMilestone:     milestoneHandler{},
		casemodel.KindEventListener: eventListenerHandler{},
	}
}

// HandlerFor returns the handler of kind.
func HandlerFor(kind casemodel.Kind) (Handler, bool) {
	h, ok := handlers[kind]
	return h, ok
}

// source pairs the element being compiled with its definition. For a plan
// item definition compiled on its own, item is nil.
type source struct {
	item *casemodel.Element
	def  *casemodel.Element
}

// element returns the element that names the activity.
func (s source) element() *casemodel.Element {
	if s.item != nil {
		return s.item
	}
	return s.def
}

// resolve finds the definition of el.
func resolve(el *casemodel.Element, cc *Context) (source, error) {
	if !el.Kind.IsItem() {
		return source{def: el}, nil
	}
	if el.DefinitionRef == "" {
		return source{}, modelError(el, "missing definition reference")
	}
	if cc.Model == nil {
		return source{}, modelError(el, "unresolved definition reference %q", el.DefinitionRef)
	}
	def, ok := cc.Model.Lookup(el.DefinitionRef)
	if !ok {
		return source{}, modelError(el, "unresolved definition reference %q", el.DefinitionRef)
	}
	if !def.Kind.IsPlanItemDefinition() {
		return source{}, modelError(el, "definition %q is a %s, which cannot be planned", def.ID, def.Kind)
	}
	return source{item: el, def: def}, nil
}

// CompileElement compiles el under the current parent of cc. Plan items and
// discretionary items are dispatched on the kind of their definition. The
// activity is attached to the parent only once its whole subtree compiled;
// on error the parent and the index are left as they were.
func CompileElement(ctx context.Context, el *casemodel.Element, cc *Context) (*activity.Activity, error) {
	kind := el.Kind
	if kind.IsItem() {
		src, err := resolve(el, cc)
		if err != nil {
			return nil, err
		}
		kind = src.def.Kind
	}

	h, ok := HandlerFor(kind)
	if !ok {
		return nil, &UnsupportedElementKindError{ElementID: el.ID, Kind: kind}
	}

	m := cc.mark()
	a, err := h.Handle(ctx, el, cc)
	if err != nil {
		cc.rollback(m)
		return nil, err
	}
	if el.Kind == casemodel.KindDiscretionaryItem {
		a.SetProperty(activity.PropDiscretionary, true)
	}
	if parent := cc.Parent(); parent != nil {
		parent.Attach(a)
	}
	return a, nil
}
