package testutil

import "github.com/specialistvlad/casegrid/internal/casemodel"

// Option customizes an element built by the helpers in this file.
type Option func(*casemodel.Element)

// New builds an element of kind with the given id and options.
func New(kind casemodel.Kind, id string, opts ...Option) *casemodel.Element {
	el := &casemodel.Element{ID: id, Kind: kind, Attributes: make(map[string]string)}
	for _, opt := range opts {
		opt(el)
	}
	return el
}

// Case builds a case element.
func Case(id string, opts ...Option) *casemodel.Element {
	return New(casemodel.KindCase, id, opts...)
}

// PlanModel builds a case plan model element.
func PlanModel(id string, opts ...Option) *casemodel.Element {
	return New(casemodel.KindCasePlanModel, id, opts...)
}

// PlanItem builds a plan item referencing the definition defID.
func PlanItem(id, defID string, opts ...Option) *casemodel.Element {
	return New(casemodel.KindPlanItem, id, append([]Option{Ref(defID)}, opts...)...)
}

// DiscretionaryItem builds a discretionary item referencing defID.
func DiscretionaryItem(id, defID string, opts ...Option) *casemodel.Element {
	return New(casemodel.KindDiscretionaryItem, id, append([]Option{Ref(defID)}, opts...)...)
}

// PlanningTable builds a planning table holding children.
func PlanningTable(id string, children ...*casemodel.Element) *casemodel.Element {
	return New(casemodel.KindPlanningTable, id, Children(children...))
}

func Name(name string) Option {
	return func(el *casemodel.Element) { el.Name = name }
}

func Description(description string) Option {
	return func(el *casemodel.Element) { el.Description = description }
}

func Documentation(docs ...string) Option {
	return func(el *casemodel.Element) { el.Documentation = append(el.Documentation, docs...) }
}

func Attr(name, value string) Option {
	return func(el *casemodel.Element) { el.Attributes[name] = value }
}

func Ref(defID string) Option {
	return func(el *casemodel.Element) { el.DefinitionRef = defID }
}

func Children(children ...*casemodel.Element) Option {
	return func(el *casemodel.Element) { el.Children = append(el.Children, children...) }
}

func ItemControl(c *casemodel.Control) Option {
	return func(el *casemodel.Element) { el.ItemControl = c }
}

func DefaultControl(c *casemodel.Control) Option {
	return func(el *casemodel.Element) { el.DefaultControl = c }
}

func EntryCriteria(ids ...string) Option {
	return func(el *casemodel.Element) { el.EntryCriteria = append(el.EntryCriteria, ids...) }
}

func ExitCriteria(ids ...string) Option {
	return func(el *casemodel.Element) { el.ExitCriteria = append(el.ExitCriteria, ids...) }
}

// SentryOf sets the sentry payload of a sentry element.
func SentryOf(spec *casemodel.SentrySpec) Option {
	return func(el *casemodel.Element) { el.Sentry = spec }
}

// CaseListeners adds an extension block with case execution listeners.
func CaseListeners(decls ...*casemodel.ListenerDecl) Option {
	return func(el *casemodel.Element) {
		el.Extensions = append(el.Extensions, &casemodel.ExtensionBlock{CaseExecutionListeners: decls})
	}
}

// VariableListeners adds an extension block with variable listeners.
func VariableListeners(decls ...*casemodel.ListenerDecl) Option {
	return func(el *casemodel.Element) {
		el.Extensions = append(el.Extensions, &casemodel.ExtensionBlock{VariableListeners: decls})
	}
}
