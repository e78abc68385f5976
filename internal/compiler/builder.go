package compiler

import (
	"context"
	"strings"

	"github.com/specialistvlad/casegrid/internal/activity"
	"github.com/specialistvlad/casegrid/internal/casemodel"
	"github.com/specialistvlad/casegrid/internal/ctxlog"
)

// buildActivity runs the steps shared by every handler: it creates the
// activity, fills in name and description and registers the id in the case
// index. The activity stays detached until CompileElement attaches it to
// the current parent. It does not visit children.
func buildActivity(ctx context.Context, src source, behavior activity.Behavior, cc *Context) (*activity.Activity, error) {
	el := src.element()
	if el.ID == "" {
		return nil, modelError(el, "missing id")
	}
	if _, exists := cc.Index.Activity(el.ID); exists {
		return nil, modelError(el, "duplicate activity id")
	}

	name := effectiveName(src)

	a := activity.New(el.ID, name, behavior)
	if description := effectiveDescription(src); description != "" {
		a.SetProperty(activity.PropDescription, description)
	}
	cc.register(a)

	parentID := ""
	if parent := cc.Parent(); parent != nil {
		parentID = parent.ID()
	}
	ctxlog.FromContext(ctx).Debug("Created activity.",
		"id", a.ID(),
		"kind", src.def.Kind.String(),
		"behavior", behavior.Kind().String(),
		"parent", parentID,
	)
	return a, nil
}

// effectiveName prefers the name of a plan item over the definition name.
// Discretionary items always show the definition name.
func effectiveName(src source) string {
	if src.item != nil && src.item.Kind == casemodel.KindPlanItem && src.item.Name != "" {
		return src.item.Name
	}
	return src.def.Name
}

// effectiveDescription prefers the item description, then the definition
// description, then the documentation of the item or the definition.
func effectiveDescription(src source) string {
	if src.item != nil && src.item.Description != "" {
		return src.item.Description
	}
	if src.def.Description != "" {
		return src.def.Description
	}
	if src.item != nil {
		if docs := joinDocumentation(src.item.Documentation); docs != "" {
			return docs
		}
	}
	return joinDocumentation(src.def.Documentation)
}

// joinDocumentation trims every text, drops empty ones and separates the
// rest with a blank line.
func joinDocumentation(docs []string) string {
	var texts []string
	for _, doc := range docs {
		if doc = strings.TrimSpace(doc); doc != "" {
			texts = append(texts, doc)
		}
	}
	return strings.Join(texts, "\n\n")
}
