package hclmodel

import (
	"context"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/specialistvlad/casegrid/internal/ctxlog"
)

// isExprDefined reports whether an optional attribute was written in the
// source. gohcl fills omitted optional expression attributes with a
// placeholder whose range is zero width, so a nil check is not enough.
func isExprDefined(ctx context.Context, expr hcl.Expression, attrName string) bool {
	if expr == nil {
		return false
	}
	rng := expr.Range()
	isDefined := rng.End.Byte > rng.Start.Byte

	ctxlog.FromContext(ctx).Debug("Checking if HCL attribute was explicitly defined.",
		"attribute", attrName,
		"hcl_range", rng.String(),
		"is_defined", isDefined,
	)
	return isDefined
}

// expressionText returns the expression source text of an attribute, or ""
// when the attribute was omitted. Quoted strings are returned as written
// between the quotes, with pure literals unescaped; any other expression is
// wrapped into a template interpolation.
func expressionText(ctx context.Context, expr hcl.Expression, attrName string, src []byte) string {
	if !isExprDefined(ctx, expr, attrName) {
		return ""
	}

	raw := string(expr.Range().SliceBytes(src))
	switch e := expr.(type) {
	case *hclsyntax.TemplateExpr:
		if e.IsStringLiteral() {
			if v, diags := e.Value(nil); !diags.HasErrors() && v.IsKnown() && !v.IsNull() {
				return v.AsString()
			}
		}
		if strings.HasPrefix(raw, `"`) {
			return strings.TrimSuffix(strings.TrimPrefix(raw, `"`), `"`)
		}
		return raw
	case *hclsyntax.TemplateWrapExpr:
		return strings.TrimSuffix(strings.TrimPrefix(raw, `"`), `"`)
	}
	return "${" + raw + "}"
}
