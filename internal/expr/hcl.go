package expr

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// sourceName is the pseudo file name reported in expression diagnostics.
const sourceName = "<expression>"

// HCLCompiler compiles expression text as HCL templates.
type HCLCompiler struct {
	functions map[string]function.Function
}

// NewHCLCompiler creates a compiler with the standard function set plus any
// extra functions. Extra functions override standard ones of the same name.
func NewHCLCompiler(extra map[string]function.Function) *HCLCompiler {
	functions := StandardFunctions()
	for name, fn := range extra {
		functions[name] = fn
	}
	return &HCLCompiler{functions: functions}
}

// Compile implements the Compiler interface. It fails with a *CompileError
// when the text does not parse or calls a function that is not available.
func (c *HCLCompiler) Compile(text string) (Evaluable, error) {
	parsed, diags := hclsyntax.ParseTemplate([]byte(text), sourceName, hcl.InitialPos)
	if diags.HasErrors() {
		return nil, &CompileError{Text: text, Err: diags}
	}

	refs, funcs := extractReferencesAndFunctions(parsed)
	for _, name := range funcs {
		if _, ok := c.functions[name]; !ok {
			return nil, &CompileError{Text: text, Err: fmt.Errorf("call to unknown function %q", name)}
		}
	}

	return &Expression{
		text:            text,
		expr:            parsed,
		functions:       c.functions,
		references:      refs,
		calledFunctions: funcs,
	}, nil
}

// Expression is an Evaluable backed by a parsed HCL template.
type Expression struct {
	text      string
	expr      hclsyntax.Expression
	functions map[string]function.Function

	references      []hcl.Traversal
	calledFunctions []string
}

// Text implements Evaluable.
func (e *Expression) Text() string {
	return e.text
}

// Evaluate implements Evaluable.
func (e *Expression) Evaluate(vars map[string]cty.Value) (cty.Value, error) {
	evalCtx := &hcl.EvalContext{
		Variables: vars,
		Functions: e.functions,
	}
	val, diags := e.expr.Value(evalCtx)
	if diags.HasErrors() {
		return cty.NilVal, fmt.Errorf("evaluating %q: %w", e.text, diags)
	}
	return val, nil
}

// References returns the canonical form of every variable traversal in the
// expression, sorted and de-duplicated, e.g. "customer.name".
func (e *Expression) References() []string {
	keys := make([]string, 0, len(e.references))
	for _, t := range e.references {
		keys = append(keys, TraversalKey(t))
	}
	return keys
}

// RootNames returns the distinct root variable names the expression reads.
func (e *Expression) RootNames() []string {
	seen := make(map[string]struct{})
	var roots []string
	for _, t := range e.references {
		root := t.RootName()
		if _, ok := seen[root]; ok {
			continue
		}
		seen[root] = struct{}{}
		roots = append(roots, root)
	}
	sort.Strings(roots)
	return roots
}

// CalledFunctions returns the names of all functions the expression calls,
// sorted and de-duplicated.
func (e *Expression) CalledFunctions() []string {
	return e.calledFunctions
}

// TraversalKey generates a stable, canonical string representation for an hcl.Traversal,
// suitable for use as a map key.
func TraversalKey(t hcl.Traversal) string {
	// e.g., var.foo[0].bar
	return string(hclwrite.TokensForTraversal(t).Bytes())
}

// extractReferencesAndFunctions walks an expression to find all unique
// variable traversals and function calls. The returned slices are sorted to
// ensure a deterministic order.
func extractReferencesAndFunctions(expr hclsyntax.Expression) ([]hcl.Traversal, []string) {
	traversals := make(map[string]hcl.Traversal)
	for _, traversal := range expr.Variables() {
		traversals[TraversalKey(traversal)] = traversal
	}

	functions := make(map[string]struct{})
	hclsyntax.VisitAll(expr, func(n hclsyntax.Node) hcl.Diagnostics {
		if call, ok := n.(*hclsyntax.FunctionCallExpr); ok {
			functions[call.Name] = struct{}{}
		}
		return nil
	})

	traversalKeys := make([]string, 0, len(traversals))
	for k := range traversals {
		traversalKeys = append(traversalKeys, k)
	}
	sort.Strings(traversalKeys)

	traversalSlice := make([]hcl.Traversal, 0, len(traversals))
	for _, k := range traversalKeys {
		traversalSlice = append(traversalSlice, traversals[k])
	}

	functionSlice := make([]string, 0, len(functions))
	for f := range functions {
		functionSlice = append(functionSlice, f)
	}
	sort.Strings(functionSlice)

	return traversalSlice, functionSlice
}
