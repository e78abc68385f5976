package compiler

import (
	"context"
	"fmt"

	"github.com/specialistvlad/casegrid/internal/activity"
	"github.com/specialistvlad/casegrid/internal/casemeta"
	"github.com/specialistvlad/casegrid/internal/casemodel"
	"github.com/specialistvlad/casegrid/internal/ctxlog"
	"github.com/specialistvlad/casegrid/internal/expr"
)

// Options configures a compile pass.
type Options struct {
	DeploymentID string
	// Expressions defaults to an HCL template compiler with the standard
	// function set.
	Expressions expr.Compiler
	// Model resolves definition references. When nil, an index over the
	// compiled case element is used.
	Model *casemodel.Index
}

// Result is one compiled case.
type Result struct {
	Root  *activity.Activity
	Index *casemeta.Index
}

// Compile compiles a case element into its activity tree and metadata
// index. On error neither is returned.
func Compile(ctx context.Context, caseElement *casemodel.Element, opts Options) (*activity.Activity, *casemeta.Index, error) {
	if caseElement == nil {
		return nil, nil, &ModelError{Kind: casemodel.KindCase, Reason: "no case element"}
	}
	if caseElement.Kind != casemodel.KindCase {
		return nil, nil, &ModelError{
			ElementID: caseElement.ID,
			Kind:      caseElement.Kind,
			Reason:    "expected a case element",
		}
	}

	model := opts.Model
	if model == nil {
		model = casemodel.NewIndex(caseElement)
	}
	expressions := opts.Expressions
	if expressions == nil {
		expressions = expr.NewHCLCompiler(nil)
	}

	ctx = ctxlog.With(ctx, "case", caseElement.ID)
	cc := NewContext(model, expressions, opts.DeploymentID)
	root, err := CompileElement(ctx, caseElement, cc)
	if err != nil {
		return nil, nil, fmt.Errorf("compiling case %q: %w", caseElement.ID, err)
	}

	ctxlog.FromContext(ctx).Debug("Compiled case.",
		"deployment_id", cc.Index.DeploymentID,
		"activities", cc.Index.ActivityCount(),
	)
	return root, cc.Index, nil
}

// CompileDefinitions compiles every case under a definitions element, each
// with its own context and index. It stops at the first failing case.
func CompileDefinitions(ctx context.Context, definitions *casemodel.Element, opts Options) ([]Result, error) {
	if definitions == nil || definitions.Kind != casemodel.KindDefinitions {
		return nil, &ModelError{Kind: casemodel.KindDefinitions, Reason: "expected a definitions element"}
	}
	if opts.Model == nil {
		opts.Model = casemodel.NewIndex(definitions)
	}

	var results []Result
	for _, caseElement := range definitions.ChildrenOfKind(casemodel.KindCase) {
		root, index, err := Compile(ctx, caseElement, opts)
		if err != nil {
			return nil, err
		}
		results = append(results, Result{Root: root, Index: index})
	}
	return results, nil
}
