package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/specialistvlad/casegrid/internal/activity"
	"github.com/specialistvlad/casegrid/internal/compiler"
	"github.com/specialistvlad/casegrid/internal/listener"
	"github.com/specialistvlad/casegrid/internal/render"
)

// Run loads the configured paths, compiles every case and renders the
// result. It returns the first load or compile error.
func (a *App) Run(ctx context.Context) error {
	ctx = a.Context(ctx)
	a.logger.Debug("App.Run method started.", "paths", a.config.Paths)

	definitions, err := a.loader.Load(ctx, a.config.Paths...)
	if err != nil {
		return fmt.Errorf("failed to load case definitions: %w", err)
	}
	if len(definitions.Children) == 0 {
		a.logger.Warn("No cases found, nothing to compile.")
		return nil
	}

	deploymentID := a.config.DeploymentID
	if deploymentID == "" {
		deploymentID = uuid.NewString()
		a.logger.Debug("Generated deployment id.", "deployment_id", deploymentID)
	}

	results, err := compiler.CompileDefinitions(ctx, definitions, compiler.Options{DeploymentID: deploymentID})
	if err != nil {
		return fmt.Errorf("failed to compile case definitions: %w", err)
	}

	cases := make([]*render.Case, 0, len(results))
	for _, r := range results {
		if missing := a.registry.Missing(classTypeNames(r.Root)); len(missing) > 0 {
			a.logger.Warn("Listener types are not registered.", "case", r.Index.CaseKey, "types", missing)
		}
		cases = append(cases, render.Snapshot(r.Root, r.Index))
	}
	a.logger.Info("Cases compiled.", "count", len(cases), "deployment_id", deploymentID)

	switch a.config.Format {
	case FormatYAML:
		return render.YAML(a.outW, cases)
	default:
		render.Table(a.outW, cases)
	}
	return nil
}

// classTypeNames returns the type names of all class delegate listeners in
// the tree rooted at root.
func classTypeNames(root *activity.Activity) []string {
	var names []string
	collect := func(ls []listener.Listener) {
		for _, l := range ls {
			if delegate, ok := l.(*listener.ClassDelegate); ok {
				names = append(names, delegate.TypeName)
			}
		}
	}
	_ = root.Walk(func(a *activity.Activity) error {
		for _, event := range a.ListenerEvents() {
			collect(a.Listeners(event))
		}
		for _, event := range a.VariableListenerEvents() {
			collect(a.VariableListeners(event))
		}
		return nil
	})
	return names
}
