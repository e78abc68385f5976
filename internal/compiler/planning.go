package compiler

import (
	"context"
	"fmt"

	"github.com/specialistvlad/casegrid/internal/activity"
	"github.com/specialistvlad/casegrid/internal/casemodel"
)

// compileStageBody compiles the contents of a stage or case plan model
// definition under stage: sentries first, then plan items, then the
// discretionary items of its planning tables.
func compileStageBody(ctx context.Context, stage *activity.Activity, def *casemodel.Element, cc *Context) error {
	if err := compileSentries(stage, def, cc); err != nil {
		return err
	}

	return cc.WithParent(stage, func() error {
		for _, item := range def.ChildrenOfKind(casemodel.KindPlanItem) {
			if _, err := CompileElement(ctx, item, cc); err != nil {
				return err
			}
		}
		for _, table := range def.ChildrenOfKind(casemodel.KindPlanningTable) {
			if err := compilePlanningTable(ctx, table, cc); err != nil {
				return err
			}
		}
		return nil
	})
}

// compilePlanningTable compiles the discretionary items of table and of the
// tables nested in it, in source order.
func compilePlanningTable(ctx context.Context, table *casemodel.Element, cc *Context) error {
	for _, child := range table.Children {
		switch child.Kind {
		case casemodel.KindDiscretionaryItem:
			if _, err := CompileElement(ctx, child, cc); err != nil {
				return fmt.Errorf("planning table %q: %w", table.ID, err)
			}
		case casemodel.KindPlanningTable:
			if err := compilePlanningTable(ctx, child, cc); err != nil {
				return err
			}
		}
	}
	return nil
}
