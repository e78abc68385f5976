package print

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/specialistvlad/casegrid/internal/ctxlog"
	"github.com/specialistvlad/casegrid/internal/listener"
	"github.com/specialistvlad/casegrid/internal/registry"
)

// TypeName is the class name case models use to attach the print listener.
const TypeName = "casegrid.print"

// Module implements the registry.Module interface for this package.
type Module struct {
	// Out receives the printed lines. Defaults to os.Stdout.
	Out io.Writer
}

// Listener prints every event it is notified about together with the
// case variables. Prefix is injected from the `prefix` field declaration.
type Listener struct {
	Prefix string `field:"prefix"`

	out io.Writer
}

// Notify implements listener.CaseExecutionListener.
func (l *Listener) Notify(ctx context.Context, inv *listener.Invocation) error {
	ctxlog.FromContext(ctx).Info("Printing case event", "activity", inv.ActivityID, "event", inv.Event)
	fmt.Fprintf(l.out, "%s%s %s\n", l.Prefix, inv.ActivityID, inv.Event)
	l.printVariables(inv)
	return nil
}

// NotifyVariable implements listener.VariableListener.
func (l *Listener) NotifyVariable(ctx context.Context, inv *listener.Invocation) error {
	ctxlog.FromContext(ctx).Info("Printing variable event", "activity", inv.ActivityID, "event", inv.Event)
	fmt.Fprintf(l.out, "%s%s variable %s %s = %s\n",
		l.Prefix, inv.ActivityID, inv.Event, inv.Variable.Name, inv.Variable.Value.GoString())
	return nil
}

func (l *Listener) printVariables(inv *listener.Invocation) {
	if len(inv.Variables) == 0 {
		fmt.Fprintln(l.out, "      (no variables)")
		return
	}

	// Sort keys for consistent output
	keys := make([]string, 0, len(inv.Variables))
	for k := range inv.Variables {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Fprintf(l.out, "      %s = %s\n", k, inv.Variables[k].GoString())
	}
}

// Register registers the listener type with the registry.
func (m *Module) Register(r *registry.Registry) {
	out := m.Out
	if out == nil {
		out = os.Stdout
	}
	r.RegisterType(TypeName, func() any { return &Listener{out: out} })
}
