package render

import (
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Table writes one table per case, with one row per activity in depth
// first order. Nesting is shown by indenting the id.
func Table(w io.Writer, cases []*Case) {
	for _, c := range cases {
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.SetTitle("case " + c.Key)
		t.AppendHeader(table.Row{"Activity", "Name", "Behavior", "Properties", "Listeners"})
		appendRows(t, c.Root, 0)
		t.Render()

		if len(c.TaskDefinitions) > 0 {
			td := table.NewWriter()
			td.SetOutputMirror(w)
			td.AppendHeader(table.Row{"Task Definition", "Expressions"})
			for _, def := range c.TaskDefinitions {
				td.AppendRow(table.Row{def.Key, joinMap(def.Expressions)})
			}
			td.Render()
		}
	}
}

func appendRows(t table.Writer, n *Node, depth int) {
	if n == nil {
		return
	}
	t.AppendRow(table.Row{
		strings.Repeat("  ", depth) + n.ID,
		n.Name,
		n.Behavior,
		joinMap(n.Properties),
		countListeners(n),
	})
	for _, child := range n.Children {
		appendRows(t, child, depth+1)
	}
}

func joinMap(m map[string]string) string {
	var lines []string
	for _, k := range sortedKeys(m) {
		lines = append(lines, k+"="+m[k])
	}
	return strings.Join(lines, "\n")
}

// countListeners summarizes the listener buckets as "event:count" lines.
func countListeners(n *Node) string {
	var lines []string
	for _, event := range sortedKeys(n.Listeners) {
		lines = append(lines, event+":"+strconv.Itoa(len(n.Listeners[event])))
	}
	for _, event := range sortedKeys(n.VariableListeners) {
		lines = append(lines, "variable."+event+":"+strconv.Itoa(len(n.VariableListeners[event])))
	}
	return strings.Join(lines, "\n")
}
