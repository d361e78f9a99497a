// Package mermaid serializes walked table events and reference edges into
// Mermaid flowchart text.
//
// The output is a single `flowchart LR` block: one `subgraph` per table and
// per nested group, one line per leaf, `end` lines closing each group, and
// all reference edges appended after the table blocks as `from-->to` lines.
package mermaid

import (
	"fmt"
	"strings"

	"github.com/syssam/schemaviz/compiler/graph"
)

const (
	// header declares the diagram kind and left-to-right layout.
	header = "flowchart LR"
	// indentUnit is one nesting level of indentation.
	indentUnit = "  "
	// closeGroup closes the innermost subgraph.
	closeGroup = "end"
	// arrow joins an edge's source path and target table, with no spaces.
	arrow = "-->"
)

// Render serializes per-table event sequences and the combined edge list.
// Table blocks come first, in table order, followed by every edge line.
// Indentation is computed afterwards in a single pass over the lines.
func Render(tables [][]graph.Event, edges []graph.Edge) string {
	var lines []string
	lines = append(lines, header)
	for _, events := range tables {
		for _, ev := range events {
			switch ev.Kind {
			case graph.OpenGroup:
				lines = append(lines, fmt.Sprintf("subgraph %s[%s]", ev.Path, ev.Label))
			case graph.Leaf:
				lines = append(lines, fmt.Sprintf("%s[%s]", ev.Path, ev.Label))
			case graph.CloseGroup:
				lines = append(lines, closeGroup)
			}
		}
	}
	for _, e := range edges {
		lines = append(lines, e.From+arrow+e.To)
	}
	return indent(lines)
}

// indent applies 2-space nesting in one left-to-right scan with an explicit
// depth counter. Depth increases after the header and after every subgraph
// opener, and decreases before each "end" so the closer lines up with its
// opener. Blank lines are dropped rather than emitted.
func indent(lines []string) string {
	var b strings.Builder
	depth := 0
	for i, line := range lines {
		if line == "" {
			continue
		}
		if line == closeGroup && depth > 0 {
			depth--
		}
		if i > 0 {
			b.WriteByte('\n')
		}
		for n := 0; n < depth; n++ {
			b.WriteString(indentUnit)
		}
		b.WriteString(line)
		if line == header || strings.HasPrefix(line, "subgraph ") {
			depth++
		}
	}
	return b.String()
}
