// Package schemaviz compiles declarative database schemas into Mermaid
// flowchart diagrams.
//
// A schema is an ordered set of tables, each described by a tree of field
// types (see [github.com/syssam/schemaviz/schema] and its field
// subpackage). Compilation walks every table's tree in declaration order,
// collects cross-table reference edges, and renders one nested subgraph
// block per table followed by the edge list:
//
//	s := schema.New().
//	    AddTable("users", field.ObjectOf(
//	        field.F("name", field.String()),
//	        field.F("teamId", field.ID("teams")),
//	    )).
//	    AddTable("teams", field.ObjectOf(
//	        field.F("name", field.String()),
//	    ))
//
//	text, err := schemaviz.Compile(s)
//
// Compilation is pure: it performs no I/O, keeps no global state, and
// produces byte-identical output for identical input.
package schemaviz

import (
	"github.com/syssam/schemaviz/compiler/graph"
	"github.com/syssam/schemaviz/compiler/mermaid"
	"github.com/syssam/schemaviz/schema"
)

// Compile converts the schema into its Mermaid flowchart text.
//
// Tables are processed in declaration order and the first structural defect
// aborts the whole compilation before any output is produced: a duplicate
// table name, a root that is not an object or union, or a record type
// anywhere in a tree (errors from the graph package).
func Compile(s *schema.Schema) (string, error) {
	seen := make(map[string]struct{}, s.Len())
	tables := make([][]graph.Event, 0, s.Len())
	var edges []graph.Edge
	for _, t := range s.Tables() {
		if _, ok := seen[t.Name]; ok {
			return "", &DuplicateTableError{Name: t.Name}
		}
		seen[t.Name] = struct{}{}
		events, tableEdges, err := graph.WalkTable(t)
		if err != nil {
			return "", err
		}
		tables = append(tables, events)
		edges = append(edges, tableEdges...)
	}
	return mermaid.Render(tables, edges), nil
}
