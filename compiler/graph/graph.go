// Package graph turns a table's type tree into a flat sequence of diagram
// events plus the list of cross-table reference edges.
//
// The walk is a pre-order, depth-first, left-to-right traversal in
// declaration order. Group types (object, union, array) emit an open event,
// their children, then a close event; terminal types (primitive, literal,
// reference) emit a single leaf event. The emission order is the observable
// contract: renderers and tests rely on the exact sequence, not on set
// equality.
package graph

import (
	"fmt"

	"github.com/syssam/schemaviz/schema"
	"github.com/syssam/schemaviz/schema/field"
)

// EventKind discriminates the three diagram event shapes.
type EventKind uint8

const (
	// OpenGroup starts a nested block for a group node.
	OpenGroup EventKind = iota
	// Leaf is a single terminal node line.
	Leaf
	// CloseGroup ends the innermost open block.
	CloseGroup
)

// Event is one step of a table walk. Path is the full dot-joined ancestor
// chain including the node's own (possibly "?"-suffixed) name, and is
// unique within a table. Label is the node's own display text. Both are
// empty for CloseGroup events.
type Event struct {
	Kind  EventKind
	Path  string
	Label string
}

// Edge is a directed reference from a leaf node path to a table.
type Edge struct {
	From string
	To   string
}

// WalkTable walks the table's type tree rooted at its name and returns the
// event sequence and reference edges. The root must be an object or union;
// any other kind is an UnsupportedRootError. A record anywhere in the tree
// is an UnsupportedTypeError reported at the first offending path in
// pre-order.
func WalkTable(t *schema.Table) ([]Event, []Edge, error) {
	switch t.Root.(type) {
	case *field.Object, *field.Union:
	default:
		return nil, nil, &UnsupportedRootError{Table: t.Name, Kind: t.Root.String()}
	}
	w := &walker{table: t.Name}
	if err := w.walk([]string{t.Name}, t.Name, t.Root); err != nil {
		return nil, nil, err
	}
	return w.events, w.edges, nil
}

type walker struct {
	table  string
	events []Event
	edges  []Edge
}

// walk dispatches on the node's variant. Unions and arrays are walked as
// pretend objects with synthetic member names, which keeps the traversal
// single-shaped: one recursive function over named children.
func (w *walker) walk(path []string, label string, t field.Type) error {
	switch t := t.(type) {
	case *field.Primitive:
		w.leaf(path, fmt.Sprintf("%s: %s", label, t.Kind))
	case *field.Literal:
		w.leaf(path, fmt.Sprintf("%s: literal '%v'", label, t.Value))
	case *field.Ref:
		w.leaf(path, fmt.Sprintf("%s: id '%s'", label, t.Table))
		w.edges = append(w.edges, Edge{From: PathString(path), To: t.Table})
	case *field.Object:
		return w.group(path, label, t.Fields)
	case *field.Union:
		members := make([]field.Member, len(t.Members))
		for i, m := range t.Members {
			members[i] = field.Member{Name: unionName(i), Type: m}
		}
		return w.group(path, label, members)
	case *field.Array:
		return w.group(path, label, []field.Member{{Name: arrayElem, Type: t.Elem}})
	case *field.Record:
		return &UnsupportedTypeError{Table: w.table, Path: PathString(path)}
	default:
		return fmt.Errorf("schemaviz: unexpected field type %T at %s", t, PathString(path))
	}
	return nil
}

func (w *walker) group(path []string, label string, members []field.Member) error {
	w.events = append(w.events, Event{Kind: OpenGroup, Path: PathString(path), Label: label})
	for _, m := range members {
		name := memberName(m.Name, m.Optional)
		if err := w.walk(ChildPath(path, name), name, m.Type); err != nil {
			return err
		}
	}
	w.events = append(w.events, Event{Kind: CloseGroup})
	return nil
}

func (w *walker) leaf(path []string, label string) {
	w.events = append(w.events, Event{Kind: Leaf, Path: PathString(path), Label: label})
}
