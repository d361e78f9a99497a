package schema

import (
	"github.com/syssam/schemaviz/schema/field"
)

// Table is a named top-level entity with one root type tree. The root must
// be an object or union; the compiler rejects anything else.
type Table struct {
	Name string
	Root field.Type
}

// NewTable returns a table with the given name and root type.
func NewTable(name string, root field.Type) *Table {
	return &Table{Name: name, Root: root}
}

// Schema is an ordered collection of tables. Insertion order determines the
// order of the generated diagram blocks, so it is kept as declared rather
// than sorted.
type Schema struct {
	tables []*Table
}

// New returns an empty schema.
func New() *Schema {
	return &Schema{}
}

// AddTable appends a table definition and returns the schema for chaining.
// Name uniqueness is not enforced here; the compiler reports duplicates.
func (s *Schema) AddTable(name string, root field.Type) *Schema {
	s.tables = append(s.tables, NewTable(name, root))
	return s
}

// Add appends already-constructed tables in order.
func (s *Schema) Add(tables ...*Table) *Schema {
	s.tables = append(s.tables, tables...)
	return s
}

// Tables returns the tables in declaration order. The returned slice is the
// schema's own backing slice and must not be mutated by callers.
func (s *Schema) Tables() []*Table {
	return s.tables
}

// Len returns the number of declared tables.
func (s *Schema) Len() int { return len(s.tables) }
