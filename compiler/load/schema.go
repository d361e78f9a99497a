// Package load reads schema documents into the in-memory schema model.
//
// Documents are YAML (JSON, being a YAML subset, parses too). The document
// is a mapping of table names to type trees under a top-level "tables" key:
//
//	tables:
//	  users:
//	    name: string
//	    age: number
//	    teamId: {id: teams}
//	  messages:
//	    authorId: {id: users}
//
// A table value that is a plain mapping declares the root object's fields
// directly. The reserved single-key forms select other node types:
//
//	{literal: active}               # literal 'active'
//	{id: users}                     # reference to the users table
//	{object: {name: string}}        # explicit object
//	{union: [string, "null"]}       # union over members
//	{array: string}                 # array of one element type
//	{record: {key: string, value: any}}
//
// A trailing "?" on a field name marks the field optional. Declaration
// order in the document is preserved, which is why decoding goes through
// yaml.Node instead of plain maps.
//
// The loader only guarantees that the document parses into the model;
// structural validity (root kinds, record usage, duplicate tables) is the
// compiler's concern.
package load

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/syssam/schemaviz/schema"
	"github.com/syssam/schemaviz/schema/field"
)

// kinds maps scalar type names in documents to primitive kinds.
var kinds = map[string]field.Kind{
	"null":    field.KindNull,
	"number":  field.KindNumber,
	"bigint":  field.KindBigInt,
	"boolean": field.KindBool,
	"string":  field.KindString,
	"bytes":   field.KindBytes,
	"any":     field.KindAny,
}

// Parse reads a schema document from r.
func Parse(r io.Reader) (*schema.Schema, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("schemaviz: read schema document: %w", err)
	}
	return ParseBytes(b)
}

// ParseFile reads a schema document from the named file.
func ParseFile(path string) (*schema.Schema, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("schemaviz: read schema document: %w", err)
	}
	return ParseBytes(b)
}

// ParseBytes parses a schema document, preserving table and field
// declaration order.
func ParseBytes(b []byte) (*schema.Schema, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("schemaviz: parse schema document: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("schemaviz: schema document is empty")
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("schemaviz: schema document must be a mapping, got %s", nodeKind(root))
	}
	tables := mappingValue(root, "tables")
	if tables == nil {
		return nil, fmt.Errorf("schemaviz: schema document has no %q key", "tables")
	}
	if tables.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("schemaviz: %q must be a mapping of table names, got %s", "tables", nodeKind(tables))
	}
	s := schema.New()
	for i := 0; i < len(tables.Content); i += 2 {
		name, value := tables.Content[i].Value, tables.Content[i+1]
		root, err := parseRoot(name, value)
		if err != nil {
			return nil, err
		}
		s.AddTable(name, root)
	}
	return s, nil
}

// parseRoot parses a table's type tree. A bare mapping without a reserved
// single-key form is shorthand for the root object's fields.
func parseRoot(table string, n *yaml.Node) (field.Type, error) {
	if n.Kind == yaml.MappingNode && reservedKey(n) == "" {
		fields, err := parseMembers(table, n)
		if err != nil {
			return nil, err
		}
		return field.ObjectOf(fields...), nil
	}
	return parseType(table, n)
}

// parseType parses one type node.
func parseType(table string, n *yaml.Node) (field.Type, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		if k, ok := kinds[n.Value]; ok {
			return &field.Primitive{Kind: k}, nil
		}
		return nil, fmt.Errorf("schemaviz: table %q: unknown type %q at line %d", table, n.Value, n.Line)
	case yaml.MappingNode:
		key := reservedKey(n)
		if key == "" {
			return nil, fmt.Errorf("schemaviz: table %q: mapping at line %d must use one of literal, id, object, union, array, record", table, n.Line)
		}
		value := n.Content[1]
		switch key {
		case "literal":
			var v any
			if err := value.Decode(&v); err != nil {
				return nil, fmt.Errorf("schemaviz: table %q: literal value at line %d: %w", table, value.Line, err)
			}
			return field.Value(v), nil
		case "id":
			if value.Kind != yaml.ScalarNode || value.Value == "" {
				return nil, fmt.Errorf("schemaviz: table %q: id at line %d must name a table", table, value.Line)
			}
			return field.ID(value.Value), nil
		case "object":
			if value.Kind != yaml.MappingNode {
				return nil, fmt.Errorf("schemaviz: table %q: object at line %d must be a mapping", table, value.Line)
			}
			fields, err := parseMembers(table, value)
			if err != nil {
				return nil, err
			}
			return field.ObjectOf(fields...), nil
		case "union":
			if value.Kind != yaml.SequenceNode {
				return nil, fmt.Errorf("schemaviz: table %q: union at line %d must be a sequence", table, value.Line)
			}
			members := make([]field.Type, 0, len(value.Content))
			for _, m := range value.Content {
				t, err := parseType(table, m)
				if err != nil {
					return nil, err
				}
				members = append(members, t)
			}
			return field.UnionOf(members...), nil
		case "array":
			elem, err := parseType(table, value)
			if err != nil {
				return nil, err
			}
			return field.ArrayOf(elem), nil
		case "record":
			if value.Kind != yaml.MappingNode {
				return nil, fmt.Errorf("schemaviz: table %q: record at line %d must map key and value", table, value.Line)
			}
			keyNode, valueNode := mappingValue(value, "key"), mappingValue(value, "value")
			if keyNode == nil || valueNode == nil {
				return nil, fmt.Errorf("schemaviz: table %q: record at line %d needs both key and value", table, value.Line)
			}
			k, err := parseType(table, keyNode)
			if err != nil {
				return nil, err
			}
			v, err := parseType(table, valueNode)
			if err != nil {
				return nil, err
			}
			return field.RecordOf(k, v), nil
		}
	}
	return nil, fmt.Errorf("schemaviz: table %q: unexpected %s at line %d", table, nodeKind(n), n.Line)
}

// parseMembers parses an object's fields in declaration order. A trailing
// "?" on the name marks the member optional.
func parseMembers(table string, n *yaml.Node) ([]field.Member, error) {
	members := make([]field.Member, 0, len(n.Content)/2)
	for i := 0; i < len(n.Content); i += 2 {
		name := n.Content[i].Value
		optional := strings.HasSuffix(name, "?")
		if optional {
			name = strings.TrimSuffix(name, "?")
		}
		if name == "" {
			return nil, fmt.Errorf("schemaviz: table %q: empty field name at line %d", table, n.Content[i].Line)
		}
		t, err := parseType(table, n.Content[i+1])
		if err != nil {
			return nil, err
		}
		members = append(members, field.Member{Name: name, Type: t, Optional: optional})
	}
	return members, nil
}

// reservedKey returns the reserved form name of a single-key mapping, or ""
// if the mapping is not a reserved form.
func reservedKey(n *yaml.Node) string {
	if len(n.Content) != 2 {
		return ""
	}
	switch key := n.Content[0].Value; key {
	case "literal", "id", "object", "union", "array", "record":
		return key
	default:
		return ""
	}
}

// mappingValue returns the value node of the given key, or nil.
func mappingValue(n *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return n.Content[i+1]
		}
	}
	return nil
}

func nodeKind(n *yaml.Node) string {
	switch n.Kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	}
	return "unknown"
}
