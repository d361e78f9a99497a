// Package field provides the type-tree building blocks for schemaviz tables.
//
// A field type is one of a closed set of variants: scalar primitives,
// fixed literals, references to other tables, and the three composite
// shapes (object, union, array). Record (dynamic-key mapping) can be
// declared but is rejected by the compiler.
//
// # Scalars
//
//	field.Null()
//	field.Number()
//	field.BigInt()
//	field.Bool()
//	field.String()
//	field.Bytes()
//	field.Any()
//
// # Literals and references
//
//	field.Value("active")   // literal 'active'
//	field.ID("users")       // id 'users', draws an edge to the users table
//
// # Composites
//
// Objects hold named members in declaration order; members are built with
// [F] (required) or [Opt] (optional):
//
//	field.ObjectOf(
//	    field.F("name", field.String()),
//	    field.Opt("nickname", field.String()),
//	    field.F("teamId", field.ID("teams")),
//	)
//
// Unions and arrays name their children synthetically ("union.0",
// "union.1", ..., "array.0"):
//
//	field.UnionOf(field.String(), field.Null())
//	field.ArrayOf(field.ID("tags"))
package field
