// Package schema provides the building blocks for defining schemaviz
// database schemas.
//
// A schema is an ordered set of named tables, each holding one root type
// tree built with the [field] subpackage:
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
// Table order is significant: the compiler emits one diagram block per
// table in declaration order. The schema itself carries no behavior; it is
// a read-only input to the compiler.
package schema
