package graph

import (
	"strconv"
	"strings"
)

// arrayElem is the synthetic member name of an array's element.
const arrayElem = "array.0"

// ChildPath appends name to the ancestor chain, returning a fresh slice so
// sibling walks cannot alias each other's backing arrays.
func ChildPath(ancestors []string, name string) []string {
	path := make([]string, len(ancestors), len(ancestors)+1)
	copy(path, ancestors)
	return append(path, name)
}

// PathString joins a path chain into the flat dot-separated identifier used
// for node ids and edge endpoints.
func PathString(path []string) string {
	return strings.Join(path, ".")
}

// memberName returns the effective name of an object member. Optional
// members are renamed with a trailing "?" before any labeling or recursion,
// so the suffix shows up in the path, the display label, and any edge
// source derived from the member.
func memberName(name string, optional bool) string {
	if optional {
		return name + "?"
	}
	return name
}

// unionName returns the synthetic name of the i-th union member.
func unionName(i int) string {
	return "union." + strconv.Itoa(i)
}
