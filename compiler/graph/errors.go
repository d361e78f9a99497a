package graph

import (
	"errors"
	"fmt"
)

// Sentinel errors for structural defects in the input schema. All of them
// abort the whole compilation; there is no partial output.
var (
	// ErrUnsupportedRoot indicates a table root that is not an object or union.
	ErrUnsupportedRoot = errors.New("schemaviz: unsupported root type")
	// ErrUnsupportedType indicates a record (dynamic-key mapping) in a tree.
	ErrUnsupportedType = errors.New("schemaviz: unsupported field type")
)

// UnsupportedRootError reports a table whose root type cannot be walked.
type UnsupportedRootError struct {
	Table string // offending table name
	Kind  string // encountered root kind
}

// Error returns the error string.
func (e *UnsupportedRootError) Error() string {
	return fmt.Sprintf("schemaviz: table %q root must be an object or union, got %s", e.Table, e.Kind)
}

// Is reports whether the target matches the sentinel for this error.
func (e *UnsupportedRootError) Is(err error) bool {
	return err == ErrUnsupportedRoot
}

// UnsupportedTypeError reports a record type at a concrete path. Records
// have no static field names to path through, so they cannot be rendered.
type UnsupportedTypeError struct {
	Table string
	Path  string
}

// Error returns the error string.
func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("schemaviz: table %q: record type at %q cannot be rendered", e.Table, e.Path)
}

// Is reports whether the target matches the sentinel for this error.
func (e *UnsupportedTypeError) Is(err error) bool {
	return err == ErrUnsupportedType
}

// IsUnsupportedRoot returns true if err is an UnsupportedRootError.
func IsUnsupportedRoot(err error) bool {
	if err == nil {
		return false
	}
	var e *UnsupportedRootError
	return errors.As(err, &e) || errors.Is(err, ErrUnsupportedRoot)
}

// IsUnsupportedType returns true if err is an UnsupportedTypeError.
func IsUnsupportedType(err error) bool {
	if err == nil {
		return false
	}
	var e *UnsupportedTypeError
	return errors.As(err, &e) || errors.Is(err, ErrUnsupportedType)
}
