package schemaviz

import (
	"errors"
	"fmt"
)

// ErrDuplicateTable is returned when two tables in a schema share a name.
// Schema adapters normally guarantee uniqueness, but the compiler does not
// assume it blindly when used standalone.
var ErrDuplicateTable = errors.New("schemaviz: duplicate table name")

// DuplicateTableError reports the first table name declared more than once.
type DuplicateTableError struct {
	Name string
}

// Error returns the error string.
func (e *DuplicateTableError) Error() string {
	return fmt.Sprintf("schemaviz: table %q declared more than once", e.Name)
}

// Is reports whether the target matches the sentinel error.
func (e *DuplicateTableError) Is(err error) bool {
	return err == ErrDuplicateTable
}

// IsDuplicateTable returns true if the error is a DuplicateTableError.
func IsDuplicateTable(err error) bool {
	if err == nil {
		return false
	}
	var e *DuplicateTableError
	return errors.As(err, &e) || errors.Is(err, ErrDuplicateTable)
}
