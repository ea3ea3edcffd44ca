// Package backend selects and constructs the Store implementation the
// binaries run against.
package backend

import (
	"github.com/snehilworks/finance-expense/internal/store"
)

// Type identifies a Store backend.
type Type string

const (
	Memory Type = "memory"
	SQLite Type = "sqlite"
)

// String implements fmt.Stringer
func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the backend type is known.
func (t Type) IsValid() bool {
	switch t {
	case Memory, SQLite:
		return true
	default:
		return false
	}
}

// Config holds what backend construction needs.
type Config struct {
	Type Type

	// SQLite specific
	DBPath string
}

// CleanupFunc releases backend resources.
type CleanupFunc func() error

// Result is a constructed store plus its optional cleanup.
type Result struct {
	Store   store.Store
	Cleanup CleanupFunc
}
