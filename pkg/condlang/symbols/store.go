// Package symbols provides persistent storage for defined names, the set a
// condlang "defined(...)" intrinsic consults.
package symbols

import (
	"errors"
	"fmt"
	"time"
)

// Store persists defined symbols.
// Implementations must be safe for concurrent use.
type Store interface {
	// Define sets name to value, overwriting any previous value.
	Define(name, value string) error

	// Lookup returns the value of name.
	// Returns ErrNotFound if name is not defined.
	Lookup(name string) (string, error)

	// List returns all symbols ordered by name.
	// Returns an empty slice (not error) if nothing is defined.
	List() ([]Symbol, error)

	// Undefine removes name.
	// Returns nil if name is not defined.
	Undefine(name string) error

	// Close releases any resources (connections, files).
	Close() error
}

// Symbol is a single defined name.
type Symbol struct {
	Name      string
	Value     string
	UpdatedAt time.Time
}

// Sentinel errors for symbol operations.
var (
	// ErrNotFound indicates a symbol is not defined.
	ErrNotFound = errors.New("symbol not defined")

	// ErrStoreClosed indicates the store has been closed.
	ErrStoreClosed = errors.New("symbol store closed")

	// ErrInvalidName indicates a name that cannot appear in a condition.
	ErrInvalidName = errors.New("invalid symbol name")
)

// ValidName reports whether name is a non-empty run of [A-Za-z0-9_], the
// only names a condition can spell as an argument.
func ValidName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '_':
		default:
			return false
		}
	}
	return true
}

func checkName(name string) error {
	if !ValidName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// Names returns the names of all symbols in s, ordered.
func Names(s Store) ([]string, error) {
	syms, err := s.List()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(syms))
	for i, sym := range syms {
		names[i] = sym.Name
	}
	return names, nil
}
