package registry

import (
	"sync"

	"github.com/randalmurphal/condlang/pkg/condlang"
)

// Set is a thread-safe collection of named predicates that remembers
// registration order. It uses sync.RWMutex for read-heavy workloads.
type Set struct {
	mu      sync.RWMutex
	order   []string
	entries map[string]condlang.Predicate
}

// New creates a new empty set.
func New() *Set {
	return &Set{
		entries: make(map[string]condlang.Predicate),
	}
}

// Register adds or replaces the predicate for name.
// Replacing keeps the name's original position.
func (s *Set) Register(name string, p condlang.Predicate) *Set {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[name]; !ok {
		s.order = append(s.order, name)
	}
	s.entries[name] = p
	return s
}

// RegisterFunc is Register for a plain function.
func (s *Set) RegisterFunc(name string, fn func(args condlang.Args, userData any) bool) *Set {
	return s.Register(name, condlang.PredicateFunc(fn))
}

// Get returns the predicate for name and whether it exists.
func (s *Set) Get(name string) (condlang.Predicate, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.entries[name]
	return p, ok
}

// Has returns true if name is registered.
func (s *Set) Has(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.entries[name]
	return ok
}

// Delete removes name from the set.
func (s *Set) Delete(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[name]; !ok {
		return
	}
	delete(s.entries, name)
	for i, n := range s.order {
		if n == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Names returns the registered names in registration order.
func (s *Set) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, len(s.order))
	copy(names, s.order)
	return names
}

// Len returns the number of registered names.
func (s *Set) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// Intrinsics hashes every name with h and returns the entries in
// registration order. The returned slice is a snapshot; later changes to
// the set do not affect it.
func (s *Set) Intrinsics(h condlang.Hasher) []condlang.Intrinsic {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]condlang.Intrinsic, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, condlang.NewIntrinsic(h, name, s.entries[name]))
	}
	return out
}
