package symbols

import (
	"sort"
	"sync"
	"time"
)

// MemoryStore is an in-memory symbol store.
// Data is lost when the process exits.
type MemoryStore struct {
	mu     sync.RWMutex
	data   map[string]Symbol
	closed bool
}

// NewMemoryStore creates a new in-memory symbol store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]Symbol),
	}
}

// Define implements Store.
func (m *MemoryStore) Define(name, value string) error {
	if err := checkName(name); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}
	m.data[name] = Symbol{Name: name, Value: value, UpdatedAt: time.Now().UTC()}
	return nil
}

// Lookup implements Store.
func (m *MemoryStore) Lookup(name string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return "", ErrStoreClosed
	}
	sym, ok := m.data[name]
	if !ok {
		return "", ErrNotFound
	}
	return sym.Value, nil
}

// List implements Store.
func (m *MemoryStore) List() ([]Symbol, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}

	syms := make([]Symbol, 0, len(m.data))
	for _, sym := range m.data {
		syms = append(syms, sym)
	}
	sort.Slice(syms, func(i, j int) bool {
		return syms[i].Name < syms[j].Name
	})
	return syms, nil
}

// Undefine implements Store.
func (m *MemoryStore) Undefine(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}
	delete(m.data, name)
	return nil
}

// Close implements Store.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	m.data = nil
	return nil
}
