package symbols_test

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/condlang/pkg/condlang/symbols"
)

// storeFactory creates a store instance for testing.
type storeFactory func(t *testing.T) symbols.Store

// storeContractTest runs contract tests against any Store implementation.
func storeContractTest(t *testing.T, name string, factory storeFactory) {
	t.Run(name+"/Define_and_Lookup", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		require.NoError(t, store.Define("LINUX", "1"))
		v, err := store.Lookup("LINUX")
		require.NoError(t, err)
		assert.Equal(t, "1", v)
	})

	t.Run(name+"/Lookup_NotFound", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		_, err := store.Lookup("MISSING")
		assert.ErrorIs(t, err, symbols.ErrNotFound)
	})

	t.Run(name+"/Define_Overwrite", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		require.NoError(t, store.Define("ARCH", "arm64"))
		require.NoError(t, store.Define("ARCH", "amd64"))

		v, err := store.Lookup("ARCH")
		require.NoError(t, err)
		assert.Equal(t, "amd64", v)
	})

	t.Run(name+"/Define_InvalidName", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		for _, bad := range []string{"", "has space", "a-b", "x(y)"} {
			assert.ErrorIs(t, store.Define(bad, ""), symbols.ErrInvalidName, "name %q", bad)
		}
	})

	t.Run(name+"/List_Ordered", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		require.NoError(t, store.Define("c", ""))
		require.NoError(t, store.Define("a", "1"))
		require.NoError(t, store.Define("b", "2"))

		syms, err := store.List()
		require.NoError(t, err)
		require.Len(t, syms, 3)
		assert.Equal(t, "a", syms[0].Name)
		assert.Equal(t, "1", syms[0].Value)
		assert.Equal(t, "b", syms[1].Name)
		assert.Equal(t, "c", syms[2].Name)
		assert.False(t, syms[0].UpdatedAt.IsZero())

		names, err := symbols.Names(store)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, names)
	})

	t.Run(name+"/List_Empty", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		syms, err := store.List()
		require.NoError(t, err)
		assert.NotNil(t, syms)
		assert.Empty(t, syms)
	})

	t.Run(name+"/Undefine", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		require.NoError(t, store.Define("X", ""))
		require.NoError(t, store.Undefine("X"))
		require.NoError(t, store.Undefine("X"))

		_, err := store.Lookup("X")
		assert.ErrorIs(t, err, symbols.ErrNotFound)
	})

	t.Run(name+"/Closed", func(t *testing.T) {
		store := factory(t)
		require.NoError(t, store.Close())
		require.NoError(t, store.Close())

		assert.ErrorIs(t, store.Define("X", ""), symbols.ErrStoreClosed)
		_, err := store.Lookup("X")
		assert.ErrorIs(t, err, symbols.ErrStoreClosed)
		_, err = store.List()
		assert.ErrorIs(t, err, symbols.ErrStoreClosed)
		assert.ErrorIs(t, store.Undefine("X"), symbols.ErrStoreClosed)
	})

	t.Run(name+"/Concurrent", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		const numGoroutines = 20
		var wg sync.WaitGroup
		wg.Add(numGoroutines)
		for i := 0; i < numGoroutines; i++ {
			go func(id int) {
				defer wg.Done()
				sym := "S" + string(rune('A'+id%5))
				switch id % 3 {
				case 0:
					_ = store.Define(sym, "v")
				case 1:
					_, _ = store.Lookup(sym)
				case 2:
					_, _ = store.List()
				}
			}(i)
		}
		wg.Wait()
	})
}

func TestMemoryStore(t *testing.T) {
	storeContractTest(t, "Memory", func(t *testing.T) symbols.Store {
		return symbols.NewMemoryStore()
	})
}

func TestSQLiteStore(t *testing.T) {
	storeContractTest(t, "SQLite", func(t *testing.T) symbols.Store {
		store, err := symbols.NewSQLiteStore(filepath.Join(t.TempDir(), "symbols.db"))
		require.NoError(t, err)
		return store
	})
}

func TestSQLiteStore_Persistence(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "symbols.db")

	store1, err := symbols.NewSQLiteStore(dbPath)
	require.NoError(t, err)
	require.NoError(t, store1.Define("PERSISTENT", "yes"))
	require.NoError(t, store1.Close())

	store2, err := symbols.NewSQLiteStore(dbPath)
	require.NoError(t, err)
	defer store2.Close()

	v, err := store2.Lookup("PERSISTENT")
	require.NoError(t, err)
	assert.Equal(t, "yes", v)
}

func TestSQLiteStore_InvalidPath(t *testing.T) {
	_, err := symbols.NewSQLiteStore("/nonexistent/path/symbols.db")
	assert.Error(t, err)
}

func TestValidName(t *testing.T) {
	assert.True(t, symbols.ValidName("A"))
	assert.True(t, symbols.ValidName("_x9"))
	assert.True(t, symbols.ValidName("HAS_SSE2"))
	assert.False(t, symbols.ValidName(""))
	assert.False(t, symbols.ValidName("a b"))
	assert.False(t, symbols.ValidName("é"))
}
