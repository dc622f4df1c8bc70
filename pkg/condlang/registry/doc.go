// Package registry provides a thread-safe, ordered set of named predicates
// for building condlang intrinsic lists.
//
// condlang.Run takes an immutable []condlang.Intrinsic keyed by name hash
// and resolves calls by linear scan, first match wins. Set is the mutable,
// name-keyed side of that: hosts register predicates by name at startup and
// take a hashed snapshot per hasher.
//
// # Basic Usage
//
//	set := registry.New().
//	    Register("equal", builtin.Equal).
//	    RegisterFunc("is_linux", func(_ condlang.Args, _ any) bool {
//	        return runtime.GOOS == "linux"
//	    })
//
//	intrinsics := set.Intrinsics(hash.XXHash{})
//	r := condlang.Run("is_linux(x) && equal(a, a)", buf, intrinsics, hash.XXHash{}, nil)
//
// # Ordering
//
// Names keep the position of their first registration. Re-registering a
// name replaces its predicate in place, so snapshots never contain two
// entries for one name.
//
// # Thread Safety
//
// All Set methods are safe for concurrent use. Snapshots returned by
// Intrinsics are never mutated by the Set and can be shared across
// goroutines.
package registry
