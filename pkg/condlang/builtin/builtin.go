// Package builtin provides commonly used condlang intrinsics.
package builtin

import (
	"github.com/randalmurphal/condlang/pkg/condlang"
)

// Equal is true when every argument hash is equal to the first.
// With a single argument it is trivially true.
var Equal condlang.Predicate = condlang.PredicateFunc(func(args condlang.Args, _ any) bool {
	for i := 1; i < args.Len(); i++ {
		if args.At(i) != args.At(0) {
			return false
		}
	}
	return true
})

// HashSet is an immutable set of identifier hashes.
type HashSet map[uint32]struct{}

// NewHashSet hashes each name with h.
func NewHashSet(h condlang.Hasher, names ...string) HashSet {
	set := make(HashSet, len(names))
	for _, name := range names {
		set[h.Hash(name)] = struct{}{}
	}
	return set
}

// Contains reports whether id is in the set.
func (s HashSet) Contains(id uint32) bool {
	_, ok := s[id]
	return ok
}

// Defined returns a predicate that is true when every argument names a
// member of set.
func Defined(set HashSet) condlang.Predicate {
	return condlang.PredicateFunc(func(args condlang.Args, _ any) bool {
		for i := 0; i < args.Len(); i++ {
			if !set.Contains(args.At(i)) {
				return false
			}
		}
		return true
	})
}

// Intrinsics returns the equal and defined intrinsics, with defined
// consulting the given names.
func Intrinsics(h condlang.Hasher, defined ...string) []condlang.Intrinsic {
	return []condlang.Intrinsic{
		condlang.NewIntrinsic(h, "equal", Equal),
		condlang.NewIntrinsic(h, "defined", Defined(NewHashSet(h, defined...))),
	}
}
