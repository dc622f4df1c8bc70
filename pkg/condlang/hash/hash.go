// Package hash provides identifier hashers for condlang.
//
// XXHash is the default used by the engine and the CLI. FNV1a is offered
// for hosts that need a hash value that is stable across implementations,
// for example when name hashes are precomputed by another tool.
package hash

import (
	"github.com/cespare/xxhash/v2"

	"github.com/randalmurphal/condlang/pkg/condlang"
)

// XXHash hashes identifiers with xxHash64 folded to 32 bits.
type XXHash struct{}

// Compile-time interface checks.
var (
	_ condlang.Hasher = XXHash{}
	_ condlang.Hasher = FNV1a{}
)

// Hash implements condlang.Hasher.
func (XXHash) Hash(ident string) uint32 {
	h := xxhash.Sum64String(ident)
	return uint32(h>>32) ^ uint32(h)
}

const (
	fnvOffset32 = 2166136261
	fnvPrime32  = 16777619
)

// FNV1a hashes identifiers with 32-bit FNV-1a.
type FNV1a struct{}

// Hash implements condlang.Hasher.
func (FNV1a) Hash(ident string) uint32 {
	h := uint32(fnvOffset32)
	for i := 0; i < len(ident); i++ {
		h ^= uint32(ident[i])
		h *= fnvPrime32
	}
	return h
}
