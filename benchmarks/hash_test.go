package benchmarks

import (
	"testing"

	"github.com/randalmurphal/condlang/pkg/condlang"
	"github.com/randalmurphal/condlang/pkg/condlang/hash"
)

var sink uint32

func benchmarkHash(b *testing.B, h condlang.Hasher, ident string) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = h.Hash(ident)
	}
}

func BenchmarkHash_XXHash_Short(b *testing.B) { benchmarkHash(b, hash.XXHash{}, "A") }
func BenchmarkHash_XXHash_Long(b *testing.B) {
	benchmarkHash(b, hash.XXHash{}, "CONFIG_ENABLE_EXPERIMENTAL_RENDERER_BACKEND")
}
func BenchmarkHash_FNV1a_Short(b *testing.B) { benchmarkHash(b, hash.FNV1a{}, "A") }
func BenchmarkHash_FNV1a_Long(b *testing.B) {
	benchmarkHash(b, hash.FNV1a{}, "CONFIG_ENABLE_EXPERIMENTAL_RENDERER_BACKEND")
}
