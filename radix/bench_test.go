package radix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/tristrip/radix"
)

func BenchmarkSort_Unsigned(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	keys := make([]uint32, 100_000)
	for i := range keys {
		keys[i] = rng.Uint32()
	}
	s := radix.NewSorter()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.SortUint32(keys)
	}
}

func BenchmarkSort_Float(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	keys := make([]float32, 100_000)
	for i := range keys {
		keys[i] = rng.Float32()*200 - 100
	}
	s := radix.NewSorter()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.SortFloat32(keys)
	}
}

func BenchmarkSort_AlreadySorted(b *testing.B) {
	keys := make([]uint32, 100_000)
	for i := range keys {
		keys[i] = uint32(i)
	}
	s := radix.NewSorter()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.SortUint32(keys)
	}
}
