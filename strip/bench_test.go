package strip_test

import (
	"testing"

	"github.com/katalvlaran/tristrip/strip"
)

func BenchmarkCompute_Grid50x50(b *testing.B) {
	triangles := gridTriangles(50, 50)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := strip.NewStriper()
		if err := s.Init(triangles, strip.SortSeeds); err != nil {
			b.Fatal(err)
		}
		if _, err := s.Compute(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompute_Grid50x50ConnectAllParityFix(b *testing.B) {
	triangles := gridTriangles(50, 50)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := strip.NewStriper()
		if err := s.Init(triangles, strip.SortSeeds|strip.ConnectAll|strip.ParityFix); err != nil {
			b.Fatal(err)
		}
		if _, err := s.Compute(); err != nil {
			b.Fatal(err)
		}
	}
}
