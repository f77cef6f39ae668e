package meshadj_test

import (
	"testing"

	"github.com/katalvlaran/tristrip/meshadj"
)

// gridTriangles builds a regular w*h quad grid triangulated into 2*w*h
// faces, the same generator bench and fuzz both use for a realistic,
// fully-manifold interior mesh.
func gridTriangles(w, h int) []uint32 {
	vid := func(x, y int) uint32 { return uint32(y*(w+1) + x) }
	triangles := make([]uint32, 0, 6*w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			a, b, c, d := vid(x, y), vid(x+1, y), vid(x, y+1), vid(x+1, y+1)
			triangles = append(triangles, a, c, b, b, c, d)
		}
	}
	return triangles
}

func BenchmarkBuild_Grid100x100(b *testing.B) {
	triangles := gridTriangles(100, 100)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := meshadj.Build(triangles); err != nil {
			b.Fatal(err)
		}
	}
}
