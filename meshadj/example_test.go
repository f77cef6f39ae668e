package meshadj_test

import (
	"fmt"

	"github.com/katalvlaran/tristrip/meshadj"
)

// ExampleBuild builds the adjacency for two triangles sharing a diagonal
// and reports the neighbour face across the shared edge.
func ExampleBuild() {
	triangles := []uint32{0, 1, 2, 1, 3, 2}
	adj, err := meshadj.Build(triangles)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	edge := adj.Faces[0].FindEdge(1, 2)
	face, _, ok := adj.Faces[0].Neighbour(edge)
	fmt.Println(ok, face)
	// Output: true 1
}
