package strip_test

import (
	"fmt"

	"github.com/katalvlaran/tristrip/strip"
)

// ExampleStriper demonstrates striping a two-triangle quad into one GPU
// triangle strip.
func ExampleStriper() {
	triangles := []uint32{0, 1, 2, 2, 1, 3}

	s := strip.NewStriper()
	if err := s.Init(triangles, strip.IndexSixteen); err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := s.Compute()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(res.NbStrips, len(res.Indices16))
	// Output: 1 4
}
