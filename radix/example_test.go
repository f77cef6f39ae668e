package radix_test

import (
	"fmt"

	"github.com/katalvlaran/tristrip/radix"
)

// ExampleSorter_SortUint32 sorts a small slice of face-degree keys, the same
// shape of sort the strip package performs under SORTSEEDS.
func ExampleSorter_SortUint32() {
	degrees := []uint32{3, 0, 2, 1, 0}
	perm := radix.NewSorter().SortUint32(degrees)

	for _, idx := range perm {
		fmt.Print(degrees[idx], " ")
	}
	// Output: 0 0 1 2 3
}

// ExampleSorter_Sort demonstrates a composite, multi-key sort: call Sort
// once per key, least-significant key first, reusing the same Sorter so
// each call refines the previous one.
func ExampleSorter_Sort() {
	// Two edges sharing (vMin=1, vMax=4) must land adjacently regardless
	// of which face first introduced them.
	faceOwner := []uint32{0, 1}
	vMin := []uint32{1, 1}
	vMax := []uint32{4, 4}

	s := radix.NewSorter()
	s.Sort(faceOwner, radix.Unsigned)
	s.Sort(vMin, radix.Unsigned)
	perm := s.Sort(vMax, radix.Unsigned)

	fmt.Println(len(perm))
	// Output: 2
}
