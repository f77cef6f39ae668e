package strip

import (
	"github.com/katalvlaran/tristrip/meshadj"
	"github.com/katalvlaran/tristrip/radix"
)

const (
	// MethodInit names the Init method for error context.
	MethodInit = "Init"
	// MethodCompute names the Compute method for error context.
	MethodCompute = "Compute"
)

// Init builds the mesh adjacency for triangles and validates it, per
// spec.md §4.F step 1. BadInput and NonManifold failures from the
// adjacency builder surface unchanged; a structurally valid but
// zero-face adjacency surfaces as ErrEmpty.
func (s *Striper) Init(triangles []uint32, flags Flags) error {
	s.ready = false
	s.adj = nil

	adj, err := meshadj.Build(triangles)
	if err != nil {
		return err
	}
	if len(adj.Faces) == 0 {
		return stripErrorf(MethodInit, ErrEmpty, "triangle list produced zero faces")
	}

	s.adj = adj
	s.flags = flags
	s.ready = true
	return nil
}

// Compute walks the adjacency built by Init and greedily covers it with
// strips, per spec.md §4.F steps 2-6. Zero strips surviving (every seed's
// walks stayed under a full triangle) is not an error: Compute returns an
// empty Result.
func (s *Striper) Compute() (*Result, error) {
	if !s.ready {
		return nil, stripErrorf(MethodCompute, ErrNotInitialized, "no successful Init call")
	}

	faceCount := len(s.adj.Faces)
	used := make([]bool, faceCount)
	order := seedOrder(s.adj, faceCount, s.flags)

	var lengths []uint32
	var indices32 []uint32
	consumed := 0

	for _, seedFace := range order {
		if used[seedFace] {
			continue
		}
		verts, ok := computeBestStrip(s.adj, used, seedFace, s.flags)
		if ok {
			lengths = append(lengths, uint32(len(verts)))
			indices32 = append(indices32, verts...)
			consumed += len(verts) - 2
		}
		if consumed == faceCount {
			break
		}
	}

	if s.flags.has(ConnectAll) && len(lengths) > 0 {
		total, joined := connectAll(lengths, indices32, s.flags.has(ParityFix))
		lengths = []uint32{total}
		indices32 = joined
	}

	result := &Result{
		NbStrips:     uint32(len(lengths)),
		StripLengths: lengths,
	}
	if s.flags.has(IndexSixteen) {
		result.Indices16 = widenToUint16(indices32)
	} else {
		result.Indices32 = indices32
	}
	return result, nil
}

// seedOrder returns the order in which Compute tries seed faces: natural
// face order, or ascending-adjacency-degree order (via the radix sorter)
// when SortSeeds is set, per spec.md §4.F step 3.
func seedOrder(adj *meshadj.Adjacency, faceCount int, flags Flags) []uint32 {
	if !flags.has(SortSeeds) {
		order := make([]uint32, faceCount)
		for i := range order {
			order[i] = uint32(i)
		}
		return order
	}

	degrees := make([]uint32, faceCount)
	for i := 0; i < faceCount; i++ {
		degrees[i] = uint32(adj.Degree(uint32(i)))
	}
	return radix.NewSorter().SortUint32(degrees)
}

// widenToUint16 narrows a 32-bit index stream to 16-bit, as requested by
// the IndexSixteen flag. Callers are responsible for keeping vertex
// indices within 16-bit range when requesting this width.
func widenToUint16(indices []uint32) []uint16 {
	out := make([]uint16, len(indices))
	for i, v := range indices {
		out[i] = uint16(v)
	}
	return out
}
