package strip

import "github.com/katalvlaran/tristrip/meshadj"

// Flags is a bitset selecting Striper behaviour. Unknown bits are ignored.
type Flags uint32

const (
	// IndexSixteen requests the output index stream as 16-bit values
	// instead of the default 32-bit.
	IndexSixteen Flags = 1 << iota
	// ParityFix applies winding parity correction at commit time and at
	// concatenation joins.
	ParityFix
	// SortSeeds orders seed faces by ascending adjacency degree via the
	// radix sorter (corner faces first), instead of natural face order.
	SortSeeds
	// ConnectAll concatenates all committed strips into a single strip
	// joined by degenerate triangles.
	ConnectAll
)

// has reports whether f has all of bits set.
func (fl Flags) has(bits Flags) bool {
	return fl&bits == bits
}

// Result is the output of Compute: NbStrips strips, whose lengths sum to
// the total index count. Exactly one of Indices16/Indices32 is populated,
// selected by the IndexSixteen flag.
type Result struct {
	NbStrips     uint32
	StripLengths []uint32
	Indices16    []uint16
	Indices32    []uint32
}

// Striper builds a mesh adjacency from a triangle list and greedily covers
// it with triangle strips. Not safe for concurrent use by multiple
// goroutines on the same instance; independent instances do not share
// state.
type Striper struct {
	adj   *meshadj.Adjacency
	flags Flags
	ready bool
}

// NewStriper returns a Striper with no adjacency loaded; call Init before
// Compute.
func NewStriper() *Striper {
	return &Striper{}
}
