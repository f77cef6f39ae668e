package meshadj

const (
	// MaxFaceIndex is the largest face index a neighbour link can address:
	// 30 bits of index room, leaving 2 bits for the reciprocal edge
	// ordinal in the packed link word.
	MaxFaceIndex = 1<<30 - 1

	// BoundaryLink marks an edge ordinal with no neighbouring face.
	BoundaryLink uint32 = 0xFFFFFFFF

	// NoSuchVertex is returned by queries that locate a vertex opposite an
	// edge when no such vertex exists.
	NoSuchVertex uint32 = 0xFFFFFFFF

	// NoSuchEdge is returned by FindEdge when no edge of the face spans
	// the requested vertex pair.
	NoSuchEdge int = -1

	edgeOrdinalBits = 2
	faceIndexMask   = uint32(1)<<(32-edgeOrdinalBits) - 1
)

// Face is one triangle of the mesh: its three vertex indices in winding
// order, and its three packed neighbour links, one per edge.
//
// Edge ordinals: 0 = (V0,V1), 1 = (V0,V2), 2 = (V1,V2).
type Face struct {
	V [3]uint32
	N [3]uint32
}

// packLink encodes a neighbour face index and the ordinal of the matching
// edge on that neighbour into one word.
func packLink(face uint32, edge int) uint32 {
	return (face & faceIndexMask) | (uint32(edge) << (32 - edgeOrdinalBits))
}

// unpackLink decodes a word produced by packLink, reporting ok=false for
// BoundaryLink.
func unpackLink(link uint32) (face uint32, edge int, ok bool) {
	if link == BoundaryLink {
		return 0, 0, false
	}
	return link & faceIndexMask, int(link >> (32 - edgeOrdinalBits)), true
}

// edgeVertices returns the two vertex indices spanning the given edge
// ordinal of f, in winding order.
func (f *Face) edgeVertices(edge int) (a, b uint32) {
	switch edge {
	case 0:
		return f.V[0], f.V[1]
	case 1:
		return f.V[0], f.V[2]
	default:
		return f.V[1], f.V[2]
	}
}

// oppositeVertexOf returns the vertex of f not touching the given edge
// ordinal.
func (f *Face) oppositeVertexOf(edge int) uint32 {
	switch edge {
	case 0:
		return f.V[2]
	case 1:
		return f.V[1]
	default:
		return f.V[0]
	}
}

// FindEdge returns the edge ordinal of f whose two vertices are {vA,vB} in
// either order, or NoSuchEdge.
func (f *Face) FindEdge(vA, vB uint32) int {
	for e := 0; e < 3; e++ {
		p, q := f.edgeVertices(e)
		if (p == vA && q == vB) || (p == vB && q == vA) {
			return e
		}
	}
	return NoSuchEdge
}

// OppositeVertex returns the third vertex of f given the other two, or
// NoSuchVertex if {vA,vB} isn't one of f's edges.
func (f *Face) OppositeVertex(vA, vB uint32) uint32 {
	edge := f.FindEdge(vA, vB)
	if edge == NoSuchEdge {
		return NoSuchVertex
	}
	return f.oppositeVertexOf(edge)
}

// Neighbour reports the face and reciprocal edge ordinal across edge, or
// ok=false if edge is a boundary.
func (f *Face) Neighbour(edge int) (face uint32, reciprocalEdge int, ok bool) {
	return unpackLink(f.N[edge])
}

// BoundaryEdge is one edge touched by exactly one face, reported only when
// Build is called with WithEdgeList.
type BoundaryEdge struct {
	Face     uint32
	Edge     int
	VMin     uint32
	VMax     uint32
}

// Adjacency is the built neighbour graph over a triangle list: one Face
// per input triangle, indexed identically to the input. BoundaryEdges is
// populated only when Build was called with WithEdgeList.
type Adjacency struct {
	Faces         []Face
	BoundaryEdges []BoundaryEdge
}

// Degree returns the number of non-boundary edges of face i, in [0,3].
func (a *Adjacency) Degree(face uint32) int {
	d := 0
	for _, link := range a.Faces[face].N {
		if link != BoundaryLink {
			d++
		}
	}
	return d
}

// FindEdge returns the edge ordinal of face whose two vertices are {u,v}
// in either order, or NoSuchEdge if face has no such edge.
func (a *Adjacency) FindEdge(face uint32, u, v uint32) int {
	return a.Faces[face].FindEdge(u, v)
}
