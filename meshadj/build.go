package meshadj

import "github.com/katalvlaran/tristrip/radix"

// MethodBuild names the Build constructor for error context.
const MethodBuild = "Build"

// buildConfig holds resolved BuildOption values.
type buildConfig struct {
	keepEdges bool
}

// BuildOption configures Build.
type BuildOption func(*buildConfig)

// WithEdgeList requests that Build report every boundary edge in the
// returned Adjacency's BoundaryEdges field. The default leaves that field
// nil and drops edge scratch once neighbour links are resolved, since the
// strip generator only needs Face.N.
func WithEdgeList() BuildOption {
	return func(c *buildConfig) { c.keepEdges = true }
}

// scratchEdge is one transient edge emitted from a face during Build, one
// per triangle side, normalised to (vMin, vMax).
type scratchEdge struct {
	face uint32
	edge int
	vMin uint32
	vMax uint32
}

// Build constructs an Adjacency from a flat triangle list: three vertex
// indices per face, winding-ordered. triangles must be non-nil and
// len(triangles) a multiple of 3; an empty, non-nil list produces an
// Adjacency with no faces (not an error).
//
// Build uses a radix.Sorter internally to find, for every undirected edge,
// the one or two faces that share it: it sorts the transient edge list
// lexicographically by (faceOwner, vMin, vMax), least-significant key
// first, so identical (vMin, vMax) pairs land in adjacent runs regardless
// of which face introduced them first.
func Build(triangles []uint32, opts ...BuildOption) (*Adjacency, error) {
	if triangles == nil {
		return nil, meshadjErrorf(MethodBuild, ErrBadInput, "triangle list is nil")
	}
	if len(triangles)%3 != 0 {
		return nil, meshadjErrorf(MethodBuild, ErrBadInput, "triangle list length %d is not a multiple of 3", len(triangles))
	}

	cfg := buildConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	faceCount := len(triangles) / 3
	adj := &Adjacency{Faces: make([]Face, faceCount)}
	if faceCount == 0 {
		return adj, nil
	}

	scratch := make([]scratchEdge, 3*faceCount)
	faceOwner := make([]uint32, 3*faceCount)
	vMin := make([]uint32, 3*faceCount)
	vMax := make([]uint32, 3*faceCount)

	for i := 0; i < faceCount; i++ {
		f := &adj.Faces[i]
		f.V[0] = triangles[3*i+0]
		f.V[1] = triangles[3*i+1]
		f.V[2] = triangles[3*i+2]
		f.N[0], f.N[1], f.N[2] = BoundaryLink, BoundaryLink, BoundaryLink

		for k := 0; k < 3; k++ {
			a, b := f.edgeVertices(k)
			lo, hi := a, b
			if lo > hi {
				lo, hi = hi, lo
			}
			idx := 3*i + k
			scratch[idx] = scratchEdge{face: uint32(i), edge: k, vMin: lo, vMax: hi}
			faceOwner[idx] = uint32(i)
			vMin[idx] = lo
			vMax[idx] = hi
		}
	}

	sorter := radix.NewSorter()
	sorter.Sort(faceOwner, radix.Unsigned)
	sorter.Sort(vMin, radix.Unsigned)
	perm := sorter.Sort(vMax, radix.Unsigned)

	if cfg.keepEdges {
		adj.BoundaryEdges = make([]BoundaryEdge, 0, 3*faceCount)
	}

	i := 0
	for i < len(perm) {
		j := i + 1
		for j < len(perm) {
			a, b := scratch[perm[i]], scratch[perm[j]]
			if a.vMin != b.vMin || a.vMax != b.vMax {
				break
			}
			j++
		}
		run := perm[i:j]

		switch len(run) {
		case 1:
			if cfg.keepEdges {
				e := scratch[run[0]]
				adj.BoundaryEdges = append(adj.BoundaryEdges, BoundaryEdge{Face: e.face, Edge: e.edge, VMin: e.vMin, VMax: e.vMax})
			}
		case 2:
			e1, e2 := scratch[run[0]], scratch[run[1]]
			if err := updateLink(adj, e1.face, e2.face, e1.vMin, e1.vMax); err != nil {
				return nil, err
			}
		default:
			return nil, meshadjErrorf(MethodBuild, ErrNonManifold,
				"edge (%d,%d) shared by %d faces", scratch[run[0]].vMin, scratch[run[0]].vMax, len(run))
		}

		i = j
	}

	return adj, nil
}

// updateLink resolves the reciprocal neighbour links between f1 and f2
// across the edge spanning vA,vB.
func updateLink(adj *Adjacency, f1, f2 uint32, vA, vB uint32) error {
	e1 := adj.Faces[f1].FindEdge(vA, vB)
	if e1 == NoSuchEdge {
		return meshadjErrorf(MethodBuild, ErrBadInput, "face %d does not contain edge (%d,%d)", f1, vA, vB)
	}
	e2 := adj.Faces[f2].FindEdge(vA, vB)
	if e2 == NoSuchEdge {
		return meshadjErrorf(MethodBuild, ErrBadInput, "face %d does not contain edge (%d,%d)", f2, vA, vB)
	}

	adj.Faces[f1].N[e1] = packLink(f2, e2)
	adj.Faces[f2].N[e2] = packLink(f1, e1)
	return nil
}
