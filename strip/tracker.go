package strip

import "github.com/katalvlaran/tristrip/meshadj"

// trackStrip walks the adjacency graph from faceIndex starting at the
// directed edge (v0,v1), appending the opposite vertex of each face it
// consumes and rolling the edge forward, exactly per spec.md §4.C. It
// marks every face it consumes in used (a working copy the caller owns),
// and stops the first time the walk hits a boundary edge, an already-used
// neighbour, or a face that doesn't actually contain the edge it's asked
// about.
//
// Returns the vertex sequence (length ≥ 2, starting with v0, v1) and the
// list of faces consumed in walk order (length = len(verts) - 2).
func trackStrip(adj *meshadj.Adjacency, used []bool, faceIndex uint32, v0, v1 uint32) (verts []uint32, faces []uint32) {
	verts = []uint32{v0, v1}
	for {
		face := &adj.Faces[faceIndex]
		vOpp := face.OppositeVertex(v0, v1)
		if vOpp == meshadj.NoSuchVertex {
			break
		}
		verts = append(verts, vOpp)
		faces = append(faces, faceIndex)
		used[faceIndex] = true

		edge := face.FindEdge(v1, vOpp)
		if edge == meshadj.NoSuchEdge {
			break
		}
		next, _, ok := face.Neighbour(edge)
		if !ok || used[next] {
			break
		}

		faceIndex = next
		v0, v1 = v1, vOpp
	}
	return verts, faces
}
