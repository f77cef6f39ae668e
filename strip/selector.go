package strip

import "github.com/katalvlaran/tristrip/meshadj"

// candidate is one of the three directed starting orientations tried from
// a seed face.
type candidate struct {
	verts      []uint32
	faces      []uint32
	initialLen int
	totalLen   int
}

// reverseUint32 returns a new slice holding s's elements in reverse order.
func reverseUint32(s []uint32) []uint32 {
	out := make([]uint32, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}

// trackCandidate runs the forward walk for orientation i from seedFace,
// then (if it reached at least a triangle) reverses it and extends
// backward through the same seed face, per spec.md §4.D steps 1-4.
// usedGlobal is read-only here; trackCandidate works on its own copy.
func trackCandidate(adj *meshadj.Adjacency, usedGlobal []bool, seedFace uint32, i int) candidate {
	seed := &adj.Faces[seedFace]
	// The three directed starting edges, per spec.md §4.D: (V0,V1),
	// (V2,V0), (V1,V2) — every edge of the seed face exactly once, in one
	// direction only.
	v0ForStart := [3]uint32{seed.V[0], seed.V[2], seed.V[1]}
	v1ForStart := [3]uint32{seed.V[1], seed.V[0], seed.V[2]}

	usedWork := make([]bool, len(usedGlobal))
	copy(usedWork, usedGlobal)

	fwdVerts, fwdFaces := trackStrip(adj, usedWork, seedFace, v0ForStart[i], v1ForStart[i])
	initial := len(fwdVerts)

	if initial < 3 {
		return candidate{verts: fwdVerts, initialLen: initial, totalLen: initial}
	}

	reversedVerts := reverseUint32(fwdVerts)
	reversedFaces := reverseUint32(fwdFaces)
	growStart := initial - 3

	extVerts, extFaces := trackStrip(adj, usedWork, seedFace, reversedVerts[growStart], reversedVerts[growStart+1])

	verts := append(append([]uint32{}, reversedVerts[:growStart]...), extVerts...)
	faces := append(append([]uint32{}, reversedFaces[:len(reversedFaces)-1]...), extFaces...)

	return candidate{
		verts:      verts,
		faces:      faces,
		initialLen: initial,
		totalLen:   growStart + len(extVerts),
	}
}

// computeBestStrip evaluates all three orientations from seedFace, commits
// the longest to usedGlobal, applies parity correction if requested, and
// returns its vertex sequence. ok is false if no orientation reached a
// full triangle, in which case usedGlobal is left unchanged.
func computeBestStrip(adj *meshadj.Adjacency, usedGlobal []bool, seedFace uint32, flags Flags) (verts []uint32, ok bool) {
	var cands [3]candidate
	for i := 0; i < 3; i++ {
		cands[i] = trackCandidate(adj, usedGlobal, seedFace, i)
	}

	best := 0
	if cands[1].totalLen > cands[0].totalLen {
		best = 1
	}
	if cands[2].totalLen > cands[best].totalLen {
		best = 2
	}

	winner := cands[best]
	bestLen := winner.totalLen
	if bestLen < 3 {
		return nil, false
	}

	triUsed := bestLen - 2
	for t := 0; t < triUsed; t++ {
		usedGlobal[winner.faces[t]] = true
	}

	out := append([]uint32{}, winner.verts[:bestLen]...)
	if flags.has(ParityFix) && winner.initialLen%2 == 1 {
		out, bestLen = applyParityFix(out, bestLen, winner.initialLen)
	}

	return out, true
}

// applyParityFix implements spec.md §4.D's parity correction, including
// its §9 "insert duplicate at index 1" resolution of the documented open
// question.
func applyParityFix(verts []uint32, length int, initialLen int) ([]uint32, int) {
	if length == 3 || length == 4 {
		verts[1], verts[2] = verts[2], verts[1]
		return verts, length
	}

	reverseInPlace(verts[:length])
	if (length-initialLen)%2 != 0 {
		verts = append(verts, 0)
		copy(verts[2:length+1], verts[1:length])
		verts[1] = verts[0]
		length++
	}
	return verts, length
}

// reverseInPlace reverses s in place.
func reverseInPlace(s []uint32) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
