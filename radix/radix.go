package radix

import "math"

// Sort sorts the index range [0, len(keys)) by the bit pattern of each key
// under the given Mode, returning a permutation perm such that
// keys[perm[i]] is non-decreasing. The operation is total: it never fails,
// and it is stable — equal keys keep their relative order from whatever
// permutation the Sorter held on entry (identity order on first use or when
// len(keys) differs from the previous Sort/Reset call, otherwise the result
// of that call). The one exception is Mode Float: equal negative keys come
// out in the reverse of that order, because the MSB pass fills each
// negative bucket from its high end down.
//
// The returned slice is borrowed from the Sorter's internal buffers and is
// invalidated by the next call to Sort or Reset on the same Sorter.
//
// Complexity: O(n) time, 4 passes over n elements (fewer when a pass or the
// whole sort is skipped by the temporal-coherence fast path).
func (s *Sorter) Sort(keys []uint32, mode Mode) []uint32 {
	n := len(keys)
	s.grow(n)
	if n != s.n {
		// The held permutation covers a key set of another length, so it
		// cannot seed this sort: start from identity order instead.
		ids := s.current()[:n]
		for i := range ids {
			ids[i] = uint32(i)
		}
	}
	s.n = n
	if n == 0 {
		return nil
	}

	cur := s.current()[:n]
	nxt := s.other()[:n]

	// 1. Clear the histogram and build it in a single pass over the
	// current permutation, simultaneously checking whether keys[cur[i]]
	// is already non-decreasing (temporal coherence fast path).
	for p := 0; p < passCount; p++ {
		for b := 0; b < buckets; b++ {
			s.hist[p][b] = 0
		}
	}
	if s.buildHistogram(keys, cur, mode) {
		return cur
	}

	// 2. Negative-value count, needed by the MSB pass for Signed and Float.
	var nbNegatives uint32
	if mode != Unsigned {
		for b := 128; b < buckets; b++ {
			nbNegatives += s.hist[passCount-1][b]
		}
	}

	// 3. Four LSB-to-MSB passes; each non-skipped pass is a full stable
	// counting sort by one byte, writing into the other buffer and
	// swapping which buffer is "current" for the next pass.
	for pass := 0; pass < passCount; pass++ {
		hist := &s.hist[pass]
		if skipPass(hist, n) {
			continue
		}

		computeOffsets(&s.offset, hist, pass, mode, nbNegatives)

		msb := pass == passCount-1
		for _, id := range cur {
			b := byteAt(keys[id], pass)
			if mode == Float && msb && b >= 128 {
				// Negative floats: larger raw byte magnitude means a
				// more negative value, so this pass fills the bucket
				// from its high end downward instead of its low end
				// upward, reversing order within (and, combined with
				// the offset layout below, across) the negative range.
				s.offset[b]--
				nxt[s.offset[b]] = id
			} else {
				nxt[s.offset[b]] = id
				s.offset[b]++
			}
		}

		s.swap()
		cur, nxt = nxt, cur
	}

	return cur
}

// SortUint32 sorts keys under Mode Unsigned; keys itself is not modified.
// See Sort for the return-value and stability contract.
func (s *Sorter) SortUint32(keys []uint32) []uint32 {
	return s.Sort(keys, Unsigned)
}

// SortInt32 sorts keys under Mode Signed, negatives ordered before
// non-negatives. See Sort for the return-value and stability contract.
func (s *Sorter) SortInt32(keys []int32) []uint32 {
	bits := make([]uint32, len(keys))
	for i, k := range keys {
		bits[i] = uint32(k)
	}
	return s.Sort(bits, Signed)
}

// SortFloat32 sorts keys under Mode Float, respecting IEEE-754 ordering
// including the negative range. See Sort for the return-value and
// stability contract. The radix passes place NaN keys by their raw bit
// pattern, but the already-sorted check compares float values, where NaN
// is neither less nor greater than anything: a slice holding NaN can pass
// that check and come back in its entry order, unsorted (for example
// {1, NaN, 0.5}).
func (s *Sorter) SortFloat32(keys []float32) []uint32 {
	bits := make([]uint32, len(keys))
	for i, k := range keys {
		bits[i] = math.Float32bits(k)
	}
	return s.Sort(bits, Float)
}

// buildHistogram accumulates all four byte histograms for keys in the
// order given by perm, and reports whether keys[perm[i]] is already
// non-decreasing under mode's interpretation (the temporal-coherence fast
// path: when true, the caller skips all four radix passes entirely).
func (s *Sorter) buildHistogram(keys []uint32, perm []uint32, mode Mode) bool {
	sorted := true
	prev := keys[perm[0]]
	for _, id := range perm {
		v := keys[id]
		if less(v, prev, mode) {
			sorted = false
		}
		prev = v

		s.hist[0][byteAt(v, 0)]++
		s.hist[1][byteAt(v, 1)]++
		s.hist[2][byteAt(v, 2)]++
		s.hist[3][byteAt(v, 3)]++
	}
	return sorted
}

// less reports whether v sorts strictly before prev under mode.
func less(v, prev uint32, mode Mode) bool {
	switch mode {
	case Signed:
		return int32(v) < int32(prev)
	case Float:
		return math.Float32frombits(v) < math.Float32frombits(prev)
	default:
		return v < prev
	}
}

// byteAt extracts byte number pass (0 = least significant) from v.
func byteAt(v uint32, pass int) uint32 {
	return (v >> (uint(pass) * 8)) & 0xFF
}

// skipPass reports whether a pass is a no-op: every element shares one
// byte value. Mirrors the original's early-exit: the histogram sums to n,
// so the first nonzero bucket either accounts for all n elements (skip) or
// it does not, in which case at least one other bucket must be nonzero too
// and the pass cannot be skipped.
func skipPass(hist *[buckets]uint32, n int) bool {
	for b := 0; b < buckets; b++ {
		if hist[b] == uint32(n) {
			return true
		}
		if hist[b] != 0 {
			return false
		}
	}
	return false
}

// computeOffsets fills offset with the starting write position for each
// byte bucket of the given pass. The LSB and middle passes (and the MSB
// pass under Unsigned) use a single ascending prefix sum. Signed's MSB
// pass splits the prefix sum into a negative group ([128,256), offset 0)
// and a non-negative group ([0,128), offset nbNegatives) — both still
// ascending, since two's-complement preserves ordering within each group.
// Float's MSB pass keeps the same two-group split for non-negatives, but
// lays out the negative group in descending byte order (byte 255 first)
// and converts each negative bucket's offset to an exclusive upper bound,
// so the fill loop in Sort can write it from the high end down.
func computeOffsets(offset *[buckets]uint32, hist *[buckets]uint32, pass int, mode Mode, nbNegatives uint32) {
	if pass != passCount-1 || mode == Unsigned {
		offset[0] = 0
		for i := 1; i < buckets; i++ {
			offset[i] = offset[i-1] + hist[i-1]
		}
		return
	}

	if mode == Signed {
		offset[0] = nbNegatives
		for i := 1; i < 128; i++ {
			offset[i] = offset[i-1] + hist[i-1]
		}
		offset[128] = 0
		for i := 129; i < buckets; i++ {
			offset[i] = offset[i-1] + hist[i-1]
		}
		return
	}

	// Float MSB pass.
	offset[0] = nbNegatives
	for i := 1; i < 128; i++ {
		offset[i] = offset[i-1] + hist[i-1]
	}
	offset[255] = 0
	for i := 0; i < 127; i++ {
		offset[254-i] = offset[255-i] + hist[255-i]
	}
	for i := 128; i < buckets; i++ {
		offset[i] += hist[i]
	}
}
