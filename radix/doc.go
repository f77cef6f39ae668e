// Package radix implements a stable, 4-pass LSB-first byte-radix permutation
// sort over 32-bit keys.
//
// Rather than move the keys themselves, Sort produces a permutation of
// [0, n) — an index order such that keys[perm[i]] is non-decreasing. Three
// key interpretations are supported via Mode: Unsigned, Signed (two's
// complement int32 bit patterns) and Float (IEEE-754 float32 bit patterns).
// Under Float, equal negative keys are the one exception to stability:
// their relative order is reversed.
//
// Why byte-radix instead of sort.Slice: the two client packages of this
// module (meshadj, strip) repeatedly re-sort the same or similar key sets —
// meshadj sorts a 3-key-wide edge scratch to find shared edges, and strip
// sorts face degrees to order seed faces. A Sorter amortizes its scratch
// buffers across calls and runs in O(n) per key instead of O(n log n),
// which matters when n is the number of edges or faces in a large mesh.
//
// Multi-key composite sorts: calling Sort repeatedly on the SAME *Sorter
// with different key slices of one length, least-significant key first,
// produces a
// stable lexicographic sort over the tuple of keys — each call's stable
// byte-radix pass preserves the relative order established by the previous
// call for ties. Call Reset to discard the accumulated order and start a
// fresh composite sort.
//
// Temporal coherence: if a key slice happens to already be non-decreasing
// in the current permutation order, Sort detects this during its single
// histogram-building pass and returns the existing permutation unchanged,
// skipping all four radix passes. Within a pass, if every key shares the
// same byte value at that position, the pass is skipped as a no-op.
//
// Complexity: O(n) time and O(n) extra space per Sort call (amortized,
// after the first call at a given n), versus O(n log n) comparisons for a
// general-purpose sort. The operation never fails: every key value sorts,
// there is no invalid input.
package radix
