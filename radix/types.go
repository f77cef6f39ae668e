package radix

// Mode selects how a Sorter interprets the bit pattern of each uint32 key.
type Mode int

const (
	// Unsigned interprets keys as plain uint32 values.
	Unsigned Mode = iota
	// Signed interprets keys as two's-complement int32 bit patterns.
	Signed
	// Float interprets keys as IEEE-754 float32 bit patterns.
	Float
)

// passCount is the number of byte passes a 32-bit key requires.
const passCount = 4

// buckets is the number of distinct byte values per pass.
const buckets = 256

// Sorter is a reusable byte-radix permutation sorter.
//
// A zero-value Sorter is usable; its scratch buffers grow lazily to the
// largest n seen across all Sort/Reset calls and are never shrunk. A
// Sorter is not safe for concurrent use — callers needing concurrent
// sorts should use one Sorter per goroutine, mirroring the single-striper-
// instance-per-goroutine contract of the strip package.
type Sorter struct {
	bufA, bufB []uint32   // permutation buffers; len == largest n seen
	primary    bool       // true when bufA holds the current permutation
	n          int        // length of the most recent Sort/Reset call
	hist       [passCount][buckets]uint32
	offset     [buckets]uint32
}

// NewSorter returns an empty, ready-to-use Sorter.
func NewSorter() *Sorter {
	return &Sorter{primary: true}
}

// current returns the buffer holding the active permutation.
func (s *Sorter) current() []uint32 {
	if s.primary {
		return s.bufA
	}
	return s.bufB
}

// other returns the buffer that is not currently active.
func (s *Sorter) other() []uint32 {
	if s.primary {
		return s.bufB
	}
	return s.bufA
}

// swap flips which buffer is considered current.
func (s *Sorter) swap() {
	s.primary = !s.primary
}

// grow enlarges both buffers to length n, resetting the permutation to
// identity order [0, n). A no-op if the buffers are already large enough;
// note that growing DISCARDS any permutation accumulated so far, exactly
// as a fresh identity order would, since the previous buffers no longer
// cover the new, larger key set.
func (s *Sorter) grow(n int) {
	if n <= len(s.bufA) {
		return
	}
	s.bufA = make([]uint32, n)
	s.bufB = make([]uint32, n)
	for i := range s.bufA {
		s.bufA[i] = uint32(i)
	}
	s.primary = true
}

// Reset reseeds the Sorter's current permutation to initial, growing its
// buffers if needed. Use this to start a fresh composite multi-key sort
// instead of continuing to refine whatever permutation is already held.
func (s *Sorter) Reset(initial []uint32) {
	n := len(initial)
	s.grow(n)
	copy(s.current()[:n], initial)
	s.n = n
}

// Permutation returns the Sorter's current permutation view: the result of
// the most recent Sort or Reset call. The returned slice is borrowed from
// internal storage and is invalidated by the next call to Sort or Reset.
func (s *Sorter) Permutation() []uint32 {
	return s.current()[:s.n]
}
