package radix_test

import (
	"math"
	"sort"
	"testing"

	fuzz "github.com/trailofbits/go-fuzz-utils"

	"github.com/katalvlaran/tristrip/radix"
)

// FuzzSort derives a random key slice and mode from the fuzz corpus and
// checks radix correctness (§8.7) against a sort.SliceStable reference: the
// keys read through the returned permutation must equal the reference's,
// position by position. Only key values are compared, so the order of
// equal keys (stability, §8.6) is not checked here. This is the same
// harness shape codahale-thyrse uses to drive structured fuzz inputs via
// go-fuzz-utils' TypeProvider.
func FuzzSort(f *testing.F) {
	f.Add([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8})
	f.Add([]byte{2, 0, 0, 0, 0})

	f.Fuzz(func(t *testing.T, data []byte) {
		tp, err := fuzz.NewTypeProvider(data)
		if err != nil {
			t.Skip(err)
		}

		modeByte, err := tp.GetByte()
		if err != nil {
			t.Skip(err)
		}
		mode := radix.Mode(int(modeByte) % 3)

		n, err := tp.GetUint16()
		if err != nil {
			t.Skip(err)
		}
		count := int(n % 512)

		keys := make([]uint32, count)
		for i := range keys {
			b0, err := tp.GetByte()
			if err != nil {
				t.Skip(err)
			}
			b1, err := tp.GetByte()
			if err != nil {
				t.Skip(err)
			}
			b2, err := tp.GetByte()
			if err != nil {
				t.Skip(err)
			}
			b3, err := tp.GetByte()
			if err != nil {
				t.Skip(err)
			}
			keys[i] = uint32(b0) | uint32(b1)<<8 | uint32(b2)<<16 | uint32(b3)<<24
		}

		perm := radix.NewSorter().Sort(keys, mode)
		if count == 0 {
			return
		}

		want := make([]int, count)
		for i := range want {
			want[i] = i
		}
		sort.SliceStable(want, func(i, j int) bool {
			return lessForMode(keys[want[i]], keys[want[j]], mode)
		})

		for i := range want {
			if keys[want[i]] != keys[perm[i]] {
				t.Fatalf("mismatch at %d: want key %d, got key %d", i, keys[want[i]], keys[perm[i]])
			}
		}
	})
}

func lessForMode(a, b uint32, mode radix.Mode) bool {
	switch mode {
	case radix.Signed:
		return int32(a) < int32(b)
	case radix.Float:
		return math.Float32frombits(a) < math.Float32frombits(b)
	default:
		return a < b
	}
}
