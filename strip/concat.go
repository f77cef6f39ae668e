package strip

// connectAll concatenates every committed strip into a single strip,
// bridging adjacent strips with a two-vertex degenerate join, per
// spec.md §4.E. lengths and indices describe the strips as produced by
// Compute, in 32-bit form regardless of the IndexSixteen flag; the caller
// converts the result to 16-bit when that flag is set.
func connectAll(lengths []uint32, indices []uint32, parityFix bool) (joinedLength uint32, joined []uint32) {
	offset := 0
	haveOutput := false

	for _, length := range lengths {
		if length == 0 {
			continue
		}
		src := indices[offset : offset+int(length)]
		offset += int(length)

		if haveOutput {
			prevLast := joined[len(joined)-1]
			firstCur := src[0]
			secondCur := src[0]
			if length >= 2 {
				secondCur = src[1]
			}
			joined = append(joined, prevLast, firstCur)

			if parityFix && len(joined)%2 != 0 {
				if firstCur == secondCur {
					if length > 0 {
						length--
						src = src[1:]
					}
				} else {
					joined = append(joined, firstCur)
				}
			}
		}

		joined = append(joined, src...)
		haveOutput = true
	}

	return uint32(len(joined)), joined
}
