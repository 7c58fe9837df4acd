package statepool

import "github.com/arnesville/fdplan/problem"

// bitWidth returns ceil(log2(r)) for r >= 1, i.e. the number of bits needed
// to represent values 0..r-1. A range of 1 needs 0 bits (the value is
// always 0 and contributes nothing to the packed key).
func bitWidth(r int) uint {
	var w uint
	for n := r - 1; n > 0; n >>= 1 {
		w++
	}
	return w
}

// bitWidths computes the per-variable packed bit width, in variable order.
func bitWidths(vars []problem.Var) []uint {
	ws := make([]uint, len(vars))
	for i, v := range vars {
		ws[i] = bitWidth(v.Range)
	}
	return ws
}

// packKey packs s into a byte string using the given per-variable bit
// widths, MSB-first within each byte. Equal states pack to equal keys and
// vice versa -- this is the pool's content-identity invariant.
func packKey(widths []uint, s problem.State) string {
	var totalBits uint
	for _, w := range widths {
		totalBits += w
	}
	buf := make([]byte, (totalBits+7)/8)

	var bitPos uint
	vals := s.Vals()
	for i, w := range widths {
		v := uint64(vals[i])
		for b := int(w) - 1; b >= 0; b-- {
			if v&(1<<uint(b)) != 0 {
				byteIdx := bitPos / 8
				bitIdx := 7 - (bitPos % 8)
				buf[byteIdx] |= 1 << bitIdx
			}
			bitPos++
		}
	}
	return string(buf)
}
