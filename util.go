package prefixcode

import (
	mathbits "math/bits"
)

func log2uint64(x uint64) uint64 {
	if x == 0 {
		x = 1
	}
	return uint64(64 - mathbits.LeadingZeros64(x))
}

// bytesForBits returns the number of bytes needed to hold n bits.
func bytesForBits(n uint64) uint64 {
	return n/8 + uint64(boolToInt(n%8 != 0))
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
