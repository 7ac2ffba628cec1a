package huffzip

import (
	mathbits "math/bits"
)

func log2uint32(x uint32) uint32 {
	if x == 0 {
		x = 1
	}
	return uint32(32 - mathbits.LeadingZeros32(x))
}

// paddingFor returns the number of zero bits needed to extend numBits to a
// multiple of 8.
func paddingFor(numBits uint64) uint8 {
	return uint8((8 - numBits%8) % 8)
}
