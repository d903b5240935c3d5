// Package hash provides the xxHash64 primitive used to bucket encoded
// sequences for fast dedup lookups.
package hash

import "github.com/cespare/xxhash/v2"

// Words computes the xxHash64 of a packed word slice's little-endian byte
// representation.
func Words(words []uint64) uint64 {
	h := xxhash.New()

	var buf [8]byte
	for _, w := range words {
		buf[0] = byte(w)
		buf[1] = byte(w >> 8)
		buf[2] = byte(w >> 16)
		buf[3] = byte(w >> 24)
		buf[4] = byte(w >> 32)
		buf[5] = byte(w >> 40)
		buf[6] = byte(w >> 48)
		buf[7] = byte(w >> 56)
		_, _ = h.Write(buf[:])
	}

	return h.Sum64()
}
