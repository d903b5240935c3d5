// Package seqpack packs a fixed-length symbol sequence into a compact
// bit-packed word representation, and unpacks it back into symbols.
package seqpack

import (
	"fmt"

	"github.com/windowseq/windowseq/symbol"
	"github.com/windowseq/windowseq/windowerr"
)

// SlotsPerWord is the number of 5-bit symbol slots that fit in a 64-bit word.
const SlotsPerWord = 64 / symbol.Width // 12

// Encoded is a packed symbol sequence: Length is the original byte count,
// Words is the packed ⌈Length/SlotsPerWord⌉-word representation. High bits
// in the tail word beyond Length are always zero.
type Encoded struct {
	Words  []uint64
	Length int
}

// WordCount returns the number of 64-bit words needed to hold length symbols.
func WordCount(length int) int {
	if length <= 0 {
		return 0
	}

	return (length + SlotsPerWord - 1) / SlotsPerWord
}

// Pack scans raw left to right and builds its packed form. identifier names
// the record in error messages; it does not affect the encoding.
//
// A byte outside the recognised alphabet aborts with ErrInvalidSymbol naming
// identifier and the zero-based position of the offending byte.
func Pack(identifier string, raw []byte) (Encoded, error) {
	words := make([]uint64, WordCount(len(raw)))

	for i, b := range raw {
		code, ok := symbol.Encode(b)
		if !ok {
			return Encoded{}, fmt.Errorf("%w: identifier=%q position=%d byte=%q",
				windowerr.ErrInvalidSymbol, identifier, i, b)
		}

		wordIdx := i / SlotsPerWord
		shift := uint((i % SlotsPerWord) * symbol.Width)
		words[wordIdx] |= uint64(code) << shift
	}

	return Encoded{Words: words, Length: len(raw)}, nil
}

// Unpack rebuilds the canonical-form symbol string from a packed sequence.
// A 5-bit slot that does not hold one of the five canonical codes indicates
// corruption and aborts with ErrCorruptEncoded naming the position.
func Unpack(e Encoded) (string, error) {
	out := make([]byte, e.Length)

	for i := 0; i < e.Length; i++ {
		word := e.Words[i/SlotsPerWord]
		shift := uint((i % SlotsPerWord) * symbol.Width)
		slot := symbol.Code((word >> shift) & symbol.Mask)

		b, err := symbol.Decode(slot)
		if err != nil {
			return "", fmt.Errorf("%w: position %d", err, i)
		}

		out[i] = b
	}

	return string(out), nil
}
