// Package symbol implements the nucleotide alphabet codec: the mapping
// between an input byte and its 5-bit one-hot code, and back.
package symbol

import (
	"fmt"

	"github.com/windowseq/windowseq/windowerr"
)

// Code is a 5-bit one-hot symbol code. Zero is reserved for "absent slot"
// and is never returned by Encode for a recognised byte.
type Code uint8

// The five canonical codes. Degeneracy and gap symbols all fold to CodeN.
const (
	CodeA Code = 0b10000
	CodeC Code = 0b01000
	CodeG Code = 0b00100
	CodeT Code = 0b00010
	CodeN Code = 0b00001
)

// Width is the number of bits a single symbol occupies in a packed word.
const Width = 5

// Mask isolates a single 5-bit slot once it has been shifted into position.
const Mask = 0b11111

var encodeTable = buildEncodeTable()

func buildEncodeTable() [256]Code {
	var t [256]Code

	set := func(code Code, bytes string) {
		for i := 0; i < len(bytes); i++ {
			t[bytes[i]] = code
		}
	}

	set(CodeA, "Aa")
	set(CodeC, "Cc")
	set(CodeG, "Gg")
	set(CodeT, "TtUu")
	set(CodeN, "Nn-WwSsMmKkRrYyBbDdHhVv")

	return t
}

// Encode maps an input byte to its 5-bit code. The returned bool is false
// if the byte is not part of the recognised alphabet; the caller decides
// whether that is fatal.
func Encode(b byte) (Code, bool) {
	code := encodeTable[b]
	if code == 0 {
		return 0, false
	}

	return code, true
}

// Decode maps one of the five canonical codes back to its canonical byte
// form (A, C, G, T, or N). Any other code indicates corruption.
func Decode(c Code) (byte, error) {
	switch c {
	case CodeA:
		return 'A', nil
	case CodeC:
		return 'C', nil
	case CodeG:
		return 'G', nil
	case CodeT:
		return 'T', nil
	case CodeN:
		return 'N', nil
	default:
		return 0, fmt.Errorf("%w: code %#05b", windowerr.ErrCorruptEncoded, uint8(c))
	}
}
