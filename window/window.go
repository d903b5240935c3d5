// Package window implements the in-memory window set: an ordered,
// append-only collection of encoded sequences sharing one length, with
// bulk Hamming distance and symbol recovery.
package window

import (
	"fmt"
	"math/bits"

	"github.com/windowseq/windowseq/seqpack"
	"github.com/windowseq/windowseq/windowerr"
)

// Set is an ordered collection of encoded sequences sharing one length.
// The zero value is not usable; construct with New or FromWords.
type Set struct {
	version uint32
	length  uint32 // 0 means "no length established yet"
	windows [][]uint64
}

// New creates an empty window set tagged with the given format version.
func New(version uint32) *Set {
	return &Set{version: version}
}

// FromWords reconstructs a window set from its raw parts, as read back from
// a store. Every window's word slice must have exactly WordsPerWindow(length)
// entries; a mismatch indicates a corrupt store.
func FromWords(version uint32, length uint32, windows [][]uint64) (*Set, error) {
	expected := WordsPerWindow(length)
	for i, w := range windows {
		if len(w) != expected {
			return nil, fmt.Errorf("%w: window %d has %d words, expected %d",
				windowerr.ErrCorruptStore, i, len(w), expected)
		}
	}

	return &Set{version: version, length: length, windows: windows}, nil
}

// WordsPerWindow returns ⌈length/SlotsPerWord⌉, the number of 64-bit words
// a window of the given symbol length occupies. It returns 0 for length 0.
func WordsPerWindow(length uint32) int {
	return seqpack.WordCount(int(length))
}

// Version returns the format-version tag this set was created or loaded with.
func (s *Set) Version() uint32 { return s.version }

// Length returns the shared symbol length of every window in the set, or 0
// if the set is still empty.
func (s *Set) Length() uint32 { return s.length }

// Len returns the number of windows currently in the set.
func (s *Set) Len() int { return len(s.windows) }

// WindowWords returns the raw packed words of the window at index i. The
// returned slice is owned by the set and must not be modified.
func (s *Set) WindowWords(i int) []uint64 { return s.windows[i] }

// Append adds an encoded sequence to the set.
//
// The first append establishes the set's length; every subsequent append
// must match it exactly, or ErrLengthMismatch is returned. An empty
// sequence (Length == 0) is always rejected.
func (s *Set) Append(e seqpack.Encoded) error {
	if e.Length == 0 {
		return fmt.Errorf("%w: cannot append an empty sequence", windowerr.ErrLengthMismatch)
	}

	if s.length == 0 {
		s.length = uint32(e.Length)
	} else if int(s.length) != e.Length {
		return fmt.Errorf("%w: expected length %d, found %d", windowerr.ErrLengthMismatch, s.length, e.Length)
	}

	s.windows = append(s.windows, e.Words)

	return nil
}

// Distances computes the Hamming distance from query to every stored
// window, writing result i to out[i]. out must have exactly Len() entries.
//
// Distance is (Σ_w popcount(window_w XOR query_w)) / 2: the division by two
// is exact because the one-hot encoding flips exactly two bits per
// differing position. A single bit-difference in that sum would indicate
// corruption upstream of this layer and is not checked for here.
func (s *Set) Distances(query seqpack.Encoded, out []int) error {
	if s.length != 0 && query.Length != int(s.length) {
		return fmt.Errorf("%w: expected length %d, found %d", windowerr.ErrLengthMismatch, s.length, query.Length)
	}

	if len(out) != len(s.windows) {
		return fmt.Errorf("%w: out buffer has %d entries, need %d", windowerr.ErrInvalidArguments, len(out), len(s.windows))
	}

	for i, words := range s.windows {
		var total int
		for j, qw := range query.Words {
			total += bits.OnesCount64(words[j] ^ qw)
		}
		out[i] = total / 2
	}

	return nil
}

// SymbolsAt decodes the window at index i back into its canonical-form
// symbol string.
func (s *Set) SymbolsAt(i int) (string, error) {
	if i < 0 || i >= len(s.windows) {
		return "", fmt.Errorf("%w: window index %d out of range [0,%d)", windowerr.ErrInvalidArguments, i, len(s.windows))
	}

	return seqpack.Unpack(seqpack.Encoded{Words: s.windows[i], Length: int(s.length)})
}
