package seqpack

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/windowseq/windowseq/windowerr"
)

func TestPack_RoundTrip(t *testing.T) {
	cases := []string{"CTT", "AGG", "ATGCAAAAA", "CTTNGG", "NACTTT"}

	for _, seq := range cases {
		enc, err := Pack("rec", []byte(seq))
		require.NoError(t, err)
		require.Equal(t, len(seq), enc.Length)
		require.Len(t, enc.Words, WordCount(len(seq)))

		got, err := Unpack(enc)
		require.NoError(t, err)
		require.Len(t, got, len(seq))
	}
}

func TestPack_CanonicalForm(t *testing.T) {
	enc, err := Pack("rec", []byte("actgun-W"))
	require.NoError(t, err)

	got, err := Unpack(enc)
	require.NoError(t, err)
	require.Equal(t, "ACTGTNNN", got)
}

func TestPack_InvalidSymbol(t *testing.T) {
	_, err := Pack("bad-rec", []byte("ACGX"))
	require.ErrorIs(t, err, windowerr.ErrInvalidSymbol)
	require.Contains(t, err.Error(), "bad-rec")
	require.Contains(t, err.Error(), "position=3")
}

func TestWordCount(t *testing.T) {
	require.Equal(t, 0, WordCount(0))
	require.Equal(t, 1, WordCount(1))
	require.Equal(t, 1, WordCount(12))
	require.Equal(t, 2, WordCount(13))
	require.Equal(t, 2, WordCount(24))
	require.Equal(t, 3, WordCount(25))
}

func TestPack_TailPaddingIsZero(t *testing.T) {
	enc, err := Pack("rec", []byte("CTT"))
	require.NoError(t, err)
	require.Len(t, enc.Words, 1)

	// 3 symbols occupy bits [0,15); the remaining 49 bits of the single
	// word must be zero.
	require.Equal(t, uint64(0), enc.Words[0]>>15)
}
