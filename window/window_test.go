package window

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/windowseq/windowseq/seqpack"
	"github.com/windowseq/windowseq/windowerr"
)

func mustPack(t *testing.T, seq string) seqpack.Encoded {
	t.Helper()
	enc, err := seqpack.Pack("t", []byte(seq))
	require.NoError(t, err)

	return enc
}

func TestSet_AppendEstablishesLength(t *testing.T) {
	s := New(2)
	require.Equal(t, uint32(0), s.Length())

	require.NoError(t, s.Append(mustPack(t, "CTT")))
	require.Equal(t, uint32(3), s.Length())
	require.Equal(t, 1, s.Len())

	require.NoError(t, s.Append(mustPack(t, "AGG")))
	require.Equal(t, 2, s.Len())
}

func TestSet_AppendLengthMismatch(t *testing.T) {
	s := New(2)
	require.NoError(t, s.Append(mustPack(t, "CTT")))

	err := s.Append(mustPack(t, "AGGG"))
	require.ErrorIs(t, err, windowerr.ErrLengthMismatch)
}

func TestSet_AppendEmptyRejected(t *testing.T) {
	s := New(2)
	err := s.Append(seqpack.Encoded{})
	require.ErrorIs(t, err, windowerr.ErrLengthMismatch)
}

func TestSet_DistancesSelfIsZero(t *testing.T) {
	s := New(2)
	require.NoError(t, s.Append(mustPack(t, "CTT")))
	require.NoError(t, s.Append(mustPack(t, "AGG")))

	out := make([]int, s.Len())
	require.NoError(t, s.Distances(mustPack(t, "CTT"), out))
	require.Equal(t, []int{0, 3}, out)

	require.NoError(t, s.Distances(mustPack(t, "AGG"), out))
	require.Equal(t, []int{3, 0}, out)
}

func TestSet_DistancesLengthMismatch(t *testing.T) {
	s := New(2)
	require.NoError(t, s.Append(mustPack(t, "CTT")))

	out := make([]int, s.Len())
	err := s.Distances(mustPack(t, "CTTT"), out)
	require.ErrorIs(t, err, windowerr.ErrLengthMismatch)
}

func TestSet_DistancesBufferSizeMismatch(t *testing.T) {
	s := New(2)
	require.NoError(t, s.Append(mustPack(t, "CTT")))

	out := make([]int, 2)
	err := s.Distances(mustPack(t, "CTT"), out)
	require.ErrorIs(t, err, windowerr.ErrInvalidArguments)
}

func TestSet_SymbolsAtFoldsDegeneracies(t *testing.T) {
	s := New(2)
	require.NoError(t, s.Append(mustPack(t, "CTTNGG")))

	got, err := s.SymbolsAt(0)
	require.NoError(t, err)
	require.Equal(t, "CTTNGG", got)
}

func TestSet_SymbolsAtOutOfRange(t *testing.T) {
	s := New(2)
	_, err := s.SymbolsAt(0)
	require.ErrorIs(t, err, windowerr.ErrInvalidArguments)
}

func TestFromWords_RejectsWrongWordCount(t *testing.T) {
	_, err := FromWords(2, 3, [][]uint64{{0, 0}})
	require.ErrorIs(t, err, windowerr.ErrCorruptStore)
}

func TestFromWords_RoundTrip(t *testing.T) {
	built := New(2)
	require.NoError(t, built.Append(mustPack(t, "CTTNGG")))
	require.NoError(t, built.Append(mustPack(t, "AGGTGA")))

	restored, err := FromWords(built.Version(), built.Length(), [][]uint64{
		built.WindowWords(0),
		built.WindowWords(1),
	})
	require.NoError(t, err)

	symbols, err := restored.SymbolsAt(0)
	require.NoError(t, err)
	require.Equal(t, "CTTNGG", symbols)
}
