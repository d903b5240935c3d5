package symbol

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/windowseq/windowseq/windowerr"
)

func TestEncode_Canonical(t *testing.T) {
	cases := []struct {
		in   byte
		want Code
	}{
		{'A', CodeA}, {'a', CodeA},
		{'C', CodeC}, {'c', CodeC},
		{'G', CodeG}, {'g', CodeG},
		{'T', CodeT}, {'t', CodeT},
		{'U', CodeT}, {'u', CodeT},
		{'N', CodeN}, {'n', CodeN},
		{'-', CodeN},
		{'W', CodeN}, {'S', CodeN}, {'M', CodeN}, {'K', CodeN},
		{'R', CodeN}, {'Y', CodeN}, {'B', CodeN}, {'D', CodeN},
		{'H', CodeN}, {'V', CodeN},
	}

	for _, c := range cases {
		got, ok := Encode(c.in)
		require.True(t, ok, "byte %q should be recognised", c.in)
		require.Equal(t, c.want, got, "byte %q", c.in)
	}
}

func TestEncode_Absent(t *testing.T) {
	for _, b := range []byte{'X', 'Z', '1', ' ', '\n', 0x00} {
		_, ok := Encode(b)
		require.False(t, ok, "byte %q should not be recognised", b)
	}
}

func TestDecode_Canonical(t *testing.T) {
	cases := []struct {
		code Code
		want byte
	}{
		{CodeA, 'A'},
		{CodeC, 'C'},
		{CodeG, 'G'},
		{CodeT, 'T'},
		{CodeN, 'N'},
	}

	for _, c := range cases {
		got, err := Decode(c.code)
		require.NoError(t, err)
		require.Equal(t, c.want, got)
	}
}

func TestDecode_Corrupt(t *testing.T) {
	_, err := Decode(Code(0))
	require.ErrorIs(t, err, windowerr.ErrCorruptEncoded)

	_, err = Decode(Code(0b11111))
	require.ErrorIs(t, err, windowerr.ErrCorruptEncoded)
}

func TestEncodeDecode_RoundTripCanonicalForm(t *testing.T) {
	// Every recognised byte decodes to its canonical_form: upper-cased,
	// U folded to T, degeneracies folded to N.
	cases := map[byte]byte{
		'a': 'A', 'A': 'A',
		'c': 'C', 'C': 'C',
		'g': 'G', 'G': 'G',
		't': 'T', 'T': 'T', 'u': 'T', 'U': 'T',
		'n': 'N', 'N': 'N', '-': 'N', 'w': 'N', 'r': 'N',
	}

	for in, want := range cases {
		code, ok := Encode(in)
		require.True(t, ok)
		got, err := Decode(code)
		require.NoError(t, err)
		require.Equal(t, want, got, "input %q", in)
	}
}
