package endian

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetLittleEndianEngine_ImplementsEndianEngine(t *testing.T) {
	engine := GetLittleEndianEngine()
	require.Implements(t, (*EndianEngine)(nil), engine)
}

// TestGetLittleEndianEngine_HeaderRoundTrip mirrors store.Header's own
// Bytes/ParseHeader shape: a fixed-size buffer with fields written at fixed
// offsets via Put, then read back via the matching getter.
func TestGetLittleEndianEngine_HeaderRoundTrip(t *testing.T) {
	engine := GetLittleEndianEngine()

	buf := make([]byte, 16)
	engine.PutUint32(buf[0:4], 2)   // version
	buf[4] = 0x2                    // compression tag
	engine.PutUint32(buf[8:12], 3)  // window count
	engine.PutUint32(buf[12:16], 6) // length

	require.Equal(t, uint32(2), engine.Uint32(buf[0:4]))
	require.Equal(t, byte(0x2), buf[4])
	require.Equal(t, uint32(3), engine.Uint32(buf[8:12]))
	require.Equal(t, uint32(6), engine.Uint32(buf[12:16]))

	// Little-endian: the version's low byte comes first.
	require.Equal(t, byte(2), buf[0])
	require.Equal(t, byte(0), buf[1])
}

// TestGetLittleEndianEngine_AppendPayload mirrors store.packPayload: building
// a window's word stream by appending rather than writing into a
// preallocated, offset-tracked buffer.
func TestGetLittleEndianEngine_AppendPayload(t *testing.T) {
	engine := GetLittleEndianEngine()
	words := []uint64{0x0102030405060708, 0xFFEEDDCCBBAA9988}

	var buf []byte
	for _, w := range words {
		buf = engine.AppendUint64(buf, w)
	}

	require.Len(t, buf, 16)
	require.Equal(t, words[0], engine.Uint64(buf[0:8]))
	require.Equal(t, words[1], engine.Uint64(buf[8:16]))
}
