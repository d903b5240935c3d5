package compress

import "github.com/klauspost/compress/s2"

// NoOpCompressor is the identity codec, selected by format.CompressionNone.
// It exists so a store can always carry a CompressionType byte and a
// uniform Codec interface even when the caller wants the packed-word
// payload written out verbatim (small stores, or debugging a round-trip
// without compression in the way).
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates the identity codec.
func NewNoOpCompressor() NoOpCompressor { return NoOpCompressor{} }

// Compress returns data unchanged; no copy is made.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) { return data, nil }

// Decompress returns data unchanged; no copy is made.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) { return data, nil }

// S2Compressor is the format.CompressionS2 codec: faster than zstd at a
// lower compression ratio, a reasonable default for a store that is
// rebuilt often and whose load time matters more than its size on disk.
// s2.Encode/Decode are already allocation-light and need no pooling.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates an S2 codec.
func NewS2Compressor() S2Compressor { return S2Compressor{} }

// Compress s2-compresses data. An empty payload (an empty window set)
// compresses to nil rather than a zero-length allocation.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress reverses Compress.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}
