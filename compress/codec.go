// Package compress implements the pluggable codecs a store can use to
// shrink its packed-word payload on disk: none, zstd, s2, and lz4, selected
// by the single CompressionType byte in a store's header.
package compress

import (
	"fmt"

	"github.com/windowseq/windowseq/format"
)

// Compressor turns a store's raw packed-word payload — the concatenated
// little-endian u64 words of every window — into its compressed form.
type Compressor interface {
	// Compress returns data's compressed form. The input is not modified;
	// the returned slice is newly allocated (or, for the identity codec,
	// the input slice itself).
	Compress(data []byte) ([]byte, error)
}

// Decompressor is the inverse of Compressor: it recovers a store's raw
// packed-word payload from its on-disk compressed form.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec is a compression algorithm that can both compress and decompress a
// store's payload. A store always uses one codec for both directions.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats reports the size reduction a codec achieved over one
// store's payload; useful when comparing compression choices for a build.
type CompressionStats struct {
	Algorithm           format.CompressionType
	OriginalSize        int64
	CompressedSize      int64
	CompressionTimeNs   int64
	DecompressionTimeNs int64
}

// CompressionRatio is CompressedSize/OriginalSize; values below 1.0 mean
// the payload shrank. Returns 0 if OriginalSize is 0.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings expresses CompressionRatio as a percentage reduction (0-100).
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// CreateCodec builds a fresh Codec for compressionType. target names the
// caller (e.g. "store") for the error message on an unrecognised type.
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the shared built-in Codec instance for compressionType.
// Unlike CreateCodec, the returned value is not freshly allocated; this is
// safe because none of the built-in codecs carry per-instance state.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
