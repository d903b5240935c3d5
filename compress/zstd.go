package compress

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// ZstdCompressor is the format.CompressionZstd codec: the highest
// compression ratio of the four, at the cost of slower encode. A store is
// built once and loaded many times, so the extra encode cost is paid once
// per build while every query or cluster run benefits from the smaller
// file. Large window sets (millions of fixed-width records) are the
// intended case.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// zstdEncoderPool and zstdDecoderPool amortise zstd's warmup cost across
// every store a long-running process builds or loads; klauspost/compress's
// own docs recommend keeping an encoder/decoder around rather than
// constructing one per call.
var zstdEncoderPool = sync.Pool{
	New: func() any {
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if err != nil {
			panic(fmt.Sprintf("compress: failed to build zstd encoder: %v", err))
		}

		return enc
	},
}

var zstdDecoderPool = sync.Pool{
	New: func() any {
		dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
		if err != nil {
			panic(fmt.Sprintf("compress: failed to build zstd decoder: %v", err))
		}

		return dec
	},
}

// NewZstdCompressor creates a Zstd codec.
func NewZstdCompressor() ZstdCompressor { return ZstdCompressor{} }

// Compress zstd-compresses a store's packed-word payload using a pooled
// encoder.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	enc := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(enc)

	return enc.EncodeAll(data, nil), nil
}

// Decompress reverses Compress using a pooled decoder.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dec := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(dec)

	decompressed, err := dec.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd: decompressing store payload: %w", err)
	}

	return decompressed, nil
}
