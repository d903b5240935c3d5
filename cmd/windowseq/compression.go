package main

import (
	"fmt"

	"github.com/windowseq/windowseq/format"
)

func parseCompression(s string) (format.CompressionType, error) {
	switch s {
	case "", "none":
		return format.CompressionNone, nil
	case "zstd":
		return format.CompressionZstd, nil
	case "s2":
		return format.CompressionS2, nil
	case "lz4":
		return format.CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("unrecognised compression %q (want none, zstd, s2, or lz4)", s)
	}
}
