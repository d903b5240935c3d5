// Package store implements the on-disk persistence format for a window
// set: a version-gated header followed by the (optionally compressed)
// concatenation of every window's packed words.
package store

import (
	"fmt"
	"os"

	"github.com/windowseq/windowseq/compress"
	"github.com/windowseq/windowseq/endian"
	"github.com/windowseq/windowseq/format"
	"github.com/windowseq/windowseq/window"
	"github.com/windowseq/windowseq/windowerr"
)

// Serialize encodes ws as a contiguous little-endian binary blob: the
// HeaderSize-byte header, followed by the window payload compressed with
// the requested codec.
func Serialize(ws *window.Set, compression format.CompressionType) ([]byte, error) {
	codec, err := compress.CreateCodec(compression, "store")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", windowerr.ErrInvalidArguments, err)
	}

	payload := packPayload(ws)

	compressed, err := codec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: compressing payload: %v", windowerr.ErrCorruptStore, err)
	}

	header := Header{
		Version:     CurrentVersion,
		Compression: compression,
		WindowCount: uint32(ws.Len()),
		Length:      ws.Length(),
	}

	return append(header.Bytes(), compressed...), nil
}

// Deserialize decodes a blob previously produced by Serialize.
//
// The header's version is validated before anything else; a mismatch
// aborts with ErrIncompatibleStoreVersion. Any failure past that point is
// ErrCorruptStore.
func Deserialize(data []byte) (*window.Set, error) {
	header, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	codec, err := compress.CreateCodec(header.Compression, "store")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", windowerr.ErrCorruptStore, err)
	}

	payload, err := codec.Decompress(data[HeaderSize:])
	if err != nil {
		return nil, fmt.Errorf("%w: decompressing payload: %v", windowerr.ErrCorruptStore, err)
	}

	windows, err := unpackPayload(payload, header)
	if err != nil {
		return nil, err
	}

	return window.FromWords(header.Version, header.Length, windows)
}

// packPayload concatenates every window's words as raw little-endian u64s.
func packPayload(ws *window.Set) []byte {
	wordsPerWindow := window.WordsPerWindow(ws.Length())
	buf := make([]byte, 0, ws.Len()*wordsPerWindow*8)
	engine := endian.GetLittleEndianEngine()

	for i := 0; i < ws.Len(); i++ {
		for _, w := range ws.WindowWords(i) {
			buf = engine.AppendUint64(buf, w)
		}
	}

	return buf
}

func unpackPayload(payload []byte, header Header) ([][]uint64, error) {
	wordsPerWindow := window.WordsPerWindow(header.Length)
	want := int(header.WindowCount) * wordsPerWindow * 8
	if len(payload) != want {
		return nil, fmt.Errorf("%w: payload is %d bytes, expected %d", windowerr.ErrCorruptStore, len(payload), want)
	}

	engine := endian.GetLittleEndianEngine()
	windows := make([][]uint64, header.WindowCount)

	offset := 0
	for i := range windows {
		words := make([]uint64, wordsPerWindow)
		for j := range words {
			words[j] = engine.Uint64(payload[offset : offset+8])
			offset += 8
		}
		windows[i] = words
	}

	return windows, nil
}

// WriteFile serialises ws and writes it to path, overwriting any existing
// file.
func WriteFile(path string, ws *window.Set, compression format.CompressionType) error {
	data, err := Serialize(ws, compression)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %s: %v", windowerr.ErrIoError, path, err)
	}

	return nil
}

// ReadFile reads and deserialises the store at path.
func ReadFile(path string) (*window.Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", windowerr.ErrIoError, path, err)
	}

	return Deserialize(data)
}
