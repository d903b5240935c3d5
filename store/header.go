package store

import (
	"fmt"

	"github.com/windowseq/windowseq/endian"
	"github.com/windowseq/windowseq/format"
	"github.com/windowseq/windowseq/windowerr"
)

// CurrentVersion is the only store format version this build accepts.
// Version mismatch is checked before anything else is decoded.
const CurrentVersion uint32 = 2

// HeaderSize is the fixed byte size of a store's leading header.
const HeaderSize = 16

// Header is the fixed-size header at the start of every store file.
type Header struct {
	Version     uint32                 // byte offset 0-3
	Compression format.CompressionType // byte offset 4
	// bytes 5-7 are reserved, always zero
	WindowCount uint32 // byte offset 8-11
	Length      uint32 // byte offset 12-15, 0 means "absent / empty set"
}

// Bytes serialises the header into a HeaderSize-byte little-endian slice.
func (h Header) Bytes() []byte {
	b := make([]byte, HeaderSize)
	engine := endian.GetLittleEndianEngine()

	engine.PutUint32(b[0:4], h.Version)
	b[4] = byte(h.Compression)
	engine.PutUint32(b[8:12], h.WindowCount)
	engine.PutUint32(b[12:16], h.Length)

	return b
}

// ParseHeader reads a header from the first HeaderSize bytes of data.
//
// The version field is checked first and compared against CurrentVersion;
// on mismatch ParseHeader fails with ErrIncompatibleStoreVersion naming
// both versions, without attempting to interpret the rest of the header.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < 4 {
		return Header{}, fmt.Errorf("%w: header is %d bytes, need at least 4 to read the version", windowerr.ErrCorruptStore, len(data))
	}

	engine := endian.GetLittleEndianEngine()

	version := engine.Uint32(data[0:4])
	if version != CurrentVersion {
		return Header{}, fmt.Errorf("%w: found version %d, expected %d", windowerr.ErrIncompatibleStoreVersion, version, CurrentVersion)
	}

	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: header is %d bytes, need %d", windowerr.ErrCorruptStore, len(data), HeaderSize)
	}

	return Header{
		Version:     version,
		Compression: format.CompressionType(data[4]),
		WindowCount: engine.Uint32(data[8:12]),
		Length:      engine.Uint32(data[12:16]),
	}, nil
}
