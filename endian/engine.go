// Package endian supplies the single byte-order engine the store format
// uses to read and write its header and packed-word payload.
//
// spec.md pins the on-disk format as little-endian throughout, so unlike
// the teacher's equivalent package this one does not expose a big-endian
// engine or native-endianness detection — there is never a caller for
// either in this module.
package endian

import "encoding/binary"

// EndianEngine combines encoding/binary's ByteOrder and AppendByteOrder so
// store code can both write into a fixed-size header buffer (PutUint32,
// PutUint64, ...) and append a variable-length payload (AppendUint64, ...)
// through one value.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the engine every store reads and writes
// through.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}
