// Package windowerr defines the sentinel error kinds shared by every core
// package. Call sites wrap a sentinel with fmt.Errorf("%w: ...") to attach
// context (an identifier, a position, a path); callers compare kinds with
// errors.Is.
package windowerr

import "errors"

var (
	// ErrInvalidSymbol is returned when a byte outside the recognised
	// alphabet is encountered while packing a sequence.
	ErrInvalidSymbol = errors.New("invalid symbol")

	// ErrLengthMismatch is returned when a sequence's length disagrees
	// with an already-established length (a window set, a query against
	// a store, or a build's first accepted record).
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrIncompatibleStoreVersion is returned when a store's version tag
	// does not equal the compiled-in current version.
	ErrIncompatibleStoreVersion = errors.New("incompatible store version")

	// ErrCorruptStore is returned when a store's binary payload fails to
	// decode after its version has already been accepted.
	ErrCorruptStore = errors.New("corrupt store")

	// ErrCorruptEncoded is returned when a decoded 5-bit slot does not
	// match any of the five canonical codes.
	ErrCorruptEncoded = errors.New("corrupt encoded sequence")

	// ErrInvalidArguments is returned for caller-provided configuration
	// that is internally inconsistent (e.g. a per-subject cap without a
	// max-num-hits of at least 2).
	ErrInvalidArguments = errors.New("invalid arguments")

	// ErrIoError is returned when opening, reading, or writing a file fails.
	ErrIoError = errors.New("I/O error")
)
