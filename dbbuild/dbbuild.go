// Package dbbuild streams FASTX records into a fresh window set and
// persists it as a store.
package dbbuild

import (
	"fmt"

	"github.com/windowseq/windowseq/fastx"
	"github.com/windowseq/windowseq/format"
	"github.com/windowseq/windowseq/seqpack"
	"github.com/windowseq/windowseq/store"
	"github.com/windowseq/windowseq/window"
)

// Build reads every record from inputPath, packs it, and writes the
// resulting window set to outputPath under the given compression.
//
// A packing failure aborts the build and names the offending record's
// identifier via the wrapped error returned by seqpack.Pack; a length
// mismatch against already-appended records does the same via window.Append.
func Build(inputPath, outputPath string, compression format.CompressionType) error {
	r, err := fastx.Open(inputPath)
	if err != nil {
		return err
	}
	defer r.Close()

	ws := window.New(store.CurrentVersion)

	for {
		rec, ok, err := r.Next()
		if err != nil {
			return err
		}
		if !ok {
			break
		}

		encoded, err := seqpack.Pack(string(rec.ID), rec.Sequence)
		if err != nil {
			return err
		}

		if err := ws.Append(encoded); err != nil {
			return fmt.Errorf("identifier=%q: %w", rec.ID, err)
		}
	}

	return store.WriteFile(outputPath, ws, compression)
}
