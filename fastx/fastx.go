// Package fastx is a minimal streaming reader for FASTA and FASTQ records,
// transparently gzip-decompressed, yielding identifier/sequence pairs. Among
// the core packages only the streaming entry points (dbbuild.Build,
// query.RunToWriter, cluster.RunToWriter) import it.
package fastx

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"

	"github.com/windowseq/windowseq/windowerr"
)

// Record is one FASTX entry; quality lines (if any) are discarded.
type Record struct {
	ID       []byte
	Sequence []byte
}

// Reader streams Records from an underlying file, sniffing gzip framing and
// FASTA-vs-FASTQ format from the leading bytes.
type Reader struct {
	path   string
	file   *os.File
	gz     *gzip.Reader
	scan   *bufio.Scanner
	format format
	peeked []byte
	done   bool
}

type format int

const (
	formatFASTA format = iota
	formatFASTQ
)

// Open opens path for streaming. The file is sniffed for gzip framing (magic
// bytes 0x1f 0x8b) and for a leading '>' (FASTA) or '@' (FASTQ).
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %s", windowerr.ErrIoError, path, err)
	}

	br := bufio.NewReader(f)
	magic, err := br.Peek(2)
	if err != nil && err != io.EOF {
		_ = f.Close()
		return nil, fmt.Errorf("%w: read %s: %s", windowerr.ErrIoError, path, err)
	}

	var src io.Reader = br
	var gz *gzip.Reader
	if len(magic) == 2 && magic[0] == 0x1f && magic[1] == 0x8b {
		gz, err = gzip.NewReader(br)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("%w: gzip header in %s: %s", windowerr.ErrIoError, path, err)
		}
		src = gz
	}

	scan := bufio.NewScanner(src)
	scan.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	r := &Reader{path: path, file: f, gz: gz, scan: scan}

	if !scan.Scan() {
		if err := scan.Err(); err != nil {
			_ = r.Close()
			return nil, fmt.Errorf("%w: read %s: %s", windowerr.ErrIoError, path, err)
		}
		r.done = true
		return r, nil
	}

	line := scan.Bytes()
	switch {
	case len(line) > 0 && line[0] == '>':
		r.format = formatFASTA
	case len(line) > 0 && line[0] == '@':
		r.format = formatFASTQ
	default:
		_ = r.Close()
		return nil, fmt.Errorf("%w: %s: unrecognised FASTX header %q", windowerr.ErrIoError, path, line)
	}

	r.peeked = append([]byte(nil), line...)

	return r, nil
}

// Next returns the next record, or ok=false at end of input.
func (r *Reader) Next() (Record, bool, error) {
	if r.done {
		return Record{}, false, nil
	}

	switch r.format {
	case formatFASTA:
		return r.nextFASTA()
	default:
		return r.nextFASTQ()
	}
}

func (r *Reader) nextLine() ([]byte, bool) {
	if r.peeked != nil {
		line := r.peeked
		r.peeked = nil
		return line, true
	}

	if !r.scan.Scan() {
		return nil, false
	}

	return r.scan.Bytes(), true
}

func (r *Reader) nextFASTA() (Record, bool, error) {
	header, ok := r.nextLine()
	if !ok {
		r.done = true
		return Record{}, false, r.scan.Err()
	}
	if len(header) == 0 || header[0] != '>' {
		return Record{}, false, fmt.Errorf("%w: %s: expected FASTA header, got %q", windowerr.ErrIoError, r.path, header)
	}

	id := append([]byte(nil), bytes.TrimSpace(header[1:])...)

	var seq []byte
	for {
		line, ok := r.nextLine()
		if !ok {
			r.done = true
			break
		}
		if len(line) > 0 && line[0] == '>' {
			r.peeked = append([]byte(nil), line...)
			break
		}
		seq = append(seq, bytes.TrimSpace(line)...)
	}

	return Record{ID: id, Sequence: seq}, true, nil
}

func (r *Reader) nextFASTQ() (Record, bool, error) {
	header, ok := r.nextLine()
	if !ok {
		r.done = true
		return Record{}, false, r.scan.Err()
	}
	if len(header) == 0 || header[0] != '@' {
		return Record{}, false, fmt.Errorf("%w: %s: expected FASTQ header, got %q", windowerr.ErrIoError, r.path, header)
	}
	id := append([]byte(nil), bytes.TrimSpace(header[1:])...)

	seqLine, ok := r.nextLine()
	if !ok {
		return Record{}, false, fmt.Errorf("%w: %s: truncated FASTQ record for %q", windowerr.ErrIoError, r.path, id)
	}
	seq := append([]byte(nil), bytes.TrimSpace(seqLine)...)

	plusLine, ok := r.nextLine()
	if !ok || len(plusLine) == 0 || plusLine[0] != '+' {
		return Record{}, false, fmt.Errorf("%w: %s: missing '+' separator for %q", windowerr.ErrIoError, r.path, id)
	}

	if _, ok := r.nextLine(); !ok {
		return Record{}, false, fmt.Errorf("%w: %s: missing quality line for %q", windowerr.ErrIoError, r.path, id)
	}

	return Record{ID: id, Sequence: seq}, true, nil
}

// Close releases the underlying file (and gzip reader, if any).
func (r *Reader) Close() error {
	var gzErr error
	if r.gz != nil {
		gzErr = r.gz.Close()
	}

	if err := r.file.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %s", windowerr.ErrIoError, r.path, err)
	}

	if gzErr != nil {
		return fmt.Errorf("%w: close gzip stream for %s: %s", windowerr.ErrIoError, r.path, gzErr)
	}

	return nil
}
