package main

import (
	"flag"

	"github.com/windowseq/windowseq/dbbuild"
)

func runMakedb(args []string) error {
	fs := flag.NewFlagSet("makedb", flag.ExitOnError)
	inputFile := fs.String("input_file", "", "FASTA/FASTQ(+gzip) input path")
	databaseFile := fs.String("database_file", "", "output store path")
	compression := fs.String("compression", "zstd", "none, zstd, s2, or lz4")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ct, err := parseCompression(*compression)
	if err != nil {
		return err
	}

	return dbbuild.Build(*inputFile, *databaseFile, ct)
}
