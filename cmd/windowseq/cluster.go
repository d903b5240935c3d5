package main

import (
	"flag"
	"os"

	"github.com/windowseq/windowseq/cluster"
	"github.com/windowseq/windowseq/fastx"
)

func runCluster(args []string) error {
	fs := flag.NewFlagSet("cluster", flag.ExitOnError)
	inputFile := fs.String("input_file", "", "FASTA/FASTQ(+gzip) input path")
	maxDivergence := fs.Int("max_divergence", 0, "max_divergence threshold for centroid assignment")
	if err := fs.Parse(args); err != nil {
		return err
	}

	r, err := fastx.Open(*inputFile)
	if err != nil {
		return err
	}
	defer r.Close()

	c := cluster.New(*maxDivergence)

	return cluster.RunToWriter(os.Stdout, c, r)
}
