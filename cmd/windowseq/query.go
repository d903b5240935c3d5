package main

import (
	"flag"
	"os"

	"github.com/windowseq/windowseq/fastx"
	"github.com/windowseq/windowseq/query"
	"github.com/windowseq/windowseq/store"
)

func runQuery(args []string) error {
	fs := flag.NewFlagSet("query", flag.ExitOnError)
	databaseFile := fs.String("database_file", "", "store path produced by makedb")
	queryFile := fs.String("query_file", "", "FASTA/FASTQ(+gzip) query path")
	maxDivergence := fs.Int("max_divergence", -1, "max_divergence; negative means unset")
	maxNumHits := fs.Int("max_num_hits", -1, "max_num_hits; negative means unset")
	perSubjectCap := fs.Int("limit_per_sequence", -1, "per_subject_cap; negative means unset")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var opts []query.Option
	if *maxDivergence >= 0 {
		opts = append(opts, query.WithMaxDivergence(*maxDivergence))
	}
	if *maxNumHits >= 0 {
		opts = append(opts, query.WithMaxNumHits(*maxNumHits))
	}
	if *perSubjectCap >= 0 {
		opts = append(opts, query.WithPerSubjectCap(*perSubjectCap))
	}

	cfg, err := query.New(opts...)
	if err != nil {
		return err
	}

	ws, err := store.ReadFile(*databaseFile)
	if err != nil {
		return err
	}

	r, err := fastx.Open(*queryFile)
	if err != nil {
		return err
	}
	defer r.Close()

	return query.RunToWriter(os.Stdout, cfg, ws, r)
}
