package main

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/windowseq/windowseq/fastxstat"
)

func runCount(args []string) error {
	fs := flag.NewFlagSet("count", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	stats, err := fastxstat.Count(fs.Args())
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)

	return enc.Encode(stats)
}
