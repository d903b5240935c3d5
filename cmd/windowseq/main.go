// Command windowseq builds, queries, and clusters collections of
// fixed-length nucleotide sequences.
package main

import (
	"fmt"
	"log"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error

	switch os.Args[1] {
	case "makedb":
		err = runMakedb(os.Args[2:])
	case "query":
		err = runQuery(os.Args[2:])
	case "cluster":
		err = runCluster(os.Args[2:])
	case "count":
		err = runCount(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		log.Fatal(err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: windowseq <makedb|query|cluster|count> [flags]")
}
