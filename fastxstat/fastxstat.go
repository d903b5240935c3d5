// Package fastxstat computes per-file read/base counts for the CLI's count
// subcommand.
package fastxstat

import "github.com/windowseq/windowseq/fastx"

// Stat is one input file's record and base counts.
type Stat struct {
	Path     string `json:"path"`
	NumReads int    `json:"num_reads"`
	NumBases int    `json:"num_bases"`
}

// Count streams each path through fastx and accumulates its Stat. A failure
// on any path aborts the whole call.
func Count(paths []string) ([]Stat, error) {
	stats := make([]Stat, 0, len(paths))

	for _, path := range paths {
		stat, err := countOne(path)
		if err != nil {
			return nil, err
		}

		stats = append(stats, stat)
	}

	return stats, nil
}

func countOne(path string) (Stat, error) {
	r, err := fastx.Open(path)
	if err != nil {
		return Stat{}, err
	}
	defer r.Close()

	stat := Stat{Path: path}

	for {
		rec, ok, err := r.Next()
		if err != nil {
			return Stat{}, err
		}
		if !ok {
			break
		}

		stat.NumReads++
		stat.NumBases += len(rec.Sequence)
	}

	return stat, nil
}
