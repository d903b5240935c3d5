// Package query implements the search engine: for each query record, find
// the closest stored windows under an optional divergence ceiling, hit
// count, and per-subject cap.
package query

import (
	"sort"

	"github.com/windowseq/windowseq/seqpack"
	"github.com/windowseq/windowseq/window"
)

// Hit is one reported match: the query's ordinal position, the matched
// subject's index in the store, their Hamming distance, and the subject's
// decoded symbols.
type Hit struct {
	QueryOrdinal   int
	SubjectIndex   int
	Divergence     int
	SubjectSymbols string
}

type pair struct {
	distance int
	index    int
}

// computeHits runs the §4.6 algorithm for one already-packed query record
// against ws, appending results to out (queryOrdinal is stamped onto every
// emitted Hit). dists is a reusable scratch buffer with len(dists) ==
// ws.Len().
func computeHits(cfg *Config, ws *window.Set, query seqpack.Encoded, queryOrdinal int, dists []int, out []Hit) ([]Hit, error) {
	if err := ws.Distances(query, dists); err != nil {
		return out, err
	}

	if len(dists) == 0 {
		return out, nil
	}

	minDist := dists[0]
	for _, d := range dists[1:] {
		if d < minDist {
			minDist = d
		}
	}

	if cfg.maxDivergence != nil && minDist > *cfg.maxDivergence {
		return out, nil
	}

	var selected []pair

	if cfg.bestOnly() {
		for i, d := range dists {
			if d == minDist {
				selected = append(selected, pair{distance: d, index: i})
			}
		}
	} else {
		all := make([]pair, len(dists))
		for i, d := range dists {
			all[i] = pair{distance: d, index: i}
		}
		sort.Slice(all, func(i, j int) bool {
			if all[i].distance != all[j].distance {
				return all[i].distance < all[j].distance
			}
			return all[i].index < all[j].index
		})

		k := *cfg.maxNumHits
		var cutoff int
		if k <= len(all) {
			cutoff = all[k-1].distance
		} else {
			cutoff = all[len(all)-1].distance
		}

		for _, p := range all {
			if p.distance > cutoff {
				continue
			}
			if cfg.maxDivergence != nil && p.distance > *cfg.maxDivergence {
				continue
			}
			selected = append(selected, p)
		}
	}

	var runSymbols string
	runCount := 0

	for _, p := range selected {
		symbols, err := ws.SymbolsAt(p.index)
		if err != nil {
			return out, err
		}

		if cfg.perSubjectCap != nil {
			if symbols == runSymbols {
				runCount++
			} else {
				runSymbols = symbols
				runCount = 1
			}

			if runCount > *cfg.perSubjectCap {
				continue
			}
		}

		out = append(out, Hit{
			QueryOrdinal:   queryOrdinal,
			SubjectIndex:   p.index,
			Divergence:     p.distance,
			SubjectSymbols: symbols,
		})
	}

	return out, nil
}
