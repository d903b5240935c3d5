// Package cluster implements the greedy online nearest-centroid clusterer:
// each input record either joins its nearest existing centroid or is
// promoted to found a new one, with exact-duplicate inputs suppressed.
package cluster

import (
	"github.com/windowseq/windowseq/internal/hash"
	"github.com/windowseq/windowseq/seqpack"
	"github.com/windowseq/windowseq/window"
)

// Assignment is the outcome of clustering one (non-duplicate) input record:
// the record's own symbols and the symbols of the centroid it was assigned
// to (itself, if it was promoted).
type Assignment struct {
	MemberSymbols   string
	CentroidSymbols string
}

// seenEntry guards against the astronomically unlikely case of two distinct
// encoded forms sharing an xxHash64 bucket.
type seenEntry struct {
	words []uint64
}

// Clusterer holds the growing centroid set and dedup tracker for one
// clustering run. It is not safe for concurrent use.
type Clusterer struct {
	centroids     *window.Set
	maxDivergence int
	seen          map[uint64][]seenEntry
	distBuf       []int
}

// New creates a clusterer that promotes a new centroid whenever the nearest
// existing one is more than maxDivergence away.
func New(maxDivergence int) *Clusterer {
	return &Clusterer{
		maxDivergence: maxDivergence,
		seen:          make(map[uint64][]seenEntry),
	}
}

func wordsEqual(a, b []uint64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// markSeen records e's packed form as seen and reports whether it was
// already present.
func (c *Clusterer) markSeen(e seqpack.Encoded) bool {
	h := hash.Words(e.Words)
	bucket := c.seen[h]

	for _, entry := range bucket {
		if wordsEqual(entry.words, e.Words) {
			return true
		}
	}

	c.seen[h] = append(bucket, seenEntry{words: e.Words})

	return false
}

// Process packs identifier/raw and clusters it, per spec §4.7:
//
//  1. Skip silently (return nil, nil) if this exact encoded form has been
//     seen before.
//  2. Compute distances to every current centroid.
//  3. Take the minimum distance and its first (lowest-index) attaining
//     centroid.
//  4. If that minimum is within maxDivergence, assign to it; otherwise
//     promote r as a new centroid assigned to itself.
//
// The centroid set is initialised lazily from r's length on first promotion.
func (c *Clusterer) Process(identifier string, raw []byte) (*Assignment, error) {
	encoded, err := seqpack.Pack(identifier, raw)
	if err != nil {
		return nil, err
	}

	if c.markSeen(encoded) {
		return nil, nil
	}

	if c.centroids == nil {
		c.centroids = window.New(centroidVersion)
	}

	n := c.centroids.Len()
	if cap(c.distBuf) < n {
		c.distBuf = make([]int, n)
	}
	dists := c.distBuf[:n]

	if n > 0 {
		if err := c.centroids.Distances(encoded, dists); err != nil {
			return nil, err
		}
	}

	minDist, minIdx := -1, -1
	for i, d := range dists {
		if minDist < 0 || d < minDist {
			minDist, minIdx = d, i
		}
	}

	memberSymbols, err := seqpack.Unpack(encoded)
	if err != nil {
		return nil, err
	}

	if minIdx >= 0 && minDist <= c.maxDivergence {
		centroidSymbols, err := c.centroids.SymbolsAt(minIdx)
		if err != nil {
			return nil, err
		}

		return &Assignment{MemberSymbols: memberSymbols, CentroidSymbols: centroidSymbols}, nil
	}

	if err := c.centroids.Append(encoded); err != nil {
		return nil, err
	}

	return &Assignment{MemberSymbols: memberSymbols, CentroidSymbols: memberSymbols}, nil
}

// centroidVersion tags the in-memory centroid set; clusterer output is
// never persisted via the store package, so this need not track
// store.CurrentVersion.
const centroidVersion = 1
