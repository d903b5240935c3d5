package query

import (
	"bufio"
	"fmt"
	"io"

	"github.com/windowseq/windowseq/fastx"
	"github.com/windowseq/windowseq/seqpack"
	"github.com/windowseq/windowseq/window"
)

// RunToWriter packs and queries every record from r against ws in order,
// writing one TSV line per hit: QUERY_ORDINAL<TAB>SUBJECT_INDEX<TAB>
// DIVERGENCE<TAB>SUBJECT_SYMBOLS. The distance buffer is allocated once and
// reused across query records.
func RunToWriter(w io.Writer, cfg *Config, ws *window.Set, r *fastx.Reader) error {
	bw := bufio.NewWriter(w)
	dists := make([]int, ws.Len())

	var hits []Hit
	ordinal := 0

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

		hits = hits[:0]
		hits, err = computeHits(cfg, ws, encoded, ordinal, dists, hits)
		if err != nil {
			return err
		}

		for _, h := range hits {
			if _, err := fmt.Fprintf(bw, "%d\t%d\t%d\t%s\n", h.QueryOrdinal, h.SubjectIndex, h.Divergence, h.SubjectSymbols); err != nil {
				return err
			}
		}

		ordinal++
	}

	return bw.Flush()
}
