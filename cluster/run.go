package cluster

import (
	"bufio"
	"fmt"
	"io"

	"github.com/windowseq/windowseq/fastx"
)

// RunToWriter clusters every record from r through c and writes one TSV line
// per emitted (non-duplicate) assignment: MEMBER_SYMBOLS<TAB>CENTROID_SYMBOLS.
func RunToWriter(w io.Writer, c *Clusterer, r *fastx.Reader) error {
	bw := bufio.NewWriter(w)

	for {
		rec, ok, err := r.Next()
		if err != nil {
			return err
		}
		if !ok {
			break
		}

		assignment, err := c.Process(string(rec.ID), rec.Sequence)
		if err != nil {
			return err
		}
		if assignment == nil {
			continue
		}

		if _, err := fmt.Fprintf(bw, "%s\t%s\n", assignment.MemberSymbols, assignment.CentroidSymbols); err != nil {
			return err
		}
	}

	return bw.Flush()
}
