package cluster

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/windowseq/windowseq/fastx"
)

func TestProcess_S4Simple(t *testing.T) {
	c := New(1)

	a1, err := c.Process("r1", []byte("ATGC"))
	require.NoError(t, err)
	require.Equal(t, "ATGC", a1.MemberSymbols)
	require.Equal(t, "ATGC", a1.CentroidSymbols)

	a2, err := c.Process("r2", []byte("ATGG"))
	require.NoError(t, err)
	require.Equal(t, "ATGG", a2.MemberSymbols)
	require.Equal(t, "ATGC", a2.CentroidSymbols)

	a3, err := c.Process("r3", []byte("AAAA"))
	require.NoError(t, err)
	require.Equal(t, "AAAA", a3.MemberSymbols)
	require.Equal(t, "AAAA", a3.CentroidSymbols)
}

func TestProcess_S5DedupAndReassignment(t *testing.T) {
	c := New(2)

	a1, err := c.Process("r1", []byte("ATGCAAAAA"))
	require.NoError(t, err)
	require.Equal(t, "ATGCAAAAA", a1.CentroidSymbols)

	a2, err := c.Process("r2", []byte("ATAAAAAAA"))
	require.NoError(t, err)
	require.Equal(t, "ATGCAAAAA", a2.CentroidSymbols)

	a3, err := c.Process("r3", []byte("TTAAAAAAA"))
	require.NoError(t, err)
	require.Equal(t, "TTAAAAAAA", a3.CentroidSymbols)

	a4, err := c.Process("r4-dup", []byte("ATAAAAAAA"))
	require.NoError(t, err)
	require.Nil(t, a4)
}

func TestProcess_EmptyCentroidSetUsesSentinel(t *testing.T) {
	c := New(0)

	a, err := c.Process("r1", []byte("AAAA"))
	require.NoError(t, err)
	require.Equal(t, "AAAA", a.CentroidSymbols)
}

func TestProcess_FirstMatchTieBreak(t *testing.T) {
	c := New(2)

	_, err := c.Process("c0", []byte("AAAA"))
	require.NoError(t, err)
	_, err = c.Process("c1", []byte("CCCC"))
	require.NoError(t, err)

	// AACC is at distance 2 from both centroids; the lower index wins.
	a, err := c.Process("q", []byte("AACC"))
	require.NoError(t, err)
	require.Equal(t, "AAAA", a.CentroidSymbols)
}

func TestProcess_InvalidSymbolPropagates(t *testing.T) {
	c := New(1)
	_, err := c.Process("bad", []byte("AXGT"))
	require.Error(t, err)
}

func TestRunToWriter_S4(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.fasta")
	require.NoError(t, os.WriteFile(path, []byte(">r1\nATGC\n>r2\nATGG\n>r3\nAAAA\n"), 0o644))

	r, err := fastx.Open(path)
	require.NoError(t, err)
	defer r.Close()

	var buf bytes.Buffer
	require.NoError(t, RunToWriter(&buf, New(1), r))

	require.Equal(t, "ATGC\tATGC\nATGG\tATGC\nAAAA\tAAAA\n", buf.String())
}
