package fastxstat

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCount_SingleFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.fasta")
	require.NoError(t, os.WriteFile(path, []byte(">r1\nACGT\n>r2\nAC\n"), 0o644))

	stats, err := Count([]string{path})
	require.NoError(t, err)
	require.Len(t, stats, 1)
	require.Equal(t, path, stats[0].Path)
	require.Equal(t, 2, stats[0].NumReads)
	require.Equal(t, 6, stats[0].NumBases)
}

func TestCount_MultipleFiles(t *testing.T) {
	dir := t.TempDir()
	p1 := filepath.Join(dir, "a.fasta")
	p2 := filepath.Join(dir, "b.fasta")
	require.NoError(t, os.WriteFile(p1, []byte(">r1\nACGT\n"), 0o644))
	require.NoError(t, os.WriteFile(p2, []byte(">r1\nAC\n>r2\nGT\n"), 0o644))

	stats, err := Count([]string{p1, p2})
	require.NoError(t, err)
	require.Len(t, stats, 2)
	require.Equal(t, 1, stats[0].NumReads)
	require.Equal(t, 2, stats[1].NumReads)
	require.Equal(t, 4, stats[1].NumBases)
}

func TestCount_UnreadablePathErrors(t *testing.T) {
	_, err := Count([]string{filepath.Join(t.TempDir(), "missing.fasta")})
	require.Error(t, err)
}
