package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrew-torda/randpep/pkg/seq"
	. "github.com/andrew-torda/randpep/pkg/seq/common"
)

func TestUsage(t *testing.T) {
	assert.Equal(t, ExitUsageError, run(nil))
	assert.Equal(t, ExitUsageError, run([]string{"a", "b", "c"}))
	assert.Equal(t, ExitUsageError, run([]string{"--no-such-flag", "in.fa"}))
	assert.Equal(t, ExitUsageError, run([]string{"randseq", "out.fa"}))
	assert.Equal(t, ExitUsageError, run([]string{"randseq", "out.fa", "many"}))
}

// TestRandseqThenSample makes a database and samples from it.
func TestRandseqThenSample(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "db.fa")
	require.Equal(t, ExitSuccess, run([]string{"randseq", "--min", "100", "--max", "300", db, "40"}))
	grp, err := seq.Readfile(db, nil)
	require.NoError(t, err)
	require.Equal(t, 40, grp.NSeq())

	out := filepath.Join(dir, "peps.fa")
	csv := filepath.Join(dir, "peps.csv")
	args := []string{"-n", "20", "-l", "150", "--min", "8", "--max", "12",
		"-r", "7", "-v", "0", "--csv-file", csv, db, out}
	require.Equal(t, ExitSuccess, run(args))
	peps, err := seq.Readfile(out, nil)
	require.NoError(t, err)
	assert.LessOrEqual(t, peps.NSeq(), 20)
	for _, p := range peps.SeqSlc() {
		assert.True(t, p.Len() >= 8 && p.Len() <= 12, "length %d", p.Len())
		src, ok := grp.Get(p.ID())
		require.True(t, ok)
		assert.Greater(t, src.Len(), 150)
	}
	assert.FileExists(t, csv)

	first, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, ExitSuccess, run(args))
	second, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, first, second, "same seed, same peptides")
}

func TestBadParams(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "db.fa")
	require.Equal(t, ExitSuccess, run([]string{"randseq", db, "5"}))
	out := filepath.Join(dir, "peps.fa")

	assert.Equal(t, ExitUsageError, run([]string{"-n", "6", "-v", "0", db, out}))
	assert.Equal(t, ExitUsageError, run([]string{"--min", "40", "--max", "30", "-v", "0", db, out}))
	assert.NoFileExists(t, out)
	assert.Equal(t, ExitFailure, run([]string{"-v", "0", filepath.Join(dir, "missing.fa"), out}))
	assert.NoFileExists(t, out)
}

func TestEnv(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "db.fa")
	require.Equal(t, ExitSuccess, run([]string{"randseq", db, "5"}))
	out := filepath.Join(dir, "peps.fa")
	t.Setenv("RANDPEP_SAMPLE_COUNT", "9")
	assert.Equal(t, ExitUsageError, run([]string{"-v", "0", db, out}), "9 is more than 5")
	t.Setenv("RANDPEP_SAMPLE_COUNT", "5")
	t.Setenv("RANDPEP_MIN_SEQ_LEN", "30")
	assert.Equal(t, ExitSuccess, run([]string{"-v", "0", db, out}))
	assert.FileExists(t, out)
}

func TestSeqLen(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "db.fa")
	require.Equal(t, ExitSuccess, run([]string{"randseq", db, "5"}))
	lens := filepath.Join(dir, "len.csv")
	require.Equal(t, ExitSuccess, run([]string{"seqlen", "-v", "0", db, lens}))
	b, err := os.ReadFile(lens)
	require.NoError(t, err)
	assert.Equal(t, 6, bytes.Count(b, []byte("\n")))
	assert.Equal(t, ExitUsageError, run([]string{"seqlen"}))
}
