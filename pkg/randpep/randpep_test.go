package randpep

import (
	"bytes"
	"encoding/csv"
	"errors"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrew-torda/randpep/pkg/config"
	"github.com/andrew-torda/randpep/pkg/seq"
	"github.com/andrew-torda/randpep/pkg/vlog"
)

// wrtInput writes sequences of the given lengths to a fasta file in
// dir. Identifiers look like swissprot ones.
func wrtInput(t *testing.T, dir string, lens ...int) (string, *seq.SeqGrp) {
	t.Helper()
	rnd := rand.New(rand.NewSource(11))
	grp := seq.NewSeqGrp(len(lens))
	for i, n := range lens {
		id := "sp|P" + strconv.Itoa(10000+i) + "|PROT" + strconv.Itoa(i) + "_HUMAN"
		require.NoError(t, grp.Add(seq.NewSeq(id+" some protein", []byte(randRes(rnd, n)))))
	}
	fname := filepath.Join(dir, "in.fa")
	var b bytes.Buffer
	require.NoError(t, seq.WriteFasta(&b, grp.SeqSlc(), 60))
	require.NoError(t, os.WriteFile(fname, b.Bytes(), 0o600))
	return fname, grp
}

func newCfg(in, out string) *config.Config {
	return &config.Config{
		In: in, Out: out,
		SampleCount: 4, MinSeqLen: 200, MinPepLen: 10, MaxPepLen: 30,
		Seed: 1637, SeedSet: true,
	}
}

func TestMymain(t *testing.T) {
	dir := t.TempDir()
	in, grp := wrtInput(t, dir, 300, 150, 250, 400, 201, 220)
	cfg := newCfg(in, filepath.Join(dir, "out.fa"))
	cfg.CSVFile = filepath.Join(dir, "peps.csv")
	cfg.CompFile = filepath.Join(dir, "comp.csv")
	cfg.PlotFile = filepath.Join(dir, "len.png")
	cfg.SummaryFile = filepath.Join(dir, "summary.yaml")
	cfg.MetricsFile = filepath.Join(dir, "randpep.prom")
	require.NoError(t, Mymain(cfg, vlog.Nop()))

	// peptides read back as fasta, each a piece of its parent
	out, err := seq.Readfile(cfg.Out, nil)
	require.NoError(t, err)
	require.NotZero(t, out.NSeq())
	for _, s := range out.SeqSlc() {
		src, ok := grp.Get(s.ID())
		require.True(t, ok, "unknown id %s", s.ID())
		assert.Contains(t, string(src.GetSeq()), string(s.GetSeq()))
	}
	raw, err := os.ReadFile(cfg.Out)
	require.NoError(t, err)
	assert.Equal(t, 2*out.NSeq(), strings.Count(string(raw), "\n"), "lines are not wrapped")

	fp, err := os.Open(cfg.CSVFile)
	require.NoError(t, err)
	defer fp.Close()
	rows, err := csv.NewReader(fp).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, out.NSeq()+1)
	assert.Equal(t, []string{"Sequence", "Source_Protein", "Start", "Length"}, rows[0])
	for i, s := range out.SeqSlc() {
		assert.Equal(t, string(s.GetSeq()), rows[i+1][0])
		assert.Equal(t, s.ID(), rows[i+1][1])
		assert.Equal(t, strconv.Itoa(s.Len()), rows[i+1][3])
	}

	comp, err := os.ReadFile(cfg.CompFile)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(comp), `"res","1"`))

	fpng, err := os.Open(cfg.PlotFile)
	require.NoError(t, err)
	defer fpng.Close()
	_, err = png.Decode(fpng)
	assert.NoError(t, err)

	fsum, err := os.Open(cfg.SummaryFile)
	require.NoError(t, err)
	defer fsum.Close()
	sum, err := ReadSummary(fsum)
	require.NoError(t, err)
	assert.Equal(t, int64(1637), sum.Seed)
	assert.True(t, sum.SeedGiven)
	assert.Equal(t, 6, sum.Loaded)
	assert.Equal(t, 4, sum.Drawn)
	assert.Equal(t, out.NSeq(), sum.Emitted)
	assert.Equal(t, sum.Drawn, sum.Emitted+sum.Skipped)
	assert.Equal(t, params(cfg), sum.Params)

	prom, err := os.ReadFile(cfg.MetricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(prom), "randpep_records_loaded_total 6")
	assert.Contains(t, string(prom), "randpep_peptides_emitted_total "+strconv.Itoa(out.NSeq()))
	assert.Contains(t, string(prom), "randpep_peptide_length_bucket")
}

func TestMymainAccession(t *testing.T) {
	dir := t.TempDir()
	in, _ := wrtInput(t, dir, 300, 250)
	cfg := newCfg(in, filepath.Join(dir, "out.fa"))
	cfg.SampleCount = 2
	cfg.Accession = true
	require.NoError(t, Mymain(cfg, vlog.Nop()))
	out, err := seq.Readfile(cfg.Out, nil)
	require.NoError(t, err)
	require.Equal(t, 2, out.NSeq())
	for _, s := range out.SeqSlc() {
		assert.True(t, strings.HasPrefix(s.ID(), "P1000"), s.ID())
	}
}

func TestMymainRepeat(t *testing.T) {
	dir := t.TempDir()
	in, _ := wrtInput(t, dir, 300, 250, 260, 270, 280)
	var got [2][]byte
	for i := range got {
		cfg := newCfg(in, filepath.Join(dir, "out"+strconv.Itoa(i)+".fa"))
		require.NoError(t, Mymain(cfg, vlog.Nop()))
		var err error
		got[i], err = os.ReadFile(cfg.Out)
		require.NoError(t, err)
	}
	assert.Equal(t, got[0], got[1])
}

// With no seed given, we take one from the clock and report it.
func TestMymainNoSeed(t *testing.T) {
	save := nowSeed
	defer func() { nowSeed = save }()
	nowSeed = func() int64 { return 4242 }

	dir := t.TempDir()
	in, _ := wrtInput(t, dir, 300, 250)
	cfg := newCfg(in, filepath.Join(dir, "out.fa"))
	cfg.SampleCount = 2
	cfg.Seed, cfg.SeedSet = 0, false
	cfg.SummaryFile = filepath.Join(dir, "s.yaml")
	require.NoError(t, Mymain(cfg, vlog.Nop()))

	fp, err := os.Open(cfg.SummaryFile)
	require.NoError(t, err)
	defer fp.Close()
	sum, err := ReadSummary(fp)
	require.NoError(t, err)
	assert.Equal(t, int64(4242), sum.Seed)
	assert.False(t, sum.SeedGiven)
}

// A failed run leaves no output file behind.
func TestMymainFail(t *testing.T) {
	dir := t.TempDir()
	in, _ := wrtInput(t, dir, 300, 250)
	cfg := newCfg(in, filepath.Join(dir, "out.fa"))
	cfg.CSVFile = filepath.Join(dir, "peps.csv")
	cfg.SampleCount = 3
	err := Mymain(cfg, vlog.Nop())
	var oor *OutOfRangeError
	require.True(t, errors.As(err, &oor), "got %v", err)
	assert.NoFileExists(t, cfg.Out)
	assert.NoFileExists(t, cfg.CSVFile)

	cfg = newCfg(filepath.Join(dir, "missing.fa"), filepath.Join(dir, "out.fa"))
	assert.Error(t, Mymain(cfg, vlog.Nop()))
	assert.NoFileExists(t, cfg.Out)

	cfg = newCfg(in, filepath.Join(dir, "out.fa"))
	cfg.MinSeqLen = 5
	err = Mymain(cfg, vlog.Nop())
	var ib *InvalidBoundsError
	assert.True(t, errors.As(err, &ib), "got %v", err)
	assert.NoFileExists(t, cfg.Out)
}

// sp|P10|A and tr|P10|B both become P10, so nothing may be written.
func TestMymainAccessionClash(t *testing.T) {
	dir := t.TempDir()
	rnd := rand.New(rand.NewSource(3))
	in := filepath.Join(dir, "in.fa")
	fa := ">sp|P10|A\n" + randRes(rnd, 300) + "\n>tr|P10|B\n" + randRes(rnd, 300) + "\n"
	require.NoError(t, os.WriteFile(in, []byte(fa), 0o600))
	cfg := newCfg(in, filepath.Join(dir, "out.fa"))
	cfg.SampleCount = 2
	cfg.Accession = true
	cfg.CSVFile = filepath.Join(dir, "peps.csv")
	err := Mymain(cfg, vlog.Nop())
	var dup *seq.DupIDError
	require.True(t, errors.As(err, &dup), "got %v", err)
	assert.NoFileExists(t, cfg.Out)
	assert.NoFileExists(t, cfg.CSVFile)

	cfg.Accession = false
	require.NoError(t, Mymain(cfg, vlog.Nop()))
	assert.FileExists(t, cfg.Out)
}

// A wide range of lengths still gets a plot.
func TestMymainWidePlot(t *testing.T) {
	dir := t.TempDir()
	in, _ := wrtInput(t, dir, 1500, 1200)
	cfg := newCfg(in, filepath.Join(dir, "out.fa"))
	cfg.SampleCount = 2
	cfg.MinSeqLen, cfg.MinPepLen, cfg.MaxPepLen = 1000, 1, 1000
	cfg.PlotFile = filepath.Join(dir, "len.png")
	require.NoError(t, Mymain(cfg, vlog.Nop()))
	fp, err := os.Open(cfg.PlotFile)
	require.NoError(t, err)
	defer fp.Close()
	_, err = png.Decode(fp)
	assert.NoError(t, err)
}

func TestCommonest(t *testing.T) {
	c := composition([]Peptide{{Seq: "LLLA"}, {Seq: "LAK"}})
	assert.Equal(t, "L:0.571 A:0.286", commonest(c, 2))
	assert.Equal(t, "L:0.571 A:0.286 K:0.143", commonest(c, 10))
}

// At debug level the commonest residues are logged.
func TestMymainDebug(t *testing.T) {
	dir := t.TempDir()
	in, _ := wrtInput(t, dir, 300, 250)
	cfg := newCfg(in, filepath.Join(dir, "out.fa"))
	cfg.SampleCount = 2
	var b bytes.Buffer
	require.NoError(t, Mymain(cfg, vlog.New(&b, vlog.Debug)))
	assert.Contains(t, b.String(), `msg="commonest residues"`)
	assert.Contains(t, b.String(), "seed=1637")
}

func TestDryRun(t *testing.T) {
	dir := t.TempDir()
	in, _ := wrtInput(t, dir, 300, 250)
	cfg := newCfg(in, filepath.Join(dir, "out.fa"))
	cfg.SampleCount = 2
	cfg.DryRun = true
	cfg.CSVFile = filepath.Join(dir, "peps.csv")
	require.NoError(t, Mymain(cfg, vlog.Nop()))
	assert.NoFileExists(t, cfg.Out)
	assert.NoFileExists(t, cfg.CSVFile)
}

func TestWriteCSV(t *testing.T) {
	var b bytes.Buffer
	peps := []Peptide{{ID: "sp|P1|A", Seq: "ACDE", Start: 7}}
	require.NoError(t, WriteCSV(&b, peps, true))
	assert.Equal(t, "Sequence,Source_Protein,Start,Length\nACDE,P1,7,4\n", b.String())
}
