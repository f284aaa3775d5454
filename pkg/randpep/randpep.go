// 17 Oct 2026

package randpep

import (
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/andrew-torda/randpep/pkg/config"
	"github.com/andrew-torda/randpep/pkg/pepstat"
	"github.com/andrew-torda/randpep/pkg/seq"
)

// nowSeed is replaced in tests.
var nowSeed = func() int64 { return time.Now().UnixNano() }

// params pulls the sampling numbers out of the settings.
func params(cfg *config.Config) Params {
	return Params{
		SampleCount: cfg.SampleCount,
		MinSeqLen:   cfg.MinSeqLen,
		MinPepLen:   cfg.MinPepLen,
		MaxPepLen:   cfg.MaxPepLen,
	}
}

// Mymain reads the sequences, samples peptides and writes them and
// any of the extra files which were asked for. Nothing is written if
// sampling fails.
func Mymain(cfg *config.Config, logger log.Logger) error {
	t0 := time.Now()
	p := params(cfg)
	if err := p.Check(math.MaxInt); err != nil {
		return err
	}

	seed := cfg.Seed
	if !cfg.SeedSet {
		seed = nowSeed()
	}
	level.Info(logger).Log("msg", "random seed", "seed", seed, "given", cfg.SeedSet)
	rnd := rand.New(rand.NewSource(seed))

	s_opts := &seq.Options{
		Vbsty:  cfg.Verbosity,
		Upper:  cfg.Upper,
		DryRun: cfg.DryRun,
	}
	seqgrp, err := seq.Readfile(cfg.In, s_opts)
	if err != nil {
		return err
	}
	level.Info(logger).Log("msg", "read sequences", "file", cfg.In, "n", seqgrp.NSeq())

	peps, t, err := sample(seqgrp, p, rnd)
	if err != nil {
		return err
	}
	level.Info(logger).Log("msg", "sampled", "drawn", t.drawn, "skipped", t.skipped, "peptides", len(peps))
	if len(peps) == 0 {
		level.Warn(logger).Log("msg", "no sequence was long enough", "min-seq-len", p.MinSeqLen)
	}
	comp := composition(peps)
	level.Debug(logger).Log("msg", "commonest residues", "res", commonest(comp, 5))

	outseqs, err := toSeqs(peps, cfg.Accession)
	if err != nil {
		return err
	}
	if err := seq.WriteToF(cfg.Out, outseqs, s_opts); err != nil {
		return errors.Wrap(err, "writing peptides")
	}

	if cfg.DryRun {
		level.Debug(logger).Log("msg", "dry run, no extra files")
		return nil
	}
	if err := writeExtras(cfg, peps, comp, p); err != nil {
		return err
	}

	if cfg.SummaryFile != "" {
		s := &Summary{
			Input: cfg.In, Output: cfg.Out,
			Seed: seed, SeedGiven: cfg.SeedSet,
			Params: p,
			Loaded: seqgrp.NSeq(), Drawn: t.drawn, Skipped: t.skipped,
			Emitted: len(peps),
		}
		s.setElapsed(time.Since(t0))
		if err := withFile(cfg.SummaryFile, func(w io.Writer) error { return WriteSummary(w, s) }); err != nil {
			return errors.Wrapf(err, "summary file %s", cfg.SummaryFile)
		}
	}

	if cfg.MetricsFile != "" {
		reg := prometheus.NewRegistry()
		m := NewMetrics(reg, p)
		m.observe(seqgrp.NSeq(), t, peps)
		if err := prometheus.WriteToTextfile(cfg.MetricsFile, reg); err != nil {
			return errors.Wrapf(err, "metrics file %s", cfg.MetricsFile)
		}
	}
	level.Debug(logger).Log("msg", "done", "elapsed", time.Since(t0))
	return nil
}

// writeExtras writes the csv, composition and plot files, if they
// were asked for.
func writeExtras(cfg *config.Config, peps []Peptide, comp *pepstat.Comp, p Params) error {
	extras := []struct {
		fname string
		f     func(io.Writer) error
	}{
		{cfg.CSVFile, func(w io.Writer) error { return WriteCSV(w, peps, cfg.Accession) }},
		{cfg.CompFile, func(w io.Writer) error { return writeComp(w, comp) }},
		{cfg.PlotFile, func(w io.Writer) error { return writePlot(w, peps, p) }},
	}
	for _, e := range extras {
		if e.fname == "" {
			continue
		}
		if err := withFile(e.fname, e.f); err != nil {
			return errors.Wrapf(err, "writing %s", e.fname)
		}
	}
	return nil
}
