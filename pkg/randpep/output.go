package randpep

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/andrew-torda/randpep/pkg/lenplot"
	"github.com/andrew-torda/randpep/pkg/pepstat"
	"github.com/andrew-torda/randpep/pkg/seq"
)

// Accession pulls the accession out of a UniProt identifier, so
// sp|P12345|KAPA_HUMAN becomes P12345. Anything else is left alone.
func Accession(id string) string {
	parts := strings.Split(id, "|")
	if len(parts) < 2 || parts[1] == "" {
		return id
	}
	return parts[1]
}

// toSeqs turns peptides into sequences for the fasta writer. Two
// identifiers can have the same accession, sp|P1|A and tr|P1|B, and
// that is an error since the output could not be read back.
func toSeqs(peps []Peptide, accession bool) ([]seq.Seq, error) {
	seqgrp := seq.NewSeqGrp(len(peps))
	for _, p := range peps {
		id := p.ID
		if accession {
			id = Accession(id)
		}
		if err := seqgrp.Add(seq.NewSeq(id, []byte(p.Seq))); err != nil {
			return nil, errors.Wrapf(err, "identifier %s", p.ID)
		}
	}
	return seqgrp.SeqSlc(), nil
}

// withFile creates fname, calls f on it and closes it, returning the
// first error.
func withFile(fname string, f func(io.Writer) error) (err error) {
	fp, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fp.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return f(fp)
}

// composition counts residues at each position of the peptides.
func composition(peps []Peptide) *pepstat.Comp {
	s := make([]string, len(peps))
	for i, p := range peps {
		s[i] = p.Seq
	}
	return pepstat.Composition(s)
}

// commonest lists the n most common residues, like "L:0.098 A:0.083".
func commonest(c *pepstat.Comp, n int) string {
	o := c.Overall()
	if len(o) > n {
		o = o[:n]
	}
	parts := make([]string, len(o))
	for i, sf := range o {
		parts[i] = string(sf.Sym) + ":" + strconv.FormatFloat(float64(sf.Frac), 'f', 3, 32)
	}
	return strings.Join(parts, " ")
}

// writeComp writes the fraction of each residue at each position.
func writeComp(w io.Writer, c *pepstat.Comp) error {
	c.Frac()
	return c.WriteCSV(w, "%.3f")
}

// writePlot draws the length histogram.
func writePlot(w io.Writer, peps []Peptide, p Params) error {
	lengths := make([]int, len(peps))
	for i, pep := range peps {
		lengths[i] = len(pep.Seq)
	}
	plot := lenplot.Plot{
		Title:  "peptide lengths, n = " + strconv.Itoa(len(peps)),
		Min:    p.MinPepLen,
		Counts: lenplot.Histogram(lengths, p.MinPepLen, p.MaxPepLen),
	}
	return plot.WritePNG(w)
}
