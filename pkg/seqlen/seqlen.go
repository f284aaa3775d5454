// 15 May 2025
// We are given a set of sequences. For each one, write the identifier
// and its length to a file for a spreadsheet. We also say how many are
// longer than some threshold, which is what you want to know before
// choosing a minimum sequence length for sampling.

package seqlen

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/andrew-torda/randpep/pkg/seq"
)

// Stats on the lengths of a set of sequences
type Stats struct {
	N      int
	Min    int
	Max    int
	Mean   float64
	Over   int // number longer than the threshold
	Thresh int
}

// Calc gets the stats. Sequences longer than thresh are counted.
func Calc(seqgrp *seq.SeqGrp, thresh int) Stats {
	st := Stats{N: seqgrp.NSeq(), Thresh: thresh}
	if st.N == 0 {
		return st
	}
	st.Min = seqgrp.SeqSlc()[0].Len()
	var tot int
	for _, s := range seqgrp.SeqSlc() {
		n := s.Len()
		tot += n
		if n < st.Min {
			st.Min = n
		}
		if n > st.Max {
			st.Max = n
		}
		if n > thresh {
			st.Over++
		}
	}
	st.Mean = float64(tot) / float64(st.N)
	return st
}

// WriteCSV writes identifier and length, one line per sequence.
func WriteCSV(w io.Writer, seqgrp *seq.SeqGrp) error {
	cw := csv.NewWriter(w)
	cw.Write([]string{"id", "length"})
	for _, s := range seqgrp.SeqSlc() {
		cw.Write([]string{s.ID(), strconv.Itoa(s.Len())})
	}
	cw.Flush()
	return cw.Error()
}

// Mymain reads infile, writes lengths to w if it is not nil and logs
// the stats.
func Mymain(infile string, w io.Writer, thresh int, logger log.Logger) (Stats, error) {
	seqgrp, err := seq.Readfile(infile, nil)
	if err != nil {
		return Stats{}, err
	}
	if w != nil {
		if err := WriteCSV(w, seqgrp); err != nil {
			return Stats{}, errors.Wrap(err, "writing lengths")
		}
	}
	st := Calc(seqgrp, thresh)
	level.Info(logger).Log("msg", "sequence lengths", "n", st.N, "min", st.Min, "max", st.Max,
		"mean", strconv.FormatFloat(st.Mean, 'f', 1, 64), "longer_than", st.Thresh, "n_longer", st.Over)
	return st, nil
}
