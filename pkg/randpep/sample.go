// Picking random peptides out of a set of sequences.

package randpep

import (
	"github.com/pkg/errors"

	"github.com/andrew-torda/randpep/pkg/seq"
)

// Rand is the part of *math/rand.Rand that we use. Everything random
// comes from one of these, so a seed gives repeatable output.
type Rand interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// Params are the numbers which control sampling.
type Params struct {
	SampleCount int `yaml:"sample_count"` // identifiers to draw, before filtering
	MinSeqLen   int `yaml:"min_seq_len"`  // a sequence must be longer than this to be used
	MinPepLen   int `yaml:"min_pep_len"`  // shortest peptide
	MaxPepLen   int `yaml:"max_pep_len"`  // longest peptide
}

// Peptide is a piece cut out of a sequence. Start counts from zero.
type Peptide struct {
	ID    string
	Seq   string
	Start int
}

// Check looks at the parameters before we use any random numbers.
// nseq is the number of sequences we have to choose from.
// Asking for MinSeqLen below MaxPepLen is an error. It would let a
// short sequence be picked for a long peptide.
func (p Params) Check(nseq int) error {
	switch {
	case p.SampleCount < 1:
		return &InvalidBoundsError{"sample-count", p.SampleCount, "must be at least 1"}
	case p.MinPepLen < 1:
		return &InvalidBoundsError{"min-pep-len", p.MinPepLen, "must be at least 1"}
	case p.MaxPepLen < 1:
		return &InvalidBoundsError{"max-pep-len", p.MaxPepLen, "must be at least 1"}
	case p.MinPepLen > p.MaxPepLen:
		return &InvalidBoundsError{"min-pep-len", p.MinPepLen, "is more than max-pep-len"}
	case p.MinSeqLen < 0:
		return &InvalidBoundsError{"min-seq-len", p.MinSeqLen, "must not be negative"}
	case p.MinSeqLen < p.MaxPepLen:
		return &InvalidBoundsError{"min-seq-len", p.MinSeqLen, "must be at least max-pep-len"}
	case p.SampleCount > nseq:
		return &OutOfRangeError{Want: p.SampleCount, Have: nseq}
	}
	return nil
}

// Extract cuts one peptide out of s. The length is uniform over
// [minPep, maxPep] and then the start is uniform over every place the
// peptide fits.
func Extract(id string, s []byte, minPep, maxPep int, rnd Rand) (Peptide, error) {
	if len(s) == 0 {
		return Peptide{}, &EmptySeqError{ID: id}
	}
	pepLen := minPep + rnd.Intn(maxPep-minPep+1)
	if len(s) < pepLen {
		return Peptide{}, &DegenerateRangeError{ID: id, SeqLen: len(s), PepLen: pepLen}
	}
	start := rnd.Intn(len(s) - pepLen + 1)
	return Peptide{ID: id, Seq: string(s[start : start+pepLen]), Start: start}, nil
}

// Sample shuffles all the identifiers, takes the first SampleCount
// and cuts a peptide from each sequence longer than MinSeqLen.
// Peptides come back in the order they were drawn. There may be fewer
// than SampleCount if some sequences are too short. Any error means
// no peptides at all.
func Sample(seqgrp *seq.SeqGrp, p Params, rnd Rand) ([]Peptide, error) {
	peps, _, err := sample(seqgrp, p, rnd)
	return peps, err
}

// tally is what happened during one run of sample.
type tally struct {
	drawn   int
	skipped int
}

func sample(seqgrp *seq.SeqGrp, p Params, rnd Rand) ([]Peptide, tally, error) {
	var t tally
	if err := p.Check(seqgrp.NSeq()); err != nil {
		return nil, t, err
	}
	ids := seqgrp.IDs()
	rnd.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })
	ids = ids[:p.SampleCount]

	peps := make([]Peptide, 0, len(ids))
	for _, id := range ids {
		t.drawn++
		s, ok := seqgrp.Get(id)
		if !ok {
			return nil, t, errors.Errorf("program bug: lost sequence %s", id)
		}
		if s.Len() == 0 {
			return nil, t, &EmptySeqError{ID: id}
		}
		if s.Len() <= p.MinSeqLen {
			t.skipped++
			continue
		}
		pep, err := Extract(id, s.GetSeq(), p.MinPepLen, p.MaxPepLen, rnd)
		if err != nil {
			return nil, t, err
		}
		peps = append(peps, pep)
	}
	return peps, t, nil
}
