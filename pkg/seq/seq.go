// 20 Dec 2017

// Package seq provides functions for sequences,
// which usually begin their lives in fasta format. It can
// read and write them.
//
// Sequences are kept in a SeqGrp, which remembers the order they were
// read in and can find a sequence by its identifier. The identifier is
// the first word on the comment line, so it must be unique.
package seq

import (
	"fmt"
	"strings"

	. "github.com/andrew-torda/randpep/pkg/seq/common"
)

// Seq is one sequence with its comment.
type Seq struct {
	cmmt string
	id   string
	seq  []byte
}

// We only read ascii characters, so anything bigger than this is not
// valid.
const (
	MaxSym uint8 = 127
)

// Options contains all the choices passed in from the caller.
type Options struct {
	Vbsty     int
	ExpectSeq int  // Expected number of sequences, used to size storage
	Upper     bool // Convert residues to upper case while reading
	DryRun    bool // Do not write any files
	Width     int  // Residues per line on output. Zero means no wrapping
}

// NewSeq makes a sequence from a comment and residues. The identifier
// is taken from the comment.
func NewSeq(cmmt string, s []byte) Seq {
	return Seq{cmmt: cmmt, id: idFromCmmt(cmmt), seq: s}
}

// idFromCmmt returns the first word in a comment.
func idFromCmmt(cmmt string) string {
	if f := strings.Fields(cmmt); len(f) > 0 {
		return f[0]
	}
	return ""
}

// GetSeq returns the sequence as the original byte slice
func (s Seq) GetSeq() []byte { return s.seq }

// GetCmmt returns the comment, without the leading ">"
func (s Seq) GetCmmt() string { return s.cmmt }

// ID returns the identifier, the first word of the comment.
func (s Seq) ID() string { return s.id }

// Len
func (s Seq) Len() int { return len(s.seq) }

// Empty returns true if there are no residues.
func (s Seq) Empty() bool { return len(s.seq) == 0 }

// trimStr trims a string to n bytes if it is longer
func trimStr(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// Upper changes a sequence to upper case, in place.
// It only works with bytes, not runes.
// It can return an error if it encounters a symbol it does
// not like (value higher than 127).
func (s *Seq) Upper() error {
	const diff = 'a' - 'A'
	const symerr = "bad sym \"%c\" at position %d starting \"%s\""
	b := s.seq
	for i := 0; i < len(b); i++ {
		c := b[i]
		if c > MaxSym {
			return fmt.Errorf(symerr, c, i, trimStr(s.cmmt, 40))
		}
		if 'a' <= c && c <= 'z' {
			b[i] -= diff
		}
	}
	return nil
}

// String returns a sequence, with its comment at the start as
// a single string
func (s Seq) String() string {
	return fmt.Sprintf("%c%s\n%s", CmmtChar, s.cmmt, s.seq)
}

// SeqGrp is a group of sequences, kept in the order they were added,
// with an index from identifier to position.
type SeqGrp struct {
	seqs  []Seq
	index map[string]int
}

// NewSeqGrp returns an empty group with room for n sequences.
func NewSeqGrp(n int) *SeqGrp {
	if n < 0 {
		n = 0
	}
	return &SeqGrp{seqs: make([]Seq, 0, n), index: make(map[string]int, n)}
}

// Add appends a sequence to the group. An identifier which is empty
// or already present is an error and the group is not changed.
func (seqgrp *SeqGrp) Add(s Seq) error {
	if seqgrp.index == nil {
		seqgrp.index = make(map[string]int)
	}
	n := len(seqgrp.seqs)
	if s.id == "" {
		return &EmptyIDError{Ndx: n + 1}
	}
	if prev, ok := seqgrp.index[s.id]; ok {
		return &DupIDError{ID: s.id, First: prev + 1, Second: n + 1}
	}
	seqgrp.index[s.id] = n
	seqgrp.seqs = append(seqgrp.seqs, s)
	return nil
}

// NSeq returns the number of sequences
func (seqgrp *SeqGrp) NSeq() int { return len(seqgrp.seqs) }

// SeqSlc returns the slice of sequences
func (seqgrp *SeqGrp) SeqSlc() []Seq { return seqgrp.seqs }

// Get finds a sequence by identifier.
func (seqgrp *SeqGrp) Get(id string) (Seq, bool) {
	if i, ok := seqgrp.index[id]; ok {
		return seqgrp.seqs[i], true
	}
	return Seq{}, false
}

// IDs returns a fresh slice of identifiers in the order the sequences
// were added. The caller may shuffle it.
func (seqgrp *SeqGrp) IDs() []string {
	ids := make([]string, len(seqgrp.seqs))
	for i, s := range seqgrp.seqs {
		ids[i] = s.id
	}
	return ids
}

// Upper uppercases all the members of a group of sequences.
func (seqgrp *SeqGrp) Upper() error {
	for i := range seqgrp.seqs {
		if err := seqgrp.seqs[i].Upper(); err != nil {
			return err
		}
	}
	return nil
}

// Str2SeqGrp takes some strings and returns them as a seqgrp.
// sIn is a slice of strings which are the sequences.
// prefix is an optional argument. Sequences need names/comments. If
// prefix is not given, sequences will be called "s0", "s1", ...
func Str2SeqGrp(sIn []string, prefix ...string) *SeqGrp {
	var base string
	seqgrp := NewSeqGrp(len(sIn))
	if prefix == nil {
		base = "s"
	} else {
		base = prefix[0]
	}
	for i, s := range sIn {
		seqgrp.Add(NewSeq(fmt.Sprint(base, i), []byte(s)))
	}
	return seqgrp
}
