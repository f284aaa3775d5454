// Reader for fasta format files.

package seq

import (
	"bufio"
	"bytes"
	"io"

	"github.com/pkg/errors"

	. "github.com/andrew-torda/randpep/pkg/seq/common"
	"github.com/andrew-torda/randpep/pkg/white"
)

type lexer struct {
	rdr    *bufio.Reader
	seqgrp *SeqGrp
	opts   *Options
	cmmt   []byte // partial comment
	seq    []byte // partial sequence
	bol    bool   // next piece starts a line
	lineNo int
	err    error
}

const defaultReadSize = 64 * 1024

var rdsize int = defaultReadSize

// setFastaRdSize is only used during testing and benchmarking.
// bufio will not go below 16 bytes.
func setFastaRdSize(i int) { rdsize = i }

// next returns the next piece of input. A piece ends at a newline or
// when the buffer is full. atStart says the piece begins a line and
// complete that it finished one. ok is false at the end of input or on
// a read error, which is left in l.err.
func (l *lexer) next() (data []byte, atStart, complete, ok bool) {
	data, err := l.rdr.ReadSlice('\n')
	switch {
	case err == nil:
		complete = true
	case err == bufio.ErrBufferFull:
		complete = false
	case err == io.EOF:
		if len(data) == 0 {
			return nil, false, false, false
		}
		complete = true
	default:
		l.err = errors.Wrapf(err, "reading near line %d", l.lineNo+1)
		return nil, false, false, false
	}
	atStart = l.bol
	l.bol = complete
	if complete {
		l.lineNo++
	}
	return data, atStart, complete, true
}

type stateFn func(*lexer) stateFn

// blank is true for a line with nothing but white space.
func blank(b []byte) bool {
	for _, c := range b {
		if !white.IsWhite(c) {
			return false
		}
	}
	return true
}

// gstart skips blank lines until the first comment.
func gstart(l *lexer) stateFn {
	data, atStart, complete, ok := l.next()
	if !ok {
		return nil
	}
	if atStart && len(data) > 0 && data[0] == CmmtChar {
		return l.startCmmt(data[1:], complete)
	}
	if blank(data) {
		return gstart
	}
	l.err = &SyntaxError{Line: l.lineNo, Msg: "sequence data before first comment line"}
	return nil
}

// startCmmt begins a new comment and decides if the rest of the line
// is still to come.
func (l *lexer) startCmmt(data []byte, complete bool) stateFn {
	l.cmmt = append(l.cmmt[:0], data...)
	if complete {
		return gseq
	}
	return gcmmt
}

// We are reading a comment
func gcmmt(l *lexer) stateFn {
	data, _, complete, ok := l.next()
	if !ok {
		return l.finish(nil)
	}
	l.cmmt = append(l.cmmt, data...)
	if complete {
		return gseq
	}
	return gcmmt
}

// We are reading a sequence
func gseq(l *lexer) stateFn {
	data, atStart, complete, ok := l.next()
	if !ok {
		return l.finish(nil)
	}
	if atStart && len(data) > 0 && data[0] == CmmtChar {
		if l.finish(gseq) == nil {
			return nil
		}
		return l.startCmmt(data[1:], complete)
	}
	if white.Has(data) {
		white.Remove(&data)
	}
	l.seq = append(l.seq, data...)
	return gseq
}

// finish stores the sequence we have been collecting and returns
// the state to go to, or nil if something broke.
func (l *lexer) finish(next stateFn) stateFn {
	if l.err != nil {
		return nil
	}
	cmmt := string(bytes.TrimRight(l.cmmt, "\r\n"))
	if len(l.seq) == 0 {
		l.err = &EmptySeqError{Cmmt: cmmt, Line: l.lineNo}
		return nil
	}
	s := NewSeq(cmmt, l.seq)
	if l.opts.Upper {
		if err := s.Upper(); err != nil {
			l.err = err
			return nil
		}
	}
	if err := l.seqgrp.Add(s); err != nil {
		l.err = err
		return nil
	}
	l.seq = nil // the group owns the old one now
	return next
}

// ReadFasta reads fasta formatted files.
func ReadFasta(rdr io.Reader, seqgrp *SeqGrp, s_opts *Options) (err error) {
	if s_opts == nil {
		s_opts = &Options{}
	}
	if seqgrp.index == nil && s_opts.ExpectSeq > 0 {
		seqgrp.seqs = make([]Seq, 0, s_opts.ExpectSeq)
		seqgrp.index = make(map[string]int, s_opts.ExpectSeq)
	}
	l := lexer{rdr: bufio.NewReaderSize(rdr, rdsize), seqgrp: seqgrp, opts: s_opts, bol: true}

	for state := gstart; state != nil; {
		state = state(&l)
	}
	if l.err == nil && seqgrp.NSeq() == 0 {
		l.err = ErrNoSeqs
	}
	return l.err
}
