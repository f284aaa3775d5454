// 3 Aug 2020
// Getting sequence files into memory. Plain files are mapped, since
// they may be the whole of a database. Compressed files and pipes
// are streamed.

package seq

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
	"github.com/pkg/errors"

	. "github.com/andrew-torda/randpep/pkg/seq/common"
)

var gzMagic = []byte{0x1f, 0x8b}

// stdin is replaced in tests.
var stdin io.Reader = os.Stdin

// isGzip peeks at the start of a file and puts the offset back.
// Only for regular files.
func isGzip(fp io.ReadSeeker) (bool, error) {
	var b [2]byte
	n, err := io.ReadFull(fp, b[:])
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return false, err
	}
	if _, err := fp.Seek(0, io.SeekStart); err != nil {
		return false, err
	}
	return n == 2 && bytes.Equal(b[:], gzMagic), nil
}

// readStream is for pipes and stdin, which cannot be seeked or
// mapped. We look at the first bytes without using them up.
func readStream(rdr io.Reader, seqgrp *SeqGrp, s_opts *Options) error {
	br := bufio.NewReaderSize(rdr, rdsize)
	b, err := br.Peek(len(gzMagic))
	if err != nil && err != io.EOF {
		return err
	}
	if !bytes.Equal(b, gzMagic) {
		return ReadFasta(br, seqgrp, s_opts)
	}
	zrdr, err := gzip.NewReader(br)
	if err != nil {
		return errors.Wrap(err, "opening compressed stream")
	}
	defer zrdr.Close()
	return ReadFasta(zrdr, seqgrp, s_opts)
}

// readMapped maps a regular file and parses it from memory.
// We count ">" characters first, which is a fair guess at the number
// of sequences and saves growing the storage.
func readMapped(fp *os.File, size int64, seqgrp *SeqGrp, s_opts *Options) error {
	if size == 0 { // mmap refuses empty files
		return ErrNoSeqs
	}
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return errors.Wrap(err, "mapping file")
	}
	defer mm.Unmap()
	opts := *s_opts
	if opts.ExpectSeq == 0 {
		opts.ExpectSeq = bytes.Count(mm, []byte{CmmtChar})
	}
	return ReadFasta(bytes.NewReader(mm), seqgrp, &opts)
}

// readRegular is for plain files, compressed or not.
func readRegular(fp *os.File, size int64, seqgrp *SeqGrp, s_opts *Options) error {
	gz, err := isGzip(fp)
	if err != nil {
		return errors.Wrap(err, "checking compression")
	}
	if !gz {
		return readMapped(fp, size, seqgrp, s_opts)
	}
	zrdr, err := gzip.NewReader(fp)
	if err != nil {
		return errors.Wrap(err, "opening compressed file")
	}
	defer zrdr.Close()
	return ReadFasta(zrdr, seqgrp, s_opts)
}

// Readfile takes a filename and reads sequences from it.
// An empty name or "-" means standard input. Gzipped input is
// recognised by its contents, not its name, so a pipe may be
// compressed too.
func Readfile(fname string, s_opts *Options) (*SeqGrp, error) {
	if s_opts == nil {
		s_opts = &Options{}
	}
	seqgrp := new(SeqGrp)
	if IsStd(fname) {
		if err := readStream(stdin, seqgrp, s_opts); err != nil {
			return nil, errors.Wrap(err, "reading sequences from stdin")
		}
		return seqgrp, nil
	}

	fp, err := os.Open(fname)
	if err != nil {
		return nil, errors.Wrap(err, "opening sequence file")
	}
	defer fp.Close()
	fi, err := fp.Stat()
	if err != nil {
		return nil, errors.Wrapf(err, "looking at %s", fname)
	}
	if fi.Mode().IsRegular() {
		err = readRegular(fp, fi.Size(), seqgrp, s_opts)
	} else {
		err = readStream(fp, seqgrp, s_opts)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading sequences from %s", fname)
	}
	return seqgrp, nil
}
