package seq

import (
	"bufio"
	"io"
	"os"
	"syscall"

	"github.com/pkg/errors"

	. "github.com/andrew-torda/randpep/pkg/seq/common"
)

// IsBrokenPipe reports whether an error is a broken pipe / closed pipe.
// Useful when downstream consumers (like `head`) close early.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}

// WriteFasta writes sequences in fasta format. Each comment goes on its
// own line. If width is more than zero, sequences are broken into lines
// of that many residues, otherwise each sequence is one line.
func WriteFasta(w io.Writer, seq_set []Seq, width int) error {
	bw := bufio.NewWriter(w)
	for _, seq := range seq_set {
		bw.WriteByte(CmmtChar)
		bw.WriteString(seq.GetCmmt())
		bw.WriteByte('\n')
		s := seq.GetSeq()
		if width > 0 {
			for ; len(s) > width; s = s[width:] {
				bw.Write(s[:width])
				bw.WriteByte('\n')
			}
		}
		bw.Write(s)
		if err := bw.WriteByte('\n'); err != nil {
			return err // bufio remembers the first error, so this is it
		}
	}
	return bw.Flush()
}

// WriteToF takes a filename and a slice of sequences.
// It writes the sequences to the file. An empty name or "-" means
// standard output. The file is only created here, so if we are never
// called, an old file is not touched. If writing fails part of the
// way through, the file is left as it is.
func WriteToF(outseq_fname string, seq_set []Seq, s_opts *Options) (err error) {
	if s_opts == nil {
		s_opts = &Options{}
	}
	var outfile_fp io.Writer
	switch {
	case s_opts.DryRun:
		outfile_fp = io.Discard
	case IsStd(outseq_fname):
		outfile_fp = os.Stdout
	default:
		t, oerr := os.Create(outseq_fname)
		if oerr != nil {
			return errors.Wrap(oerr, "creating output sequence file")
		}
		defer func() {
			if cerr := t.Close(); cerr != nil && err == nil {
				err = errors.Wrapf(cerr, "closing %s", outseq_fname)
			}
		}()
		outfile_fp = t
	}

	if err = WriteFasta(outfile_fp, seq_set, s_opts.Width); err != nil {
		if IsBrokenPipe(err) {
			return nil
		}
		return errors.Wrapf(err, "writing sequences to %s", outseq_fname)
	}
	return nil
}
