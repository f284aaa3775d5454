// 29 Apr 2020

package common

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

const CmmtChar byte = '>' // introduces a comment line in fasta format

// StdStream is the file name we take to mean stdin or stdout.
const StdStream = "-"

// IsStd says whether a file name means standard input or output.
func IsStd(fname string) bool { return fname == "" || fname == StdStream }

// WrtTemp writes a string to a temporary file and returns
// the filename. It is used all over the place in testing.
func WrtTemp(s string) (string, error) {
	f_tmp, err := os.CreateTemp("", "_del_me_testing")
	if err != nil {
		return "", errors.Wrap(err, "tempfile fail")
	}

	if _, err := io.WriteString(f_tmp, s); err != nil {
		f_tmp.Close()
		return "", errors.Wrapf(err, "writing string to temp file %v", f_tmp.Name())
	}
	name := f_tmp.Name()
	if err := f_tmp.Close(); err != nil {
		return "", errors.Wrapf(err, "closing temp file %v", name)
	}
	return name, nil
}
