// brokenio is a wrapper around an io.Reader. It allows us to set
// rates of failed read operations.
// Typical use: You get a file pointer or a reader from a compressed
// source. You write
// reader = NewReader(reader, rnd) to wrap the old reader. Everything then
// functions as before, but with artificial errors.
// When we introduce an error, we return ErrBroken.
// When we introduce a failure on the first read, we return io.EOF without
// any data. This is what one often sees on a zero length file.
// All the dice come from the generator we are given, so a test which
// fails can be repeated.

package brokenio

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/pkg/errors"
)

// ErrBroken is the error we make up.
var ErrBroken = errors.New("brokenio: artificial read failure")

// BrknRdr is modelled on the various Readers in the standard library,
// but with variables controlling the frequency of errors.
// These values are the fraction of time an error will take place,
// so a value of 0.05 means failure in 5% of the cases.
type BrknRdr struct {
	rdrOrig      io.Reader // Wrapped reader
	rnd          *rand.Rand
	probZeroFile float32 // Probability of returning a zero length file
	probFail     float32 // Probability of a read failing
	failAfter    int     // Fail on this call, counting from 1. Zero means never
	nCalled      int
	nByte        int
}

// NewReader returns a new Reader - a wrapper around the old one
func NewReader(rIn io.Reader, rnd *rand.Rand) *BrknRdr {
	return &BrknRdr{rdrOrig: rIn, rnd: rnd}
}

// SetProbZeroFile sets the rate at which we simply return 0 bytes on the
// first read. It must be a value from 0 to 1. We do not check if the
// argument is valid.
func (r *BrknRdr) SetProbZeroFile(prob float32) { r.probZeroFile = prob }

// SetProbFail set the probability of a file reading failure.
// It must be between zero and 1.
func (r *BrknRdr) SetProbFail(prob float32) { r.probFail = prob }

// SetFailAfter makes call number n fail, whatever the dice say.
func (r *BrknRdr) SetFailAfter(n int) { r.failAfter = n }

// NByte is the amount of data that has gone through.
func (r *BrknRdr) NByte() int { return r.nByte }

// Read wraps the original reader and sums up the amount of data that
// has gone through. On the first call, we might return zero data to
// simulate a zero length file.
func (r *BrknRdr) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	r.nCalled++
	if r.nCalled == 1 && r.probZeroFile > 0 {
		if r.rnd.Float32() < r.probZeroFile {
			return 0, io.EOF
		}
	}
	if r.nCalled == r.failAfter {
		return 0, ErrBroken
	}
	if r.probFail > 0 && r.rnd.Float32() < r.probFail {
		return 0, ErrBroken
	}
	n, err = r.rdrOrig.Read(p)
	r.nByte += n
	return n, err
}

// String is for debugging.
func (r *BrknRdr) String() string {
	return fmt.Sprintf("brokenio: %d calls and %d bytes", r.nCalled, r.nByte)
}
