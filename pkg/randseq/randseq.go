// 31 July 2020

// Package randseq makes random protein sequence files for testing.
// Sequences are written with white space and line breaks scattered
// through them, since a reader should not care. All the randomness
// comes from the seed, so the same arguments give the same file.
package randseq

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"sync"

	"github.com/pkg/errors"
)

const (
	nPadWhite = 9 // For padding for adding whitespace to sequences
)

// Letters are the twenty amino acids, upper case.
var Letters = []byte("ACDEFGHIKLMNPQRSTVWY")

// getseq returns a byte slice with a random sequence in it, with
// spare capacity for white space.
func getseq(seqlen int, rnd *rand.Rand) []byte {
	space := seqlen + (seqlen / nPadWhite) // about 10% rubbish white space
	ret := make([]byte, seqlen, space)
	l := len(Letters)
	for i := 0; i < seqlen; i++ {
		ret[i] = Letters[rnd.Intn(l)]
	}
	return ret
}

// RandSeqArgs is the set of arguments passed to the main function
type RandSeqArgs struct {
	Iseed   int64     // random number seed
	Wrtr    io.Writer // where we write to
	Cmmt    string    // Comment for the sequences
	Prefix  string    // Identifiers are Prefix1, Prefix2, ...
	Nseq    int       // number of sequences
	MinLen  int       // Length of sequences is uniform from MinLen
	MaxLen  int       // to MaxLen
	NoWhite bool      // Do not scatter white space through sequences
}

// addInner is used by addspace to add a space or newline
func addInner(s []byte, n int, c byte, spacernd *rand.Rand) []byte {
	for i := 0; i < n; i++ {
		s = append(s, 0)
		pos := spacernd.Intn(len(s))
		copy(s[pos+1:], s[pos:])
		s[pos] = c
	}
	return s
}

// addspace is given a byte array and adds white characters at random
// positions. We work out how much space is to be used. We flip a coin.
// Heads we don't add a newline. Tails we make about 1/10 (integer 1/9)
// of the spaces to be newlines.
func addspace(s []byte, spacernd *rand.Rand) []byte {
	toAdd := cap(s) - len(s)
	nNL := 0 // Number of new lines to add
	if spacernd.Intn(2) == 0 {
		nNL = toAdd / 9
	}

	nSpace := toAdd - nNL
	s = addInner(s, nSpace, ' ', spacernd)
	s = addInner(s, nNL, '\n', spacernd)
	return s
}

// writeseq takes a bytestring which is our sequence. It adds a comment
// and sends it out for writing. The white space has its own random
// number generator, so the residues do not depend on it.
func writeseq(sChan <-chan []byte, args *RandSeqArgs, wg *sync.WaitGroup, errp *error) {
	defer wg.Done()

	bw := bufio.NewWriter(args.Wrtr)
	width := len(fmt.Sprintf("%d", args.Nseq))
	spacernd := rand.New(rand.NewSource(args.Iseed + 1))
	var i int
	for s := range sChan {
		i++
		if *errp != nil {
			continue // drain, so the sender is not stuck
		}
		if !args.NoWhite {
			s = addspace(s, spacernd)
		}
		fmt.Fprintf(bw, ">%s%0*d", args.Prefix, width, i)
		if args.Cmmt != "" {
			fmt.Fprint(bw, " ", args.Cmmt)
		}
		bw.WriteByte('\n')
		bw.Write(s)
		if err := bw.WriteByte('\n'); err != nil {
			*errp = err
		}
	}
	if *errp == nil {
		*errp = bw.Flush()
	}
}

// RandSeqMain writes random sequences to an io.Writer.
func RandSeqMain(args *RandSeqArgs) error {
	if args.Nseq < 0 || args.MinLen < 1 || args.MaxLen < args.MinLen {
		return errors.Errorf("randseq: need nseq >= 0 and 1 <= min length <= max length, got %d, %d, %d",
			args.Nseq, args.MinLen, args.MaxLen)
	}
	if args.Prefix == "" {
		args.Prefix = "rs"
	}
	var wg sync.WaitGroup
	var err error
	rnd := rand.New(rand.NewSource(args.Iseed))
	sChan := make(chan []byte)
	wg.Add(1)
	go writeseq(sChan, args, &wg, &err)
	for i := 0; i < args.Nseq; i++ {
		l := args.MinLen + rnd.Intn(args.MaxLen-args.MinLen+1)
		sChan <- getseq(l, rnd)
	}
	close(sChan)
	wg.Wait()
	return errors.Wrap(err, "randseq: writing")
}
