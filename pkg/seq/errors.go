package seq

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrNoSeqs comes back when a file has no sequences in it at all.
var ErrNoSeqs = errors.New("no sequences found")

// DupIDError says that two sequences share an identifier.
// First and Second count sequences from 1.
type DupIDError struct {
	ID     string
	First  int
	Second int
}

func (e *DupIDError) Error() string {
	return fmt.Sprintf("duplicate identifier %q in sequences %d and %d", e.ID, e.First, e.Second)
}

// EmptyIDError is a comment line with nothing on it.
type EmptyIDError struct {
	Ndx int
}

func (e *EmptyIDError) Error() string {
	return fmt.Sprintf("sequence %d has no identifier", e.Ndx)
}

// EmptySeqError is a comment line with no residues after it.
type EmptySeqError struct {
	Cmmt string
	Line int
}

func (e *EmptySeqError) Error() string {
	return fmt.Sprintf("zero length sequence after \"%s\" at line %d", trimStr(e.Cmmt, 40), e.Line)
}

// SyntaxError is input which is not fasta format.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}
