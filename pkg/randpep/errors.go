package randpep

import "fmt"

// OutOfRangeError is asking for more sequences than there are.
type OutOfRangeError struct {
	Want int // sample count asked for
	Have int // number of sequences
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("sample-count %d is more than the %d sequences available", e.Want, e.Have)
}

// InvalidBoundsError is a parameter, or pair of parameters, which
// cannot be used.
type InvalidBoundsError struct {
	Param string
	Value int
	Msg   string
}

func (e *InvalidBoundsError) Error() string {
	return fmt.Sprintf("%s %d: %s", e.Param, e.Value, e.Msg)
}

// DegenerateRangeError is a sequence too short for the peptide
// length we drew.
type DegenerateRangeError struct {
	ID     string
	SeqLen int
	PepLen int
}

func (e *DegenerateRangeError) Error() string {
	return fmt.Sprintf("sequence %s length %d is shorter than peptide length %d", e.ID, e.SeqLen, e.PepLen)
}

// EmptySeqError is a selected sequence with nothing in it.
type EmptySeqError struct {
	ID string
}

func (e *EmptySeqError) Error() string {
	return fmt.Sprintf("sequence %s is empty", e.ID)
}
