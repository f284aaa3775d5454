package seq

import "io"

// SetFastaRdSize lets tests try small buffers.
var SetFastaRdSize = setFastaRdSize

// DefaultReadSize is what tests should put back.
const DefaultReadSize = defaultReadSize

// SetStdin makes Readfile read r instead of standard input, until
// the returned function is called.
func SetStdin(r io.Reader) func() {
	save := stdin
	stdin = r
	return func() { stdin = save }
}
