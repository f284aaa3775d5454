// Memory and time for reading a big file.
// go test -bench ForMem -memprofile mem.out
package seq_test

import (
	"fmt"
	"os"
	"testing"

	"github.com/andrew-torda/randpep/pkg/seq"
)

func writeTmpSeqFile(b *testing.B) string {
	fp, err := os.CreateTemp(b.TempDir(), "del_me")
	if err != nil {
		b.Fatal(err)
	}
	defer fp.Close()
	nseq := 21465
	nrep := 27
	for i := 0; i < nseq; i++ {
		fmt.Fprintln(fp, "> seq", i)
		for j := 0; j < nrep; j++ {
			fmt.Fprint(fp, "aaaaaaaaaaaaa ")
		}
		fmt.Fprint(fp, "\n")
	}
	return fp.Name()
}

func BenchmarkForMemUse(b *testing.B) {
	fname := writeTmpSeqFile(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := seq.Readfile(fname, &seq.Options{}); err != nil {
			b.Fatal("benchmark broke reading sequences", err)
		}
	}
}
