//
package white_test

import (
	"testing"

	. "github.com/andrew-torda/randpep/pkg/white"
)

// TestWhiteRemove
func TestWhiteRemove(t *testing.T) {
	ss := []string{
		"abcdefghijk",
		" a b c d e f g h i j k",
		"a b c de fgh ijk",
		"   abcdefghijk    ",
		"a   b      cdefghijk\n ",
		"a  b  c  d   e    f     ghijk",
		"a bcdefghij   k",
		"abcdefghij\r\nk",
		"a\tbcdefghij\vk\f",
	}
	for _, s := range ss {
		b := []byte(s)
		c := cap(b)
		Remove(&b)
		if string(b) != "abcdefghijk" {
			t.Fatalf("white remove broke on \"%s\" got \"%s\"", s, b)
		}
		if cap(b) != c {
			t.Fatalf("capacity changed from %d to %d", c, cap(b))
		}
	}
}

func TestWhiteEmpty(t *testing.T) {
	for _, s := range []string{"", " ", "\n\n\t "} {
		b := []byte(s)
		Remove(&b)
		if len(b) != 0 {
			t.Fatalf("wanted empty slice from \"%s\" got \"%s\"", s, b)
		}
	}
}

func TestHas(t *testing.T) {
	if Has([]byte("ACDEFG")) {
		t.Fatal("no white space, but Has said yes")
	}
	if !Has([]byte("ACD\nEFG")) {
		t.Fatal("missed a newline")
	}
}
