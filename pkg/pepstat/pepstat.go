// 14 Oct 2026
// Package pepstat counts which residues turn up where in a set of
// peptides. Peptides are different lengths, so position i only counts
// the peptides which are longer than i.

package pepstat

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	"github.com/andrew-torda/matrix"
)

// Comp is a table of counts, one row per symbol and one column per
// position in a peptide.
type Comp struct {
	revmap   []byte            // revmap[2] tells me the character in row 2
	mapping  [256]int          // mapping['C'] tells me the row used for C
	counts   *matrix.FMatrix2d // counts.Mat[row][position]
	total    []float32         // peptides reaching each position
	npep     int
	freqKnwn bool
}

// Composition counts symbols at each position of the peptides.
func Composition(peps []string) *Comp {
	c := new(Comp)
	c.npep = len(peps)
	var used [256]bool
	ncol := 0
	for _, p := range peps {
		for i := 0; i < len(p); i++ {
			used[p[i]] = true
		}
		if len(p) > ncol {
			ncol = len(p)
		}
	}
	for i := range c.mapping {
		c.mapping[i] = -1
		if used[i] {
			c.mapping[i] = len(c.revmap)
			c.revmap = append(c.revmap, byte(i))
		}
	}
	c.counts = matrix.NewFMatrix2d(len(c.revmap), ncol)
	c.total = make([]float32, ncol)
	for _, p := range peps {
		for i := 0; i < len(p); i++ {
			c.counts.Mat[c.mapping[p[i]]][i]++
			c.total[i]++
		}
	}
	return c
}

// NSym is the number of different symbols seen.
func (c *Comp) NSym() int { return len(c.revmap) }

// NPos is the length of the longest peptide.
func (c *Comp) NPos() int { return len(c.total) }

// Syms returns the symbols in row order, which is byte order.
func (c *Comp) Syms() []byte { return append([]byte(nil), c.revmap...) }

// Count returns the entry for symbol sym at position pos, counting
// from zero. Symbols never seen give zero.
func (c *Comp) Count(sym byte, pos int) float32 {
	r := c.mapping[sym]
	if r < 0 || pos < 0 || pos >= len(c.total) {
		return 0
	}
	return c.counts.Mat[r][pos]
}

// Frac converts counts to fractions of the peptides which reach each
// position. It can only be done once.
func (c *Comp) Frac() {
	if c.freqKnwn {
		return
	}
	nrow, ncol := c.counts.Size()
	for icol := 0; icol < ncol; icol++ {
		if c.total[icol] == 0 {
			continue
		}
		for irow := 0; irow < nrow; irow++ {
			c.counts.Mat[irow][icol] /= c.total[icol]
		}
	}
	c.freqKnwn = true
}

// Overall returns the fraction of all residues which are each symbol,
// ignoring position, sorted from most to least common.
func (c *Comp) Overall() []SymFrac {
	var all float32
	for _, t := range c.total {
		all += t
	}
	ret := make([]SymFrac, len(c.revmap))
	for irow, sym := range c.revmap {
		var n float32
		for icol, v := range c.counts.Mat[irow] {
			if c.freqKnwn {
				v *= c.total[icol]
			}
			n += v
		}
		ret[irow] = SymFrac{Sym: sym}
		if all > 0 {
			ret[irow].Frac = n / all
		}
	}
	sort.SliceStable(ret, func(i, j int) bool { return ret[i].Frac > ret[j].Frac })
	return ret
}

// SymFrac is a symbol and how often it appears.
type SymFrac struct {
	Sym  byte
	Frac float32
}

// WriteCSV writes the table with a heading line. Positions are
// numbered from 1. format is something like "%.0f" or "%.3f".
func (c *Comp) WriteCSV(w io.Writer, format string) error {
	bw := bufio.NewWriter(w)
	fmt.Fprint(bw, `"res"`)
	for i := range c.total {
		fmt.Fprintf(bw, `,"%d"`, i+1)
	}
	fmt.Fprintln(bw)
	fmt.Fprint(bw, `"n"`)
	for _, t := range c.total {
		fmt.Fprintf(bw, ",%.0f", t)
	}
	fmt.Fprintln(bw)
	for _, sym := range c.Syms() {
		fmt.Fprintf(bw, "%c", sym)
		for pos := 0; pos < c.NPos(); pos++ {
			fmt.Fprintf(bw, ","+format, c.Count(sym, pos))
		}
		fmt.Fprintln(bw)
	}
	return bw.Flush()
}
