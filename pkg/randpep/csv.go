package randpep

import (
	"encoding/csv"
	"io"
	"strconv"
)

// WriteCSV writes one line per peptide, with a heading.
func WriteCSV(w io.Writer, peps []Peptide, accession bool) error {
	cw := csv.NewWriter(w)
	cw.Write([]string{"Sequence", "Source_Protein", "Start", "Length"})
	for _, p := range peps {
		id := p.ID
		if accession {
			id = Accession(id)
		}
		cw.Write([]string{p.Seq, id, strconv.Itoa(p.Start), strconv.Itoa(len(p.Seq))})
	}
	cw.Flush()
	return cw.Error()
}
