// 3 Aug 2020
// Package white removes blanks from sequence data.

package white

var asciiSpace = [256]bool{
	'\t': true, '\n': true, '\v': true, '\f': true, '\r': true, ' ': true,
}

// IsWhite is true for the ASCII white space characters.
func IsWhite(c byte) bool { return asciiSpace[c] }

// Remove acts on a byte slice, in place, and removes all the white
// space. The slice comes back with its length adjusted, but the capacity
// unchanged.
func Remove(sIn *[]byte) {
	s := *sIn
	n := 0
	for _, c := range s {
		if !asciiSpace[c] {
			s[n] = c
			n++
		}
	}
	*sIn = s[:n]
}

// Has says whether there is any white space in s.
func Has(s []byte) bool {
	for _, c := range s {
		if asciiSpace[c] {
			return true
		}
	}
	return false
}
