package duplex

import (
	"bytes"
)

// DefaultNCutoff disables the N filter; a consensus can not contain more
// than 100% Ns.
const DefaultNCutoff = 1.0

// revCompTable maps each ASCII base to its complement. Everything other
// than ACGT (either case) maps to 'N'.
var revCompTable = func() (t [256]byte) {
	for i := range t {
		t[i] = 'N'
	}
	for _, p := range []string{"AT", "CG", "GC", "TA", "at", "cg", "gc", "ta"} {
		t[p[0]] = p[1] &^ 0x20
	}
	return t
}()

// ReverseComplement returns the reverse complement of seq in a new slice.
// A/T and C/G are swapped; any other byte becomes 'N'.
func ReverseComplement(seq []byte) []byte {
	n := len(seq)
	dst := make([]byte, n)
	for i, j := 0, n-1; i < n; i, j = i+1, j-1 {
		dst[i] = revCompTable[seq[j]]
	}
	return dst
}

// Consensus merges two strand sequences of equal length. Position i of
// the result holds a[i] if a[i] == b[i], and 'N' otherwise.
func Consensus(a, b []byte) ([]byte, error) {
	if len(a) != len(b) {
		return nil, &LengthMismatchError{Len1: len(a), Len2: len(b), Want: -1}
	}
	c := make([]byte, len(a))
	for i := range a {
		if a[i] == b[i] {
			c[i] = a[i]
		} else {
			c[i] = 'N'
		}
	}
	return c, nil
}

// NFraction returns the fraction of 'N' bases in seq. An empty sequence
// has fraction 0.
func NFraction(seq []byte) float64 {
	if len(seq) == 0 {
		return 0
	}
	return float64(bytes.Count(seq, []byte{'N'})) / float64(len(seq))
}

// ConsensusBuilder builds and filters duplex consensus sequences.
type ConsensusBuilder struct {
	// ReadLength is the required length of both strand sequences. Zero
	// disables the check, leaving only the equal-length requirement.
	ReadLength int
	// NCutoff is the largest accepted fraction of Ns in a consensus.
	NCutoff float64
}

// Build merges a and b. It returns ok=false if the consensus has a
// fraction of Ns strictly greater than NCutoff. A *LengthMismatchError is
// returned if the lengths of a and b differ from each other or from
// ReadLength.
func (cb ConsensusBuilder) Build(a, b []byte) (seq []byte, ok bool, err error) {
	if cb.ReadLength > 0 && (len(a) != cb.ReadLength || len(b) != cb.ReadLength) {
		return nil, false, &LengthMismatchError{Len1: len(a), Len2: len(b), Want: cb.ReadLength}
	}
	if seq, err = Consensus(a, b); err != nil {
		return nil, false, err
	}
	if NFraction(seq) > cb.NCutoff {
		return seq, false, nil
	}
	return seq, true, nil
}
