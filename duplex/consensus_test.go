package duplex

import (
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestConsensus(t *testing.T) {
	tests := []struct {
		a, b, want string
	}{
		{"ACGT", "ACGT", "ACGT"},
		{"AACC", "AAGG", "AANN"},
		{"ACGT", "TGCA", "NNNN"},
		{"NCGT", "NCGT", "NCGT"},
		{"", "", ""},
	}
	for _, test := range tests {
		c, err := Consensus([]byte(test.a), []byte(test.b))
		assert.NoError(t, err)
		assert.Equal(t, test.want, string(c), "%s %s", test.a, test.b)
	}
	_, err := Consensus([]byte("ACGT"), []byte("ACG"))
	_, ok := err.(*LengthMismatchError)
	assert.True(t, ok, "got %v", err)
}

func TestConsensusProperties(t *testing.T) {
	r := rand.New(rand.NewSource(0))
	for iter := 0; iter < 100; iter++ {
		a := randomSeq(r, 1+r.Intn(50))
		b := randomSeq(r, len(a))
		c, err := Consensus(a, b)
		assert.NoError(t, err)
		assert.Equal(t, len(a), len(c))
		for i := range c {
			if a[i] == b[i] {
				assert.Equal(t, a[i], c[i])
			} else {
				assert.Equal(t, byte('N'), c[i])
			}
		}
		self, err := Consensus(a, a)
		assert.NoError(t, err)
		assert.Equal(t, a, self)
		assert.Equal(t, a, ReverseComplement(ReverseComplement(a)))
	}
}

func randomSeq(r *rand.Rand, n int) []byte {
	seq := make([]byte, n)
	for i := range seq {
		seq[i] = "ACGT"[r.Intn(4)]
	}
	return seq
}

func TestReverseComplement(t *testing.T) {
	tests := []struct{ in, want string }{
		{"ACGT", "ACGT"},
		{"AACG", "CGTT"},
		{"ACGTN", "NACGT"},
		{"acgx", "NCGT"},
		{"", ""},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, string(ReverseComplement([]byte(test.in))), test.in)
	}
}

func TestNFraction(t *testing.T) {
	assert.Equal(t, 0.0, NFraction(nil))
	assert.Equal(t, 0.5, NFraction([]byte("AANN")))
	assert.Equal(t, 1.0, NFraction([]byte("NNNN")))
}

func TestConsensusBuilder(t *testing.T) {
	tests := []struct {
		cutoff float64
		a, b   string
		ok     bool
	}{
		{0.4, "AACC", "AAGG", false},
		{0.5, "AACC", "AAGG", true},
		{DefaultNCutoff, "ACGT", "TGCA", true},
		{0, "ACGT", "ACGT", true},
		{0, "ACGT", "ACGA", false},
	}
	for _, test := range tests {
		cb := ConsensusBuilder{ReadLength: 4, NCutoff: test.cutoff}
		seq, ok, err := cb.Build([]byte(test.a), []byte(test.b))
		assert.NoError(t, err)
		assert.Equal(t, test.ok, ok, "cutoff %v: %s %s -> %s", test.cutoff, test.a, test.b, seq)
	}

	cb := ConsensusBuilder{ReadLength: 5, NCutoff: DefaultNCutoff}
	_, _, err := cb.Build([]byte("ACGT"), []byte("ACGT"))
	e, ok := errors.Cause(err).(*LengthMismatchError)
	assert.True(t, ok)
	assert.Equal(t, 5, e.Want)

	// Without a read length, only equal lengths are required.
	cb = ConsensusBuilder{NCutoff: DefaultNCutoff}
	_, ok, err = cb.Build([]byte("ACGTAC"), []byte("ACGTAC"))
	assert.NoError(t, err)
	assert.True(t, ok)
}
