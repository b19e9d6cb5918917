package umi

import (
	"os"
	"testing"

	"github.com/grailbio/base/grail"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestTag(t *testing.T) {
	tagger := NewTagger(0)
	tests := []struct {
		name    string
		tag     Tag
		wantErr bool
	}{
		{"AAAAAAAAAAAACCCCCCCCCCCC:1:2", "AAAAAAAAAAAACCCCCCCCCCCC", false},
		{"CCCCCCCCCCCCAAAAAAAAAAAA:", "CCCCCCCCCCCCAAAAAAAAAAAA", false},
		{"AAAAAAAAAAAACCCCCCCCCCCC", "", true}, // No delimiter.
		{":AAAAAAAAAAAACCCCCCCCCCCC", "", true},
		{"AAAACCCC:1", "", true}, // Too short.
		{"AAAAAAAAAAAACCCCCCCCCCCCG:1", "", true},
		{"", "", true},
	}
	for _, test := range tests {
		tag, err := tagger.Tag(test.name)
		if test.wantErr {
			assert.Error(t, err, "name %q", test.name)
			_, ok := errors.Cause(err).(*MalformedTagError)
			assert.True(t, ok, "name %q: got %T", test.name, err)
			continue
		}
		assert.NoError(t, err)
		assert.Equal(t, test.tag, tag)
	}
}

func TestTagHalfLength(t *testing.T) {
	tagger := NewTagger(3)
	tag, err := tagger.Tag("ACGTTT:x")
	assert.NoError(t, err)
	a, b := tag.Halves()
	assert.Equal(t, "ACG", a)
	assert.Equal(t, "TTT", b)
	assert.Equal(t, Tag("TTTACG"), tag.Switch())
	a, b = tag.Switch().Halves()
	assert.Equal(t, "TTT", a)
	assert.Equal(t, "ACG", b)

	_, err = tagger.Tag("AAAAAAAAAAAACCCCCCCCCCCC:x")
	assert.Error(t, err)
}

func TestSwitch(t *testing.T) {
	tag := Tag("AAAAAAAAAAAACCCCCCCCCCCC")
	assert.Equal(t, Tag("CCCCCCCCCCCCAAAAAAAAAAAA"), tag.Switch())
	assert.Equal(t, tag, tag.Switch().Switch())
}

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b  string
		want  int
		isErr bool
	}{
		{"AAAA", "AAAA", 0, false},
		{"AAAA", "AAAT", 1, false},
		{"AAAA", "TTAA", 2, false},
		{"AAAA", "AAA", 0, true},
	}
	for _, test := range tests {
		for _, fn := range []DistanceFunc{Hamming, Levenshtein} {
			d, err := fn(test.a, test.b)
			if test.isErr {
				_, ok := err.(*LengthMismatchError)
				assert.True(t, ok, "%s %s", test.a, test.b)
				continue
			}
			assert.NoError(t, err)
			assert.Equal(t, test.want, d)
		}
	}
	// Edit distance can be smaller than the number of mismatched columns.
	d, err := Levenshtein("ACGTAC", "CGTACG")
	assert.NoError(t, err)
	assert.Equal(t, 2, d)
	d, err = Hamming("ACGTAC", "CGTACG")
	assert.NoError(t, err)
	assert.Equal(t, 6, d)

	_, err = ParseDistance("jaccard")
	assert.Error(t, err)
}

func TestDerivatives(t *testing.T) {
	d := NewPairwiseDetector(nil, DefaultMaxFamilyDistance)
	tests := []struct {
		tags    []string
		flagged []string
		errs    int
	}{
		{[]string{"AAAAAA", "CCCCCC", "GGGGGG"}, nil, 0},
		{[]string{"AAAAAA", "AAAAAT", "GGGGGG"}, []string{"AAAAAA", "AAAAAT"}, 0},
		{[]string{"AAAAAA", "AAAATT", "GGGGGG"}, []string{"AAAAAA", "AAAATT"}, 0},
		{[]string{"AAAAAA", "AAATTT"}, nil, 0},
		{[]string{"AAAAAA", "AAAAAA"}, []string{"AAAAAA"}, 0},
		{[]string{"AAAAAA", "AAAAA", "AAAAAT"}, []string{"AAAAAA", "AAAAAT"}, 2},
		{nil, nil, 0},
	}
	for _, test := range tests {
		flagged, errs := d.Derivatives(test.tags)
		assert.Equal(t, len(test.flagged), len(flagged), "%v", test.tags)
		for _, tag := range test.flagged {
			assert.True(t, flagged[tag], "%s should be flagged in %v", tag, test.tags)
		}
		assert.Equal(t, test.errs, len(errs), "%v", test.tags)
	}
}

func TestMain(m *testing.M) {
	shutdown := grail.Init()
	defer shutdown()
	os.Exit(m.Run())
}
