package umi

import (
	"fmt"
	"strings"
)

const (
	// DefaultHalfLength is the length of one strand's half of a duplex
	// barcode.
	DefaultHalfLength = 12
	// DefaultDelimiter separates the barcode from the rest of a read name.
	DefaultDelimiter = ':'
)

// MalformedTagError is returned when a read name does not yield a
// well-formed duplex barcode.
type MalformedTagError struct {
	Name   string
	Reason string
}

func (e *MalformedTagError) Error() string {
	return fmt.Sprintf("malformed barcode in read %q: %s", e.Name, e.Reason)
}

// Tag is a duplex barcode: two half-tags of equal length, one per strand
// of the original molecule.
type Tag string

// Switch returns the tag expected on the complementary strand of the same
// molecule: the second half followed by the first half.
func (t Tag) Switch() Tag {
	a, b := t.Halves()
	return Tag(b + a)
}

// Halves returns the two half-tags of t.
func (t Tag) Halves() (string, string) {
	h := len(t) / 2
	return string(t[:h]), string(t[h:])
}

// Tagger derives barcode tags from read names. The zero value is not
// usable; use NewTagger.
type Tagger struct {
	// HalfLength is the length of each half-tag.
	HalfLength int
	// Delimiter terminates the barcode within the read name.
	Delimiter byte
}

// NewTagger creates a Tagger for half-tags of the given length and the
// default delimiter. A non-positive halfLength selects DefaultHalfLength.
func NewTagger(halfLength int) Tagger {
	if halfLength <= 0 {
		halfLength = DefaultHalfLength
	}
	return Tagger{HalfLength: halfLength, Delimiter: DefaultDelimiter}
}

// Tag returns the barcode of the read named name. The barcode is the part
// of the name preceding the first delimiter, and it must be exactly two
// half-tags long.
func (t Tagger) Tag(name string) (Tag, error) {
	i := strings.IndexByte(name, t.Delimiter)
	if i < 0 {
		return "", &MalformedTagError{Name: name, Reason: fmt.Sprintf("no '%c' delimiter", t.Delimiter)}
	}
	if i == 0 {
		return "", &MalformedTagError{Name: name, Reason: "empty barcode"}
	}
	if i != 2*t.HalfLength {
		return "", &MalformedTagError{
			Name:   name,
			Reason: fmt.Sprintf("barcode length %d, expected %d", i, 2*t.HalfLength),
		}
	}
	return Tag(name[:i]), nil
}
