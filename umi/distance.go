package umi

import (
	"fmt"

	"github.com/antzucaro/matchr"
)

// LengthMismatchError is returned when two barcodes that must have equal
// length are compared.
type LengthMismatchError struct {
	A, B string
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("barcodes %q and %q have different lengths (%d, %d)", e.A, e.B, len(e.A), len(e.B))
}

// DistanceFunc computes the distance between two barcodes.
type DistanceFunc func(a, b string) (int, error)

// Hamming returns the number of positions at which a and b differ.
func Hamming(a, b string) (int, error) {
	if len(a) != len(b) {
		return 0, &LengthMismatchError{A: a, B: b}
	}
	d, err := matchr.Hamming(a, b)
	if err != nil {
		return 0, &LengthMismatchError{A: a, B: b}
	}
	return d, nil
}

// Levenshtein returns the edit distance between a and b. Barcodes are
// fixed width, so unequal lengths are rejected as for Hamming.
func Levenshtein(a, b string) (int, error) {
	if len(a) != len(b) {
		return 0, &LengthMismatchError{A: a, B: b}
	}
	return matchr.Levenshtein(a, b), nil
}

// ParseDistance returns the DistanceFunc named by name, "hamming" or
// "levenshtein".
func ParseDistance(name string) (DistanceFunc, error) {
	switch name {
	case "", "hamming":
		return Hamming, nil
	case "levenshtein":
		return Levenshtein, nil
	}
	return nil, fmt.Errorf("unknown barcode distance metric %q", name)
}
