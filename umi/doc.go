// Package umi derives duplex barcodes from read names and detects barcodes
// that are near-duplicates of one another.
//
// A duplex barcode is two half-tags, one contributed by each strand of the
// original molecule. Reads from the complementary strand carry the same
// halves in swapped order, see Tag.Switch.
package umi
