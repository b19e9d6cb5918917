// Package bamprovider provides sequential iterators over BAM and SAM
// inputs.
//
// NewIterator reads a local file, a URL supported by grailbio/base/file,
// or the standard input. NewFakeIterator serves in-memory records to
// unittests.
package bamprovider
