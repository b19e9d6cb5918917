package bamprovider

import (
	"github.com/grailbio/hts/sam"
)

// errorIterator stands in for an input that could not be opened. It has
// no header and no records.
type errorIterator struct {
	err error
}

func (i *errorIterator) Header() *sam.Header { return nil }
func (i *errorIterator) Scan() bool          { return false }
func (i *errorIterator) Record() *sam.Record { panic("shall not be called") }
func (i *errorIterator) Err() error          { return i.err }
func (i *errorIterator) Close() error        { return i.err }

// NewErrorIterator creates an Iterator that yields no record and returns "err"
// in Err and Close.
func NewErrorIterator(err error) Iterator {
	return &errorIterator{err: err}
}
