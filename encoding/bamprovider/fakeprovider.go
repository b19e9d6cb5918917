package bamprovider

import (
	"github.com/grailbio/hts/sam"
)

// fakeIterator is only for unittests. It yields the given records.
type fakeIterator struct {
	header *sam.Header
	recs   []*sam.Record
	rec    *sam.Record
	err    error
}

// NewFakeIterator creates an iterator that returns "header" in response to
// a Header() call, and then yields recs in order. If err is non-nil, it is
// reported by Err once all records have been consumed.
func NewFakeIterator(header *sam.Header, recs []*sam.Record, err error) Iterator {
	return &fakeIterator{header: header, recs: recs, err: err}
}

func (i *fakeIterator) Header() *sam.Header {
	return i.header
}

func (i *fakeIterator) Scan() bool {
	if len(i.recs) == 0 {
		return false
	}
	i.rec = i.recs[0]
	i.recs = i.recs[1:]
	return true
}

func (i *fakeIterator) Record() *sam.Record {
	// Return a copy so that the code under test cannot alter the
	// original test input data.
	copy := sam.GetFromFreePool()
	*copy = *i.rec
	return copy
}

func (i *fakeIterator) Err() error {
	if len(i.recs) > 0 {
		return nil
	}
	return i.err
}

func (i *fakeIterator) Close() error {
	return i.Err()
}
