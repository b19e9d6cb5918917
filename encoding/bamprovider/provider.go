package bamprovider

import (
	"io"
	"os"
	"strings"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/hts/bam"
	"github.com/grailbio/hts/sam"
	"github.com/pkg/errors"
	"v.io/x/lib/vlog"
)

// Iterator iterates over the sam.Records of one input stream in file
// order. Thread compatible.
type Iterator interface {
	// Header returns the header of the input. The caller must not modify
	// it.
	Header() *sam.Header

	// Scan returns whether there are any records remaining in the
	// iterator, and if so, advances the iterator to the next record. If
	// an error occurs, Scan() returns false and the error can be
	// retrieved by calling Err().
	//
	// REQUIRES: Close has not been called.
	Scan() bool

	// Record returns the current record in the iterator. This must be
	// called only after a call to Scan() returns true.
	Record() *sam.Record

	// Err returns the error encountered during iteration, or nil if no
	// error occurred. An io.EOF error is translated to nil.
	Err() error

	// Close must be called exactly once. It returns the value of Err().
	Close() error
}

// FileType represents the type of an alignment file.
type FileType int

const (
	// Unknown is a sentinel.
	Unknown FileType = iota
	// BAM file
	BAM
	// SAM text file
	SAM
)

// StdinPath names the standard input.
const StdinPath = "-"

// ParseFileType parses the file type string. "bam" returns
// bamprovider.BAM, for example. On error, it returns Unknown.
func ParseFileType(name string) FileType {
	switch name {
	case "bam":
		return BAM
	case "sam":
		return SAM
	default:
		return Unknown
	}
}

// GuessFileType returns the file type from the pathname. Returns Unknown
// if the suffix is not recognized.
func GuessFileType(path string) FileType {
	switch {
	case strings.HasSuffix(path, ".bam"):
		return BAM
	case strings.HasSuffix(path, ".sam"):
		return SAM
	}
	vlog.VI(1).Infof("%v: could not detect file type.", path)
	return Unknown
}

// recordReader is implemented by both sam.Reader and bam.Reader.
type recordReader interface {
	Header() *sam.Header
	Read() (*sam.Record, error)
}

type fileIterator struct {
	path   string
	in     file.File
	bamr   *bam.Reader
	reader recordReader
	rec    *sam.Record
	err    error
	done   bool
}

// NewIterator opens path and returns an iterator over its records. Path
// may be a local path, any URL understood by grailbio/base/file, or
// StdinPath. The format is guessed from the suffix; unrecognized inputs,
// including the standard input, are read as BAM.
//
// Errors opening the input are reported by the returned iterator's Err.
func NewIterator(path string) Iterator {
	typ := GuessFileType(path)
	if typ == Unknown {
		typ = BAM
	}
	return NewIteratorType(path, typ)
}

// NewIteratorType is like NewIterator, but with an explicit file type.
func NewIteratorType(path string, typ FileType) Iterator {
	it := &fileIterator{path: path}
	var in io.Reader
	if path == "" || path == StdinPath {
		in = os.Stdin
	} else {
		ctx := vcontext.Background()
		f, err := file.Open(ctx, path)
		if err != nil {
			return NewErrorIterator(errors.Wrapf(err, "open %s", path))
		}
		it.in = f
		in = f.Reader(ctx)
	}
	var err error
	switch typ {
	case SAM:
		it.reader, err = sam.NewReader(in)
	default:
		it.bamr, err = bam.NewReader(in, 1)
		it.reader = it.bamr
	}
	if err != nil {
		err = errors.Wrapf(err, "read header of %s", path)
		it.closeInput()
		return NewErrorIterator(err)
	}
	return it
}

func (i *fileIterator) Header() *sam.Header {
	return i.reader.Header()
}

func (i *fileIterator) Scan() bool {
	if i.done {
		return false
	}
	rec, err := i.reader.Read()
	if err != nil {
		i.done = true
		if err != io.EOF {
			i.err = errors.Wrapf(err, "read %s", i.path)
		}
		return false
	}
	i.rec = rec
	return true
}

func (i *fileIterator) Record() *sam.Record {
	return i.rec
}

func (i *fileIterator) Err() error {
	return i.err
}

func (i *fileIterator) Close() error {
	if i.bamr != nil {
		if err := i.bamr.Close(); err != nil && i.err == nil {
			i.err = err
		}
	}
	i.closeInput()
	return i.err
}

func (i *fileIterator) closeInput() {
	if i.in == nil {
		return
	}
	if err := i.in.Close(vcontext.Background()); err != nil && i.err == nil {
		i.err = err
	}
	i.in = nil
}
