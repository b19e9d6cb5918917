package duplex

import (
	"context"
	"io"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"github.com/grailbio/hts/bam"
	"github.com/grailbio/hts/sam"
	"github.com/klauspost/compress/gzip"
	"github.com/nh13/Duplex-Sequencing/encoding/fastq"
)

// Sink receives the consensus reads produced by a Router.
type Sink interface {
	// WritePair writes a resolved read pair to the paired output and to
	// FASTQ.
	WritePair(r1, r2 *ConsensusRead) error
	// WriteUnpaired writes a consensus read and its placeholder mate to
	// the unpaired output and to FASTQ.
	WriteUnpaired(r1, r2 *ConsensusRead) error
	// WriteFamily writes a read whose barcode belongs to a derivative
	// family.
	WriteFamily(r *ConsensusRead) error
}

// Outputs is the file-backed Sink.
type Outputs struct {
	ctx   context.Context
	paths OutputPaths

	files      []file.File
	paired     *bam.Writer
	unpaired   *bam.Writer
	family     *bam.Writer
	gzR1, gzR2 *gzip.Writer
	fq         *fastq.PairWriter
}

// NewOutputs creates the output files named by opts.OutputPaths. BAM
// outputs carry header.
func NewOutputs(ctx context.Context, opts *Opts, header *sam.Header) (o *Outputs, err error) {
	o = &Outputs{ctx: ctx, paths: opts.OutputPaths()}
	defer func() {
		if err != nil {
			if err2 := o.Close(); err2 != nil {
				log.Error.Printf("close partial outputs: %v", err2)
			}
			o = nil
		}
	}()
	if o.paired, err = o.newBAM(o.paths.Paired, header); err != nil {
		return
	}
	if o.unpaired, err = o.newBAM(o.paths.Unpaired, header); err != nil {
		return
	}
	if o.paths.Family != "" {
		if o.family, err = o.newBAM(o.paths.Family, header); err != nil {
			return
		}
	}
	var r1, r2 io.Writer
	if r1, err = o.create(o.paths.R1); err != nil {
		return
	}
	if r2, err = o.create(o.paths.R2); err != nil {
		return
	}
	if opts.FastqGzip {
		o.gzR1, o.gzR2 = gzip.NewWriter(r1), gzip.NewWriter(r2)
		r1, r2 = o.gzR1, o.gzR2
	}
	o.fq = fastq.NewPairWriter(r1, r2)
	return o, nil
}

func (o *Outputs) create(path string) (io.Writer, error) {
	out, err := file.Create(o.ctx, path)
	if err != nil {
		return nil, errors.E(err, "create", path)
	}
	o.files = append(o.files, out)
	return out.Writer(o.ctx), nil
}

func (o *Outputs) newBAM(path string, header *sam.Header) (*bam.Writer, error) {
	w, err := o.create(path)
	if err != nil {
		return nil, err
	}
	bw, err := bam.NewWriter(w, header, 1)
	if err != nil {
		return nil, errors.E(err, "create bam writer for", path)
	}
	return bw, nil
}

// Paths returns the names of the files written by o.
func (o *Outputs) Paths() OutputPaths {
	return o.paths
}

func (o *Outputs) writeBAM(w *bam.Writer, path string, recs ...*ConsensusRead) error {
	for _, r := range recs {
		if err := w.Write(r.Record); err != nil {
			return errors.E(err, "write", path)
		}
	}
	return nil
}

func (o *Outputs) writeFASTQ(r1, r2 *ConsensusRead) error {
	if err := o.fq.Write(r1.FASTQ(), r2.FASTQ()); err != nil {
		return errors.E(err, "write fastq", o.paths.R1, o.paths.R2)
	}
	return nil
}

// WritePair implements Sink.
func (o *Outputs) WritePair(r1, r2 *ConsensusRead) error {
	if err := o.writeBAM(o.paired, o.paths.Paired, r1, r2); err != nil {
		return err
	}
	return o.writeFASTQ(r1, r2)
}

// WriteUnpaired implements Sink.
func (o *Outputs) WriteUnpaired(r1, r2 *ConsensusRead) error {
	if err := o.writeBAM(o.unpaired, o.paths.Unpaired, r1, r2); err != nil {
		return err
	}
	return o.writeFASTQ(r1, r2)
}

// WriteFamily implements Sink. It fails if the family output was not
// requested.
func (o *Outputs) WriteFamily(r *ConsensusRead) error {
	if o.family == nil {
		return errors.E(errors.Invalid, "family output is disabled")
	}
	return o.writeBAM(o.family, o.paths.Family, r)
}

// Close flushes and closes all outputs. It returns the first error
// encountered.
func (o *Outputs) Close() error {
	e := errors.Once{}
	if o.fq != nil {
		e.Set(o.fq.Flush())
	}
	for _, gz := range []*gzip.Writer{o.gzR1, o.gzR2} {
		if gz != nil {
			e.Set(gz.Close())
		}
	}
	for _, w := range []*bam.Writer{o.paired, o.unpaired, o.family} {
		if w != nil {
			e.Set(w.Close())
		}
	}
	for _, f := range o.files {
		e.Set(f.Close(o.ctx))
	}
	o.files = nil
	return e.Err()
}
