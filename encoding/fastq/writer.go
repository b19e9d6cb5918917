package fastq

import (
	"bufio"
	"io"
)

// Writer is a buffered FASTQ writer. Flush must be called once all reads
// have been written.
type Writer struct {
	w   *bufio.Writer
	err error
}

// NewWriter constructs a new FASTQ writer
// that writes reads to the underlying writer w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Write writes the read r in FASTQ format. An error is returned if this
// or any earlier write failed.
func (w *Writer) Write(r *Read) error {
	w.writeln(r.ID)
	w.writeln(r.Seq)
	w.writeln(r.Unk)
	w.writeln(r.Qual)
	return w.err
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	w.err = w.w.Flush()
	return w.err
}

func (w *Writer) writeln(line string) {
	if w.err != nil {
		return
	}
	if _, w.err = w.w.WriteString(line); w.err == nil {
		w.err = w.w.WriteByte('\n')
	}
}

// PairWriter writes read pairs to a pair of FASTQ streams, keeping the
// two streams in lockstep.
type PairWriter struct {
	r1, r2 *Writer
}

// NewPairWriter creates a FASTQ pair writer for the R1 and R2 writers.
func NewPairWriter(r1, r2 io.Writer) *PairWriter {
	return &PairWriter{r1: NewWriter(r1), r2: NewWriter(r2)}
}

// Write writes r1 to the R1 stream and r2 to the R2 stream.
func (p *PairWriter) Write(r1, r2 *Read) error {
	if err := p.r1.Write(r1); err != nil {
		return err
	}
	return p.r2.Write(r2)
}

// Flush flushes both streams.
func (p *PairWriter) Flush() error {
	if err := p.r1.Flush(); err != nil {
		return err
	}
	return p.r2.Flush()
}
