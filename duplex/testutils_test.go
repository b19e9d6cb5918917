package duplex

import (
	"testing"

	"github.com/grailbio/hts/sam"
	gbam "github.com/nh13/Duplex-Sequencing/encoding/bam"
	"github.com/stretchr/testify/require"
)

// Test barcodes are two 4-base halves.
const testHalfLength = 4

func newTestHeader(t *testing.T) (*sam.Header, *sam.Reference, *sam.Reference) {
	chr1, err := sam.NewReference("chr1", "", "", 10000, nil, nil)
	require.NoError(t, err)
	chr2, err := sam.NewReference("chr2", "", "", 10000, nil, nil)
	require.NoError(t, err)
	header, err := sam.NewHeader(nil, []*sam.Reference{chr1, chr2})
	require.NoError(t, err)
	return header, chr1, chr2
}

// newSSCS creates an SSCS record. The mate is on the same reference at
// matePos.
func newSSCS(name string, ref *sam.Reference, pos, matePos int, flags sam.Flags, seq string) *sam.Record {
	r := sam.GetFromFreePool()
	r.Name = name
	r.Ref = ref
	r.Pos = pos
	r.MateRef = ref
	r.MatePos = matePos
	r.TempLen = matePos - pos + len(seq)
	r.Flags = flags | sam.Paired
	r.MapQ = 60
	r.Cigar = gbam.FullMatchCigar(len(seq))
	r.Seq = sam.NewSeq([]byte(seq))
	qual := make([]byte, len(seq))
	for i := range qual {
		qual[i] = 30
	}
	r.Qual = qual
	return r
}

func testOpts() *Opts {
	opts := DefaultOpts
	opts.OutputPath = "out.bam"
	opts.ReadLength = 4
	opts.TagHalfLength = testHalfLength
	return &opts
}

type readPair [2]*ConsensusRead

// memSink is a Sink that keeps everything in memory.
type memSink struct {
	paired   []readPair
	unpaired []readPair
	family   []*ConsensusRead
	err      error
}

func (s *memSink) WritePair(r1, r2 *ConsensusRead) error {
	if s.err != nil {
		return s.err
	}
	s.paired = append(s.paired, readPair{r1, r2})
	return nil
}

func (s *memSink) WriteUnpaired(r1, r2 *ConsensusRead) error {
	if s.err != nil {
		return s.err
	}
	s.unpaired = append(s.unpaired, readPair{r1, r2})
	return nil
}

func (s *memSink) WriteFamily(r *ConsensusRead) error {
	if s.err != nil {
		return s.err
	}
	s.family = append(s.family, r)
	return nil
}
