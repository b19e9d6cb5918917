package duplex

import (
	"bytes"

	"github.com/grailbio/hts/sam"
	gbam "github.com/nh13/Duplex-Sequencing/encoding/bam"
	"github.com/nh13/Duplex-Sequencing/encoding/fastq"
	"github.com/nh13/Duplex-Sequencing/umi"
)

const (
	// consensusMapQ is the mapping quality of every consensus record.
	consensusMapQ = 255
	// placeholderQual is the base quality of every consensus base.
	placeholderQual = 40
	// placeholderBase fills the sequence of a synthetic unpaired mate.
	placeholderBase = '.'
)

// ConsensusRead is one duplex consensus read. Seq holds the bases as
// written to FASTQ; Record is the alignment written to BAM.
type ConsensusRead struct {
	Tag    umi.Tag
	Seq    []byte
	Record *sam.Record
}

// IsRead1 returns whether r is the first read of its pair.
func (r *ConsensusRead) IsRead1() bool {
	return gbam.IsRead1(r.Record)
}

// FASTQ returns r in FASTQ form, "@:<tag>" / seq / "+" / qual.
func (r *ConsensusRead) FASTQ() *fastq.Read {
	qual := make([]byte, len(r.Record.Qual))
	for i, q := range r.Record.Qual {
		qual[i] = q + 33
	}
	return &fastq.Read{
		ID:   "@:" + string(r.Tag),
		Seq:  string(r.Seq),
		Unk:  "+",
		Qual: string(qual),
	}
}

// newConsensusRead creates the consensus read for tag from the source
// strand src. seq must already be oriented.
func newConsensusRead(tag umi.Tag, src *Strand, seq []byte) *ConsensusRead {
	return &ConsensusRead{
		Tag: tag,
		Seq: seq,
		Record: &sam.Record{
			Name:    string(tag),
			Flags:   src.Flags,
			Ref:     src.Ref,
			Pos:     src.Pos,
			MapQ:    consensusMapQ,
			Cigar:   gbam.FullMatchCigar(len(seq)),
			MateRef: src.MateRef,
			MatePos: src.MatePos,
			TempLen: src.TempLen,
			Seq:     sam.NewSeq(seq),
			Qual:    placeholderQuals(len(seq)),
		},
	}
}

// placeholderMate synthesizes the missing mate of an unpaired consensus
// read. The mate is flagged unmapped, its bases are all placeholders, and
// it keeps the position of r so that the pair stays together.
func placeholderMate(r *ConsensusRead, readLength int) *ConsensusRead {
	seq := bytes.Repeat([]byte{placeholderBase}, readLength)
	rec := r.Record
	return &ConsensusRead{
		Tag: r.Tag,
		Seq: seq,
		Record: &sam.Record{
			Name:    string(r.Tag),
			Flags:   sam.Unmapped,
			Ref:     rec.Ref,
			Pos:     rec.Pos,
			MapQ:    consensusMapQ,
			Cigar:   gbam.FullMatchCigar(readLength),
			MateRef: rec.MateRef,
			MatePos: rec.Pos,
			TempLen: rec.TempLen,
			Seq:     sam.NewSeq(seq),
			Qual:    placeholderQuals(readLength),
		},
	}
}

func placeholderQuals(n int) []byte {
	return bytes.Repeat([]byte{placeholderQual}, n)
}

// orderPair returns a and b ordered read1 first, judged by the flags of
// a.
func orderPair(a, b *ConsensusRead) (r1, r2 *ConsensusRead) {
	if a.IsRead1() {
		return a, b
	}
	return b, a
}
