package bam

import "github.com/grailbio/hts/sam"

// IsRead1 returns true if record is the first read of a pair.
func IsRead1(record *sam.Record) bool { return record.Flags&sam.Read1 != 0 }

// IsReverse returns true if record is aligned to the reverse strand.
func IsReverse(record *sam.Record) bool { return record.Flags&sam.Reverse != 0 }

// LeftCoord returns the (reference id, position) of the leftmost aligned
// base of record. Unmapped records without a reference yield (-1, pos).
func LeftCoord(record *sam.Record) (refID, pos int) {
	return record.Ref.ID(), record.Pos
}

// FullMatchCigar returns a cigar consisting of a single n-base match.
func FullMatchCigar(n int) sam.Cigar {
	return sam.Cigar{sam.NewCigarOp(sam.CigarMatch, n)}
}
