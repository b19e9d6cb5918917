package duplex

import (
	"sort"

	"github.com/nh13/Duplex-Sequencing/umi"
)

// PendingTable holds consensus reads whose mate has not been seen yet,
// keyed by tag. It grows with the distance, in sort order, between the
// two reads of a pair.
type PendingTable struct {
	reads map[umi.Tag]*ConsensusRead
}

// NewPendingTable creates an empty table.
func NewPendingTable() *PendingTable {
	return &PendingTable{reads: make(map[umi.Tag]*ConsensusRead)}
}

// Put stores r under its tag, replacing any read already stored.
func (t *PendingTable) Put(r *ConsensusRead) {
	t.reads[r.Tag] = r
}

// Take removes and returns the read stored under tag, or nil.
func (t *PendingTable) Take(tag umi.Tag) *ConsensusRead {
	r, ok := t.reads[tag]
	if !ok {
		return nil
	}
	delete(t.reads, tag)
	return r
}

// Len returns the number of stored reads.
func (t *PendingTable) Len() int {
	return len(t.reads)
}

// Drain removes and returns all stored reads, ordered by reference id,
// position and tag.
func (t *PendingTable) Drain() []*ConsensusRead {
	reads := make([]*ConsensusRead, 0, len(t.reads))
	for _, r := range t.reads {
		reads = append(reads, r)
	}
	sort.Slice(reads, func(i, j int) bool {
		a, b := reads[i].Record, reads[j].Record
		if a.Ref.ID() != b.Ref.ID() {
			return a.Ref.ID() < b.Ref.ID()
		}
		if a.Pos != b.Pos {
			return a.Pos < b.Pos
		}
		return reads[i].Tag < reads[j].Tag
	})
	t.reads = make(map[umi.Tag]*ConsensusRead)
	return reads
}
