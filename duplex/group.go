package duplex

import (
	"sort"

	"github.com/grailbio/base/log"
	"github.com/grailbio/hts/sam"
	gbam "github.com/nh13/Duplex-Sequencing/encoding/bam"
	"github.com/nh13/Duplex-Sequencing/encoding/bamprovider"
	"github.com/nh13/Duplex-Sequencing/umi"
)

// Strand is the part of an SSCS record that a duplex consensus needs.
type Strand struct {
	Flags   sam.Flags
	Ref     *sam.Reference
	Pos     int
	MateRef *sam.Reference
	MatePos int
	TempLen int
	Seq     []byte
	// Reverse is set if the strand aligned to the reverse strand.
	Reverse bool
}

func newStrand(r *sam.Record) *Strand {
	return &Strand{
		Flags:   r.Flags,
		Ref:     r.Ref,
		Pos:     r.Pos,
		MateRef: r.MateRef,
		MatePos: r.MatePos,
		TempLen: r.TempLen,
		Seq:     r.Seq.Expand(),
		Reverse: gbam.IsReverse(r),
	}
}

// Group holds the strands whose leftmost alignment position is (RefID,
// Pos), keyed by barcode.
type Group struct {
	RefID, Pos int

	strands map[umi.Tag]*Strand
}

// NewGroup creates an empty group anchored at (refID, pos).
func NewGroup(refID, pos int) *Group {
	return &Group{RefID: refID, Pos: pos, strands: make(map[umi.Tag]*Strand)}
}

// Add stores s under tag. It returns true if it replaced a strand with
// the same tag.
func (g *Group) Add(tag umi.Tag, s *Strand) bool {
	_, replaced := g.strands[tag]
	g.strands[tag] = s
	return replaced
}

// Get returns the strand stored under tag.
func (g *Group) Get(tag umi.Tag) (*Strand, bool) {
	s, ok := g.strands[tag]
	return s, ok
}

// Remove deletes tag from the group. Removing an absent tag is a no-op.
func (g *Group) Remove(tag umi.Tag) {
	delete(g.strands, tag)
}

// Len returns the number of tags still in the group.
func (g *Group) Len() int {
	return len(g.strands)
}

// Tags returns the tags still in the group in ascending order. Of a tag
// and its switch tag, the smaller one always comes first, so both reads
// of a duplex are named alike at their two positions.
func (g *Group) Tags() []umi.Tag {
	tags := make([]umi.Tag, 0, len(g.strands))
	for tag := range g.strands {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return tags
}

// GroupReader splits a position-sorted record stream into position
// groups. Sort order is not verified; unsorted input yields fragmented
// groups.
type GroupReader struct {
	iter             bamprovider.Iterator
	tagger           umi.Tagger
	progressInterval int
	stats            *Stats

	cur  *Group
	done bool
}

// NewGroupReader creates a GroupReader. Every record read is counted in
// stats.RecordsProcessed, including records with malformed names, which
// are counted in stats.MalformedTags and dropped. A progress line is
// logged every progressInterval records; zero disables it.
func NewGroupReader(iter bamprovider.Iterator, tagger umi.Tagger, progressInterval int, stats *Stats) *GroupReader {
	return &GroupReader{
		iter:             iter,
		tagger:           tagger,
		progressInterval: progressInterval,
		stats:            stats,
	}
}

// Next returns the next position group. It returns false once the input
// is exhausted or fails; check Err afterwards. The group being assembled
// when the input fails is discarded.
func (r *GroupReader) Next() (*Group, bool) {
	for !r.done {
		if !r.iter.Scan() {
			r.done = true
			break
		}
		rec := r.iter.Record()
		r.stats.RecordsProcessed++
		if r.progressInterval > 0 && r.stats.RecordsProcessed%r.progressInterval == 0 {
			log.Printf("%d reads processed", r.stats.RecordsProcessed)
		}
		tag, err := r.tagger.Tag(rec.Name)
		if err != nil {
			r.stats.MalformedTags++
			log.Debug.Printf("skipping read: %v", err)
			sam.PutInFreePool(rec)
			continue
		}
		refID, pos := gbam.LeftCoord(rec)
		strand := newStrand(rec)
		sam.PutInFreePool(rec)

		if r.cur != nil && (r.cur.RefID != refID || r.cur.Pos != pos) {
			g := r.cur
			r.cur = NewGroup(refID, pos)
			r.cur.Add(tag, strand)
			return g, true
		}
		if r.cur == nil {
			r.cur = NewGroup(refID, pos)
		}
		if r.cur.Add(tag, strand) {
			r.stats.DuplicateTags++
			log.Debug.Printf("tag %s seen twice at %d:%d, keeping the later read", tag, refID, pos)
		}
	}
	if r.cur != nil && r.iter.Err() == nil {
		g := r.cur
		r.cur = nil
		return g, true
	}
	return nil, false
}

// Err returns the error reported by the underlying iterator, if any.
func (r *GroupReader) Err() error {
	return r.iter.Err()
}
