package duplex

import (
	"testing"

	"github.com/grailbio/hts/sam"
	"github.com/nh13/Duplex-Sequencing/umi"
	"github.com/stretchr/testify/assert"
)

func TestPendingTable(t *testing.T) {
	_, chr1, chr2 := newTestHeader(t)
	read := func(tag string, ref *sam.Reference, pos int) *ConsensusRead {
		return &ConsensusRead{Tag: umi.Tag(tag), Record: &sam.Record{Ref: ref, Pos: pos}}
	}

	p := NewPendingTable()
	assert.Nil(t, p.Take("AAAACCCC"))
	p.Put(read("GGGGTTTT", chr2, 5))
	p.Put(read("CCCCGGGG", chr1, 50))
	p.Put(read("AAAACCCC", chr1, 50))
	p.Put(read("TTTTAAAA", chr1, 10))
	assert.Equal(t, 4, p.Len())

	r := p.Take("TTTTAAAA")
	if assert.NotNil(t, r) {
		assert.Equal(t, 10, r.Record.Pos)
	}
	assert.Nil(t, p.Take("TTTTAAAA"))
	p.Put(read("TTTTAAAA", chr1, 10))

	var tags []umi.Tag
	for _, r := range p.Drain() {
		tags = append(tags, r.Tag)
	}
	assert.Equal(t, []umi.Tag{"TTTTAAAA", "AAAACCCC", "CCCCGGGG", "GGGGTTTT"}, tags)
	assert.Equal(t, 0, p.Len())
	assert.Empty(t, p.Drain())
}
