package duplex

import (
	"github.com/grailbio/base/log"
	gbam "github.com/nh13/Duplex-Sequencing/encoding/bam"
	"github.com/nh13/Duplex-Sequencing/umi"
	"github.com/pkg/errors"
)

// Router turns position groups into consensus reads and hands them to a
// Sink. It holds the consensus reads whose mate is at a position not
// processed yet.
type Router struct {
	builder  ConsensusBuilder
	families umi.FamilyDetector
	sink     Sink
	stats    *Stats
	pending  *PendingTable
}

// NewRouter creates a Router. families may be nil to disable the
// derivative family filter.
func NewRouter(opts *Opts, families umi.FamilyDetector, sink Sink, stats *Stats) *Router {
	return &Router{
		builder:  ConsensusBuilder{ReadLength: opts.ReadLength, NCutoff: opts.NCutoff},
		families: families,
		sink:     sink,
		stats:    stats,
		pending:  NewPendingTable(),
	}
}

// Pending returns the number of consensus reads waiting for their mate.
func (r *Router) Pending() int {
	return r.pending.Len()
}

// Process consumes every tag of g. Per-tag problems are counted in the
// stats and skipped; only Sink errors are returned.
func (r *Router) Process(g *Group) error {
	flagged := r.derivatives(g)
	for _, tag := range g.Tags() {
		if _, ok := g.Get(tag); !ok {
			// Consumed as the switch tag of an earlier tag.
			continue
		}
		err := r.route(g, tag, flagged)
		switch e := errors.Cause(err).(type) {
		case nil:
		case *MissingComplementError:
			r.stats.MissingComplements++
			log.Debug.Printf("%v", e)
		case *LengthMismatchError:
			r.stats.LengthMismatches++
			log.Debug.Printf("tag %s at %d:%d: %v", tag, g.RefID, g.Pos, e)
		default:
			return err
		}
	}
	return nil
}

func (r *Router) derivatives(g *Group) map[string]bool {
	if r.families == nil {
		return nil
	}
	tags := g.Tags()
	names := make([]string, len(tags))
	for i, tag := range tags {
		names[i] = string(tag)
	}
	flagged, errs := r.families.Derivatives(names)
	for _, err := range errs {
		switch errors.Cause(err).(type) {
		case *umi.LengthMismatchError:
			r.stats.LengthMismatches++
			log.Debug.Printf("family check at %d:%d: %v", g.RefID, g.Pos, err)
		default:
			log.Error.Printf("family check at %d:%d: %v", g.RefID, g.Pos, err)
		}
	}
	return flagged
}

// route builds the consensus of tag and its switch tag and sends it to its
// destination. Both tags leave the group.
func (r *Router) route(g *Group, tag umi.Tag, flagged map[string]bool) error {
	switched := tag.Switch()
	defer func() {
		g.Remove(tag)
		g.Remove(switched)
	}()
	src, _ := g.Get(tag)
	other, ok := g.Get(switched)
	// A tag equal to its own switch tag can not be told apart from its
	// complement.
	if !ok || switched == tag {
		return &MissingComplementError{Tag: tag, RefID: g.RefID, Pos: g.Pos}
	}
	seq, ok, err := r.builder.Build(src.Seq, other.Seq)
	if err != nil {
		return errors.Wrapf(err, "tag %s", tag)
	}
	r.stats.DuplexesMade++
	if !ok {
		r.stats.NFiltered++
		return nil
	}
	if src.Reverse {
		seq = ReverseComplement(seq)
	}
	read := newConsensusRead(tag, src, seq)

	// Either strand of a duplex being a derivative taints the consensus.
	if flagged[string(tag)] || flagged[string(switched)] {
		r.stats.FamilyFiltered++
		return r.sink.WriteFamily(read)
	}
	mate := r.pending.Take(tag)
	if mate == nil {
		r.pending.Put(read)
		return nil
	}
	r1, r2 := orderPair(read, mate)
	r.stats.Paired++
	return r.sink.WritePair(r1, r2)
}

// Flush writes every consensus read still waiting for its mate to the
// unpaired output, next to a placeholder mate of the configured read
// length.
func (r *Router) Flush() error {
	for _, read := range r.pending.Drain() {
		n := r.builder.ReadLength
		if n == 0 {
			n = len(read.Seq)
		}
		mate := placeholderMate(read, n)
		r1, r2 := read, mate
		if !gbam.IsRead1(read.Record) {
			r1, r2 = mate, read
		}
		if err := r.sink.WriteUnpaired(r1, r2); err != nil {
			return err
		}
		r.stats.Unpaired++
	}
	return nil
}
