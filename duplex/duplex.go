package duplex

import (
	"context"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	"github.com/nh13/Duplex-Sequencing/encoding/bamprovider"
	"github.com/nh13/Duplex-Sequencing/umi"
	pkgerrors "github.com/pkg/errors"
)

// Make runs the duplex pipeline over iter, writing consensus reads to
// sink. opts must be valid. Input and sink errors abort the run; reads
// already written stay written and the pending reads are not flushed.
func Make(iter bamprovider.Iterator, sink Sink, opts *Opts) (*Stats, error) {
	stats := &Stats{}
	families, err := newFamilyDetector(opts)
	if err != nil {
		return stats, err
	}
	groups := NewGroupReader(iter, umi.NewTagger(opts.TagHalfLength), opts.ProgressInterval, stats)
	router := NewRouter(opts, families, sink, stats)
	for {
		g, ok := groups.Next()
		if !ok {
			break
		}
		if err := router.Process(g); err != nil {
			return stats, pkgerrors.Wrapf(err, "position %d:%d", g.RefID, g.Pos)
		}
	}
	if err := groups.Err(); err != nil {
		return stats, pkgerrors.Wrap(err, "read input")
	}
	log.Debug.Printf("flushing %d unpaired duplexes", router.Pending())
	if err := router.Flush(); err != nil {
		return stats, pkgerrors.Wrap(err, "flush unpaired duplexes")
	}
	return stats, nil
}

func newFamilyDetector(opts *Opts) (umi.FamilyDetector, error) {
	if !opts.FamilyFilter {
		return nil, nil
	}
	distance, err := umi.ParseDistance(opts.FamilyMetric)
	if err != nil {
		return nil, errors.E(errors.Invalid, err)
	}
	return umi.NewPairwiseDetector(distance, opts.FamilyMaxDistance), nil
}

// SetupAndMake validates opts, opens the input and the outputs, and runs
// Make. The completion report is logged, and written to opts.MetricsFile
// if set.
func SetupAndMake(ctx context.Context, opts *Opts) (err error) {
	if err = validate(opts); err != nil {
		return err
	}
	var iter bamprovider.Iterator
	if opts.InputFormat == "" {
		iter = bamprovider.NewIterator(opts.InputPath)
	} else {
		iter = bamprovider.NewIteratorType(opts.InputPath, bamprovider.ParseFileType(opts.InputFormat))
	}
	defer func() {
		if err2 := iter.Close(); err == nil && err2 != nil {
			err = err2
		}
	}()
	if err = iter.Err(); err != nil {
		return err
	}
	outputs, err := NewOutputs(ctx, opts, iter.Header())
	if err != nil {
		return err
	}
	log.Debug.Printf("writing duplexes to %+v", outputs.Paths())
	stats, err := Make(iter, outputs, opts)
	if err2 := outputs.Close(); err == nil {
		err = err2
	}
	if err != nil {
		log.Debug.Printf("error making duplexes: %v", err)
		return err
	}
	log.Printf("duplex summary for %s:\n%v", opts.InputPath, stats)
	if opts.MetricsFile != "" {
		return stats.WriteMetrics(ctx, opts.MetricsFile)
	}
	return nil
}
