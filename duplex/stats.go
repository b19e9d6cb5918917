package duplex

import (
	"context"
	"fmt"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
)

// Stats counts the outcome of a duplex run.
type Stats struct {
	// RecordsProcessed counts every input record, including records with
	// malformed names.
	RecordsProcessed int
	// DuplexesMade counts consensus sequences built, before the N filter.
	DuplexesMade int
	// Paired counts read pairs written to the paired output.
	Paired int
	// Unpaired counts consensus reads flushed without a mate.
	Unpaired int
	// NFiltered counts consensus sequences rejected for too many Ns.
	NFiltered int
	// FamilyFiltered counts consensus reads diverted to the family output.
	FamilyFiltered int

	MalformedTags      int
	MissingComplements int
	LengthMismatches   int
	DuplicateTags      int
}

// String returns the completion report.
func (s *Stats) String() string {
	b := strings.Builder{}
	fmt.Fprintf(&b, "%d reads processed\n", s.RecordsProcessed)
	fmt.Fprintf(&b, "%d duplexes made\n", s.DuplexesMade)
	fmt.Fprintf(&b, "%d paired duplexes\n", s.Paired)
	fmt.Fprintf(&b, "%d unpaired duplexes\n", s.Unpaired)
	fmt.Fprintf(&b, "%d duplexes filtered for Ns\n", s.NFiltered)
	fmt.Fprintf(&b, "%d duplexes filtered as derivative families\n", s.FamilyFiltered)
	fmt.Fprintf(&b, "%d reads with malformed tags, %d tags without a complement, %d length mismatches, %d duplicate tags",
		s.MalformedTags, s.MissingComplements, s.LengthMismatches, s.DuplicateTags)
	return b.String()
}

// metricNames lists the metrics file columns, in order.
var metricNames = []string{
	"RECORDS_PROCESSED",
	"DUPLEXES_MADE",
	"PAIRED",
	"UNPAIRED",
	"N_FILTERED",
	"FAMILY_FILTERED",
	"MALFORMED_TAGS",
	"MISSING_COMPLEMENTS",
	"LENGTH_MISMATCHES",
	"DUPLICATE_TAGS",
}

func (s *Stats) metricValues() []int {
	return []int{
		s.RecordsProcessed,
		s.DuplexesMade,
		s.Paired,
		s.Unpaired,
		s.NFiltered,
		s.FamilyFiltered,
		s.MalformedTags,
		s.MissingComplements,
		s.LengthMismatches,
		s.DuplicateTags,
	}
}

// WriteMetrics writes s to path as a two-line TSV file with a comment
// header.
func (s *Stats) WriteMetrics(ctx context.Context, path string) (err error) {
	out, err := file.Create(ctx, path)
	if err != nil {
		return errors.E(err, "couldn't create metrics file:", path)
	}
	defer func() {
		if err2 := out.Close(ctx); err == nil && err2 != nil {
			err = errors.E(err2, "close metrics file:", path)
		}
	}()

	values := make([]string, len(metricNames))
	for i, v := range s.metricValues() {
		values[i] = fmt.Sprint(v)
	}
	text := "# bio-duplex\n" +
		strings.Join(metricNames, "\t") + "\n" +
		strings.Join(values, "\t") + "\n"
	if _, err = out.Writer(ctx).Write([]byte(text)); err != nil {
		return errors.E(err, "error writing to metrics file:", path)
	}
	return nil
}
