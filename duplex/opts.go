package duplex

import (
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/nh13/Duplex-Sequencing/encoding/bamprovider"
	"github.com/nh13/Duplex-Sequencing/umi"
)

// Opts configures a duplex run.
type Opts struct {
	// InputPath is the SSCS BAM or SAM file; "-" reads stdin.
	InputPath string
	// InputFormat is "bam" or "sam". If empty, the format is guessed from
	// the InputPath suffix, and stdin is read as BAM.
	InputFormat string
	// OutputPath is the paired DCS BAM file. The other outputs are named
	// after it, see OutputPaths.
	OutputPath string
	// MetricsFile, if set, receives the run statistics.
	MetricsFile string

	// NCutoff is the largest accepted fraction of Ns in a consensus.
	NCutoff float64
	// ReadLength is the required length of every SSCS sequence.
	ReadLength int
	// ProgressInterval is the number of records between progress lines.
	ProgressInterval int
	// TagHalfLength is the length of each half of the duplex barcode.
	TagHalfLength int

	// FamilyFilter diverts consensus reads whose barcode is near another
	// barcode at the same position to a separate output.
	FamilyFilter bool
	// FamilyMetric names the barcode distance, "hamming" or "levenshtein".
	FamilyMetric string
	// FamilyMaxDistance is the inclusive family distance threshold.
	FamilyMaxDistance int

	// FastqGzip gzips the FASTQ outputs.
	FastqGzip bool
}

// DefaultOpts holds the default options.
var DefaultOpts = Opts{
	InputPath:         bamprovider.StdinPath,
	NCutoff:           DefaultNCutoff,
	ReadLength:        80,
	ProgressInterval:  1000000,
	TagHalfLength:     umi.DefaultHalfLength,
	FamilyMetric:      "hamming",
	FamilyMaxDistance: umi.DefaultMaxFamilyDistance,
}

func validate(opts *Opts) error {
	if opts.OutputPath == "" {
		return errors.E(errors.Invalid, "you must specify an output file with -out")
	}
	if !strings.HasSuffix(opts.OutputPath, ".bam") {
		return errors.E(errors.Invalid, "output file must end in .bam:", opts.OutputPath)
	}
	if opts.InputPath == "" {
		opts.InputPath = bamprovider.StdinPath
	}
	if opts.InputFormat != "" && bamprovider.ParseFileType(opts.InputFormat) == bamprovider.Unknown {
		return errors.E(errors.Invalid, "unknown input format", opts.InputFormat)
	}
	if opts.NCutoff < 0 || opts.NCutoff > 1 {
		return errors.E(errors.Invalid, "n-cutoff must be in [0, 1]")
	}
	if opts.ReadLength <= 0 {
		return errors.E(errors.Invalid, "read-length must be positive")
	}
	if opts.ProgressInterval < 0 {
		return errors.E(errors.Invalid, "progress-interval must be non-negative")
	}
	if opts.TagHalfLength <= 0 {
		return errors.E(errors.Invalid, "tag-half-length must be positive")
	}
	if _, err := umi.ParseDistance(opts.FamilyMetric); err != nil {
		return errors.E(errors.Invalid, err)
	}
	if opts.FamilyMaxDistance < 0 {
		return errors.E(errors.Invalid, "family-max-distance must be non-negative")
	}
	return nil
}

// OutputPaths lists the files written by a run.
type OutputPaths struct {
	Paired, Unpaired, Family string
	R1, R2                   string
}

// OutputPaths derives the output file names from OutputPath: for
// "x.bam", the unpaired reads go to "x_UP.bam", the family filtered
// reads to "x_DT.bam" and the FASTQ pairs to "x.r1.fq" and "x.r2.fq",
// with a ".gz" suffix when FastqGzip is set. Family is empty when the
// family filter is disabled.
func (o *Opts) OutputPaths() OutputPaths {
	base := strings.TrimSuffix(o.OutputPath, ".bam")
	p := OutputPaths{
		Paired:   o.OutputPath,
		Unpaired: base + "_UP.bam",
		R1:       base + ".r1.fq",
		R2:       base + ".r2.fq",
	}
	if o.FamilyFilter {
		p.Family = base + "_DT.bam"
	}
	if o.FastqGzip {
		p.R1 += ".gz"
		p.R2 += ".gz"
	}
	return p
}
