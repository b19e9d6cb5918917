package main

/*
  bio-duplex builds duplex consensus sequences from a position-sorted
  BAM of single-strand consensus sequences. For more information, see
  github.com/nh13/Duplex-Sequencing/duplex/doc.go
*/

import (
	"flag"
	"strings"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/nh13/Duplex-Sequencing/duplex"
)

var (
	inPath            = flag.String("in", duplex.DefaultOpts.InputPath, "Input SSCS BAM or SAM file, '-' reads stdin")
	inFormat          = flag.String("in-format", "", "Input format, 'bam' or 'sam'. By default, guessed from the -in suffix, with stdin read as BAM")
	outPath           = flag.String("out", "", "Output DCS BAM file, must end in .bam")
	metricsFile       = flag.String("metrics", "", "Output metrics file")
	nCutoff           = flag.Float64("n-cutoff", duplex.DefaultOpts.NCutoff, "maximum fraction of Ns allowed in a consensus")
	readLength        = flag.Int("read-length", duplex.DefaultOpts.ReadLength, "length of the input reads")
	progressInterval  = flag.Int("progress-interval", duplex.DefaultOpts.ProgressInterval, "log progress every this many reads, 0 disables")
	tagHalfLength     = flag.Int("tag-half-length", duplex.DefaultOpts.TagHalfLength, "length of each half of the duplex barcode")
	familyFilter      = flag.Bool("family-filter", false, "divert reads whose barcode is near another barcode at the same position to <out>_DT.bam")
	familyMetric      = flag.String("family-metric", duplex.DefaultOpts.FamilyMetric, "barcode distance for -family-filter, 'hamming' or 'levenshtein'")
	familyMaxDistance = flag.Int("family-max-distance", duplex.DefaultOpts.FamilyMaxDistance, "largest barcode distance within a derivative family")
	fastqGzip         = flag.Bool("fastq-gzip", false, "gzip the FASTQ outputs")
)

func main() {
	shutdown := grail.Init()
	defer shutdown()

	if flag.NArg() > 0 {
		a := flag.Args()
		log.Fatalf("unparsed flags, please check flag syntax: '%s'", strings.Join(a[len(a)-flag.NArg():], " "))
	}

	opts := duplex.Opts{
		InputPath:         *inPath,
		InputFormat:       *inFormat,
		OutputPath:        *outPath,
		MetricsFile:       *metricsFile,
		NCutoff:           *nCutoff,
		ReadLength:        *readLength,
		ProgressInterval:  *progressInterval,
		TagHalfLength:     *tagHalfLength,
		FamilyFilter:      *familyFilter,
		FamilyMetric:      *familyMetric,
		FamilyMaxDistance: *familyMaxDistance,
		FastqGzip:         *fastqGzip,
	}
	ctx := vcontext.Background()
	if err := duplex.SetupAndMake(ctx, &opts); err != nil {
		log.Fatalf(err.Error())
	}
	log.Debug.Printf("exiting")
}
