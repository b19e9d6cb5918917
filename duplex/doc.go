/*Package duplex builds duplex consensus sequences (DCS) from a
  position-sorted BAM of single-strand consensus sequences (SSCS).

  Duplex Concepts:

  Each SSCS read is named by a duplex barcode made of two half-tags,
  one per strand of the original molecule, followed by ':'.  The
  complementary strand of the same molecule carries the same halves in
  swapped order (the "switch tag"), and aligns at the same leftmost
  position.

    strand a:  AAAAAAAAAAAACCCCCCCCCCCC:...  chr1:1000
    strand b:  CCCCCCCCCCCCAAAAAAAAAAAA:...  chr1:1000

  The input is consumed one position group at a time.  Within a group,
  each tag is paired with its switch tag and the two sequences are
  merged by simple agreement: a base is kept where both strands agree
  and replaced by 'N' elsewhere.  A consensus with a fraction of Ns
  above the configured cutoff is dropped.  Reverse-strand consensus
  sequences are reverse complemented according to the flags of the
  source read.

  Mate Pairing:

  The consensus of a read1 and the consensus of its read2 are found at
  different positions.  Tags in a group are visited in ascending order,
  so a duplex is named by the smaller of its two tags at both
  positions.  The first read seen is parked in a pending table keyed by
  that name; when the second appears both are written, read1 first,
  to the paired BAM and to the R1/R2 FASTQ files.  Whatever is left in
  the pending table at the end of the input is written to the unpaired
  BAM, each read with a placeholder unmapped mate.

  Derivative Families:

  When enabled, barcodes at one position that are within a small
  distance of each other (Hamming distance 2 by default) are treated as
  derivatives of one family, e.g. a barcode sequencing error.  Their
  consensus reads are diverted to a separate BAM.

  Outputs:

  For -out=x.bam the tool writes x.bam (paired DCS), x_UP.bam
  (unpaired DCS), x_DT.bam (derivative families, only with the family
  filter), and x.r1.fq / x.r2.fq.  Quality strings and cigars in these
  files are placeholders: every base has quality 40 and every read is
  a full-length match.
*/
package duplex
