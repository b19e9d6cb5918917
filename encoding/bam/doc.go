// Package bam provides small helpers that augment the sam.Record type in
// github.com/grailbio/hts.
package bam
