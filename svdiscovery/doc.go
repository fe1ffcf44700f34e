// Package svdiscovery turns the evidence of one chimeric alignment of an
// assembled contig into structural variant calls.
//
// A NovelAdjacency pairs two left-justified reference loci that the contig
// shows to be adjacent, together with the strand switch between the two
// alignments, the complications (inserted sequence, homology, duplicated
// repeat units) that make the exact breakpoints ambiguous, a coarse type
// inferred from the chimera, and optionally the alternate haplotype sequence.
// NovelAdjacency.Classify maps a record to one or two SVType calls: simple
// deletions, insertions, tandem or inverted duplications, or a pair of mated
// breakends.
//
// Records are immutable once built, so they can be shared across goroutines
// without locking. Encode and Decode give a fixed binary layout used to
// checkpoint records to recordio files (see CheckpointWriter).
package svdiscovery
