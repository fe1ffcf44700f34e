package svdiscovery

import (
	"fmt"

	"github.com/grailbio/svdiscovery/locus"
)

// StructuralVariantSizeLowerBound is the minimum size of a reportable SV.
// Events whose size is strictly below it are reported differently, see
// Classify.
const StructuralVariantSizeLowerBound = 50

// SVKind is the concrete kind of an SV call.
type SVKind int

const (
	Deletion SVKind = iota
	Insertion
	DuplicationTandem
	DuplicationInverted
	BreakEndKind
)

var svKindNames = [...]string{
	Deletion:            "DEL",
	Insertion:           "INS",
	DuplicationTandem:   "DUP",
	DuplicationInverted: "DUP:INV",
	BreakEndKind:        "BND",
}

// Prefixes of variant IDs.
var svKindIDs = [...]string{
	Deletion:            "DEL",
	Insertion:           "INS",
	DuplicationTandem:   "DUP",
	DuplicationInverted: "INVDUP",
	BreakEndKind:        "BND",
}

// String returns the VCF SVTYPE of the kind.
func (k SVKind) String() string {
	if k < 0 || int(k) >= len(svKindNames) {
		return fmt.Sprintf("SVKind(%d)", int(k))
	}
	return svKindNames[k]
}

// SVType is one SV call derived from a NovelAdjacency. It is one of *SimpleSV
// or *BreakEnd.
type SVType interface {
	Kind() SVKind
	// Length is the signed SV length. Deletions have negative length when
	// derived from a replacement or from left-justified loci; see Classify.
	Length() int
	// Size is the absolute value of Length.
	Size() int
	// ID is an identifier for the call, unique among the calls derived from
	// distinct records.
	ID() string
	// Locus is the reference interval the call is reported at.
	Locus() locus.Locus
	// Source is the record the call was derived from. The call doesn't own
	// it.
	Source() *NovelAdjacency
	String() string
}

// SimpleSV is a deletion, insertion, tandem duplication or inverted
// duplication.
type SimpleSV struct {
	kind   SVKind
	length int
	source *NovelAdjacency
}

func newSimpleSV(kind SVKind, source *NovelAdjacency, length int) *SimpleSV {
	return &SimpleSV{kind: kind, length: length, source: source}
}

// Kind implements SVType.
func (s *SimpleSV) Kind() SVKind { return s.kind }

// Length implements SVType.
func (s *SimpleSV) Length() int { return s.length }

// Size implements SVType.
func (s *SimpleSV) Size() int { return abs(s.length) }

// Source implements SVType.
func (s *SimpleSV) Source() *NovelAdjacency { return s.source }

// Locus implements SVType. It spans from the end of the left breakpoint to the
// start of the right one.
func (s *SimpleSV) Locus() locus.Locus {
	l, r := s.source.left, s.source.right
	start, end := l.End, r.Start
	if end < start {
		start, end = end, start
	}
	return locus.Locus{Contig: l.Contig, Start: start, End: end}
}

// ID implements SVType.
func (s *SimpleSV) ID() string {
	return fmt.Sprintf("%s_%s_%d_%d", svKindIDs[s.kind], s.source.left.Contig, s.source.left.End, s.source.right.Start)
}

func (s *SimpleSV) String() string {
	return fmt.Sprintf("%s(%s,len=%d)", s.kind, s.Locus(), s.length)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
