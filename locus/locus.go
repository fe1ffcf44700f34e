// Package locus defines an interval on a reference contig, expressed in
// 1-based closed coordinates, and comparisons between such intervals.
package locus

import (
	"fmt"

	"github.com/pkg/errors"
)

// Locus is a closed interval [Start, End] on the named contig. Coordinates are
// 1-based. The zero value represents "no locus" (see IsZero).
type Locus struct {
	Contig string
	Start  int
	End    int
}

// New creates a locus after checking that the contig name is nonempty and
// 1 <= start <= end.
func New(contig string, start, end int) (Locus, error) {
	if contig == "" {
		return Locus{}, errors.Errorf("locus: empty contig name (%d-%d)", start, end)
	}
	if start < 1 || end < start {
		return Locus{}, errors.Errorf("locus: invalid range %s:%d-%d", contig, start, end)
	}
	return Locus{Contig: contig, Start: start, End: end}, nil
}

// Must is like New, but panics on error. Intended for tests and constants.
func Must(contig string, start, end int) Locus {
	l, err := New(contig, start, end)
	if err != nil {
		panic(err)
	}
	return l
}

// IsZero returns true iff l is the zero Locus.
func (l Locus) IsZero() bool { return l == Locus{} }

// Size returns the number of bases covered by l.
func (l Locus) Size() int {
	if l.IsZero() {
		return 0
	}
	return l.End - l.Start + 1
}

// SameContig returns true iff l and l1 are on the same contig.
func (l Locus) SameContig(l1 Locus) bool { return l.Contig == l1.Contig }

// Compare returns (negative int, 0, positive int) if (l<l1, l=l1, l>l1)
// respectively. Contigs are compared by name; callers that need the reference
// dictionary order should compare contigs themselves.
func (l Locus) Compare(l1 Locus) int {
	if l.Contig != l1.Contig {
		if l.Contig < l1.Contig {
			return -1
		}
		return 1
	}
	if l.Start != l1.Start {
		return l.Start - l1.Start
	}
	return l.End - l1.End
}

// LT returns true iff l < l1.
func (l Locus) LT(l1 Locus) bool { return l.Compare(l1) < 0 }

// String returns "contig:start-end".
func (l Locus) String() string {
	return fmt.Sprintf("%s:%d-%d", l.Contig, l.Start, l.End)
}
