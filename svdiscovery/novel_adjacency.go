package svdiscovery

import (
	"bytes"
	"fmt"

	farm "github.com/dgryski/go-farm"
	"github.com/grailbio/svdiscovery/locus"
	"github.com/pkg/errors"
)

// AltHaplotype is an optional alternate haplotype sequence. The zero value is
// absent; a present sequence may be empty.
type AltHaplotype struct {
	seq     []byte
	present bool
}

// NoAltHaplotype is the absent sequence.
var NoAltHaplotype = AltHaplotype{}

// MakeAltHaplotype returns a present sequence holding a copy of seq.
func MakeAltHaplotype(seq []byte) AltHaplotype {
	b := make([]byte, len(seq))
	copy(b, seq)
	return AltHaplotype{seq: b, present: true}
}

// Present returns true unless the sequence is absent.
func (a AltHaplotype) Present() bool { return a.present }

// Len returns the length of the sequence, zero if absent.
func (a AltHaplotype) Len() int { return len(a.seq) }

// Bytes returns a copy of the sequence, or nil if absent.
func (a AltHaplotype) Bytes() []byte {
	if !a.present {
		return nil
	}
	b := make([]byte, len(a.seq))
	copy(b, a.seq)
	return b
}

// Equal returns true if both are absent, or both are present with the same
// bytes.
func (a AltHaplotype) Equal(o AltHaplotype) bool {
	return a.present == o.present && bytes.Equal(a.seq, o.seq)
}

// NovelAdjacency is a pair of reference locations made adjacent by an SV event,
// and the alternate haplotype that connects them. The loci are left-justified:
// when they are on the same contig, Left().Start <= Right().Start.
//
// It represents a bubble between two reference locations: one path is the
// reference bases between them (when they are on the same contig), the other
// is the alternate haplotype.
//
// A NovelAdjacency is immutable, and it is safe to share it among goroutines.
type NovelAdjacency struct {
	left, right   locus.Locus
	strandSwitch  StrandSwitch
	complications Complications
	typ           TypeInferred
	altHaplotype  AltHaplotype
}

// NewNovelAdjacency creates a record from already-inferred fields. It checks
// that the fields are well formed and fit the binary encoding, and that the
// loci and the complications belong to the family of events of typ. A
// mismatch between them is reported with ErrInconsistentBreakpoints as the
// cause.
func NewNovelAdjacency(left, right locus.Locus, ss StrandSwitch, c Complications,
	typ TypeInferred, alt AltHaplotype) (*NovelAdjacency, error) {
	for _, l := range []locus.Locus{left, right} {
		if _, err := locus.New(l.Contig, l.Start, l.End); err != nil {
			return nil, err
		}
		if err := checkLocusInt32("locus", l); err != nil {
			return nil, err
		}
	}
	if left.SameContig(right) && left.Start > right.Start {
		return nil, errors.Errorf("loci %v and %v are not left-justified", left, right)
	}
	if !ss.valid() {
		return nil, errors.Errorf("invalid strand switch %d", int32(ss))
	}
	if c == nil {
		return nil, errors.Errorf("nil complications")
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	if !typ.valid() {
		return nil, errors.Errorf("invalid type %d", int32(typ))
	}
	if err := checkFamily(typ, left, right, c); err != nil {
		return nil, err
	}
	if err := checkInt32("alt haplotype length", alt.Len()); err != nil {
		return nil, err
	}
	if alt.present {
		alt = MakeAltHaplotype(alt.seq)
	}
	return &NovelAdjacency{
		left:          left,
		right:         right,
		strandSwitch:  ss,
		complications: c,
		typ:           typ,
		altHaplotype:  alt,
	}, nil
}

// checkFamily verifies that the loci are on the same contig iff typ is an
// intra-chromosome type, and that c is of the kind typ requires.
func checkFamily(typ TypeInferred, left, right locus.Locus, c Complications) error {
	if typ.interChromosome() == left.SameContig(right) {
		return errors.Wrapf(ErrInconsistentBreakpoints, "type %v with loci %v and %v", typ, left, right)
	}
	if got, want := c.Kind(), typ.complicationKind(); got != want {
		return errors.Wrapf(ErrInconsistentBreakpoints, "type %v with %v complications, want %v", typ, got, want)
	}
	return nil
}

// Left returns the left-justified left reference locus.
func (n *NovelAdjacency) Left() locus.Locus { return n.left }

// Right returns the left-justified right reference locus.
func (n *NovelAdjacency) Right() locus.Locus { return n.right }

// StrandSwitch returns the strand switch between the two alignments.
func (n *NovelAdjacency) StrandSwitch() StrandSwitch { return n.strandSwitch }

// Complications returns the complications at the breakpoints.
func (n *NovelAdjacency) Complications() Complications { return n.complications }

// Type returns the type inferred from the chimera.
func (n *NovelAdjacency) Type() TypeInferred { return n.typ }

// AltHaplotype returns the alternate haplotype sequence.
func (n *NovelAdjacency) AltHaplotype() AltHaplotype { return n.altHaplotype }

// HasInsertedSequence returns true if novel bases are inserted at the junction.
func (n *NovelAdjacency) HasInsertedSequence() bool {
	return n.complications.InsertedSequenceForwardStrandRep() != ""
}

// HasDuplicationAnnotation returns true if the complications describe a
// duplicated repeat unit.
func (n *NovelAdjacency) HasDuplicationAnnotation() bool {
	return n.complications.HasDuplicationAnnotation()
}

// DistanceBetweenNovelAdjacencies returns the distance between the start of
// the left locus and the end of the right locus, or -1 if they are on
// different contigs.
func (n *NovelAdjacency) DistanceBetweenNovelAdjacencies() int {
	if !n.left.SameContig(n.right) {
		return -1
	}
	return n.right.End - n.left.Start
}

// Equal returns true iff every field of n and o is the same.
func (n *NovelAdjacency) Equal(o *NovelAdjacency) bool {
	if n == o {
		return true
	}
	if n == nil || o == nil {
		return false
	}
	return n.left == o.left &&
		n.right == o.right &&
		n.strandSwitch == o.strandSwitch &&
		n.complications == o.complications &&
		n.typ == o.typ &&
		n.altHaplotype.Equal(o.altHaplotype)
}

// Hash returns a hash of all the fields of n. Equal records have equal hashes.
func (n *NovelAdjacency) Hash() uint64 {
	return farm.Hash64(Encode(n))
}

// String returns a tab-separated dump of n, for debugging and error messages.
func (n *NovelAdjacency) String() string {
	return fmt.Sprintf("%v\t%v\t%v\t%v\t%v", n.left, n.right, n.strandSwitch, n.complications, n.typ)
}
