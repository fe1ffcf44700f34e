package svdiscovery

import (
	"fmt"
	"strings"

	"github.com/grailbio/svdiscovery/locus"
	"github.com/grailbio/svdiscovery/reference"
	"github.com/pkg/errors"
)

// BreakEndType is the kind of event a pair of mated breakends describes.
type BreakEndType int

const (
	// InterChromosomeBreakEnd joins two chromosomes, with or without a strand
	// switch.
	InterChromosomeBreakEnd BreakEndType = iota
	// IntraChrRefOrderSwapBreakEnd joins the end of a region to the start of
	// an earlier region of the same chromosome.
	IntraChrRefOrderSwapBreakEnd
	// IntraChrStrandSwitch55BreakEnd joins the left flanks of two regions of
	// one chromosome, one of them reverse complemented: t]p] on both mates.
	IntraChrStrandSwitch55BreakEnd
	// IntraChrStrandSwitch33BreakEnd is the [p[t counterpart of
	// IntraChrStrandSwitch55BreakEnd.
	IntraChrStrandSwitch33BreakEnd
)

var breakEndTypeIDs = [...]string{
	InterChromosomeBreakEnd:        "TRA",
	IntraChrRefOrderSwapBreakEnd:   "SWAP",
	IntraChrStrandSwitch55BreakEnd: "INV55",
	IntraChrStrandSwitch33BreakEnd: "INV33",
}

func (t BreakEndType) String() string {
	if t < 0 || int(t) >= len(breakEndTypeIDs) {
		return fmt.Sprintf("BreakEndType(%d)", int(t))
	}
	return breakEndTypeIDs[t]
}

// BreakEnd is one of the two mates reported for a translocation- or
// inversion-like junction.
type BreakEnd struct {
	typ     BreakEndType
	pos     locus.Locus
	mate    locus.Locus
	refBase byte
	first   bool
	alt     string
	source  *NovelAdjacency
}

// Kind implements SVType.
func (b *BreakEnd) Kind() SVKind { return BreakEndKind }

// Length implements SVType. Breakends have no length.
func (b *BreakEnd) Length() int { return 0 }

// Size implements SVType.
func (b *BreakEnd) Size() int { return 0 }

// Source implements SVType.
func (b *BreakEnd) Source() *NovelAdjacency { return b.source }

// Locus implements SVType. It is the single base the breakend is anchored at.
func (b *BreakEnd) Locus() locus.Locus { return b.pos }

// Type returns the kind of event the breakend belongs to.
func (b *BreakEnd) Type() BreakEndType { return b.typ }

// Mate returns the position of the mate breakend.
func (b *BreakEnd) Mate() locus.Locus { return b.mate }

// RefBase returns the reference base at Locus().
func (b *BreakEnd) RefBase() byte { return b.refBase }

// IsFirst returns true for the first mate of the pair.
func (b *BreakEnd) IsFirst() bool { return b.first }

// AltAllele returns the VCF breakend allele, one of the forms t[p[, t]p],
// ]p]t and [p[t, where t is the reference base followed or preceded by the
// inserted sequence.
func (b *BreakEnd) AltAllele() string { return b.alt }

// ID implements SVType.
func (b *BreakEnd) ID() string {
	n := 2
	if b.first {
		n = 1
	}
	return fmt.Sprintf("BND_%s_%s_%d_%s_%d_%d", b.typ, b.pos.Contig, b.pos.Start, b.mate.Contig, b.mate.Start, n)
}

func (b *BreakEnd) String() string {
	return fmt.Sprintf("BND(%s:%d,%s)", b.pos.Contig, b.pos.Start, b.alt)
}

// breakEndSpec describes how one mate is formed from the breakpoint loci.
type breakEndSpec struct {
	// Position and mate position, each either the start or the end of the
	// left or right locus.
	pos, mate locus.Locus
	// basesFirst is true for the t[p[ and t]p] forms.
	basesFirst bool
	// bracket is '[' if the joined piece extends to the right of the mate,
	// ']' if it extends to the left.
	bracket    byte
	revCompIns bool
}

func point(contig string, pos int) locus.Locus {
	return locus.Locus{Contig: contig, Start: pos, End: pos}
}

// breakEndSpecs returns the two mates of n, the one anchored on the left
// locus first.
func breakEndSpecs(n *NovelAdjacency, typ BreakEndType) (breakEndSpec, breakEndSpec) {
	l, r := n.left, n.right
	switch {
	case typ == IntraChrStrandSwitch55BreakEnd ||
		(typ == InterChromosomeBreakEnd && n.strandSwitch == ForwardToReverse):
		return breakEndSpec{pos: point(l.Contig, l.End), mate: point(r.Contig, r.End), basesFirst: true, bracket: ']'},
			breakEndSpec{pos: point(r.Contig, r.End), mate: point(l.Contig, l.End), basesFirst: true, bracket: ']', revCompIns: true}
	case typ == IntraChrStrandSwitch33BreakEnd ||
		(typ == InterChromosomeBreakEnd && n.strandSwitch == ReverseToForward):
		return breakEndSpec{pos: point(l.Contig, l.Start), mate: point(r.Contig, r.Start), bracket: '[', revCompIns: true},
			breakEndSpec{pos: point(r.Contig, r.Start), mate: point(l.Contig, l.Start), bracket: '['}
	case typ == IntraChrRefOrderSwapBreakEnd || n.typ == InterChrNoSSWithLeftMateSecondInPartner:
		// The contig visits the right locus before the left one.
		return breakEndSpec{pos: point(l.Contig, l.Start), mate: point(r.Contig, r.End), bracket: ']'},
			breakEndSpec{pos: point(r.Contig, r.End), mate: point(l.Contig, l.Start), basesFirst: true, bracket: '['}
	default:
		return breakEndSpec{pos: point(l.Contig, l.End), mate: point(r.Contig, r.Start), basesFirst: true, bracket: '['},
			breakEndSpec{pos: point(r.Contig, r.Start), mate: point(l.Contig, l.End), bracket: ']'}
	}
}

func (s breakEndSpec) altAllele(refBase byte, ins string) string {
	if s.revCompIns {
		ins = reverseComplement(ins)
	}
	mate := fmt.Sprintf("%c%s:%d%c", s.bracket, s.mate.Contig, s.mate.Start, s.bracket)
	buf := strings.Builder{}
	if s.basesFirst {
		buf.WriteByte(refBase)
		buf.WriteString(ins)
		buf.WriteString(mate)
	} else {
		buf.WriteString(mate)
		buf.WriteString(ins)
		buf.WriteByte(refBase)
	}
	return buf.String()
}

// orderedMates builds the two mates of n, fetching the anchoring reference
// bases from ref. The first mate is the one at the lower position, contigs
// being ordered as in the reference dictionary.
func orderedMates(n *NovelAdjacency, typ BreakEndType, ref reference.Source) ([]SVType, error) {
	s1, s2 := breakEndSpecs(n, typ)
	if s1.pos.Contig != s2.pos.Contig {
		cmp, err := ref.Dictionary().CompareContigs(s1.pos.Contig, s2.pos.Contig)
		if err != nil {
			return nil, errors.Wrapf(err, "order breakends of %v", n)
		}
		if cmp > 0 {
			s1, s2 = s2, s1
		}
	} else if s2.pos.LT(s1.pos) {
		s1, s2 = s2, s1
	}
	ins := n.complications.InsertedSequenceForwardStrandRep()
	mates := make([]SVType, 2)
	for i, s := range []breakEndSpec{s1, s2} {
		bases, err := ref.Bases(s.pos)
		if err != nil {
			return nil, errors.Wrapf(err, "reference base for breakend of %v", n)
		}
		if len(bases) != 1 {
			return nil, errors.Errorf("reference returned %d bases for %v", len(bases), s.pos)
		}
		mates[i] = &BreakEnd{
			typ:     typ,
			pos:     s.pos,
			mate:    s.mate,
			refBase: bases[0],
			first:   i == 0,
			alt:     s.altAllele(bases[0], ins),
			source:  n,
		}
	}
	return mates, nil
}
