package svdiscovery

import (
	"fmt"
	"strings"

	"github.com/grailbio/hts/sam"
	"github.com/grailbio/svdiscovery/locus"
	"github.com/grailbio/svdiscovery/reference"
	"github.com/pkg/errors"
)

// AlignmentInterval is one piece of a split alignment of a contig.
type AlignmentInterval struct {
	// ReferenceSpan is the reference range covered by the alignment.
	ReferenceSpan locus.Locus
	// StartInContig and EndInContig are the 1-based closed range of the
	// contig covered by the alignment.
	StartInContig, EndInContig int
	ForwardStrand              bool
	// Cigar describes the alignment along the 5'-to-3' direction of the
	// contig.
	Cigar   sam.Cigar
	MapQual int
}

func (a AlignmentInterval) String() string {
	strand := "+"
	if !a.ForwardStrand {
		strand = "-"
	}
	return fmt.Sprintf("%s_%d_%d_%s_%s_%d", a.ReferenceSpan, a.StartInContig, a.EndInContig, strand, a.Cigar, a.MapQual)
}

// SimpleChimera is a contig whose alignment is split in exactly two pieces.
// Head is the piece at the lower coordinate on the contig.
type SimpleChimera struct {
	ContigName string
	Head, Tail AlignmentInterval
}

// StrandSwitch returns the relative orientation of the two alignments.
func (c *SimpleChimera) StrandSwitch() StrandSwitch {
	switch {
	case c.Head.ForwardStrand == c.Tail.ForwardStrand:
		return NoSwitch
	case c.Head.ForwardStrand:
		return ForwardToReverse
	default:
		return ReverseToForward
	}
}

// IsForwardStrandRepresentation returns true if both alignments are on the
// forward strand. Chimeras with both alignments on the reverse strand are
// interpreted after reverse-complementing the contig.
func (c *SimpleChimera) IsForwardStrandRepresentation() bool {
	return c.Head.ForwardStrand && c.Tail.ForwardStrand
}

func (c *SimpleChimera) validate() error {
	for _, a := range []*AlignmentInterval{&c.Head, &c.Tail} {
		if _, err := locus.New(a.ReferenceSpan.Contig, a.ReferenceSpan.Start, a.ReferenceSpan.End); err != nil {
			return errors.Wrap(err, "alignment reference span")
		}
		if a.StartInContig < 1 || a.EndInContig < a.StartInContig {
			return errors.Errorf("invalid contig range %d-%d", a.StartInContig, a.EndInContig)
		}
	}
	if c.Head.StartInContig > c.Tail.StartInContig {
		return errors.Errorf("head alignment starts at %d on the contig, after the tail at %d",
			c.Head.StartInContig, c.Tail.StartInContig)
	}
	return nil
}

// InferType infers the coarse type of the event from the order of the two
// alignments and the contigs they map to. Dict gives the contig order used for
// inter-chromosome events.
func (c *SimpleChimera) InferType(dict *reference.Dictionary) (TypeInferred, error) {
	if err := c.validate(); err != nil {
		return 0, err
	}
	ss := c.StrandSwitch()
	head, tail := c.Head, c.Tail
	if !head.ReferenceSpan.SameContig(tail.ReferenceSpan) {
		switch ss {
		case ForwardToReverse:
			return InterChrStrandSwitch55, nil
		case ReverseToForward:
			return InterChrStrandSwitch33, nil
		}
		cmp, err := dict.CompareContigs(head.ReferenceSpan.Contig, tail.ReferenceSpan.Contig)
		if err != nil {
			return 0, errors.Wrap(err, "infer type")
		}
		if cmp < 0 {
			return InterChrNoSSWithLeftMateFirstInPartner, nil
		}
		return InterChrNoSSWithLeftMateSecondInPartner, nil
	}
	switch ss {
	case ForwardToReverse:
		return IntraChrStrandSwitch55, nil
	case ReverseToForward:
		return IntraChrStrandSwitch33, nil
	}

	// Gaps between the two alignments, on the contig and the reference. A
	// negative gap is an overlap. Reverse-strand chimeras are viewed on the
	// reverse-complemented contig, which swaps the roles of the head and the
	// tail on the reference.
	ctgGap := tail.StartInContig - head.EndInContig - 1
	if !c.IsForwardStrandRepresentation() {
		head, tail = tail, head
	}
	if tail.ReferenceSpan.End < head.ReferenceSpan.Start {
		return IntraChrRefOrderSwap, nil
	}
	refGap := tail.ReferenceSpan.Start - head.ReferenceSpan.End - 1
	switch {
	case refGap > 0:
		if ctgGap > 0 {
			return RPL, nil
		}
		return SimpleDel, nil
	case refGap == 0:
		if ctgGap > 0 {
			return SimpleIns, nil
		}
		if ctgGap < 0 {
			return SimpleDel, nil
		}
		return 0, errors.Errorf("alignments are contiguous on both the contig and the reference")
	}
	if ctgGap > 0 {
		return SmallDupCpx, nil
	}
	refOverlap, ctgOverlap := -refGap, -ctgGap
	switch {
	case refOverlap > ctgOverlap:
		return SmallDupExpansion, nil
	case refOverlap < ctgOverlap:
		return DelDupContraction, nil
	}
	return 0, errors.Errorf("alignments overlap by %d bases on both the contig and the reference", refOverlap)
}

// String returns a human-readable dump of the chimera. It is used in error
// messages.
func (c *SimpleChimera) String() string {
	buf := strings.Builder{}
	buf.WriteString(c.ContigName)
	buf.WriteByte('\t')
	buf.WriteString(c.Head.String())
	buf.WriteByte('\t')
	buf.WriteString(c.Tail.String())
	buf.WriteByte('\t')
	buf.WriteString(c.StrandSwitch().String())
	return buf.String()
}
