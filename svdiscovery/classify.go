package svdiscovery

import (
	"github.com/grailbio/svdiscovery/reference"
)

// Classify converts n to SV calls. The result is
//
//   1) a single entry for simple variants, or
//   2) two entries, a deletion followed by an insertion, for a replacement
//      whose reference and alternate paths are both at least
//      StructuralVariantSizeLowerBound long, or
//   3) two mated breakends, the first one at the lower reference position.
//
// SimpleSV and BreakEnd calls are never mixed. ref is used only to look up
// the reference bases that anchor breakends.
//
// Deletion lengths are signed: for SimpleDel and contractions the length is
// Left().End - Right().Start, so a deletion between chr1:100-200 and
// chr1:250-300 has Length() -50; for replacements it is the negated number of
// deleted bases. Use Size() for the number of deleted bases, 50 in the
// example above.
func (n *NovelAdjacency) Classify(ref reference.Source) ([]SVType, error) {
	switch n.typ {
	case InterChrStrandSwitch55, InterChrStrandSwitch33,
		InterChrNoSSWithLeftMateFirstInPartner, InterChrNoSSWithLeftMateSecondInPartner:
		return orderedMates(n, InterChromosomeBreakEnd, ref)
	case IntraChrRefOrderSwap:
		return orderedMates(n, IntraChrRefOrderSwapBreakEnd, ref)
	case IntraChrStrandSwitch55, IntraChrStrandSwitch33:
		if n.complications.HasDuplicationAnnotation() {
			dc, ok := n.complications.(IntraChrStrandSwitchComplications)
			if !ok {
				return nil, n.complicationError("intra-chromosome strand switch")
			}
			return n.single(DuplicationInverted, dc.InvertedDup.RepeatUnitRefSpan.Size()), nil
		}
		if n.strandSwitch == ForwardToReverse {
			return orderedMates(n, IntraChrStrandSwitch55BreakEnd, ref)
		}
		return orderedMates(n, IntraChrStrandSwitch33BreakEnd, ref)
	case SimpleDel:
		return n.single(Deletion, n.left.End-n.right.Start), nil
	case RPL:
		deletedLength := n.right.Start - n.left.End
		insertionLength := len(n.complications.InsertedSequenceForwardStrandRep())
		if deletedLength < StructuralVariantSizeLowerBound { // "fat" insertion
			return n.single(Insertion, insertionLength), nil
		}
		deletion := newSimpleSV(Deletion, n, -deletedLength)
		if insertionLength < StructuralVariantSizeLowerBound {
			return []SVType{deletion}, nil
		}
		return []SVType{deletion, newSimpleSV(Insertion, n, insertionLength)}, nil
	case SimpleIns:
		return n.single(Insertion, len(n.complications.InsertedSequenceForwardStrandRep())), nil
	case SmallDupExpansion:
		dc, ok := n.complications.(SmallDupPreciseComplications)
		if !ok {
			return nil, n.complicationError("precise small duplication")
		}
		return n.expansion(dc), nil
	case DelDupContraction:
		return n.single(Deletion, n.left.End-n.right.Start), nil
	case SmallDupCpx:
		dc, ok := n.complications.(SmallDupImpreciseComplications)
		if !ok {
			return nil, n.complicationError("imprecise small duplication")
		}
		if dc.IsDupContraction() {
			return n.single(Deletion, n.left.End-n.right.Start), nil
		}
		return n.expansion(dc), nil
	}
	return nil, &UnreachableError{Type: n.typ}
}

func (n *NovelAdjacency) single(kind SVKind, length int) []SVType {
	return []SVType{newSimpleSV(kind, n, length)}
}

// expansion reports a duplication expansion as a tandem duplication, or as an
// insertion if the repeat unit is too short to be reported as a duplication.
func (n *NovelAdjacency) expansion(dc DuplicationComplications) []SVType {
	length := dupTandemLength(dc)
	if dc.Duplication().RepeatUnitRefSpan.Size() < StructuralVariantSizeLowerBound {
		return n.single(Insertion, length)
	}
	return n.single(DuplicationTandem, length)
}

func (n *NovelAdjacency) complicationError(want string) error {
	return &ComplicationError{Type: n.typ, Kind: n.complications.Kind(), Want: want}
}

// dupTandemLength is the number of bases the contig carries in addition to
// the reference: the inserted sequence plus the extra copies of the repeat
// unit.
func dupTandemLength(dc DuplicationComplications) int {
	d := dc.Duplication()
	return len(dc.InsertedSequenceForwardStrandRep()) +
		(d.RepeatNumOnCtg-d.RepeatNumOnRef)*d.RepeatUnitRefSpan.Size()
}

// LengthForDupTandem returns the length of the duplication described by the
// complications: the inserted sequence length plus the length of the new
// copies of the repeat unit. It is computed from the repeat counts only, even
// for imprecise duplications where the alternate haplotype length minus the
// affected reference range would be another estimate.
func (n *NovelAdjacency) LengthForDupTandem() (int, error) {
	dc, ok := n.complications.(DuplicationComplications)
	if !ok || !dc.HasDuplicationAnnotation() {
		return 0, n.complicationError("duplication")
	}
	return dupTandemLength(dc), nil
}
