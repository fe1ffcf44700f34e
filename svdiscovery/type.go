package svdiscovery

// TypeInferred is the coarse event type inferred from a simple chimera, from
// the order of its two alignments and the contigs they map to. It selects the
// branch of Classify that turns a NovelAdjacency into SV calls.
type TypeInferred int32

const (
	InterChrStrandSwitch55 TypeInferred = iota
	InterChrStrandSwitch33
	InterChrNoSSWithLeftMateFirstInPartner
	InterChrNoSSWithLeftMateSecondInPartner
	IntraChrRefOrderSwap
	IntraChrStrandSwitch55
	IntraChrStrandSwitch33
	SimpleDel
	// RPL is a replacement: some reference bases are deleted and some novel
	// bases are inserted at the same place.
	RPL
	SimpleIns
	SmallDupExpansion
	DelDupContraction
	// SmallDupCpx is a small duplication whose duplicated range could not be
	// pinned down precisely.
	SmallDupCpx

	numTypesInferred
)

var typeInferredNames = [...]string{
	InterChrStrandSwitch55:                  "INTER_CHR_STRAND_SWITCH_55",
	InterChrStrandSwitch33:                  "INTER_CHR_STRAND_SWITCH_33",
	InterChrNoSSWithLeftMateFirstInPartner:  "INTER_CHR_NO_SS_WITH_LEFT_MATE_FIRST_IN_PARTNER",
	InterChrNoSSWithLeftMateSecondInPartner: "INTER_CHR_NO_SS_WITH_LEFT_MATE_SECOND_IN_PARTNER",
	IntraChrRefOrderSwap:                    "INTRA_CHR_REF_ORDER_SWAP",
	IntraChrStrandSwitch55:                  "INTRA_CHR_STRAND_SWITCH_55",
	IntraChrStrandSwitch33:                  "INTRA_CHR_STRAND_SWITCH_33",
	SimpleDel:                               "SIMPLE_DEL",
	RPL:                                     "RPL",
	SimpleIns:                               "SIMPLE_INS",
	SmallDupExpansion:                       "SMALL_DUP_EXPANSION",
	DelDupContraction:                       "DEL_DUP_CONTRACTION",
	SmallDupCpx:                             "SMALL_DUP_CPX",
}

// AllTypesInferred lists every recognized type, in ordinal order.
var AllTypesInferred = func() []TypeInferred {
	types := make([]TypeInferred, numTypesInferred)
	for i := range types {
		types[i] = TypeInferred(i)
	}
	return types
}()

func (t TypeInferred) valid() bool { return t >= 0 && t < numTypesInferred }

// String returns the name of the type.
func (t TypeInferred) String() string {
	if !t.valid() {
		return "INVALID_TYPE"
	}
	return typeInferredNames[t]
}

// interChromosome returns true for the types whose loci are on different
// contigs.
func (t TypeInferred) interChromosome() bool {
	switch t {
	case InterChrStrandSwitch55, InterChrStrandSwitch33,
		InterChrNoSSWithLeftMateFirstInPartner, InterChrNoSSWithLeftMateSecondInPartner:
		return true
	}
	return false
}

// complicationKind returns the kind of complications carried by records of
// type t. Only the duplication types carry duplication complications.
//
// REQUIRES: t.valid().
func (t TypeInferred) complicationKind() ComplicationKind {
	switch t {
	case IntraChrRefOrderSwap:
		return KindIntraChrRefOrderSwap
	case IntraChrStrandSwitch55, IntraChrStrandSwitch33:
		return KindIntraChrStrandSwitch
	case SimpleDel, RPL, SimpleIns:
		return KindSimpleInsDel
	case SmallDupExpansion, DelDupContraction:
		return KindSmallDupPrecise
	case SmallDupCpx:
		return KindSmallDupImprecise
	}
	return KindInterChromosome
}
