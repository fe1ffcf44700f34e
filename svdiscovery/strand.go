package svdiscovery

// StrandSwitch describes the relative orientation of the two alignments that
// flank a novel adjacency.
type StrandSwitch int32

const (
	// NoSwitch means both alignments are on the same strand.
	NoSwitch StrandSwitch = iota
	// ForwardToReverse means the alignment at the lower contig coordinate is
	// on the forward strand and the other is on the reverse strand.
	ForwardToReverse
	// ReverseToForward is the opposite of ForwardToReverse.
	ReverseToForward

	numStrandSwitches
)

var strandSwitchNames = [...]string{
	NoSwitch:         "NO_SWITCH",
	ForwardToReverse: "FORWARD_TO_REVERSE",
	ReverseToForward: "REVERSE_TO_FORWARD",
}

func (s StrandSwitch) valid() bool { return s >= 0 && s < numStrandSwitches }

// String returns the name of the strand switch.
func (s StrandSwitch) String() string {
	if !s.valid() {
		return "INVALID_STRAND_SWITCH"
	}
	return strandSwitchNames[s]
}
