package svdiscovery

import (
	"github.com/grailbio/svdiscovery/locus"
	"github.com/grailbio/svdiscovery/reference"
	"github.com/pkg/errors"
)

// Inference is the result of pinning down the breakpoints of a chimera.
type Inference struct {
	// Left and Right are the left-justified breakpoint loci.
	Left, Right   locus.Locus
	Complications Complications
	AltHaplotype  AltHaplotype
}

// Inferrer locates the breakpoints of a simple chimera at base-pair
// resolution, given the contig sequence and the reference dictionary.
type Inferrer interface {
	Infer(chimera *SimpleChimera, contigSeq []byte, dict *reference.Dictionary) (Inference, error)
}

// InferrerFunc adapts a function to the Inferrer interface.
type InferrerFunc func(chimera *SimpleChimera, contigSeq []byte, dict *reference.Dictionary) (Inference, error)

// Infer implements Inferrer.
func (f InferrerFunc) Infer(chimera *SimpleChimera, contigSeq []byte, dict *reference.Dictionary) (Inference, error) {
	return f(chimera, contigSeq, dict)
}

// NewNovelAdjacencyFromChimera builds the record suggested by a simple
// chimera. It runs the inferrer, infers the type from the chimera, and checks
// the results against each other. Any failure is reported as an
// *EvidenceError that carries the textual dump of the chimera. Inferred fields
// rejected by NewNovelAdjacency have ErrInconsistentBreakpoints as the cause.
func NewNovelAdjacencyFromChimera(chimera *SimpleChimera, contigSeq []byte,
	dict *reference.Dictionary, inferrer Inferrer) (*NovelAdjacency, error) {
	wrap := func(err error) error {
		return &EvidenceError{Chimera: chimera.String(), Err: err}
	}
	inf, err := inferrer.Infer(chimera, contigSeq, dict)
	if err != nil {
		return nil, wrap(err)
	}
	typ, err := chimera.InferType(dict)
	if err != nil {
		return nil, wrap(err)
	}
	n, err := NewNovelAdjacency(inf.Left, inf.Right, chimera.StrandSwitch(), inf.Complications, typ, inf.AltHaplotype)
	if err != nil {
		if errors.Cause(err) != ErrInconsistentBreakpoints {
			err = errors.Wrap(ErrInconsistentBreakpoints, err.Error())
		}
		return nil, wrap(err)
	}
	return n, nil
}
