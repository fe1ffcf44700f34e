package svdiscovery

import (
	"strings"
	"testing"

	"github.com/grailbio/hts/sam"
	"github.com/grailbio/svdiscovery/locus"
	"github.com/grailbio/svdiscovery/reference"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func aln(contig string, refStart, refEnd, ctgStart, ctgEnd int, fwd bool) AlignmentInterval {
	return AlignmentInterval{
		ReferenceSpan: locus.Must(contig, refStart, refEnd),
		StartInContig: ctgStart,
		EndInContig:   ctgEnd,
		ForwardStrand: fwd,
		Cigar:         sam.Cigar{sam.NewCigarOp(sam.CigarMatch, ctgEnd-ctgStart+1)},
		MapQual:       60,
	}
}

func chimera(head, tail AlignmentInterval) *SimpleChimera {
	return &SimpleChimera{ContigName: "asm000001:tig00001", Head: head, Tail: tail}
}

func TestInferType(t *testing.T) {
	dict := testReference(t).Dictionary()
	tests := []struct {
		name string
		c    *SimpleChimera
		want TypeInferred
	}{
		{"inter 55", chimera(aln("chr1", 1, 100, 1, 100, true), aln("chr2", 1, 100, 101, 200, false)), InterChrStrandSwitch55},
		{"inter 33", chimera(aln("chr1", 1, 100, 1, 100, false), aln("chr2", 1, 100, 101, 200, true)), InterChrStrandSwitch33},
		{"inter first", chimera(aln("chr1", 1, 100, 1, 100, true), aln("chr2", 1, 100, 101, 200, true)),
			InterChrNoSSWithLeftMateFirstInPartner},
		{"inter second", chimera(aln("chr2", 1, 100, 1, 100, true), aln("chr1", 1, 100, 101, 200, true)),
			InterChrNoSSWithLeftMateSecondInPartner},
		{"intra 55", chimera(aln("chr1", 1, 100, 1, 100, true), aln("chr1", 201, 300, 101, 200, false)), IntraChrStrandSwitch55},
		{"intra 33", chimera(aln("chr1", 1, 100, 1, 100, false), aln("chr1", 201, 300, 101, 200, true)), IntraChrStrandSwitch33},
		{"deletion", chimera(aln("chr1", 1, 100, 1, 100, true), aln("chr1", 151, 250, 101, 200, true)), SimpleDel},
		{"deletion with homology", chimera(aln("chr1", 1, 100, 1, 100, true), aln("chr1", 101, 200, 91, 190, true)), SimpleDel},
		{"replacement", chimera(aln("chr1", 1, 100, 1, 100, true), aln("chr1", 151, 250, 111, 210, true)), RPL},
		{"insertion", chimera(aln("chr1", 1, 100, 1, 100, true), aln("chr1", 101, 200, 111, 210, true)), SimpleIns},
		{"ref order swap", chimera(aln("chr1", 201, 300, 1, 100, true), aln("chr1", 1, 100, 101, 200, true)), IntraChrRefOrderSwap},
		{"complex dup", chimera(aln("chr1", 1, 100, 1, 100, true), aln("chr1", 91, 190, 111, 210, true)), SmallDupCpx},
		{"expansion", chimera(aln("chr1", 1, 100, 1, 100, true), aln("chr1", 81, 180, 91, 190, true)), SmallDupExpansion},
		{"contraction", chimera(aln("chr1", 1, 100, 1, 100, true), aln("chr1", 91, 190, 81, 180, true)), DelDupContraction},
		{"reverse strand deletion", chimera(aln("chr1", 151, 250, 1, 100, false), aln("chr1", 1, 100, 101, 200, false)), SimpleDel},
	}
	for _, test := range tests {
		got, err := test.c.InferType(dict)
		require.NoError(t, err, test.name)
		assert.Equal(t, test.want, got, "%s: %v", test.name, test.c)
	}
}

func TestInferTypeErrors(t *testing.T) {
	dict := testReference(t).Dictionary()
	for _, c := range []*SimpleChimera{
		// Contiguous on both the contig and the reference.
		chimera(aln("chr1", 1, 100, 1, 100, true), aln("chr1", 101, 200, 101, 200, true)),
		// Same overlap on both.
		chimera(aln("chr1", 1, 100, 1, 100, true), aln("chr1", 91, 190, 91, 190, true)),
		// Head after tail on the contig.
		chimera(aln("chr1", 1, 100, 101, 200, true), aln("chr1", 151, 250, 1, 100, true)),
		chimera(aln("chr1", 1, 100, 1, 100, true), aln("chrUn", 1, 100, 101, 200, true)),
		{ContigName: "empty"},
	} {
		_, err := c.InferType(dict)
		assert.Error(t, err, "%v", c)
	}
}

func TestChimeraString(t *testing.T) {
	c := chimera(aln("chr1", 1, 100, 1, 100, true), aln("chr1", 151, 250, 101, 200, false))
	assert.Equal(t, "asm000001:tig00001\tchr1:1-100_1_100_+_100M_60\tchr1:151-250_101_200_-_100M_60\tFORWARD_TO_REVERSE",
		c.String())
}

func fixedInferrer(inf Inference, err error) Inferrer {
	return InferrerFunc(func(*SimpleChimera, []byte, *reference.Dictionary) (Inference, error) {
		return inf, err
	})
}

func TestNewNovelAdjacencyFromChimera(t *testing.T) {
	dict := testReference(t).Dictionary()
	c := chimera(aln("chr1", 1, 100, 1, 100, true), aln("chr1", 151, 250, 101, 200, true))
	inf := Inference{
		Left:          locus.Must("chr1", 100, 100),
		Right:         locus.Must("chr1", 151, 151),
		Complications: insDel(""),
		AltHaplotype:  MakeAltHaplotype([]byte(strings.Repeat("A", 10))),
	}
	n, err := NewNovelAdjacencyFromChimera(c, nil, dict, fixedInferrer(inf, nil))
	require.NoError(t, err)
	assert.Equal(t, SimpleDel, n.Type())
	assert.Equal(t, NoSwitch, n.StrandSwitch())
	assert.Equal(t, inf.Left, n.Left())
	assert.Equal(t, inf.Right, n.Right())
	assert.True(t, n.AltHaplotype().Equal(inf.AltHaplotype))
}

func TestNewNovelAdjacencyFromChimeraErrors(t *testing.T) {
	dict := testReference(t).Dictionary()
	c := chimera(aln("chr1", 1, 100, 1, 100, true), aln("chr1", 151, 250, 101, 200, true))
	good := Inference{
		Left:          locus.Must("chr1", 100, 100),
		Right:         locus.Must("chr1", 151, 151),
		Complications: insDel(""),
	}
	errInfer := errors.New("realignment failed")

	check := func(c *SimpleChimera, err error, cause error) {
		t.Helper()
		require.Error(t, err)
		eerr, ok := err.(*EvidenceError)
		require.True(t, ok, "%v", err)
		assert.Equal(t, c.String(), eerr.Chimera)
		assert.Contains(t, err.Error(), c.String())
		assert.True(t, strings.HasPrefix(err.Error(),
			"erred when inferring breakpoint location and event type from chimeric alignment:\n"))
		if cause != nil {
			assert.Equal(t, cause, errors.Cause(err))
		}
	}

	_, err := NewNovelAdjacencyFromChimera(c, nil, dict, fixedInferrer(Inference{}, errInfer))
	check(c, err, errInfer)

	bad := good
	bad.Complications = SmallDupPreciseComplications{Dup: dup(locus.Must("chr1", 101, 110), 1, 2)}
	_, err = NewNovelAdjacencyFromChimera(c, nil, dict, fixedInferrer(bad, nil))
	check(c, err, ErrInconsistentBreakpoints)

	bad = good
	bad.Right = locus.Must("chr2", 151, 151)
	_, err = NewNovelAdjacencyFromChimera(c, nil, dict, fixedInferrer(bad, nil))
	check(c, err, ErrInconsistentBreakpoints)

	bad = good
	bad.Complications = nil
	_, err = NewNovelAdjacencyFromChimera(c, nil, dict, fixedInferrer(bad, nil))
	check(c, err, ErrInconsistentBreakpoints)

	bad = good
	bad.Left, bad.Right = good.Right, good.Left
	_, err = NewNovelAdjacencyFromChimera(c, nil, dict, fixedInferrer(bad, nil))
	check(c, err, ErrInconsistentBreakpoints)

	contiguous := chimera(aln("chr1", 1, 100, 1, 100, true), aln("chr1", 101, 200, 101, 200, true))
	_, err = NewNovelAdjacencyFromChimera(contiguous, nil, dict, fixedInferrer(good, nil))
	check(contiguous, err, nil)
}
