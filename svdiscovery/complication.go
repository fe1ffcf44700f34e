package svdiscovery

import (
	"fmt"

	"github.com/grailbio/svdiscovery/locus"
	"github.com/pkg/errors"
)

// ComplicationKind identifies the concrete type of a Complications value. The
// ordinal is part of the binary encoding.
type ComplicationKind int32

const (
	KindSimpleInsDel ComplicationKind = iota
	KindSmallDupPrecise
	KindSmallDupImprecise
	KindIntraChrStrandSwitch
	KindInterChromosome
	KindIntraChrRefOrderSwap

	numComplicationKinds
)

var complicationKindNames = [...]string{
	KindSimpleInsDel:         "SimpleInsDel",
	KindSmallDupPrecise:      "SmallDupPrecise",
	KindSmallDupImprecise:    "SmallDupImprecise",
	KindIntraChrStrandSwitch: "IntraChrStrandSwitch",
	KindInterChromosome:      "InterChromosome",
	KindIntraChrRefOrderSwap: "IntraChrRefOrderSwap",
}

func (k ComplicationKind) String() string {
	if k < 0 || k >= numComplicationKinds {
		return fmt.Sprintf("ComplicationKind(%d)", int32(k))
	}
	return complicationKindNames[k]
}

// Complications annotate the ambiguities at a pair of breakpoints. The set of
// implementations is closed: SimpleInsDelComplications,
// SmallDupPreciseComplications, SmallDupImpreciseComplications,
// IntraChrStrandSwitchComplications, InterChromosomeComplications and
// IntraChrRefOrderSwapComplications. All of them are comparable values, so
// two Complications are equal iff they compare == as interfaces.
type Complications interface {
	Kind() ComplicationKind
	// HomologyForwardStrandRep is the microhomology at the junction, on the
	// forward strand of the reference.
	HomologyForwardStrandRep() string
	// InsertedSequenceForwardStrandRep is the novel sequence inserted at the
	// junction, on the forward strand of the reference. It may be empty.
	InsertedSequenceForwardStrandRep() string
	HasDuplicationAnnotation() bool
	String() string

	validate() error
	encode(b *byteBuffer)
}

// DuplicationComplications are the Complications that describe duplicated
// repeat units.
type DuplicationComplications interface {
	Complications
	Duplication() Duplication
	// Imprecise is true if the duplicated range couldn't be determined exactly.
	Imprecise() bool
}

// Junction holds the fields shared by every kind of complication.
type Junction struct {
	Homology         string
	InsertedSequence string
}

// HomologyForwardStrandRep implements Complications.
func (j Junction) HomologyForwardStrandRep() string { return j.Homology }

// InsertedSequenceForwardStrandRep implements Complications.
func (j Junction) InsertedSequenceForwardStrandRep() string { return j.InsertedSequence }

func (j Junction) validate() error {
	return checkInt32("junction sequence length", len(j.Homology), len(j.InsertedSequence))
}

func (j Junction) encode(b *byteBuffer) {
	b.PutString(j.Homology)
	b.PutString(j.InsertedSequence)
}

func decodeJunction(r *byteReader) Junction {
	return Junction{
		Homology:         r.String("homology"),
		InsertedSequence: r.String("inserted sequence"),
	}
}

// Duplication describes a duplicated repeat unit: its span on the reference,
// and how many copies the reference and the contig carry.
type Duplication struct {
	RepeatUnitRefSpan locus.Locus
	RepeatNumOnRef    int
	RepeatNumOnCtg    int
}

// IsZero returns true if d is absent.
func (d Duplication) IsZero() bool { return d == Duplication{} }

func (d Duplication) validate() error {
	if d.RepeatNumOnRef < 0 || d.RepeatNumOnCtg < 0 {
		return errors.Errorf("negative repeat count: ref %d, ctg %d", d.RepeatNumOnRef, d.RepeatNumOnCtg)
	}
	if err := checkInt32("repeat count", d.RepeatNumOnRef, d.RepeatNumOnCtg); err != nil {
		return err
	}
	if _, err := locus.New(d.RepeatUnitRefSpan.Contig, d.RepeatUnitRefSpan.Start, d.RepeatUnitRefSpan.End); err != nil {
		return errors.Wrap(err, "duplicated repeat unit")
	}
	return checkLocusInt32("duplicated repeat unit", d.RepeatUnitRefSpan)
}

func (d Duplication) encode(b *byteBuffer) {
	b.PutLocus(d.RepeatUnitRefSpan)
	b.PutInt(d.RepeatNumOnRef)
	b.PutInt(d.RepeatNumOnCtg)
}

func decodeDuplication(r *byteReader) Duplication {
	return Duplication{
		RepeatUnitRefSpan: r.Locus("repeat unit"),
		RepeatNumOnRef:    r.Int("repeat count on ref"),
		RepeatNumOnCtg:    r.Int("repeat count on ctg"),
	}
}

func (d Duplication) String() string {
	return fmt.Sprintf("dup %s ref x%d ctg x%d", d.RepeatUnitRefSpan, d.RepeatNumOnRef, d.RepeatNumOnCtg)
}

// SimpleInsDelComplications annotate deletions, insertions and replacements.
type SimpleInsDelComplications struct {
	Junction
}

// Kind implements Complications.
func (SimpleInsDelComplications) Kind() ComplicationKind { return KindSimpleInsDel }

// HasDuplicationAnnotation implements Complications.
func (SimpleInsDelComplications) HasDuplicationAnnotation() bool { return false }

func (c SimpleInsDelComplications) validate() error { return c.Junction.validate() }

func (c SimpleInsDelComplications) encode(b *byteBuffer) { c.Junction.encode(b) }

func (c SimpleInsDelComplications) String() string {
	return fmt.Sprintf("%v{homology=%q ins=%q}", c.Kind(), c.Homology, c.InsertedSequence)
}

// SmallDupPreciseComplications annotate a tandem duplication whose repeat unit
// is known exactly.
type SmallDupPreciseComplications struct {
	Junction
	Dup Duplication
	// AnnotationFromOptimization is set when the duplication was found by
	// realigning the contig rather than read directly off the alignments.
	AnnotationFromOptimization bool
}

// Kind implements Complications.
func (SmallDupPreciseComplications) Kind() ComplicationKind { return KindSmallDupPrecise }

// HasDuplicationAnnotation implements Complications.
func (SmallDupPreciseComplications) HasDuplicationAnnotation() bool { return true }

// Duplication implements DuplicationComplications.
func (c SmallDupPreciseComplications) Duplication() Duplication { return c.Dup }

// Imprecise implements DuplicationComplications.
func (SmallDupPreciseComplications) Imprecise() bool { return false }

func (c SmallDupPreciseComplications) validate() error {
	if err := c.Junction.validate(); err != nil {
		return err
	}
	return c.Dup.validate()
}

func (c SmallDupPreciseComplications) encode(b *byteBuffer) {
	c.Junction.encode(b)
	c.Dup.encode(b)
	b.PutBool(c.AnnotationFromOptimization)
}

func (c SmallDupPreciseComplications) String() string {
	return fmt.Sprintf("%v{homology=%q ins=%q %v optimized=%v}", c.Kind(), c.Homology, c.InsertedSequence,
		c.Dup, c.AnnotationFromOptimization)
}

// SmallDupImpreciseComplications annotate a duplication whose boundaries are
// ambiguous. AffectedRefRange covers all the reference bases that may be part
// of the event.
type SmallDupImpreciseComplications struct {
	Junction
	Dup              Duplication
	AffectedRefRange locus.Locus
}

// Kind implements Complications.
func (SmallDupImpreciseComplications) Kind() ComplicationKind { return KindSmallDupImprecise }

// HasDuplicationAnnotation implements Complications.
func (SmallDupImpreciseComplications) HasDuplicationAnnotation() bool { return true }

// Duplication implements DuplicationComplications.
func (c SmallDupImpreciseComplications) Duplication() Duplication { return c.Dup }

// Imprecise implements DuplicationComplications.
func (SmallDupImpreciseComplications) Imprecise() bool { return true }

// IsDupContraction returns true if the contig carries fewer copies of the
// repeat unit than the reference.
func (c SmallDupImpreciseComplications) IsDupContraction() bool {
	return c.Dup.RepeatNumOnRef > c.Dup.RepeatNumOnCtg
}

func (c SmallDupImpreciseComplications) validate() error {
	if err := c.Junction.validate(); err != nil {
		return err
	}
	if err := c.Dup.validate(); err != nil {
		return err
	}
	if c.AffectedRefRange.IsZero() {
		return nil
	}
	if _, err := locus.New(c.AffectedRefRange.Contig, c.AffectedRefRange.Start, c.AffectedRefRange.End); err != nil {
		return errors.Wrap(err, "affected reference range")
	}
	return checkLocusInt32("affected reference range", c.AffectedRefRange)
}

func (c SmallDupImpreciseComplications) encode(b *byteBuffer) {
	c.Junction.encode(b)
	c.Dup.encode(b)
	b.PutLocus(c.AffectedRefRange)
}

func (c SmallDupImpreciseComplications) String() string {
	return fmt.Sprintf("%v{homology=%q ins=%q %v affected=%v}", c.Kind(), c.Homology, c.InsertedSequence,
		c.Dup, c.AffectedRefRange)
}

// IntraChrStrandSwitchComplications annotate an inversion-like junction on one
// chromosome. InvertedDup is set iff the event is an inverted duplication.
type IntraChrStrandSwitchComplications struct {
	Junction
	InvertedDup Duplication
}

// Kind implements Complications.
func (IntraChrStrandSwitchComplications) Kind() ComplicationKind { return KindIntraChrStrandSwitch }

// HasDuplicationAnnotation implements Complications.
func (c IntraChrStrandSwitchComplications) HasDuplicationAnnotation() bool {
	return !c.InvertedDup.IsZero()
}

// Duplication implements DuplicationComplications.
func (c IntraChrStrandSwitchComplications) Duplication() Duplication { return c.InvertedDup }

// Imprecise implements DuplicationComplications.
func (IntraChrStrandSwitchComplications) Imprecise() bool { return false }

func (c IntraChrStrandSwitchComplications) validate() error {
	if err := c.Junction.validate(); err != nil {
		return err
	}
	if c.InvertedDup.IsZero() {
		return nil
	}
	return c.InvertedDup.validate()
}

func (c IntraChrStrandSwitchComplications) encode(b *byteBuffer) {
	c.Junction.encode(b)
	b.PutBool(c.HasDuplicationAnnotation())
	if c.HasDuplicationAnnotation() {
		c.InvertedDup.encode(b)
	}
}

func (c IntraChrStrandSwitchComplications) String() string {
	if !c.HasDuplicationAnnotation() {
		return fmt.Sprintf("%v{homology=%q ins=%q}", c.Kind(), c.Homology, c.InsertedSequence)
	}
	return fmt.Sprintf("%v{homology=%q ins=%q inverted %v}", c.Kind(), c.Homology, c.InsertedSequence, c.InvertedDup)
}

// InterChromosomeComplications annotate a junction between two chromosomes.
type InterChromosomeComplications struct {
	Junction
}

// Kind implements Complications.
func (InterChromosomeComplications) Kind() ComplicationKind { return KindInterChromosome }

// HasDuplicationAnnotation implements Complications.
func (InterChromosomeComplications) HasDuplicationAnnotation() bool { return false }

func (c InterChromosomeComplications) validate() error { return c.Junction.validate() }

func (c InterChromosomeComplications) encode(b *byteBuffer) { c.Junction.encode(b) }

func (c InterChromosomeComplications) String() string {
	return fmt.Sprintf("%v{homology=%q ins=%q}", c.Kind(), c.Homology, c.InsertedSequence)
}

// IntraChrRefOrderSwapComplications annotate a junction where the contig
// visits two regions of one chromosome in the opposite of their reference
// order.
type IntraChrRefOrderSwapComplications struct {
	Junction
}

// Kind implements Complications.
func (IntraChrRefOrderSwapComplications) Kind() ComplicationKind { return KindIntraChrRefOrderSwap }

// HasDuplicationAnnotation implements Complications.
func (IntraChrRefOrderSwapComplications) HasDuplicationAnnotation() bool { return false }

func (c IntraChrRefOrderSwapComplications) validate() error { return c.Junction.validate() }

func (c IntraChrRefOrderSwapComplications) encode(b *byteBuffer) { c.Junction.encode(b) }

func (c IntraChrRefOrderSwapComplications) String() string {
	return fmt.Sprintf("%v{homology=%q ins=%q}", c.Kind(), c.Homology, c.InsertedSequence)
}

// encodeComplications writes the kind followed by the kind-specific fields,
// the whole prefixed by its length.
func encodeComplications(b *byteBuffer, c Complications) {
	var body byteBuffer
	body.PutInt32(int32(c.Kind()))
	c.encode(&body)
	b.PutBytes(body)
}

func decodeComplications(r *byteReader) (Complications, error) {
	body := r.Bytes("complications")
	if r.err != nil {
		return nil, r.err
	}
	br := &byteReader{buf: body}
	kind := ComplicationKind(br.Int32("complication kind"))
	var c Complications
	switch kind {
	case KindSimpleInsDel:
		c = SimpleInsDelComplications{Junction: decodeJunction(br)}
	case KindSmallDupPrecise:
		c = SmallDupPreciseComplications{
			Junction:                   decodeJunction(br),
			Dup:                        decodeDuplication(br),
			AnnotationFromOptimization: br.Bool("dup annotation from optimization"),
		}
	case KindSmallDupImprecise:
		c = SmallDupImpreciseComplications{
			Junction:         decodeJunction(br),
			Dup:              decodeDuplication(br),
			AffectedRefRange: br.Locus("affected reference range"),
		}
	case KindIntraChrStrandSwitch:
		sc := IntraChrStrandSwitchComplications{Junction: decodeJunction(br)}
		if br.Bool("inverted duplication flag") {
			sc.InvertedDup = decodeDuplication(br)
		}
		c = sc
	case KindInterChromosome:
		c = InterChromosomeComplications{Junction: decodeJunction(br)}
	case KindIntraChrRefOrderSwap:
		c = IntraChrRefOrderSwapComplications{Junction: decodeJunction(br)}
	default:
		if br.err != nil {
			return nil, br.err
		}
		return nil, errors.Errorf("decode complications: unknown kind %d", int32(kind))
	}
	if err := br.Done("complications"); err != nil {
		return nil, err
	}
	if err := c.validate(); err != nil {
		return nil, errors.Wrap(err, "decode complications")
	}
	return c, nil
}
