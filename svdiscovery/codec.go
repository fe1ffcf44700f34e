package svdiscovery

import (
	"github.com/pkg/errors"
)

// Encode serializes n. The layout is, in order, with big-endian fixed32
// integers and fixed32-length-prefixed strings:
//
//   left locus (contig, start, end)
//   right locus (contig, start, end)
//   strand switch ordinal
//   complications, length-prefixed: kind ordinal then kind-specific fields
//   type ordinal
//   alt haplotype presence byte (1 if present), then if present the
//   length-prefixed sequence
//
// The layout carries no version. It is meant for checkpoints that are read
// back by the same build.
func Encode(n *NovelAdjacency) []byte {
	b := byteBuffer(make([]byte, 0, 128+n.altHaplotype.Len()))
	b.PutLocus(n.left)
	b.PutLocus(n.right)
	b.PutInt32(int32(n.strandSwitch))
	encodeComplications(&b, n.complications)
	b.PutInt32(int32(n.typ))
	b.PutBool(n.altHaplotype.present)
	if n.altHaplotype.present {
		b.PutBytes(n.altHaplotype.seq)
	}
	return b
}

// Decode parses data produced by Encode. It fails on truncated data, trailing
// bytes, unknown ordinals and fields that NewNovelAdjacency would reject.
func Decode(data []byte) (*NovelAdjacency, error) {
	r := &byteReader{buf: data}
	left := r.Locus("left locus")
	right := r.Locus("right locus")
	ss := StrandSwitch(r.Int32("strand switch"))
	if r.err != nil {
		return nil, r.err
	}
	c, err := decodeComplications(r)
	if err != nil {
		return nil, err
	}
	typ := TypeInferred(r.Int32("type"))
	alt := NoAltHaplotype
	if r.Bool("alt haplotype flag") {
		alt = AltHaplotype{seq: r.Bytes("alt haplotype"), present: true}
	}
	if err := r.Done("novel adjacency"); err != nil {
		return nil, err
	}
	// NewNovelAdjacency copies alt, so the result doesn't alias data.
	n, err := NewNovelAdjacency(left, right, ss, c, typ, alt)
	if err != nil {
		return nil, errors.Wrap(err, "decode novel adjacency")
	}
	return n, nil
}
