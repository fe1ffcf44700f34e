package svdiscovery

import (
	"testing"

	"github.com/grailbio/svdiscovery/locus"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodecRoundTrip(t *testing.T) {
	for _, n := range testRecords(t) {
		data := Encode(n)
		got, err := Decode(data)
		require.NoError(t, err, "%v", n)
		assert.True(t, n.Equal(got), "%v\n%v", n, got)
		assert.Equal(t, n.Hash(), got.Hash())
		assert.Equal(t, data, Encode(got))
		assert.Equal(t, n.AltHaplotype().Present(), got.AltHaplotype().Present())
	}
}

func TestCodecLayout(t *testing.T) {
	n := newTestRecord(t, locus.Must("chr1", 100, 200), locus.Must("chr1", 250, 300), NoSwitch,
		insDel("AC"), SimpleDel, MakeAltHaplotype([]byte("G")))
	want := []byte{
		0, 0, 0, 4, 'c', 'h', 'r', '1', 0, 0, 0, 100, 0, 0, 0, 200, // left
		0, 0, 0, 4, 'c', 'h', 'r', '1', 0, 0, 0, 250, 0, 0, 1, 44, // right
		0, 0, 0, 0, // strand switch
		0, 0, 0, 14, // complications length
		0, 0, 0, 0, // complication kind
		0, 0, 0, 0, // homology
		0, 0, 0, 2, 'A', 'C', // inserted sequence
		0, 0, 0, 7, // type
		1, 0, 0, 0, 1, 'G', // alt haplotype
	}
	assert.Equal(t, want, Encode(n))
}

func TestDecodeDoesNotAlias(t *testing.T) {
	n := newTestRecord(t, locus.Must("chr1", 100, 100), locus.Must("chr1", 101, 101), NoSwitch,
		insDel("TTT"), SimpleIns, MakeAltHaplotype([]byte("ACGT")))
	data := Encode(n)
	got, err := Decode(data)
	require.NoError(t, err)
	for i := range data {
		data[i] = 'X'
	}
	assert.Equal(t, []byte("ACGT"), got.AltHaplotype().Bytes())
	assert.Equal(t, "TTT", got.Complications().InsertedSequenceForwardStrandRep())
}

func TestDecodeTruncated(t *testing.T) {
	for _, n := range testRecords(t) {
		data := Encode(n)
		for i := 0; i < len(data); i++ {
			_, err := Decode(data[:i])
			assert.Error(t, err, "%v truncated at %d", n, i)
		}
		_, err := Decode(append(data, 0))
		assert.Error(t, err, "%v with a trailing byte", n)
	}
}

func TestDecodeInvalid(t *testing.T) {
	l, r := locus.Must("chr1", 100, 100), locus.Must("chr1", 300, 300)
	encode := func(ss, kind, typ int32, flag bool) []byte {
		var b, body byteBuffer
		b.PutLocus(l)
		b.PutLocus(r)
		b.PutInt32(ss)
		body.PutInt32(kind)
		Junction{}.encode(&body)
		b.PutBytes(body)
		b.PutInt32(typ)
		b.PutBool(flag)
		if flag {
			b.PutBytes(nil)
		}
		return b
	}
	_, err := Decode(encode(int32(NoSwitch), int32(KindSimpleInsDel), int32(RPL), false))
	require.NoError(t, err)
	n, err := Decode(encode(int32(NoSwitch), int32(KindSimpleInsDel), int32(RPL), true))
	require.NoError(t, err)
	assert.True(t, n.AltHaplotype().Present())
	assert.Equal(t, 0, n.AltHaplotype().Len())

	for _, data := range [][]byte{
		encode(3, int32(KindSimpleInsDel), int32(RPL), false),
		encode(int32(NoSwitch), 99, int32(RPL), false),
		encode(int32(NoSwitch), -1, int32(RPL), false),
		encode(int32(NoSwitch), int32(KindSimpleInsDel), 13, false),
		encode(int32(NoSwitch), int32(KindSimpleInsDel), -1, false),
	} {
		_, err := Decode(data)
		assert.Error(t, err)
	}

	data := encode(int32(NoSwitch), int32(KindSimpleInsDel), int32(RPL), false)
	data[len(data)-1] = 2
	_, err = Decode(data)
	assert.Error(t, err)

	// Well-formed fields that describe different events.
	for _, typ := range []TypeInferred{SmallDupExpansion, IntraChrStrandSwitch55, InterChrStrandSwitch33} {
		_, err = Decode(encode(int32(NoSwitch), int32(KindSimpleInsDel), int32(typ), false))
		require.Error(t, err, "%v", typ)
		assert.Equal(t, ErrInconsistentBreakpoints, errors.Cause(err), "%v", typ)
	}

	// Loci that aren't left-justified.
	var b byteBuffer
	b.PutLocus(r)
	b.PutLocus(l)
	b.PutInt32(int32(NoSwitch))
	encodeComplications(&b, insDel(""))
	b.PutInt32(int32(RPL))
	b.PutBool(false)
	_, err = Decode(b)
	assert.Error(t, err)
}
