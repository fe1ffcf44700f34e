package svdiscovery

import (
	"encoding/binary"
	"math"

	gunsafe "github.com/grailbio/base/unsafe"
	"github.com/grailbio/svdiscovery/locus"
	"github.com/pkg/errors"
)

// byteBuffer accumulates the fixed-width big-endian fields of an encoded
// record.
type byteBuffer []byte

// Ensure that b can store at least "bytes" more bytes.
func (b *byteBuffer) alloc(bytes int) []byte {
	blen := len(*b)
	newLen := blen + bytes
	if cap(*b) >= newLen {
		(*b) = (*b)[:newLen]
		return (*b)[blen:]
	}
	newCap := (newLen/16 + 1) * 16
	if newCap < cap(*b)*2 {
		newCap = cap(*b) * 2
	}
	newBuf := make([]byte, newLen, newCap)
	copy(newBuf, *b)
	*b = newBuf
	return (*b)[blen:]
}

// PutBool adds one byte, 1 for true.
func (b *byteBuffer) PutBool(value bool) {
	var v byte
	if value {
		v = 1
	}
	(b.alloc(1))[0] = v
}

// PutInt32 adds the value as a big-endian fixed32.
func (b *byteBuffer) PutInt32(value int32) {
	binary.BigEndian.PutUint32(b.alloc(4), uint32(value))
}

// PutInt adds an int as a fixed32. Values that don't fit crash the process.
// NewNovelAdjacency rejects records with such values.
func (b *byteBuffer) PutInt(value int) {
	if value > math.MaxInt32 || value < math.MinInt32 {
		panic(errors.Errorf("byteBuffer.PutInt: %d overflows int32", value))
	}
	b.PutInt32(int32(value))
}

// PutBytes adds a fixed32 length followed by the data.
func (b *byteBuffer) PutBytes(data []byte) {
	b.PutInt(len(data))
	copy(b.alloc(len(data)), data)
}

// PutString adds a fixed32 length followed by the string.
func (b *byteBuffer) PutString(data string) {
	b.PutBytes(gunsafe.StringToBytes(data))
}

// PutLocus adds the contig, the start and the end of l.
func (b *byteBuffer) PutLocus(l locus.Locus) {
	b.PutString(l.Contig)
	b.PutInt(l.Start)
	b.PutInt(l.End)
}

// checkInt32 returns an error if one of the values doesn't fit in a fixed32
// field.
func checkInt32(what string, values ...int) error {
	for _, v := range values {
		if v > math.MaxInt32 || v < math.MinInt32 {
			return errors.Errorf("%s: %d overflows int32", what, v)
		}
	}
	return nil
}

// checkLocusInt32 returns an error if l can't be written by PutLocus.
func checkLocusInt32(what string, l locus.Locus) error {
	return checkInt32(what, len(l.Contig), l.Start, l.End)
}

// byteReader reads the fields written by byteBuffer. The first error is
// sticky: once set, all subsequent reads return zero values.
type byteReader struct {
	buf []byte
	err error
}

func (r *byteReader) take(n int, what string) []byte {
	if r.err != nil {
		return nil
	}
	if n < 0 || n > len(r.buf) {
		r.err = errors.Errorf("decode %s: need %d bytes, %d remaining", what, n, len(r.buf))
		return nil
	}
	v := r.buf[:n]
	r.buf = r.buf[n:]
	return v
}

// Bool reads one byte written by PutBool.
func (r *byteReader) Bool(what string) bool {
	v := r.take(1, what)
	if v == nil {
		return false
	}
	switch v[0] {
	case 0:
		return false
	case 1:
		return true
	}
	r.err = errors.Errorf("decode %s: invalid boolean byte %d", what, v[0])
	return false
}

// Int32 reads a big-endian fixed32.
func (r *byteReader) Int32(what string) int32 {
	v := r.take(4, what)
	if v == nil {
		return 0
	}
	return int32(binary.BigEndian.Uint32(v))
}

// Int reads a fixed32 as an int.
func (r *byteReader) Int(what string) int { return int(r.Int32(what)) }

// Bytes reads a length-prefixed byte sequence. The result aliases the input.
func (r *byteReader) Bytes(what string) []byte {
	n := r.Int(what)
	if r.err == nil && n < 0 {
		r.err = errors.Errorf("decode %s: negative length %d", what, n)
		return nil
	}
	return r.take(n, what)
}

// String reads a length-prefixed string.
func (r *byteReader) String(what string) string { return string(r.Bytes(what)) }

// Locus reads a locus written by PutLocus. The zero locus round-trips.
func (r *byteReader) Locus(what string) locus.Locus {
	l := locus.Locus{
		Contig: r.String(what),
		Start:  r.Int(what),
		End:    r.Int(what),
	}
	if r.err != nil || l.IsZero() {
		return locus.Locus{}
	}
	if _, err := locus.New(l.Contig, l.Start, l.End); err != nil {
		r.err = errors.Wrapf(err, "decode %s", what)
		return locus.Locus{}
	}
	return l
}

// Done reports an error if any read failed or if unread bytes remain.
func (r *byteReader) Done(what string) error {
	if r.err != nil {
		return r.err
	}
	if len(r.buf) != 0 {
		return errors.Errorf("decode %s: %d trailing bytes", what, len(r.buf))
	}
	return nil
}
