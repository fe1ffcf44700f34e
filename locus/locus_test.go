package locus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		contig     string
		start, end int
		ok         bool
	}{
		{"chr1", 1, 1, true},
		{"chr1", 100, 200, true},
		{"", 1, 2, false},
		{"chr1", 0, 2, false},
		{"chr1", 5, 4, false},
	}
	for _, test := range tests {
		l, err := New(test.contig, test.start, test.end)
		if !test.ok {
			assert.Error(t, err, "%+v", test)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, Locus{test.contig, test.start, test.end}, l)
	}
}

func TestCompare(t *testing.T) {
	a := Must("chr1", 100, 200)
	b := Must("chr1", 250, 300)
	c := Must("chr2", 1, 10)
	assert.True(t, a.LT(b))
	assert.False(t, b.LT(a))
	assert.True(t, a.LT(c))
	assert.True(t, b.LT(c))
	assert.Equal(t, 0, a.Compare(Must("chr1", 100, 200)))
	assert.True(t, a.LT(Must("chr1", 100, 201)))
}

func TestSize(t *testing.T) {
	a := Must("chr1", 100, 200)
	assert.Equal(t, 101, a.Size())
	assert.Equal(t, 0, Locus{}.Size())
	assert.True(t, Locus{}.IsZero())
	assert.False(t, a.IsZero())
	assert.Equal(t, "chr1:100-200", a.String())
}
