package reference_test

import (
	"strings"
	"testing"

	"github.com/grailbio/svdiscovery/locus"
	"github.com/grailbio/svdiscovery/reference"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
)

const fastaData = ">seq1\n" + "ACGTA\nCGTAC\nGT\n" + ">seq2 A viral sequence\n" + "ACGT\n" + "ACGT\n"

func TestBases(t *testing.T) {
	tests := []struct {
		l    locus.Locus
		want string
		ok   bool
	}{
		{locus.Must("seq1", 2, 2), "C", true},
		{locus.Must("seq1", 2, 6), "CGTAC", true},
		{locus.Must("seq1", 1, 12), "ACGTACGTACGT", true},
		{locus.Must("seq1", 11, 12), "GT", true},
		{locus.Must("seq2", 1, 8), "ACGTACGT", true},
		{locus.Must("seq2", 3, 5), "GTA", true},
		{locus.Must("seq0", 1, 1), "", false},
		{locus.Must("seq1", 11, 13), "", false},
	}
	ref, err := reference.NewFASTA(strings.NewReader(fastaData))
	assert.NoError(t, err)
	for _, tt := range tests {
		got, err := ref.Bases(tt.l)
		if !tt.ok {
			expect.True(t, err != nil, "%v", tt.l)
			continue
		}
		expect.NoError(t, err)
		expect.EQ(t, string(got), tt.want)
	}
}

func TestDictionary(t *testing.T) {
	ref, err := reference.NewFASTA(strings.NewReader(fastaData))
	assert.NoError(t, err)
	dict := ref.Dictionary()
	expect.EQ(t, dict.Names(), []string{"seq1", "seq2"})
	expect.EQ(t, dict.Len(), 2)
	expect.EQ(t, dict.Index("seq2"), 1)
	expect.EQ(t, dict.Index("seq3"), -1)
	n, ok := dict.Length("seq1")
	expect.True(t, ok)
	expect.EQ(t, n, 12)
	c, err := dict.CompareContigs("seq2", "seq1")
	expect.NoError(t, err)
	expect.True(t, c > 0)
	_, err = dict.CompareContigs("seq1", "chrX")
	expect.True(t, err != nil)
}

func TestMalformedFASTA(t *testing.T) {
	for _, data := range []string{
		"",
		"ACGT\n>seq1\nACGT\n",
		">seq1\nACGT\n>seq1\nAC\n",
		">\nACGT\n",
	} {
		_, err := reference.NewFASTA(strings.NewReader(data))
		expect.True(t, err != nil, "%q", data)
	}
}

func TestDictionaryNamesAreCopied(t *testing.T) {
	dict, err := reference.NewDictionary([]string{"chr1", "chr2"}, []int{10, 20})
	assert.NoError(t, err)
	names := dict.Names()
	names[0], names[1] = names[1], names[0]
	expect.EQ(t, dict.Names(), []string{"chr1", "chr2"})
	cmp, err := dict.CompareContigs("chr1", "chr2")
	assert.NoError(t, err)
	expect.True(t, cmp < 0)
}

func TestNewDictionaryErrors(t *testing.T) {
	_, err := reference.NewDictionary([]string{"a"}, []int{1, 2})
	expect.True(t, err != nil)
	_, err = reference.NewDictionary([]string{"a", "a"}, []int{1, 2})
	expect.True(t, err != nil)
	_, err = reference.NewDictionary([]string{"a"}, []int{-1})
	expect.True(t, err != nil)
}
