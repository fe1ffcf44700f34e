// Package reference provides access to reference sequences: the contig
// dictionary and the bases covered by a locus.
//
// FASTA files consist of a number of named sequences that may be interrupted
// by newlines. Sequence names are defined to be the stretch of characters
// excluding spaces immediately after '>'; '>chr1 A viral sequence' becomes
// 'chr1'.
package reference

import (
	"bufio"
	"bytes"
	"io"

	"github.com/grailbio/svdiscovery/locus"
	"github.com/pkg/errors"
)

const bufferInitSize = 1024 * 1024 * 300 // 300 MB

// Source yields reference bases. Implementations must be safe for concurrent
// use.
type Source interface {
	// Bases returns the reference bases covered by l, in forward-strand
	// orientation. The caller must not modify the returned slice.
	Bases(l locus.Locus) ([]byte, error)

	// Dictionary returns the contig dictionary of the reference.
	Dictionary() *Dictionary
}

// FASTA is a Source that holds all the sequences of a FASTA file in memory.
type FASTA struct {
	seqs map[string][]byte
	dict *Dictionary
}

// NewFASTA reads the FASTA data from r into memory.
func NewFASTA(r io.Reader) (*FASTA, error) {
	var (
		seqs    = map[string][]byte{}
		names   []string
		lengths []int
		seqName string
		seq     bytes.Buffer
		started bool
	)
	flush := func() error {
		if !started {
			if seq.Len() != 0 {
				return errors.Errorf("malformed FASTA file: sequence data before the first header")
			}
			return nil
		}
		if seqName == "" {
			return errors.Errorf("malformed FASTA file: empty sequence name")
		}
		if _, ok := seqs[seqName]; ok {
			return errors.Errorf("malformed FASTA file: duplicate sequence %s", seqName)
		}
		b := make([]byte, seq.Len())
		copy(b, seq.Bytes())
		seqs[seqName] = b
		names = append(names, seqName)
		lengths = append(lengths, len(b))
		seq.Reset()
		return nil
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, bufferInitSize)
	for scanner.Scan() {
		line := bytes.TrimRight(scanner.Bytes(), "\r")
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' { // Start a new sequence.
			if err := flush(); err != nil {
				return nil, err
			}
			started = true
			seqName = string(bytes.SplitN(line[1:], []byte(" "), 2)[0])
		} else {
			seq.Write(line)
		}
	}
	if scanner.Err() != nil {
		return nil, errors.Wrap(scanner.Err(), "couldn't read FASTA data")
	}
	if err := flush(); err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, errors.Errorf("empty FASTA file")
	}
	dict, err := NewDictionary(names, lengths)
	if err != nil {
		return nil, err
	}
	return &FASTA{seqs: seqs, dict: dict}, nil
}

// Bases implements Source.Bases.
func (f *FASTA) Bases(l locus.Locus) ([]byte, error) {
	s, ok := f.seqs[l.Contig]
	if !ok {
		return nil, errors.Errorf("sequence not found: %s", l.Contig)
	}
	if l.Start < 1 || l.End < l.Start || l.End > len(s) {
		return nil, errors.Errorf("invalid query range %s for sequence %s with length %d",
			l, l.Contig, len(s))
	}
	return s[l.Start-1 : l.End], nil
}

// Dictionary implements Source.Dictionary.
func (f *FASTA) Dictionary() *Dictionary { return f.dict }
