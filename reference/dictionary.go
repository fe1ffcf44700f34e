package reference

import (
	"github.com/pkg/errors"
)

// Dictionary lists the contigs of a reference in their canonical order, along
// with their lengths. It plays the role of a SAM sequence dictionary.
type Dictionary struct {
	names   []string
	lengths []int
	index   map[string]int
}

// NewDictionary creates a dictionary from parallel slices of contig names and
// lengths. The order of names defines the contig order.
func NewDictionary(names []string, lengths []int) (*Dictionary, error) {
	if len(names) != len(lengths) {
		return nil, errors.Errorf("dictionary: %d names but %d lengths", len(names), len(lengths))
	}
	d := &Dictionary{
		names:   make([]string, len(names)),
		lengths: make([]int, len(lengths)),
		index:   make(map[string]int, len(names)),
	}
	copy(d.names, names)
	copy(d.lengths, lengths)
	for i, name := range names {
		if name == "" {
			return nil, errors.Errorf("dictionary: empty contig name at index %d", i)
		}
		if _, ok := d.index[name]; ok {
			return nil, errors.Errorf("dictionary: duplicate contig %s", name)
		}
		if lengths[i] < 0 {
			return nil, errors.Errorf("dictionary: negative length %d for contig %s", lengths[i], name)
		}
		d.index[name] = i
	}
	return d, nil
}

// Len returns the number of contigs.
func (d *Dictionary) Len() int { return len(d.names) }

// Names returns a copy of the contig names in dictionary order.
func (d *Dictionary) Names() []string {
	names := make([]string, len(d.names))
	copy(names, d.names)
	return names
}

// Index returns the position of the contig in the dictionary, or -1 if the
// contig is unknown.
func (d *Dictionary) Index(name string) int {
	if i, ok := d.index[name]; ok {
		return i
	}
	return -1
}

// Length returns the length of the contig.
func (d *Dictionary) Length(name string) (int, bool) {
	i, ok := d.index[name]
	if !ok {
		return 0, false
	}
	return d.lengths[i], true
}

// CompareContigs returns (negative int, 0, positive int) if contig a comes
// (before, at the same place as, after) contig b in the dictionary. Unknown
// contigs produce an error.
func (d *Dictionary) CompareContigs(a, b string) (int, error) {
	ia, ib := d.Index(a), d.Index(b)
	if ia < 0 {
		return 0, errors.Errorf("contig %s not found in reference dictionary", a)
	}
	if ib < 0 {
		return 0, errors.Errorf("contig %s not found in reference dictionary", b)
	}
	return ia - ib, nil
}
