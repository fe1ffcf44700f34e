package svdiscovery

// complement maps IUPAC bases to their complements, preserving case. Other
// bytes map to 'N'.
var complement [256]byte

func init() {
	for i := range complement {
		complement[i] = 'N'
	}
	pairs := []string{"AT", "CG", "RY", "KM", "BV", "DH", "NN", "SS", "WW"}
	for _, p := range pairs {
		a, b := p[0], p[1]
		complement[a], complement[b] = b, a
		complement[a+'a'-'A'], complement[b+'a'-'A'] = b+'a'-'A', a+'a'-'A'
	}
}

// reverseComplement computes a reverse complement of the given DNA string.
func reverseComplement(seq string) string {
	buf := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		buf[len(seq)-1-i] = complement[seq[i]]
	}
	return string(buf)
}
