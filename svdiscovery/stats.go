package svdiscovery

// Stats counts the SV calls produced by Classify.
type Stats struct {
	// Records is the # of records classified.
	Records int
	// Deletions, Insertions, TandemDups and InvertedDups count simple SV calls.
	Deletions    int
	Insertions   int
	TandemDups   int
	InvertedDups int
	// BreakEnds counts breakend mates. Each pair counts as two.
	BreakEnds int
	// Replacements is the # of records that produced both a deletion and an
	// insertion.
	Replacements int
}

// Add updates the stats with the calls derived from one record.
func (s *Stats) Add(calls []SVType) {
	s.Records++
	for _, c := range calls {
		switch c.Kind() {
		case Deletion:
			s.Deletions++
		case Insertion:
			s.Insertions++
		case DuplicationTandem:
			s.TandemDups++
		case DuplicationInverted:
			s.InvertedDups++
		case BreakEndKind:
			s.BreakEnds++
		}
	}
	if len(calls) == 2 && calls[0].Kind() == Deletion && calls[1].Kind() == Insertion {
		s.Replacements++
	}
}

// Merge adds the field values of the two Stats objects and creates new Stats.
func (s Stats) Merge(o Stats) Stats {
	s.Records += o.Records
	s.Deletions += o.Deletions
	s.Insertions += o.Insertions
	s.TandemDups += o.TandemDups
	s.InvertedDups += o.InvertedDups
	s.BreakEnds += o.BreakEnds
	s.Replacements += o.Replacements
	return s
}
