package seqgen

// Stats is the nucleotide composition of a sequence.
type Stats struct {
	// Counts is the number of occurrences of each base
	Counts map[byte]int

	// Percent is each base's share, in percent, of the counted characters
	Percent map[byte]float64

	// CGPercent is the percentage of C plus the percentage of G
	CGPercent float64

	// ATRatio is count(C)+count(G) over count(A)+count(T),
	// 0 when there are no A or T characters
	ATRatio float64
}

// Calc scans seq and returns its nucleotide composition. Characters
// outside A/C/G/T are skipped. An embedded label is not distinguished
// from the sequence proper: any A/C/G/T characters it contains are
// counted like the rest
func Calc(seq string) Stats {
	s := Stats{
		Counts:  map[byte]int{},
		Percent: map[byte]float64{},
	}
	for _, b := range []byte(bases) {
		s.Counts[b] = 0
	}

	total := 0
	for i := 0; i < len(seq); i++ {
		switch b := seq[i]; b {
		case 'A', 'C', 'G', 'T':
			s.Counts[b]++
			total++
		}
	}

	if total == 0 {
		return s
	}

	for _, b := range []byte(bases) {
		s.Percent[b] = float64(s.Counts[b]) / float64(total) * 100
	}
	s.CGPercent = s.Percent['C'] + s.Percent['G']

	if at := s.Counts['A'] + s.Counts['T']; at > 0 {
		s.ATRatio = float64(s.Counts['C']+s.Counts['G']) / float64(at)
	}

	return s
}
