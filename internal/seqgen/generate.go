// Package seqgen creates mock DNA sequences: a random run of nucleotides
// with a user supplied label spliced in at a random position, saved as a
// single FASTA record
package seqgen

import (
	"math/rand"
	"time"
)

// bases is the nucleotide alphabet, in report order
const bases = "ACGT"

// NewRand returns a random source built from the seed.
// A seed of 0 means seed from the current time
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// GenerateSequence returns a string of length bases, each drawn
// uniformly from A/C/G/T. length must be positive (caller enforced)
func GenerateSequence(length int, rnd *rand.Rand) string {
	seq := make([]byte, length)
	for i := range seq {
		seq[i] = bases[rnd.Intn(len(bases))]
	}
	return string(seq)
}

// InsertLabel splices label into seq at a position drawn uniformly from
// [0, len(seq)] and returns the combined sequence along with the chosen
// position. The characters of seq and their order are preserved
func InsertLabel(seq, label string, rnd *rand.Rand) (string, int) {
	pos := rnd.Intn(len(seq) + 1)
	return seq[:pos] + label + seq[pos:], pos
}
