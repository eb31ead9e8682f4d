// Package gen builds random test sequences.
package gen

import (
	"math/rand"
	"time"
)

// DefaultAlphabet matches the nucleotide alphabet used for benchmark data.
const DefaultAlphabet = "gatc"

// Generator produces randomized sequences. Not safe for concurrent use;
// give each goroutine its own.
type Generator struct {
	rnd      *rand.Rand
	alphabet []byte
}

// New returns a Generator over alphabet. seed 0 means seed from the clock.
func New(seed int64, alphabet string) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if alphabet == "" {
		alphabet = DefaultAlphabet
	}
	return &Generator{
		rnd:      rand.New(rand.NewSource(seed)),
		alphabet: []byte(alphabet),
	}
}

// Sequence returns one random sequence of the given length.
func (g *Generator) Sequence(length int) []byte {
	seq := make([]byte, length)
	for i := range seq {
		seq[i] = g.alphabet[g.rnd.Intn(len(g.alphabet))]
	}
	return seq
}

// Sequences returns n random sequences, each of the given length.
func (g *Generator) Sequences(n, length int) [][]byte {
	out := make([][]byte, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, g.Sequence(length))
	}
	return out
}
