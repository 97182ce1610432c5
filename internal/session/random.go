package session

import "math/rand/v2"

// Rand is the randomness the generator draws from. IntN returns a value
// in [0, n). Tests substitute a deterministic source.
type Rand interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// DefaultRand returns the process-wide unseeded source.
func DefaultRand() Rand { return globalRand{} }
