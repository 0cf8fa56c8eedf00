// Package random provides the randomness used by the game: a small Source
// interface, seeded generators for deterministic play, and crypto-backed seeds.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"time"
)

// Source yields uniformly distributed integers in [0, n).
// *rand.Rand satisfies it; tests substitute fixed sequences.
type Source interface {
	Intn(n int) int
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("random: read seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// New returns a generator seeded with seed.
// A zero seed means "pick one": crypto/rand first, wall clock as fallback.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		s, err := NewSeed()
		if err != nil {
			s = time.Now().UnixNano()
		}
		seed = s
	}
	return rand.New(rand.NewSource(seed))
}

// Square draws a grid value in [1, 100].
func Square(src Source) int {
	return src.Intn(100) + 1
}
