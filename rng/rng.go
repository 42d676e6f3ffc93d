// Package rng provides the injectable random source used by every board
// operation. Nothing in the engine reaches for a global generator; passing a
// seeded Source makes fills, shuffles, and repair swaps reproducible.
package rng

import (
	"encoding/binary"

	"lukechampine.com/frand"
)

// A Source picks uniform random integers and permutations.
type Source interface {
	// Intn returns a uniform integer in [0, n). It panics if n <= 0.
	Intn(n int) int
	// Shuffle randomizes the order of n elements via the swap callback.
	Shuffle(n int, swap func(i, j int))
}

// NewSource returns a Source seeded from the operating system.
func NewSource() Source {
	return frand.New()
}

// NewSeededSource returns a deterministic Source. Two sources built with the
// same seed produce identical streams.
func NewSeededSource(seed uint64) Source {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:], seed)
	return frand.NewCustom(key[:], 1024, 12)
}
