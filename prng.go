// Package prng describes the contract shared by the deterministic 32-bit
// generators in lcg and mt19937, and consumed by the statistical tests in
// nist.
//
// None of the generators are suitable for cryptographic use.
package prng

import "github.com/cespare/xxhash"

// Source produces a stream of 32-bit words.
type Source interface {
	Uint32() uint32
}

// Seeder resets a generator's state from a seed. Reseeding with the same
// value restarts the same stream.
type Seeder interface {
	Seed(seed uint32)
}

// Generator is a seedable Source. It is not safe for concurrent use.
type Generator interface {
	Source
	Seeder
}

// SeedOf derives a stable seed from a label, so that runs can be named
// rather than numbered.
func SeedOf(label string) uint32 {
	h := xxhash.Sum64([]byte(label))
	return uint32(h>>32) ^ uint32(h)
}
