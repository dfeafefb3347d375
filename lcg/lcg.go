package lcg

import "github.com/zeebo/prng/internal/bitutil"

// Constants of the generator. The modulus is 2^32, implied by uint32
// arithmetic.
const (
	A = 22695477
	C = 12345
)

// T is a 32-bit linear congruential generator. The zero value starts from
// a value of zero but reports itself as unseeded. It is not safe for
// concurrent use.
type T struct {
	value  uint32
	seeded bool
}

// New constructs a generator seeded with seed.
func New(seed uint32) T {
	return T{
		value:  seed,
		seeded: true,
	}
}

// Seed resets the generator so that the next output is computed from seed.
func (l *T) Seed(seed uint32) {
	l.value = seed
	l.seeded = true
}

// Seeded returns true if the generator was given a seed. A nil generator
// is unseeded.
func (l *T) Seeded() bool { return l != nil && l.seeded }

// Uint32 advances the generator one step and returns the new value.
func (l *T) Uint32() uint32 {
	l.value = bitutil.MulAdd(A, l.value, C)
	return l.value
}
