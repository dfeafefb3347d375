// Package mt19937 implements the 32-bit Mersenne Twister with the reference
// MT19937 parameters.
//
// The generator is not cryptographically secure: 624 consecutive outputs are
// enough to recover the entire state.
package mt19937

import (
	"github.com/zeebo/prng/internal/bitutil"
	"github.com/zeebo/prng/internal/debug"
)

// Parameters of MT19937.
const (
	W = 32         // word size
	N = 624        // degree of recurrence
	M = 397        // middle word offset
	R = 31         // separation point of a word
	A = 0x9908B0DF // twist matrix coefficients

	F = 1812433253 // seeding multiplier

	// DefaultSeed is used when the generator is read before being seeded.
	DefaultSeed = 5489
)

const (
	lowerMask = 1<<R - 1
	upperMask = ^uint32(lowerMask)

	temperU, temperD = 11, 0xFFFFFFFF
	temperS, temperB = 7, 0x9D2C5680
	temperT, temperC = 15, 0xEFC60000
	temperL          = 18
)

// T is a Mersenne Twister. The zero value seeds itself with DefaultSeed on
// first use. It is not safe for concurrent use.
type T struct {
	state  [N]uint32
	index  int
	ready  bool // state holds a seeded array
	seeded bool // Seed was called
	twists uint64
}

// New constructs a twister seeded with seed.
func New(seed uint32) *T {
	t := new(T)
	t.Seed(seed)
	return t
}

// Seed initializes the state array from seed. The next call to Uint32 will
// twist.
func (t *T) Seed(seed uint32) {
	t.state[0] = seed
	for i := 1; i < N; i++ {
		prev := t.state[i-1]
		t.state[i] = bitutil.MulAdd(F, prev^(prev>>(W-2)), uint32(i))
	}
	t.index = N
	t.ready = true
	t.seeded = true
}

// Seeded returns true if the twister was explicitly seeded. A nil twister
// is unseeded.
func (t *T) Seeded() bool { return t != nil && t.seeded }

// Twists returns how many times the state array has been regenerated.
func (t *T) Twists() uint64 { return t.twists }

// twist regenerates the state array in place. Words with i+M >= N read
// values that were already twisted earlier in the same pass, which is the
// reference recurrence.
func (t *T) twist() {
	for i := 0; i < N; i++ {
		x := t.state[i]&upperMask | t.state[(i+1)%N]&lowerMask
		xA := x >> 1
		if x&1 != 0 {
			xA ^= A
		}
		t.state[i] = t.state[(i+M)%N] ^ xA
	}
	t.index = 0
	t.twists++
}

// Uint32 returns the next tempered output.
func (t *T) Uint32() uint32 {
	if !t.ready {
		t.Seed(DefaultSeed)
		t.seeded = false
	}

	debug.Assert("index in range", func() bool { return t.index <= N })
	if t.index == N {
		t.twist()
	}

	y := t.state[t.index]
	y ^= (y >> temperU) & temperD
	y ^= (y << temperS) & temperB
	y ^= (y << temperT) & temperC
	y ^= y >> temperL

	t.index++
	return y
}
