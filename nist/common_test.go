package nist

import (
	"math"
	"testing"
)

// fixed is a source that replays words and then repeats the last one.
type fixed struct {
	words []uint32
	pos   int
}

func (f *fixed) Uint32() uint32 {
	w := f.words[f.pos]
	if f.pos < len(f.words)-1 {
		f.pos++
	}
	return w
}

// unseeded is a source that reports it was never seeded.
type unseeded struct{}

func (unseeded) Uint32() uint32 { return 0 }
func (unseeded) Seeded() bool   { return false }

func alternating(n int) Sample {
	s := make(Sample, n)
	for i := range s {
		if i%2 == 0 {
			s[i] = 0xFFFFFFFF
		}
	}
	return s
}

func assertClose(t testing.TB, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("got %.12f want %.12f", got, want)
	}
}
