//go:build gofuzz
// +build gofuzz

package mt19937

import "encoding/binary"

func Fuzz(data []byte) int {
	if len(data) < 4 {
		return 0
	}
	seed := binary.BigEndian.Uint32(data[0:4])
	count := int(len(data)-4) * 8

	t1, t2 := New(seed), New(seed)
	for i := 0; i < count; i++ {
		if t1.Uint32() != t2.Uint32() {
			panic("diverged with equal seeds")
		}
	}

	t1.Seed(seed)
	if t1.Uint32() != New(seed).Uint32() {
		panic("reseed did not restart the stream")
	}
	return 1
}
