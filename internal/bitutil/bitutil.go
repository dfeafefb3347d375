package bitutil

import "math/bits"

// WordBits is the width of every word the generators produce.
const WordBits = 32

// MulAdd returns a*x + c modulo 2^32.
func MulAdd(a, x, c uint32) uint32 { return a*x + c }

// Popcount returns the number of set bits in w.
func Popcount(w uint32) int { return bits.OnesCount32(w) }

// Excess returns twice the excess of set bits over half the word, which is
// the signed contribution of w to a ±1 bit sum.
func Excess(w uint32) int { return 2*bits.OnesCount32(w) - WordBits }

// Bit returns the i'th bit of w counting from the most significant bit, as
// +1 when set and -1 when clear.
func Bit(w uint32, i uint) int {
	return int(w>>(WordBits-1-i)&1)*2 - 1
}

// AppendBinary appends the zero padded, most significant bit first binary
// rendering of w to dst.
func AppendBinary(dst []byte, w uint32) []byte {
	for i := uint(0); i < WordBits; i++ {
		dst = append(dst, '0'+byte(w>>(WordBits-1-i)&1))
	}
	return dst
}

// Binary renders the words as one concatenated binary string.
func Binary(words []uint32) string {
	buf := make([]byte, 0, len(words)*WordBits)
	for _, w := range words {
		buf = AppendBinary(buf, w)
	}
	return string(buf)
}
