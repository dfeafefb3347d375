package nist

import (
	"encoding/binary"

	"github.com/minio/highwayhash"
	"github.com/zeebo/prng"
	"github.com/zeebo/prng/internal/bitutil"
)

// Sample is a fixed sequence of words drawn from a generator. Tests never
// modify it.
type Sample []uint32

// seeded is implemented by generators that can tell if they were seeded.
type seeded interface {
	Seeded() bool
}

// Draw captures the next n words from src. Generators that report Seeded
// must report false for a nil receiver.
func Draw(src prng.Source, n int) (Sample, error) {
	if src == nil {
		return nil, Error.New("nil source")
	}
	if n <= 0 {
		return nil, ErrInvalidSampleSize.New("%d words", n)
	}
	if s, ok := src.(seeded); ok && !s.Seeded() {
		return nil, ErrUnseededGenerator.New("draw of %d words", n)
	}

	out := make(Sample, n)
	for i := range out {
		out[i] = src.Uint32()
	}
	return out, nil
}

// Bits returns the number of bits in the sample.
func (s Sample) Bits() int { return len(s) * bitutil.WordBits }

// String renders the sample as a binary string, most significant bit of
// each word first.
func (s Sample) String() string { return bitutil.Binary(s) }

// fingerprintKey is a fixed highwayhash key. Fingerprints identify samples;
// they are not a MAC.
var fingerprintKey = []byte("prng/nist sample fingerprint key")

// Fingerprint returns a 64 bit digest of the sample. Equal samples have
// equal fingerprints.
func (s Sample) Fingerprint() uint64 {
	h, err := highwayhash.New64(fingerprintKey)
	if err != nil {
		// only possible with a key that is not 32 bytes
		panic(err)
	}
	var buf [4]byte
	for _, w := range s {
		binary.BigEndian.PutUint32(buf[:], w)
		h.Write(buf[:])
	}
	return h.Sum64()
}
