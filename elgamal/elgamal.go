// Package elgamal is a small demonstration of ElGamal encryption over the
// multiplicative group of a prime field. It does not pick safe primes or
// generators of large prime order subgroups, and is not meant for real use.
package elgamal

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/zeebo/errs"
)

// Error is the class that contains all the errors from this package.
var Error = errs.Class("elgamal")

// minBits is the smallest modulus size GenerateKey accepts.
const minBits = 16

var (
	one   = big.NewInt(1)
	two   = big.NewInt(2)
	three = big.NewInt(3)
)

// PublicKey is the modulus P, the base G, and H = G^X mod P.
type PublicKey struct {
	P, G, H *big.Int
}

// PrivateKey holds the secret exponent X alongside the public key.
type PrivateKey struct {
	PublicKey
	X *big.Int
}

// NextPrime returns the smallest probable prime strictly greater than n.
func NextPrime(n *big.Int) *big.Int {
	if n.Cmp(two) < 0 {
		return big.NewInt(2)
	}

	p := new(big.Int).Add(n, one)
	if p.Bit(0) == 0 && p.Cmp(two) != 0 {
		p.Add(p, one)
	}
	for !p.ProbablyPrime(20) {
		p.Add(p, two)
	}
	return p
}

// randRange returns a uniform value in [2, p-2].
func randRange(random io.Reader, p *big.Int) (*big.Int, error) {
	v, err := rand.Int(random, new(big.Int).Sub(p, three))
	if err != nil {
		return nil, Error.Wrap(err)
	}
	return v.Add(v, two), nil
}

// GenerateKey creates a key whose modulus is the first prime after a random
// number of the given bit length.
func GenerateKey(random io.Reader, bits int) (*PrivateKey, error) {
	if bits < minBits {
		return nil, Error.New("modulus too small: %d bits", bits)
	}

	start, err := rand.Int(random, new(big.Int).Lsh(one, uint(bits)))
	if err != nil {
		return nil, Error.Wrap(err)
	}
	start.SetBit(start, bits-1, 1)
	p := NextPrime(start)

	g, err := randRange(random, p)
	if err != nil {
		return nil, err
	}
	x, err := randRange(random, p)
	if err != nil {
		return nil, err
	}

	return &PrivateKey{
		PublicKey: PublicKey{
			P: p,
			G: g,
			H: new(big.Int).Exp(g, x, p),
		},
		X: x,
	}, nil
}

// Encrypt encrypts msg, which must be in [0, P), with a fresh ephemeral
// exponent read from random.
func Encrypt(random io.Reader, pub *PublicKey, msg *big.Int) (c1, c2 *big.Int, err error) {
	if msg.Sign() < 0 || msg.Cmp(pub.P) >= 0 {
		return nil, nil, Error.New("message out of range for %d bit modulus", pub.P.BitLen())
	}

	y, err := randRange(random, pub.P)
	if err != nil {
		return nil, nil, err
	}

	s := new(big.Int).Exp(pub.H, y, pub.P)
	c1 = new(big.Int).Exp(pub.G, y, pub.P)
	c2 = s.Mul(s, msg).Mod(s, pub.P)
	return c1, c2, nil
}

// Decrypt recovers the message from the ciphertext pair.
func Decrypt(priv *PrivateKey, c1, c2 *big.Int) (*big.Int, error) {
	s := new(big.Int).Exp(c1, priv.X, priv.P)
	inv := new(big.Int).ModInverse(s, priv.P)
	if inv == nil {
		return nil, Error.New("shared secret not invertible")
	}
	return inv.Mul(inv, c2).Mod(inv, priv.P), nil
}

// EncryptBytes encrypts data read as a big-endian integer. Leading zero
// bytes do not survive the round trip.
func EncryptBytes(random io.Reader, pub *PublicKey, data []byte) (c1, c2 *big.Int, err error) {
	return Encrypt(random, pub, new(big.Int).SetBytes(data))
}

// DecryptBytes decrypts the ciphertext pair into big-endian bytes.
func DecryptBytes(priv *PrivateKey, c1, c2 *big.Int) ([]byte, error) {
	msg, err := Decrypt(priv, c1, c2)
	if err != nil {
		return nil, err
	}
	return msg.Bytes(), nil
}
