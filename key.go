package zkschnorr

import (
	"fmt"

	"github.com/bwesterb/go-ristretto"
)

const VerificationKeySize = 64

// VerificationKey is the public half of a key pair: a key-specific base
// G = r·B and the commitment H = x·G to the secret scalar x. Both points stay
// compressed; a bad encoding is only noticed when a signature is verified.
type VerificationKey struct {
	G CompressedRistretto
	H CompressedRistretto
}

func NewVerificationKey(g, h CompressedRistretto) VerificationKey {
	return VerificationKey{G: g, H: h}
}

// VerificationKeyFromSecret derives the key for secret scalar privkey and
// randomization scalar r.
func VerificationKeyFromSecret(privkey, r *ristretto.Scalar) VerificationKey {
	g := KeyBase(r)
	var h ristretto.Point
	h.ScalarMult(g, privkey)
	return NewVerificationKey(CompressPoint(g), CompressPoint(&h))
}

// KeyBase returns r·B, the decompressed G of a key built with r.
func KeyBase(r *ristretto.Scalar) *ristretto.Point {
	var g ristretto.Point
	return g.ScalarMultBase(r)
}

func (vk VerificationKey) Points() (CompressedRistretto, CompressedRistretto) {
	return vk.G, vk.H
}

// ToBytes returns G followed by H.
func (vk VerificationKey) ToBytes() []byte {
	buf := make([]byte, 0, VerificationKeySize)
	buf = append(buf, vk.G[:]...)
	buf = append(buf, vk.H[:]...)
	return buf
}

func (vk VerificationKey) ToArray() [VerificationKeySize]byte {
	var buf [VerificationKeySize]byte
	copy(buf[:32], vk.G[:])
	copy(buf[32:], vk.H[:])
	return buf
}

// VerificationKeyFromBytes splits buf into G and H without decompressing them.
func VerificationKeyFromBytes(buf []byte) (VerificationKey, error) {
	if len(buf) != VerificationKeySize {
		return VerificationKey{}, fmt.Errorf("%w: %d bytes", ErrInvalidKeyLength, len(buf))
	}
	var vk VerificationKey
	copy(vk.G[:], buf[:32])
	copy(vk.H[:], buf[32:])
	return vk, nil
}
