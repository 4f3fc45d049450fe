package zkschnorr

import (
	"encoding/hex"
	"errors"
	"log"
	"testing"

	"github.com/gtank/ristretto255"
	"github.com/stretchr/testify/assert"
)

func TestVerificationKeyFromSecret(t *testing.T) {
	assert := assert.New(t)

	privkey := uint64ToScalar(1)
	r := uint64ToScalar(10987)
	vk := VerificationKeyFromSecret(privkey, r)
	log.Println("G:", vk.G, "H:", vk.H)

	// x = 1 makes H the same point as G
	assert.Equal(vk.G, vk.H)
	assert.Equal(CompressPoint(KeyBase(r)), vk.G)

	g, h := vk.Points()
	assert.Equal(vk, NewVerificationKey(g, h))

	other := VerificationKeyFromSecret(uint64ToScalar(2), r)
	assert.Equal(vk.G, other.G)
	assert.NotEqual(vk.H, other.H)
	assert.NotEqual(vk, other)
}

// Encodings produced here must be the canonical ristretto255 encodings, so
// that byte equality of keys is point equality.
func TestVerificationKeyCanonical(t *testing.T) {
	assert := assert.New(t)

	privkey := uint64ToScalar(11111)
	r := uint64ToScalar(22222)
	vk := VerificationKeyFromSecret(privkey, r)

	var rBytes, xBytes [32]byte
	copy(rBytes[:], r.Bytes())
	copy(xBytes[:], privkey.Bytes())

	rs := ristretto255.NewScalar()
	assert.Nil(rs.Decode(rBytes[:]))
	xs := ristretto255.NewScalar()
	assert.Nil(xs.Decode(xBytes[:]))

	g := ristretto255.NewElement().ScalarBaseMult(rs)
	h := ristretto255.NewElement().ScalarMult(xs, g)
	assert.Equal(hex.EncodeToString(g.Encode(nil)), vk.G.String())
	assert.Equal(hex.EncodeToString(h.Encode(nil)), vk.H.String())

	for _, p := range []CompressedRistretto{vk.G, vk.H} {
		e := ristretto255.NewElement()
		assert.Nil(e.Decode(p[:]))
		assert.NotNil(p.Decompress())
	}
}

func TestNonCanonicalPointEncoding(t *testing.T) {
	assert := assert.New(t)

	vk := VerificationKeyFromSecret(uint64ToScalar(3), uint64ToScalar(5))

	// canonical encodings are never "negative", so the low bit is clear
	flipped := vk
	flipped.G[0] ^= 1
	assert.NotEqual(vk, flipped)
	assert.Nil(flipped.G.Decompress())
	assert.NotNil(ristretto255.NewElement().Decode(flipped.G[:]))

	// p itself reduces to zero but is not the canonical identity encoding
	p, err := hex.DecodeString("edffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff7f")
	assert.Nil(err)
	var c CompressedRistretto
	copy(c[:], p)
	assert.Nil(c.Decompress())

	var identity CompressedRistretto
	assert.NotNil(identity.Decompress())
}

func TestVerificationKeySerialization(t *testing.T) {
	assert := assert.New(t)

	vk := VerificationKeyFromSecret(uint64ToScalar(11111), uint64ToScalar(22222))

	buf := vk.ToBytes()
	assert.Len(buf, VerificationKeySize)
	assert.Equal(vk.G[:], buf[:32])
	assert.Equal(vk.H[:], buf[32:])

	decoded, err := VerificationKeyFromBytes(buf)
	assert.Nil(err)
	assert.Equal(vk, decoded)

	array := vk.ToArray()
	decoded, err = VerificationKeyFromBytes(array[:])
	assert.Nil(err)
	assert.Equal(vk, decoded)

	_, err = VerificationKeyFromBytes(make([]byte, 63))
	assert.True(errors.Is(err, ErrInvalidKeyLength))
	_, err = VerificationKeyFromBytes(make([]byte, 65))
	assert.True(errors.Is(err, ErrInvalidKeyLength))
	_, err = VerificationKeyFromBytes(nil)
	assert.True(errors.Is(err, ErrInvalidKeyLength))
}

func TestVerificationKeyDeferredValidation(t *testing.T) {
	assert := assert.New(t)

	buf := make([]byte, VerificationKeySize)
	for i := range buf {
		buf[i] = 0xff
	}
	vk, err := VerificationKeyFromBytes(buf)
	assert.Nil(err)
	assert.Nil(vk.G.Decompress())
	assert.Nil(vk.H.Decompress())
}

func TestVerificationKeyText(t *testing.T) {
	assert := assert.New(t)

	vk := VerificationKeyFromSecret(uint64ToScalar(42), uint64ToScalar(123))

	text, err := vk.MarshalText()
	assert.Nil(err)
	assert.Equal(vk.String(), string(text))

	var decoded VerificationKey
	assert.Nil(decoded.UnmarshalText(text))
	assert.Equal(vk, decoded)

	bin, err := vk.MarshalBinary()
	assert.Nil(err)
	decoded = VerificationKey{}
	assert.Nil(decoded.UnmarshalBinary(bin))
	assert.Equal(vk, decoded)

	assert.NotNil(decoded.UnmarshalText([]byte("0OIl")))
	assert.True(errors.Is(decoded.UnmarshalBinary(bin[:10]), ErrInvalidKeyLength))
}
