package zkschnorr

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/bwesterb/go-ristretto"
	"github.com/stretchr/testify/assert"
)

func TestCompressedScalar(t *testing.T) {
	assert := assert.New(t)

	s := uint64ToScalar(10987)
	c := CompressScalar(s)
	assert.True(c.Decompress().Equals(s))
	assert.Equal(s.Bytes(), c.Bytes())

	var order CompressedScalar
	copy(order[:], groupOrder[:])
	assert.Nil(order.Decompress())

	below := order
	below[0]--
	assert.NotNil(below.Decompress())

	var ones CompressedScalar
	for i := range ones {
		ones[i] = 0xff
	}
	assert.Nil(ones.Decompress())
}

func TestCompressedRistretto(t *testing.T) {
	assert := assert.New(t)

	var base ristretto.Point
	base.SetBase()
	c := CompressPoint(&base)
	assert.True(c.Decompress().Equals(&base))
	assert.Equal(base.Bytes(), c.Bytes())
	assert.Len(c.String(), 64)
}

func TestRandomScalar(t *testing.T) {
	assert := assert.New(t)

	a, err := RandomScalar(rand.Reader)
	assert.Nil(err)
	b, err := RandomScalar(rand.Reader)
	assert.Nil(err)
	assert.False(a.Equals(b))

	_, err = RandomScalar(bytes.NewReader(make([]byte, 63)))
	assert.NotNil(err)
}

func TestMultiscalarMul(t *testing.T) {
	assert := assert.New(t)

	var base ristretto.Point
	base.SetBase()
	two := uint64ToScalar(2)
	three := uint64ToScalar(3)

	var five ristretto.Point
	five.ScalarMultBase(uint64ToScalar(5))
	sum := multiscalarMul([]*ristretto.Scalar{two, three}, []*ristretto.Point{&base, &base})
	assert.True(sum.Equals(&five))

	assert.Nil(multiscalarMul([]*ristretto.Scalar{two, three}, []*ristretto.Point{&base, nil}))
	assert.Nil(multiscalarMul([]*ristretto.Scalar{two}, []*ristretto.Point{&base, &base}))

	zero := multiscalarMul(nil, nil)
	assert.True(isIdentity(zero))
	assert.True(isIdentity(multiscalarMul([]*ristretto.Scalar{two, negScalar(two)}, []*ristretto.Point{&base, &base})))
}
