package zkschnorr

import (
	"crypto/subtle"
	"encoding/binary"
	"encoding/hex"
	"io"

	"github.com/bwesterb/go-ristretto"
)

// CompressedRistretto is the canonical 32-byte encoding of a ristretto255
// point. It is kept compressed until a verification equation needs it.
type CompressedRistretto [32]byte

func CompressPoint(p *ristretto.Point) CompressedRistretto {
	var c CompressedRistretto
	copy(c[:], p.Bytes())
	return c
}

// Decompress returns nil if c is not a valid canonical encoding.
func (c CompressedRistretto) Decompress() *ristretto.Point {
	buf := [32]byte(c)
	var p ristretto.Point
	if !p.SetBytes(&buf) {
		return nil
	}
	// go-ristretto accepts a few non-canonical encodings of valid points
	if subtle.ConstantTimeCompare(p.Bytes(), c[:]) != 1 {
		return nil
	}
	return &p
}

func (c CompressedRistretto) Bytes() []byte {
	return append([]byte{}, c[:]...)
}

func (c CompressedRistretto) String() string {
	return hex.EncodeToString(c[:])
}

// CompressedScalar is the canonical little-endian encoding of a scalar.
type CompressedScalar [32]byte

func CompressScalar(s *ristretto.Scalar) CompressedScalar {
	var c CompressedScalar
	copy(c[:], s.Bytes())
	return c
}

// Decompress returns nil if c is not reduced modulo the group order.
func (c CompressedScalar) Decompress() *ristretto.Scalar {
	if !isCanonicalScalar(c) {
		return nil
	}
	buf := [32]byte(c)
	var s ristretto.Scalar
	return s.SetBytes(&buf)
}

// little-endian encoding of l = 2^252 + 27742317777372353535851937790883648493
var groupOrder = [32]byte{
	0xed, 0xd3, 0xf5, 0x5c, 0x1a, 0x63, 0x12, 0x58,
	0xd6, 0x9c, 0xf7, 0xa2, 0xde, 0xf9, 0xde, 0x14,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10,
}

func isCanonicalScalar(c CompressedScalar) bool {
	for i := 31; i >= 0; i-- {
		if c[i] != groupOrder[i] {
			return c[i] < groupOrder[i]
		}
	}
	return false
}

func (c CompressedScalar) Bytes() []byte {
	return append([]byte{}, c[:]...)
}

func (c CompressedScalar) String() string {
	return hex.EncodeToString(c[:])
}

// RandomScalar reads 64 bytes from rand and reduces them modulo the group order.
func RandomScalar(rand io.Reader) (*ristretto.Scalar, error) {
	var buf [64]byte
	if _, err := io.ReadFull(rand, buf[:]); err != nil {
		return nil, err
	}
	var s ristretto.Scalar
	return s.SetReduced(&buf), nil
}

// multiscalarMul returns the sum of scalars[i]*points[i], or nil if any point
// is missing or the lengths differ.
func multiscalarMul(scalars []*ristretto.Scalar, points []*ristretto.Point) *ristretto.Point {
	if len(scalars) != len(points) {
		return nil
	}
	var p ristretto.Point
	p.SetZero()
	for i := range scalars {
		if points[i] == nil {
			return nil
		}
		var t ristretto.Point
		t.ScalarMult(points[i], scalars[i])
		p.Add(&p, &t)
	}
	return &p
}

func isIdentity(p *ristretto.Point) bool {
	var zero ristretto.Point
	zero.SetZero()
	return p.Equals(&zero)
}

func uint64ToScalar(i uint64) *ristretto.Scalar {
	var buf [32]byte
	binary.LittleEndian.PutUint64(buf[:], i)
	var s ristretto.Scalar
	return s.SetBytes(&buf)
}

func negScalar(s *ristretto.Scalar) *ristretto.Scalar {
	var r ristretto.Scalar
	r.SetZero()
	return r.Sub(&r, s)
}

func oneScalar() *ristretto.Scalar {
	var one ristretto.Scalar
	return one.SetOne()
}
