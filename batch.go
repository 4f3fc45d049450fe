package zkschnorr

import (
	"fmt"
	"io"

	"github.com/bwesterb/go-ristretto"
	"lukechampine.com/frand"
)

// BatchVerification accepts verification equations of the form
//
//	basepointScalar·P[0] + Σ dynamicScalars[i]·P[i+1] = 0
//
// where P is dynamicPoints. A nil point stands for one that failed to
// decompress and makes the equation fail. Callers provide matching lengths.
type BatchVerification interface {
	Append(basepointScalar *ristretto.Scalar, dynamicScalars []*ristretto.Scalar, dynamicPoints []*ristretto.Point)
}

// SingleVerifier checks one equation as soon as it is appended.
type SingleVerifier struct {
	err error
}

// VerifySingle runs fn against a fresh SingleVerifier and returns its
// result. If fn appends nothing, the result is ErrInvalidSignature.
func VerifySingle(fn func(v *SingleVerifier)) error {
	v := &SingleVerifier{err: ErrInvalidSignature}
	fn(v)
	return v.err
}

func (v *SingleVerifier) Append(basepointScalar *ristretto.Scalar, dynamicScalars []*ristretto.Scalar, dynamicPoints []*ristretto.Point) {
	scalars := make([]*ristretto.Scalar, 0, len(dynamicScalars)+1)
	scalars = append(scalars, basepointScalar)
	scalars = append(scalars, dynamicScalars...)

	result := multiscalarMul(scalars, dynamicPoints)
	if result == nil || !isIdentity(result) {
		v.err = ErrInvalidSignature
		return
	}
	v.err = nil
}

// BatchVerifier accumulates equations, each multiplied by its own random
// weight, and checks all of them with one multiscalar multiplication.
//
// A BatchVerifier is owned by one goroutine and is consumed by Verify.
type BatchVerifier struct {
	rng       io.Reader
	weights   []*ristretto.Scalar
	points    []*ristretto.Point
	equations int
	err       error
	consumed  bool
}

// NewBatchVerifier returns an empty batch drawing weights from rng, or from
// frand when rng is nil.
func NewBatchVerifier(rng io.Reader) *BatchVerifier {
	return NewBatchVerifierWithCapacity(rng, 0)
}

// NewBatchVerifierWithCapacity preallocates room for n simple signatures.
func NewBatchVerifierWithCapacity(rng io.Reader, n int) *BatchVerifier {
	if rng == nil {
		rng = frand.Reader
	}
	return &BatchVerifier{
		rng:     rng,
		weights: make([]*ristretto.Scalar, 0, n*3),
		points:  make([]*ristretto.Point, 0, n*3),
	}
}

// Append implements BatchVerification. Every scalar of the equation,
// basepointScalar included, is multiplied by a weight drawn for this call
// only, so unrelated bad equations cancel with probability about 2^-252.
func (b *BatchVerifier) Append(basepointScalar *ristretto.Scalar, dynamicScalars []*ristretto.Scalar, dynamicPoints []*ristretto.Point) {
	if b.consumed {
		panic(ErrBatchConsumed)
	}
	b.equations++
	if b.err != nil {
		return
	}

	weight, err := RandomScalar(b.rng)
	if err != nil {
		b.err = fmt.Errorf("batch weight: %w", err)
		return
	}

	if len(dynamicScalars)+1 != len(dynamicPoints) {
		// keep the batch unsatisfiable, like a missing point
		b.weights = append(b.weights, weight)
		b.points = append(b.points, nil)
		return
	}

	var w ristretto.Scalar
	b.weights = append(b.weights, w.Mul(weight, basepointScalar))
	for _, s := range dynamicScalars {
		var ws ristretto.Scalar
		b.weights = append(b.weights, ws.Mul(weight, s))
	}
	b.points = append(b.points, dynamicPoints...)
}

// Len returns the number of equations appended so far.
func (b *BatchVerifier) Len() int {
	return b.equations
}

// Verify checks every appended equation at once and consumes the batch. An
// empty batch verifies.
func (b *BatchVerifier) Verify() error {
	if b.consumed {
		return ErrBatchConsumed
	}
	b.consumed = true
	weights, points := b.weights, b.points
	b.weights, b.points = nil, nil

	if b.err != nil {
		return b.err
	}
	if len(weights) == 0 && len(points) == 0 {
		return nil
	}

	result := multiscalarMul(weights, points)
	if result == nil || !isIdentity(result) {
		return ErrInvalidBatch
	}
	return nil
}
