package zkschnorr

import (
	"crypto/rand"
	"io"

	"github.com/MixinNetwork/zkschnorr/transcript"
	"github.com/bwesterb/go-ristretto"
)

// Signature is a Schnorr signature over a key-specific base G: R = r·G and
// s = r + c·x. Signatures are comparable with ==.
type Signature struct {
	S CompressedScalar
	R CompressedRistretto
}

// Sign signs the current state of t with the key pair (privkey, vk), using
// crypto/rand to hedge the nonce. t is left mutated.
func Sign(t *transcript.Transcript, vk VerificationKey, privkey *ristretto.Scalar) (Signature, error) {
	return SignWithRand(rand.Reader, t, vk, privkey)
}

// SignWithRand is Sign with an explicit randomness source. The nonce is drawn
// from an RNG keyed by the transcript, the secret scalar and 32 bytes from
// rand, so a broken rand alone cannot repeat a nonce across messages.
func SignWithRand(rand io.Reader, t *transcript.Transcript, vk VerificationKey, privkey *ristretto.Scalar) (Signature, error) {
	g := vk.G.Decompress()
	if g == nil {
		return Signature{}, ErrInvalidVerificationKey
	}

	rng, err := t.BuildRNG().
		RekeyWithWitnessBytes([]byte("x"), privkey.Bytes()).
		Finalize(rand)
	if err != nil {
		return Signature{}, err
	}
	r, err := RandomScalar(rng)
	if err != nil {
		return Signature{}, err
	}

	var R ristretto.Point
	R.ScalarMult(g, r)
	compressedR := CompressPoint(&R)

	c := signatureChallenge(vk, compressedR, t)

	var s ristretto.Scalar
	s.Mul(c, privkey)
	s.Add(&s, r)

	return Signature{S: CompressScalar(&s), R: compressedR}, nil
}

// Verify checks the signature against vk. t must be in the state it was in
// when Sign was called.
func (sig Signature) Verify(t *transcript.Transcript, vk VerificationKey) error {
	return VerifySingle(func(v *SingleVerifier) {
		sig.VerifyBatched(t, vk, v)
	})
}

// VerifyBatched adds the verification equation
//
//	-s·G + 1·R + c·H = 0
//
// to batch instead of checking it immediately.
func (sig Signature) VerifyBatched(t *transcript.Transcript, vk VerificationKey, batch BatchVerification) {
	c := signatureChallenge(vk, sig.R, t)

	points := []*ristretto.Point{
		vk.G.Decompress(),
		sig.R.Decompress(),
		vk.H.Decompress(),
	}

	var basepointScalar *ristretto.Scalar
	if s := sig.S.Decompress(); s != nil {
		basepointScalar = negScalar(s)
	} else {
		// a non-canonical response fails like an undecodable point
		var zero ristretto.Scalar
		basepointScalar = zero.SetZero()
		points[0] = nil
	}

	batch.Append(basepointScalar, []*ristretto.Scalar{oneScalar(), c}, points)
}

// SignMessage signs message under a transcript labelled
// SIGN_MESSAGE_DOMAIN_TAG, with the message appended under label.
func SignMessage(label, message []byte, vk VerificationKey, privkey *ristretto.Scalar) (Signature, error) {
	return Sign(MessageTranscript(label, message), vk, privkey)
}

func (sig Signature) VerifyMessage(label, message []byte, vk VerificationKey) error {
	return sig.Verify(MessageTranscript(label, message), vk)
}

func (sig Signature) VerifyMessageBatched(label, message []byte, vk VerificationKey, batch BatchVerification) {
	sig.VerifyBatched(MessageTranscript(label, message), vk, batch)
}
