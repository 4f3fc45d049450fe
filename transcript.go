package zkschnorr

import (
	"github.com/MixinNetwork/zkschnorr/transcript"
	"github.com/bwesterb/go-ristretto"
)

const (
	SIGN_MESSAGE_DOMAIN_TAG = "zkschnorr.sign_message"
	SCHNORR_DOMAIN_SEP      = "zkschnorr v1"
	KEY_DERIVATION_SALT     = "zkschnorr.derive-key"
	KEY_FINGERPRINT_TAG     = "zkschnorr.fingerprint"
)

// MessageTranscript returns the transcript used by the message-oriented API:
// a transcript labelled SIGN_MESSAGE_DOMAIN_TAG with message appended under label.
func MessageTranscript(label, message []byte) *transcript.Transcript {
	t := transcript.New(SIGN_MESSAGE_DOMAIN_TAG)
	t.AppendMessage(label, message)
	return t
}

func appendDomainSep(t *transcript.Transcript) {
	t.AppendMessage([]byte("dom-sep"), []byte(SCHNORR_DOMAIN_SEP))
}

func appendPoint(label string, p CompressedRistretto, t *transcript.Transcript) {
	t.AppendMessage([]byte(label), p[:])
}

func challengeScalar(label string, t *transcript.Transcript) *ristretto.Scalar {
	data := t.ExtractBytes([]byte(label), 64)
	var dataBytes [64]byte
	copy(dataBytes[:], data)

	var s ristretto.Scalar
	return s.SetReduced(&dataBytes)
}

// signatureChallenge absorbs the key and nonce commitment and derives c.
func signatureChallenge(vk VerificationKey, R CompressedRistretto, t *transcript.Transcript) *ristretto.Scalar {
	appendDomainSep(t)
	appendPoint("G", vk.G, t)
	appendPoint("H", vk.H, t)
	appendPoint("R", R, t)
	return challengeScalar("challenge", t)
}
