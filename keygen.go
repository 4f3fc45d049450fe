package zkschnorr

import (
	"io"

	"github.com/bwesterb/go-ristretto"
	"github.com/dchest/blake2b"
	"golang.org/x/crypto/hkdf"
)

const MinSeedSize = 32

// GenerateKey draws a secret scalar and a randomization scalar from rand and
// returns them with the matching verification key.
func GenerateKey(rand io.Reader) (privkey, r *ristretto.Scalar, vk VerificationKey, err error) {
	privkey, err = RandomScalar(rand)
	if err != nil {
		return nil, nil, VerificationKey{}, err
	}
	r, err = RandomScalar(rand)
	if err != nil {
		return nil, nil, VerificationKey{}, err
	}
	return privkey, r, VerificationKeyFromSecret(privkey, r), nil
}

// DeriveKey deterministically expands seed into a secret scalar and a
// randomization scalar with HKDF-BLAKE2b-512.
func DeriveKey(seed []byte) (privkey, r *ristretto.Scalar, err error) {
	if len(seed) < MinSeedSize {
		return nil, nil, ErrShortSeed
	}
	privkey, err = deriveScalar(seed, "secret")
	if err != nil {
		return nil, nil, err
	}
	r, err = deriveScalar(seed, "randomization")
	if err != nil {
		return nil, nil, err
	}
	return privkey, r, nil
}

func deriveScalar(seed []byte, info string) (*ristretto.Scalar, error) {
	kdf := hkdf.New(blake2b.New512, seed, []byte(KEY_DERIVATION_SALT), []byte(info))
	return RandomScalar(kdf)
}

// KeyFingerprint is a short digest of vk for display and lookup.
func KeyFingerprint(vk VerificationKey) []byte {
	hash := blake2b.New256()
	hash.Write([]byte(KEY_FINGERPRINT_TAG))
	hash.Write(vk.ToBytes())
	return hash.Sum(nil)
}
