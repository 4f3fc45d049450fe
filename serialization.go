package zkschnorr

import (
	"encoding"
	"encoding/hex"
	"fmt"

	"github.com/mr-tron/base58"
)

const SignatureSize = 64

// ToBytes returns s followed by R.
func (sig Signature) ToBytes() []byte {
	buf := make([]byte, 0, SignatureSize)
	buf = append(buf, sig.S[:]...)
	buf = append(buf, sig.R[:]...)
	return buf
}

func (sig Signature) ToArray() [SignatureSize]byte {
	var buf [SignatureSize]byte
	copy(buf[:32], sig.S[:])
	copy(buf[32:], sig.R[:])
	return buf
}

// SignatureFromBytes only checks the length. Bytes that do not encode a
// canonical scalar and point decode fine and fail verification.
func SignatureFromBytes(buf []byte) (Signature, error) {
	if len(buf) != SignatureSize {
		return Signature{}, fmt.Errorf("%w: %d bytes", ErrInvalidSignatureLength, len(buf))
	}
	var sig Signature
	copy(sig.S[:], buf[:32])
	copy(sig.R[:], buf[32:])
	return sig, nil
}

func (sig Signature) MarshalBinary() ([]byte, error) {
	return sig.ToBytes(), nil
}

func (sig *Signature) UnmarshalBinary(data []byte) error {
	s, err := SignatureFromBytes(data)
	if err != nil {
		return err
	}
	*sig = s
	return nil
}

func (sig Signature) MarshalText() ([]byte, error) {
	return []byte(sig.String()), nil
}

func (sig *Signature) UnmarshalText(text []byte) error {
	buf := make([]byte, hex.DecodedLen(len(text)))
	n, err := hex.Decode(buf, text)
	if err != nil {
		return err
	}
	return sig.UnmarshalBinary(buf[:n])
}

func (sig Signature) String() string {
	return hex.EncodeToString(sig.ToBytes())
}

func (vk VerificationKey) MarshalBinary() ([]byte, error) {
	return vk.ToBytes(), nil
}

func (vk *VerificationKey) UnmarshalBinary(data []byte) error {
	k, err := VerificationKeyFromBytes(data)
	if err != nil {
		return err
	}
	*vk = k
	return nil
}

func (vk VerificationKey) MarshalText() ([]byte, error) {
	return []byte(vk.String()), nil
}

func (vk *VerificationKey) UnmarshalText(text []byte) error {
	buf, err := base58.Decode(string(text))
	if err != nil {
		return err
	}
	return vk.UnmarshalBinary(buf)
}

// String returns the base58 encoding of the key.
func (vk VerificationKey) String() string {
	return base58.Encode(vk.ToBytes())
}

var (
	_ encoding.BinaryMarshaler   = Signature{}
	_ encoding.BinaryUnmarshaler = &Signature{}
	_ encoding.TextMarshaler     = Signature{}
	_ encoding.TextUnmarshaler   = &Signature{}
	_ encoding.BinaryMarshaler   = VerificationKey{}
	_ encoding.BinaryUnmarshaler = &VerificationKey{}
	_ encoding.TextMarshaler     = VerificationKey{}
	_ encoding.TextUnmarshaler   = &VerificationKey{}
)
