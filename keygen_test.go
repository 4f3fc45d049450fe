package zkschnorr

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateKey(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	privkey, r, vk, err := GenerateKey(rand.Reader)
	require.Nil(err)
	assert.Equal(VerificationKeyFromSecret(privkey, r), vk)

	sig, err := SignMessage([]byte("keygen"), []byte("hello"), vk, privkey)
	require.Nil(err)
	assert.Nil(sig.VerifyMessage([]byte("keygen"), []byte("hello"), vk))

	_, _, _, err = GenerateKey(bytes.NewReader(make([]byte, 100)))
	assert.NotNil(err)
}

func TestDeriveKey(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	seed := bytes.Repeat([]byte{1}, 32)
	x1, r1, err := DeriveKey(seed)
	require.Nil(err)
	x2, r2, err := DeriveKey(seed)
	require.Nil(err)
	assert.True(x1.Equals(x2))
	assert.True(r1.Equals(r2))
	assert.False(x1.Equals(r1))
	log.Println("derived secret:", hex.EncodeToString(x1.Bytes()))

	other := bytes.Repeat([]byte{2}, 32)
	x3, r3, err := DeriveKey(other)
	require.Nil(err)
	assert.False(x1.Equals(x3))
	assert.False(r1.Equals(r3))

	_, _, err = DeriveKey(seed[:31])
	assert.Equal(ErrShortSeed, err)
}

func TestKeyFingerprint(t *testing.T) {
	assert := assert.New(t)

	vk := VerificationKeyFromSecret(uint64ToScalar(1), uint64ToScalar(10987))
	fp := KeyFingerprint(vk)
	assert.Len(fp, 32)
	assert.Equal(fp, KeyFingerprint(vk))
	assert.NotEqual(fp, KeyFingerprint(VerificationKeyFromSecret(uint64ToScalar(2), uint64ToScalar(10987))))
}
