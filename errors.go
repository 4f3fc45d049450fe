package zkschnorr

import "errors"

var (
	// ErrInvalidSignature is returned when a single signature fails to verify,
	// including when any of its points does not decompress.
	ErrInvalidSignature = errors.New("signature verification failed")

	// ErrInvalidBatch is returned when a batch of signatures fails to verify.
	// It does not say which signature was bad.
	ErrInvalidBatch = errors.New("batch signature verification failed")

	ErrInvalidSignatureLength = errors.New("invalid signature length")
	ErrInvalidKeyLength       = errors.New("invalid verification key length")

	// ErrInvalidVerificationKey is returned by Sign when the key's base point
	// does not decompress.
	ErrInvalidVerificationKey = errors.New("invalid verification key")

	ErrBatchConsumed = errors.New("batch verifier already consumed")
	ErrShortSeed     = errors.New("seed too short")
)
