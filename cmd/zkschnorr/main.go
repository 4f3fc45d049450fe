package main

import (
	"io"
	"os"
	"strings"

	"github.com/MixinNetwork/zkschnorr"
	"github.com/alecthomas/kong"
	"github.com/bwesterb/go-ristretto"
	"github.com/mr-tron/base58"
)

type cli struct {
	Generate    generateCmd    `cmd:"" help:"Generate a new secret seed."`
	PublicKey   publicKeyCmd   `cmd:"" help:"Derive the verification key of a secret seed."`
	Sign        signCmd        `cmd:"" help:"Sign a message."`
	Verify      verifyCmd      `cmd:"" help:"Verify a signature of a message."`
	VerifyBatch verifyBatchCmd `cmd:"" help:"Verify a manifest of signatures as one batch."`
}

func main() {
	var cli cli

	ctx := kong.Parse(&cli)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// readSecretKey reads a base58 seed file and derives the key pair from it.
func readSecretKey(path string) (*ristretto.Scalar, zkschnorr.VerificationKey, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, zkschnorr.VerificationKey{}, err
	}

	seed, err := base58.Decode(strings.TrimSpace(string(b)))
	if err != nil {
		return nil, zkschnorr.VerificationKey{}, err
	}

	privkey, r, err := zkschnorr.DeriveKey(seed)
	if err != nil {
		return nil, zkschnorr.VerificationKey{}, err
	}

	return privkey, zkschnorr.VerificationKeyFromSecret(privkey, r), nil
}

// decodeVerificationKey accepts either a base58 key or the path to a file
// holding one.
func decodeVerificationKey(pathOrKey string) (zkschnorr.VerificationKey, error) {
	var vk zkschnorr.VerificationKey
	if err := vk.UnmarshalText([]byte(pathOrKey)); err == nil {
		return vk, nil
	}

	b, err := os.ReadFile(pathOrKey)
	if err != nil {
		return vk, err
	}

	err = vk.UnmarshalText([]byte(strings.TrimSpace(string(b))))
	return vk, err
}

// decodeSignature accepts either a hex signature or the path to a file
// holding one.
func decodeSignature(pathOrSig string) (zkschnorr.Signature, error) {
	var sig zkschnorr.Signature
	if err := sig.UnmarshalText([]byte(pathOrSig)); err == nil {
		return sig, nil
	}

	b, err := os.ReadFile(pathOrSig)
	if err != nil {
		return sig, err
	}

	err = sig.UnmarshalText([]byte(strings.TrimSpace(string(b))))
	return sig, err
}

func readMessage(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}

	return os.ReadFile(path)
}

func writeOutput(path string, data []byte) error {
	data = append(data, '\n')
	if path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}

	return os.WriteFile(path, data, 0o600)
}
