package main

import (
	"fmt"

	"github.com/alecthomas/kong"
)

type verifyCmd struct {
	PublicKey string `arg:"" help:"The signer's verification key, or a path to it."`
	Label     string `arg:"" help:"The label the message was signed under."`
	Message   string `arg:"" help:"The path to the message, or - for stdin."`
	Signature string `arg:"" help:"The signature, or a path to it."`
}

func (cmd *verifyCmd) Run(_ *kong.Context) error {
	vk, err := decodeVerificationKey(cmd.PublicKey)
	if err != nil {
		return err
	}

	sig, err := decodeSignature(cmd.Signature)
	if err != nil {
		return err
	}

	message, err := readMessage(cmd.Message)
	if err != nil {
		return err
	}

	if err := sig.VerifyMessage([]byte(cmd.Label), message, vk); err != nil {
		return err
	}

	fmt.Println("ok")
	return nil
}
