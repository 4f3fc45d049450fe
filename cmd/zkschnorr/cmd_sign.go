package main

import (
	"github.com/MixinNetwork/zkschnorr"
	"github.com/alecthomas/kong"
)

type signCmd struct {
	SecretKey string `arg:"" type:"existingfile" help:"The path to the secret seed."`
	Label     string `arg:"" help:"The label the message is signed under."`
	Message   string `arg:"" help:"The path to the message, or - for stdin."`

	Output string `short:"o" type:"path" default:"-" help:"The output path for the signature."`
}

func (cmd *signCmd) Run(_ *kong.Context) error {
	privkey, vk, err := readSecretKey(cmd.SecretKey)
	if err != nil {
		return err
	}

	message, err := readMessage(cmd.Message)
	if err != nil {
		return err
	}

	sig, err := zkschnorr.SignMessage([]byte(cmd.Label), message, vk, privkey)
	if err != nil {
		return err
	}

	text, err := sig.MarshalText()
	if err != nil {
		return err
	}

	return writeOutput(cmd.Output, text)
}
