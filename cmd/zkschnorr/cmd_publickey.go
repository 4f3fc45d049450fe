package main

import (
	"github.com/alecthomas/kong"
)

type publicKeyCmd struct {
	SecretKey string `arg:"" type:"existingfile" help:"The path to the secret seed."`
	Output    string `arg:"" type:"path" default:"-" help:"The output path for the verification key."`
}

func (cmd *publicKeyCmd) Run(_ *kong.Context) error {
	_, vk, err := readSecretKey(cmd.SecretKey)
	if err != nil {
		return err
	}

	text, err := vk.MarshalText()
	if err != nil {
		return err
	}

	return writeOutput(cmd.Output, text)
}
