package main

import (
	"crypto/rand"

	"github.com/alecthomas/kong"
	"github.com/mr-tron/base58"
)

type generateCmd struct {
	Output string `arg:"" type:"path" help:"The output path for the secret seed."`
}

func (cmd *generateCmd) Run(_ *kong.Context) error {
	seed := make([]byte, 32)
	if _, err := rand.Read(seed); err != nil {
		return err
	}

	return writeOutput(cmd.Output, []byte(base58.Encode(seed)))
}
