package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/MixinNetwork/zkschnorr"
	"github.com/alecthomas/kong"
)

type verifyBatchCmd struct {
	Label    string `arg:"" help:"The label every message was signed under."`
	Manifest string `arg:"" type:"existingfile" help:"A file of 'key signature message-path' lines."`

	Shards int `default:"1" help:"The number of batches to verify concurrently."`
}

func (cmd *verifyBatchCmd) Run(_ *kong.Context) error {
	items, err := readManifest(cmd.Label, cmd.Manifest)
	if err != nil {
		return err
	}

	if err := zkschnorr.VerifyBatchParallel(context.Background(), items, cmd.Shards); err != nil {
		return err
	}

	fmt.Printf("ok %d\n", len(items))
	return nil
}

func readManifest(label, path string) ([]zkschnorr.BatchItem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	defer func() { _ = f.Close() }()

	var items []zkschnorr.BatchItem
	scanner := bufio.NewScanner(f)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) != 3 {
			return nil, fmt.Errorf("%s:%d: want 3 fields, got %d", path, line, len(fields))
		}

		item, err := parseManifestLine(label, fields)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, line, err)
		}
		items = append(items, item)
	}

	return items, scanner.Err()
}

func parseManifestLine(label string, fields []string) (zkschnorr.BatchItem, error) {
	vk, err := decodeVerificationKey(fields[0])
	if err != nil {
		return zkschnorr.BatchItem{}, err
	}

	sig, err := decodeSignature(fields[1])
	if err != nil {
		return zkschnorr.BatchItem{}, err
	}

	message, err := readMessage(fields[2])
	if err != nil {
		return zkschnorr.BatchItem{}, err
	}

	return zkschnorr.BatchItem{
		Signature:  sig,
		Transcript: zkschnorr.MessageTranscript([]byte(label), message),
		Key:        vk,
	}, nil
}
