package zkschnorr

import (
	"context"

	"github.com/MixinNetwork/zkschnorr/transcript"
	"golang.org/x/sync/errgroup"
)

// BatchItem is one signature to check, with the transcript it was signed
// over and the signer's key.
type BatchItem struct {
	Signature  Signature
	Transcript *transcript.Transcript
	Key        VerificationKey
}

// VerifyBatchParallel splits items into at most shards independent batches
// and verifies them concurrently. Every item's transcript is consumed. The
// result is nil only if all items verify; a failure is ErrInvalidBatch or the
// context's error.
func VerifyBatchParallel(ctx context.Context, items []BatchItem, shards int) error {
	if shards < 1 {
		shards = 1
	}
	if shards > len(items) {
		shards = len(items)
	}
	if shards == 0 {
		return ctx.Err()
	}

	size := (len(items) + shards - 1) / shards
	g, ctx := errgroup.WithContext(ctx)
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		shard := items[start:end]
		g.Go(func() error {
			batch := NewBatchVerifierWithCapacity(nil, len(shard))
			for _, item := range shard {
				if err := ctx.Err(); err != nil {
					return err
				}
				item.Signature.VerifyBatched(item.Transcript, item.Key, batch)
			}
			return batch.Verify()
		})
	}
	return g.Wait()
}
