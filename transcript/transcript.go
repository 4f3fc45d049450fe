// Package transcript implements Merlin v1.0 Fiat-Shamir transcripts on top of
// STROBE-128, with cloning and a witness-keyed random number generator for
// prover-side nonces.
//
// Challenges extracted from a Transcript are byte-for-byte identical to those
// of github.com/gtank/merlin for the same sequence of operations.
package transcript

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/mimoo/StrobeGo/strobe"
)

const (
	merlinProtocolLabel  = "Merlin v1.0"
	domainSeparatorLabel = "dom-sep"
	rngLabel             = "rng"
)

type Transcript struct {
	s *strobe.Strobe
}

func New(appLabel string) *Transcript {
	s := strobe.InitStrobe(merlinProtocolLabel, 128)
	t := &Transcript{s: &s}
	t.AppendMessage([]byte(domainSeparatorLabel), []byte(appLabel))
	return t
}

// AppendMessage absorbs message under label.
//
// StrobeGo has no continuation support, so the label and the little-endian
// message length go out as one meta-AD operation. This is the same STROBE
// state as Merlin's meta-AD(label) followed by meta-AD(len, more).
func (t *Transcript) AppendMessage(label, message []byte) {
	t.s.AD(true, labelWithLength(label, len(message)))
	t.s.AD(false, message)
}

func (t *Transcript) AppendUint64(label []byte, x uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], x)
	t.AppendMessage(label, buf[:])
}

func (t *Transcript) ExtractBytes(label []byte, outLen int) []byte {
	t.s.AD(true, labelWithLength(label, outLen))
	if outLen == 0 {
		return []byte{}
	}
	return t.s.PRF(outLen)
}

// Clone returns an independent copy of the transcript state.
func (t *Transcript) Clone() *Transcript {
	return &Transcript{s: t.s.Clone()}
}

// BuildRNG starts a prover RNG from a copy of the current transcript state.
// The transcript itself is not modified.
func (t *Transcript) BuildRNG() *RNGBuilder {
	return &RNGBuilder{s: t.s.Clone()}
}

type RNGBuilder struct {
	s *strobe.Strobe
}

// RekeyWithWitnessBytes keys the RNG with secret witness data.
func (b *RNGBuilder) RekeyWithWitnessBytes(label, witness []byte) *RNGBuilder {
	b.s.AD(true, labelWithLength(label, len(witness)))
	b.s.KEY(witness)
	return b
}

// Finalize keys the RNG with 32 bytes from rand and returns it. The builder
// must not be used afterwards.
func (b *RNGBuilder) Finalize(rand io.Reader) (*RNG, error) {
	if b.s == nil {
		return nil, errors.New("transcript: RNG builder already finalized")
	}
	var random [32]byte
	if _, err := io.ReadFull(rand, random[:]); err != nil {
		return nil, err
	}
	b.s.AD(true, []byte(rngLabel))
	b.s.KEY(random[:])

	rng := &RNG{s: b.s}
	b.s = nil
	return rng, nil
}

// RNG is a transcript-bound random stream. Reads never fail.
type RNG struct {
	s *strobe.Strobe
}

func (r *RNG) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	var size [4]byte
	binary.LittleEndian.PutUint32(size[:], uint32(len(p)))
	r.s.AD(true, size[:])
	copy(p, r.s.PRF(len(p)))
	return len(p), nil
}

func labelWithLength(label []byte, n int) []byte {
	buf := make([]byte, len(label)+4)
	copy(buf, label)
	binary.LittleEndian.PutUint32(buf[len(label):], uint32(n))
	return buf
}

var _ io.Reader = &RNG{}
