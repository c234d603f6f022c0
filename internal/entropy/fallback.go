package entropy

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// Fallback generates bytes locally when the remote service is unavailable.
// It is a ChaCha8 stream keyed from a 64-bit seed, so a fixed seed yields a
// reproducible byte stream. Not cryptographic quality and not meant to be.
type Fallback struct {
	rng *rand.ChaCha8
}

// NewFallback creates a seeded local generator.
func NewFallback(seed uint64) *Fallback {
	pcg := rand.New(rand.NewPCG(seed, 0))
	var key [32]byte
	for i := 0; i < 4; i++ {
		binary.LittleEndian.PutUint64(key[i*8:], pcg.Uint64())
	}

	return &Fallback{rng: rand.NewChaCha8(key)}
}

// NewSeed draws a fallback seed from crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return binary.LittleEndian.Uint64(b[:]), nil
}

// Bytes returns the next n bytes of the local stream.
func (f *Fallback) Bytes(n int) []byte {
	buf := make([]byte, n)
	_, _ = f.rng.Read(buf)
	return buf
}
