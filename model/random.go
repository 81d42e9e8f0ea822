package model

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"

	"github.com/pkg/errors"
)

// ErrRandomSource is returned when a random draw cannot be made
var ErrRandomSource = errors.New("random source failed")

// RandomSource yields independent uniform draws in [0, 100)
type RandomSource interface {
	Percent() (int, error)
}

// SeededSource is a deterministic PCG source: the same seed gives the same draws
type SeededSource struct {
	r *rand.Rand
}

// NewSeededSource creates a deterministic source using the provided seed
func NewSeededSource(seed int64) *SeededSource {
	return &SeededSource{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Percent never fails
func (s *SeededSource) Percent() (int, error) {
	return s.r.IntN(100), nil
}

// CryptoSource draws from the operating system's entropy pool
type CryptoSource struct {
	buf [8]byte
}

func NewCryptoSource() *CryptoSource {
	return &CryptoSource{}
}

// Percent reads 8 bytes of entropy. Read errors are returned, not papered over.
func (s *CryptoSource) Percent() (int, error) {
	if _, err := crand.Read(s.buf[:]); err != nil {
		return 0, errors.Wrapf(ErrRandomSource, "[Percent] crypto read failed: %v", err)
	}
	return int(binary.LittleEndian.Uint64(s.buf[:]) % 100), nil
}
