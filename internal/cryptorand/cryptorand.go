// internal/cryptorand/cryptorand.go
//
// math/rand.Source backed by crypto/rand, so production word picks are not
// predictable from process start time. Tests use a seeded math/rand source
// instead.

package cryptorand

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand"
)

// NewSource returns a Source reading from the operating system CSPRNG.
func NewSource() Source {
	return Source{}
}

// New returns a *rand.Rand drawing from NewSource.
func New() *mrand.Rand {
	return mrand.New(NewSource())
}

type Source struct{}

func (Source) Int63() int64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic(err)
	}
	return int64(binary.LittleEndian.Uint64(buf[:]) & (1<<63 - 1))
}

// Seed is a no-op; the source cannot be reseeded.
func (Source) Seed(int64) {}
