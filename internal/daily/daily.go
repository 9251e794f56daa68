// internal/daily/daily.go
//
// Word of the day.
//
// A daily game draws its random choices from a math/rand source seeded with
// HMAC-SHA256(salt, YYYY-MM-DD), so every player sharing the salt and the
// lexicon gets the same word on the same UTC date.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	mrand "math/rand"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Seed derives the random seed for date from salt.
func Seed(date time.Time, salt string) int64 {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes, top bit cleared so the seed stays non-negative
	return int64(binary.BigEndian.Uint64(sum[:8]) >> 1)
}

// NewRand returns the deterministic source of choices for date.
func NewRand(date time.Time, salt string) *mrand.Rand {
	return mrand.New(mrand.NewSource(Seed(date, salt)))
}
