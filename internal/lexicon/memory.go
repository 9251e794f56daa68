// internal/lexicon/memory.go
//
// In-memory implementation of the Source interface.
// Used by tests and by the lexicon server's own tests, where a real
// database would only add setup noise.
//
// Characteristics:
//   - Candidate words are kept per part of speech in insertion order, so a
//     scripted Rand picks a predictable word.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Senses are copied on the way in and out; callers can't mutate the store.

package lexicon

import (
	"context"
	"strings"
	"sync"
	"unicode/utf8"
)

// Memory is a map-backed Source.
type Memory struct {
	mu     sync.RWMutex
	words  map[PartOfSpeech][]string // candidates in insertion order
	senses map[string][]Sense        // keyed by lower-cased token
	rnd    Rand
}

// NewMemory constructs an empty Memory source drawing picks from r.
func NewMemory(r Rand) *Memory {
	return &Memory{
		words:  make(map[PartOfSpeech][]string),
		senses: make(map[string][]Sense),
		rnd:    r,
	}
}

// NewMemoryFromSeed returns a Memory source loaded with the embedded seed.
func NewMemoryFromSeed(r Rand) (*Memory, error) {
	words, senses, err := parseSeed()
	if err != nil {
		return nil, err
	}
	m := NewMemory(r)
	for _, w := range words {
		m.AddWord(w.Word, w.POS)
	}
	for _, s := range senses {
		m.AddSense(s.Token, s.Sense)
	}
	return m, nil
}

// AddWord registers a candidate word.
func (m *Memory) AddWord(word string, pos PartOfSpeech) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.words[pos] = append(m.words[pos], strings.ToLower(word))
}

// AddSense records a sense reachable from token.
func (m *Memory) AddSense(token string, s Sense) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := strings.ToLower(token)
	m.senses[key] = append(m.senses[key], cloneSense(s))
}

// RandomWord picks uniformly among matching candidates.
func (m *Memory) RandomWord(ctx context.Context, minLen, maxLen int, pos []PartOfSpeech) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(pos) == 0 {
		pos = []PartOfSpeech{Noun, Verb, Adjective, Adverb}
	}
	var candidates []string
	for _, p := range pos {
		for _, w := range m.words[p] {
			if n := utf8.RuneCountInString(w); n >= minLen && n <= maxLen {
				candidates = append(candidates, w)
			}
		}
	}
	if len(candidates) == 0 {
		return "", ErrNoCandidates
	}
	return candidates[m.rnd.Intn(len(candidates))], nil
}

// Senses returns a copy of the senses recorded for token.
func (m *Memory) Senses(ctx context.Context, token string) ([]Sense, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	stored := m.senses[strings.ToLower(token)]
	out := make([]Sense, 0, len(stored))
	for _, s := range stored {
		out = append(out, cloneSense(s))
	}
	return out, nil
}
