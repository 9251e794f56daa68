// internal/lexicon/lexicon.go
//
// Lexical Source contract used by the word selector.
// A Source hands out random candidate words filtered by length and part of
// speech, and dictionary senses (definition + examples) for a token.
//
// Implementations in this package:
//   - SQLite: local database installed from the embedded seed (sqlite.go).
//   - Memory: in-process maps, used by tests (memory.go).
//   - Remote: HTTP client for cmd/lexicon-server (remote.go).

package lexicon

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnavailable means the lexical database is missing, corrupt or
	// unreachable. It is fatal at startup.
	ErrUnavailable = errors.New("lexicon: unavailable")
	// ErrNoCandidates means no word satisfies the requested constraints.
	ErrNoCandidates = errors.New("lexicon: no candidate words")
)

// PartOfSpeech is a grammatical category of a word.
type PartOfSpeech string

const (
	Noun      PartOfSpeech = "noun"
	Verb      PartOfSpeech = "verb"
	Adjective PartOfSpeech = "adjective"
	Adverb    PartOfSpeech = "adverb"
)

// ParsePartOfSpeech accepts the singular or plural form ("verb", "verbs").
func ParsePartOfSpeech(s string) (PartOfSpeech, error) {
	s = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "s")
	switch p := PartOfSpeech(s); p {
	case Noun, Verb, Adjective, Adverb:
		return p, nil
	}
	return "", fmt.Errorf("lexicon: unknown part of speech %q", s)
}

// Sense is one dictionary meaning of a word. Word holds the canonical lemma,
// which may differ from the token the lookup started from.
type Sense struct {
	Word       string   `json:"word"`
	Definition string   `json:"definition"`
	Examples   []string `json:"examples"`
}

// Source is the lexical database consumed by the game.
type Source interface {
	// RandomWord returns a word whose length lies in [minLen, maxLen] and
	// whose part of speech is one of pos. An empty pos matches any category.
	RandomWord(ctx context.Context, minLen, maxLen int, pos []PartOfSpeech) (string, error)

	// Senses returns every sense recorded for token, possibly none.
	Senses(ctx context.Context, token string) ([]Sense, error)
}

// Rand is the random-choice capability injected into sources and the word
// selector. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

func cloneSense(s Sense) Sense {
	out := s
	if s.Examples != nil {
		out.Examples = append([]string(nil), s.Examples...)
	}
	return out
}
