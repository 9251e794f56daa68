// internal/words/words.go
//
// Word selection for a new game.
//
// Responsibilities:
//   - Ask the lexical source for a random verb of 3 to 6 letters.
//   - Look up its senses and pick one uniformly at random.
//   - Replace the raw token by the sense's canonical lemma, which is what
//     the player has to guess.
//
// Canonical-form policy:
//   • Lemmas are lower-cased.
//   • Senses whose lemma is not entirely a–z (multi-word lemmas such as
//     "climb_up", hyphens, digits) are discarded before the pick.
//   • A token left with no sense is retried with a new candidate, up to
//     MaxSelectAttempts times.

package words

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/lexicon"
)

const (
	MinLength = 3
	MaxLength = 6

	// MaxSelectAttempts bounds how many candidate tokens are tried before
	// the source is considered unable to produce a playable word.
	MaxSelectAttempts = 50
)

// Categories are the parts of speech a target word is drawn from.
var Categories = []lexicon.PartOfSpeech{lexicon.Verb}

// ErrNoSenseFound means no candidate yielded a playable sense.
var ErrNoSenseFound = errors.New("words: no sense found")

// Rand is the random-choice capability used to pick a sense.
type Rand = lexicon.Rand

// Selector chooses the target word and its meaning.
type Selector struct {
	src lexicon.Source
	rnd Rand
}

// NewSelector returns a Selector drawing from src, picking senses with r.
func NewSelector(src lexicon.Source, r Rand) *Selector {
	return &Selector{src: src, rnd: r}
}

// ChooseWord returns a sense whose Word is the normalized target word.
// Source errors are returned immediately; running out of candidates with
// senses yields ErrNoSenseFound.
func (s *Selector) ChooseWord(ctx context.Context) (lexicon.Sense, error) {
	for attempt := 1; attempt <= MaxSelectAttempts; attempt++ {
		token, err := s.src.RandomWord(ctx, MinLength, MaxLength, Categories)
		if err != nil {
			return lexicon.Sense{}, fmt.Errorf("random word: %w", err)
		}

		senses, err := s.src.Senses(ctx, token)
		if err != nil {
			return lexicon.Sense{}, fmt.Errorf("senses for %q: %w", token, err)
		}

		usable := playable(senses)
		if len(usable) == 0 {
			log.Debug().Str("token", token).Int("attempt", attempt).Int("senses", len(senses)).Msg("no playable sense, retrying")
			continue
		}

		sense := usable[s.rnd.Intn(len(usable))]
		log.Debug().Str("token", token).Str("lemma", sense.Word).Int("attempt", attempt).Msg("word chosen")
		return sense, nil
	}
	return lexicon.Sense{}, fmt.Errorf("%w after %d candidates", ErrNoSenseFound, MaxSelectAttempts)
}

// Normalize lower-cases lemma and reports whether it is a playable word
// (one or more a–z letters).
func Normalize(lemma string) (string, bool) {
	w := strings.ToLower(strings.TrimSpace(lemma))
	if w == "" || !isAlpha(w) {
		return w, false
	}
	return w, true
}

// playable returns the senses with a playable lemma, Word normalized.
func playable(senses []lexicon.Sense) []lexicon.Sense {
	var out []lexicon.Sense
	for _, sn := range senses {
		w, ok := Normalize(sn.Word)
		if !ok {
			continue
		}
		sn.Word = w
		out = append(out, sn)
	}
	return out
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
