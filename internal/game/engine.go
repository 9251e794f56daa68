// internal/game/engine.go
//
// Game engine for a single Hangman session.
// Responsibilities:
//   - Create games with the odd-position letters already revealed
//     (first occurrence decides, see Seed).
//   - Record guesses (duplicate rejection, attempt counting).
//   - Report win/loss, with a win taking priority over a loss.
//
// Notes:
//   - Input validation (single letter) lives in ParseGuess and is the
//     caller's job; RecordGuess assumes a letter.
//   - The word is taken as-is; the word selector guarantees [a-z] only.

package game

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// New constructs a game for word with the pre-seeded letters guessed.
func New(word string) *Game {
	return &Game{
		word:    word,
		guessed: Seed(word),
	}
}

// Seed returns the letters revealed before the first guess: each letter
// whose first occurrence in word sits at an odd index. The first letter of a
// word is therefore never seeded, so a new game always starts in Playing.
func Seed(word string) map[rune]struct{} {
	out := make(map[rune]struct{})
	first := make(map[rune]int)
	i := 0
	for _, r := range word {
		if _, seen := first[r]; !seen {
			first[r] = i
			if i%2 == 1 {
				out[r] = struct{}{}
			}
		}
		i++
	}
	return out
}

// ParseGuess validates one line of player input and returns the lower-cased
// letter. Surrounding whitespace is ignored.
func ParseGuess(line string) (rune, error) {
	s := strings.ToLower(strings.TrimSpace(line))
	if utf8.RuneCountInString(s) != 1 {
		return 0, ErrInvalidGuess
	}
	r, _ := utf8.DecodeRuneInString(s)
	if !unicode.IsLetter(r) {
		return 0, ErrInvalidGuess
	}
	return r, nil
}

// RecordGuess applies a guessed letter.
//
// State transitions:
//   - Already guessed → no change.
//   - Not in the word → letter recorded, attempt counter incremented
//     (never past MaxAttempts).
//   - In the word     → letter recorded.
func (g *Game) RecordGuess(letter rune) Outcome {
	letter = unicode.ToLower(letter)
	if _, ok := g.guessed[letter]; ok {
		return AlreadyGuessed
	}
	g.guessed[letter] = struct{}{}

	if !strings.ContainsRune(g.word, letter) {
		if g.attempts < MaxAttempts {
			g.attempts++
		}
		return Incorrect
	}
	return Correct
}

// IsWon reports whether every distinct letter of the word has been guessed.
func (g *Game) IsWon() bool {
	for _, r := range g.word {
		if _, ok := g.guessed[r]; !ok {
			return false
		}
	}
	return true
}

// IsLost reports whether the attempts are exhausted without a win.
func (g *Game) IsLost() bool {
	return g.attempts == MaxAttempts && !g.IsWon()
}

// Status reports playing, won or lost.
func (g *Game) Status() Status {
	switch {
	case g.IsWon():
		return Won
	case g.IsLost():
		return Lost
	}
	return Playing
}

// Word returns the target word.
func (g *Game) Word() string { return g.word }

// AttemptsUsed returns the number of incorrect guesses so far.
func (g *Game) AttemptsUsed() int { return g.attempts }

// AttemptsRemaining returns MaxAttempts minus the incorrect guesses.
func (g *Game) AttemptsRemaining() int { return MaxAttempts - g.attempts }

// Guessed returns the guessed letters in alphabetical order.
func (g *Game) Guessed() []rune {
	out := make([]rune, 0, len(g.guessed))
	for r := range g.guessed {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Display renders the masked word for the current guesses.
func (g *Game) Display() string {
	return Display(g.word, g.guessed)
}
