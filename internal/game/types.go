// internal/game/types.go
//
// Core type definitions for the Hangman game state.
// Defines:
//   - Outcome: result of recording one guessed letter.
//   - Status:  playing / won / lost.
//   - Game:    target word, guessed letters and attempt counter for one game.

package game

import "errors"

// MaxAttempts is the number of incorrect guesses that ends a game.
const MaxAttempts = 6

// ErrInvalidGuess means the input was not exactly one letter.
var ErrInvalidGuess = errors.New("game: guess must be a single letter")

// Outcome is the result of RecordGuess.
//   - "already_guessed": letter was guessed before (or revealed at start); no change.
//   - "correct":         letter occurs in the word.
//   - "incorrect":       letter does not occur; one attempt is used.
type Outcome string

const (
	AlreadyGuessed Outcome = "already_guessed"
	Correct        Outcome = "correct"
	Incorrect      Outcome = "incorrect"
)

// Status is the coarse state of a game.
type Status string

const (
	Playing Status = "playing"
	Won     Status = "won"
	Lost    Status = "lost"
)

// Game holds the state of a single Hangman game. It is owned by one game
// loop and is not safe for concurrent use.
type Game struct {
	word     string            // target word, fixed for the game
	guessed  map[rune]struct{} // grows monotonically
	attempts int               // incorrect guesses, in [0, MaxAttempts]
}
