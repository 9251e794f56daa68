// internal/session/session.go
//
// Game loop for one Hangman game on a text console.
//
// States: playing → won | lost. Each turn shows the masked word, reads one
// line, validates it and records the guess. Invalid input and repeated
// letters re-prompt without costing an attempt. The loop ends after the
// first win or loss; the chosen sense's meaning is shown either way.

package session

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/console"
	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/lexicon"
)

const separator = "------------------------------------------"

// Session owns the game state for one game.
type Session struct {
	io    console.IO
	sense lexicon.Sense
	game  *game.Game
}

// New starts a game for sense.Word, pre-seeded and ready for the first turn.
func New(io console.IO, sense lexicon.Sense) *Session {
	return &Session{io: io, sense: sense, game: game.New(sense.Word)}
}

// Game exposes the underlying state, mainly for tests.
func (s *Session) Game() *game.Game { return s.game }

// Run plays the game to completion. It returns game.Won or game.Lost, or
// game.Playing with an error when input ends or ctx is cancelled first.
// Cancelling ctx also abandons a prompt that is still waiting for input.
func (s *Session) Run(ctx context.Context) (game.Status, error) {
	s.block("Welcome to Hangman!")
	s.block("Guess the word (verb)")
	s.block("HINT: " + capitalize(s.sense.Definition))

	for s.game.Status() == game.Playing {
		if err := ctx.Err(); err != nil {
			return game.Playing, err
		}

		s.io.Print("")
		s.block("Word: " + s.game.Display())

		line, err := s.readLine(ctx, "Enter a letter: ")
		if err != nil {
			return game.Playing, err
		}

		letter, err := game.ParseGuess(line)
		if err != nil {
			s.block("Please enter a valid single letter.")
			continue
		}

		outcome := s.game.RecordGuess(letter)
		log.Debug().
			Str("guess", string(letter)).
			Str("outcome", string(outcome)).
			Int("attempts", s.game.AttemptsUsed()).
			Msg("guess recorded")

		switch outcome {
		case game.AlreadyGuessed:
			s.block("You've already guessed that letter. Try again.")
		case game.Incorrect:
			s.block(fmt.Sprintf("Incorrect guess! Attempts left: %d", s.game.AttemptsRemaining()))
		}
	}

	status := s.game.Status()
	if status == game.Won {
		s.block("Congratulations! You guessed the word: " + s.game.Word())
	} else {
		s.block("Sorry, you ran out of attempts. The word was: " + s.game.Word())
	}
	s.meaning()
	return status, nil
}

type readResult struct {
	line string
	err  error
}

// readLine waits for one line of input or for ctx to end, whichever comes
// first. A line that arrives after cancellation is dropped. The pending read
// is left behind on cancellation; the process is about to exit by then.
func (s *Session) readLine(ctx context.Context, prompt string) (string, error) {
	ch := make(chan readResult, 1)
	go func() {
		line, err := s.io.ReadLine(prompt)
		ch <- readResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if err := ctx.Err(); err != nil {
			return "", err
		}
		return res.line, res.err
	}
}

// block prints lines followed by a separator and a blank line.
func (s *Session) block(lines ...string) {
	for _, l := range lines {
		s.io.Print(l)
	}
	s.io.Print(separator)
	s.io.Print("")
}

func (s *Session) meaning() {
	s.io.Print(fmt.Sprintf("Meaning of %q: %s", s.game.Word(), capitalize(s.sense.Definition)))
	if len(s.sense.Examples) > 0 {
		s.io.Print("Example: " + capitalize(s.sense.Examples[0]))
	}
}

// capitalize upper-cases the first letter of s and lower-cases the rest.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
