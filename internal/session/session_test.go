package session

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/robalobadob/hangman/internal/console"
	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/lexicon"
)

// fakeIO replays scripted input lines and records everything printed.
type fakeIO struct {
	input   []string
	printed []string
	prompts int
}

func (f *fakeIO) Print(line string) { f.printed = append(f.printed, line) }

func (f *fakeIO) ReadLine(prompt string) (string, error) {
	f.prompts++
	if len(f.input) == 0 {
		return "", console.ErrInputClosed
	}
	line := f.input[0]
	f.input = f.input[1:]
	return line, nil
}

func (f *fakeIO) contains(line string) bool {
	for _, p := range f.printed {
		if p == line {
			return true
		}
	}
	return false
}

func (f *fakeIO) count(line string) int {
	n := 0
	for _, p := range f.printed {
		if p == line {
			n++
		}
	}
	return n
}

var catSense = lexicon.Sense{
	Word:       "cat",
	Definition: "beat with a whip",
	Examples:   []string{"the sailor was catted for insubordination"},
}

func TestRunWin(t *testing.T) {
	io := &fakeIO{input: []string{"c", "t"}}
	s := New(io, catSense)

	status, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if status != game.Won {
		t.Errorf("status = %q, want %q", status, game.Won)
	}

	var words []string
	for _, p := range io.printed {
		if strings.HasPrefix(p, "Word: ") {
			words = append(words, p)
		}
	}
	if diff := cmp.Diff([]string{"Word: _ a _", "Word: c a _"}, words); diff != "" {
		t.Errorf("displayed words (-want +got)\n%s", diff)
	}

	for _, want := range []string{
		"Welcome to Hangman!",
		"HINT: Beat with a whip",
		"Congratulations! You guessed the word: cat",
		`Meaning of "cat": Beat with a whip`,
		"Example: The sailor was catted for insubordination",
	} {
		if !io.contains(want) {
			t.Errorf("output missing %q\n%s", want, strings.Join(io.printed, "\n"))
		}
	}
}

func TestRunLoss(t *testing.T) {
	io := &fakeIO{input: []string{"x", "y", "z", "q", "j", "k"}}
	s := New(io, lexicon.Sense{Word: "bat", Definition: "strike with a bat"})

	status, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if status != game.Lost {
		t.Errorf("status = %q, want %q", status, game.Lost)
	}
	for n := 5; n >= 0; n-- {
		want := "Incorrect guess! Attempts left: " + string(rune('0'+n))
		if !io.contains(want) {
			t.Errorf("output missing %q", want)
		}
	}
	if !io.contains("Sorry, you ran out of attempts. The word was: bat") {
		t.Error("loss message not printed")
	}
	if !io.contains(`Meaning of "bat": Strike with a bat`) {
		t.Error("meaning not printed")
	}
	for _, p := range io.printed {
		if strings.HasPrefix(p, "Example:") {
			t.Errorf("printed %q for a sense without examples", p)
		}
	}
	if io.prompts != 6 {
		t.Errorf("prompted %d times, want 6", io.prompts)
	}
}

func TestRunInvalidInputDoesNotCostAttempts(t *testing.T) {
	io := &fakeIO{input: []string{"12", "ab", "", "7"}}
	s := New(io, catSense)

	_, err := s.Run(context.Background())
	if !errors.Is(err, console.ErrInputClosed) {
		t.Fatalf("Run error = %v, want ErrInputClosed", err)
	}
	if got := io.count("Please enter a valid single letter."); got != 4 {
		t.Errorf("invalid-input messages = %d, want 4", got)
	}
	if s.Game().AttemptsRemaining() != game.MaxAttempts {
		t.Errorf("AttemptsRemaining = %d, want %d", s.Game().AttemptsRemaining(), game.MaxAttempts)
	}
	if diff := cmp.Diff([]rune{'a'}, s.Game().Guessed()); diff != "" {
		t.Errorf("guessed letters changed (-want +got)\n%s", diff)
	}
}

func TestRunDuplicateGuess(t *testing.T) {
	io := &fakeIO{input: []string{"a", "x", "X", "c", "t"}}
	s := New(io, catSense)

	status, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if status != game.Won {
		t.Errorf("status = %q, want %q", status, game.Won)
	}
	if got := io.count("You've already guessed that letter. Try again."); got != 2 {
		t.Errorf("duplicate messages = %d, want 2", got)
	}
	if got := s.Game().AttemptsUsed(); got != 1 {
		t.Errorf("AttemptsUsed = %d, want 1", got)
	}
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	io := &fakeIO{input: []string{"c"}}
	status, err := New(io, catSense).Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run error = %v, want context.Canceled", err)
	}
	if status != game.Playing {
		t.Errorf("status = %q, want %q", status, game.Playing)
	}
	if io.prompts != 0 {
		t.Errorf("prompted %d times after cancel", io.prompts)
	}
}

func TestRunRepeatedLetterWordStartsPlaying(t *testing.T) {
	io := &fakeIO{input: []string{"s"}}
	s := New(io, lexicon.Sense{Word: "sass", Definition: "answer back"})
	if st := s.Game().Status(); st != game.Playing {
		t.Fatalf("status before first guess = %q, want %q", st, game.Playing)
	}

	status, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if status != game.Won {
		t.Errorf("status = %q, want %q", status, game.Won)
	}
	if io.prompts != 1 {
		t.Errorf("prompted %d times, want 1", io.prompts)
	}
	if got := s.Game().AttemptsUsed(); got != 0 {
		t.Errorf("AttemptsUsed = %d, want 0", got)
	}
	if !io.contains("Word: _ a _ s") {
		t.Errorf("initial display missing\n%s", strings.Join(io.printed, "\n"))
	}
}

func TestRunFinishedGameDoesNotPrompt(t *testing.T) {
	io := &fakeIO{input: []string{"x"}}
	s := New(io, lexicon.Sense{Word: "", Definition: "nothing at all"})

	status, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if status != game.Won {
		t.Errorf("status = %q, want %q", status, game.Won)
	}
	if io.prompts != 0 {
		t.Errorf("prompted %d times for a finished game", io.prompts)
	}
	if got := s.Game().AttemptsUsed(); got != 0 {
		t.Errorf("AttemptsUsed = %d, want 0", got)
	}
}

// blockingIO blocks in ReadLine until a line is released.
type blockingIO struct {
	printed []string
	reading chan struct{}
	release chan string
}

func (b *blockingIO) Print(line string) { b.printed = append(b.printed, line) }

func (b *blockingIO) ReadLine(string) (string, error) {
	b.reading <- struct{}{}
	return <-b.release, nil
}

func TestRunCanceledWhileWaitingForInput(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	io := &blockingIO{reading: make(chan struct{}, 1), release: make(chan string, 1)}
	s := New(io, catSense)

	done := make(chan error, 1)
	go func() {
		_, err := s.Run(ctx)
		done <- err
	}()

	<-io.reading
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run error = %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run still blocked on input after cancel")
	}

	io.release <- "c"
	if got := s.Game().Guessed(); len(got) != 1 || got[0] != 'a' {
		t.Errorf("Guessed = %q, want only the seeded a", got)
	}
}

// cancelingIO cancels the game just as the line arrives.
type cancelingIO struct {
	cancel context.CancelFunc
}

func (c *cancelingIO) Print(string) {}

func (c *cancelingIO) ReadLine(string) (string, error) {
	c.cancel()
	return "c", nil
}

func TestRunDropsLineReadAfterCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := New(&cancelingIO{cancel: cancel}, catSense)
	status, err := s.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run error = %v, want context.Canceled", err)
	}
	if status != game.Playing {
		t.Errorf("status = %q, want %q", status, game.Playing)
	}
	if diff := cmp.Diff([]rune{'a'}, s.Game().Guessed()); diff != "" {
		t.Errorf("guess recorded after cancel (-want +got)\n%s", diff)
	}
}

func TestRunOverTerminal(t *testing.T) {
	var out strings.Builder
	term := console.New(strings.NewReader("c\nt\n"), &out)

	status, err := New(term, catSense).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if status != game.Won {
		t.Errorf("status = %q, want %q", status, game.Won)
	}
	if !strings.Contains(out.String(), "Enter a letter: ") {
		t.Errorf("prompt missing from output:\n%s", out.String())
	}
}

func TestCapitalize(t *testing.T) {
	tests := map[string]string{
		"":              "",
		"run":           "Run",
		"Already":       "Already",
		"élan vital":    "Élan vital",
		"I'm baking in": "I'm baking in",
		"DNA testing":   "Dna testing",
		"rUN Fast":      "Run fast",
	}
	for in, want := range tests {
		if got := capitalize(in); got != want {
			t.Errorf("capitalize(%q) = %q, want %q", in, got, want)
		}
	}
}
