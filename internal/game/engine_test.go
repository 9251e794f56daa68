package game

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func letters(s string) map[rune]struct{} {
	out := make(map[rune]struct{})
	for _, r := range s {
		out[r] = struct{}{}
	}
	return out
}

func TestSeed(t *testing.T) {
	tests := []struct {
		word string
		want map[rune]struct{}
	}{
		{"cat", letters("a")},
		{"abba", letters("b")},
		{"sass", letters("a")},
		{"otto", letters("t")},
		{"eye", letters("y")},
		{"sneeze", letters("n")},
		{"borrow", letters("ow")},
		{"banana", letters("a")},
		{"a", letters("")},
		{"", letters("")},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, Seed(tt.word)); diff != "" {
			t.Errorf("Seed(%q) (-want +got)\n%s", tt.word, diff)
		}
	}
}

func TestNewStartsPlaying(t *testing.T) {
	for _, w := range []string{"abba", "sass", "otto", "eye", "banana", "cat", "borrow"} {
		g := New(w)
		if g.Status() != Playing || g.IsWon() || g.IsLost() {
			t.Errorf("New(%q): status=%q won=%v lost=%v, want playing", w, g.Status(), g.IsWon(), g.IsLost())
		}
		if g.AttemptsUsed() != 0 {
			t.Errorf("New(%q).AttemptsUsed() = %d, want 0", w, g.AttemptsUsed())
		}
	}
}

func TestSeedIdempotent(t *testing.T) {
	for _, w := range []string{"cat", "borrow", "sneeze", "dwell"} {
		once := Seed(w)
		twice := Seed(w)
		for r := range Seed(w) {
			twice[r] = struct{}{}
		}
		if diff := cmp.Diff(once, twice); diff != "" {
			t.Errorf("seeding %q twice differs (-once +twice)\n%s", w, diff)
		}
	}
}

func TestParseGuess(t *testing.T) {
	tests := []struct {
		in      string
		want    rune
		wantErr bool
	}{
		{"a", 'a', false},
		{"Q", 'q', false},
		{" c\n", 'c', false},
		{"é", 'é', false},
		{"", 0, true},
		{"ab", 0, true},
		{"12", 0, true},
		{"1", 0, true},
		{"-", 0, true},
		{"   ", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseGuess(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidGuess) {
				t.Errorf("ParseGuess(%q) error = %v, want ErrInvalidGuess", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseGuess(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseGuess(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScenarioWin(t *testing.T) {
	g := New("cat")
	if got := g.Display(); got != "_ a _" {
		t.Fatalf("initial display = %q, want %q", got, "_ a _")
	}

	if out := g.RecordGuess('c'); out != Correct {
		t.Errorf("guess c = %q, want %q", out, Correct)
	}
	if got := g.Display(); got != "c a _" {
		t.Errorf("display after c = %q, want %q", got, "c a _")
	}
	if g.IsWon() {
		t.Fatal("won before t was guessed")
	}

	if out := g.RecordGuess('t'); out != Correct {
		t.Errorf("guess t = %q, want %q", out, Correct)
	}
	if !g.IsWon() || g.IsLost() || g.Status() != Won {
		t.Errorf("after t: won=%v lost=%v status=%q, want won", g.IsWon(), g.IsLost(), g.Status())
	}
	if got := g.Display(); got != "c a t" {
		t.Errorf("final display = %q, want %q", got, "c a t")
	}
}

func TestScenarioLoss(t *testing.T) {
	g := New("bat")
	for i, r := range "xyzqjk" {
		if g.IsLost() {
			t.Fatalf("lost after only %d guesses", i)
		}
		if out := g.RecordGuess(r); out != Incorrect {
			t.Errorf("guess %q = %q, want %q", r, out, Incorrect)
		}
		if got, want := g.AttemptsRemaining(), MaxAttempts-(i+1); got != want {
			t.Errorf("AttemptsRemaining after %d misses = %d, want %d", i+1, got, want)
		}
	}
	if !g.IsLost() || g.IsWon() || g.Status() != Lost {
		t.Errorf("after 6 misses: won=%v lost=%v status=%q, want lost", g.IsWon(), g.IsLost(), g.Status())
	}
}

func TestAlreadyGuessed(t *testing.T) {
	g := New("cat")

	// Pre-seeded letters count as guessed.
	if out := g.RecordGuess('a'); out != AlreadyGuessed {
		t.Errorf("guess seeded a = %q, want %q", out, AlreadyGuessed)
	}

	g.RecordGuess('x')
	before := g.AttemptsUsed()
	for i := 0; i < 2; i++ {
		if out := g.RecordGuess('x'); out != AlreadyGuessed {
			t.Errorf("repeat guess x #%d = %q, want %q", i+1, out, AlreadyGuessed)
		}
	}
	if g.AttemptsUsed() != before {
		t.Errorf("AttemptsUsed changed from %d to %d on duplicate", before, g.AttemptsUsed())
	}
}

func TestRecordGuessMonotonic(t *testing.T) {
	g := New("sneeze")
	prevAttempts := g.AttemptsUsed()
	prevGuessed := len(g.Guessed())
	for _, r := range "aszzqnexwvut" {
		g.RecordGuess(r)
		if g.AttemptsUsed() < prevAttempts {
			t.Fatalf("attempts decreased: %d -> %d", prevAttempts, g.AttemptsUsed())
		}
		if len(g.Guessed()) < prevGuessed {
			t.Fatalf("guessed letters shrank: %d -> %d", prevGuessed, len(g.Guessed()))
		}
		if g.AttemptsUsed() > MaxAttempts {
			t.Fatalf("attempts %d exceed MaxAttempts", g.AttemptsUsed())
		}
		prevAttempts, prevGuessed = g.AttemptsUsed(), len(g.Guessed())
	}
}

func TestWinAndLossExclusive(t *testing.T) {
	// Five misses, then the winning letter: a win, never both.
	g := New("cat")
	for _, r := range "xyzqj" {
		g.RecordGuess(r)
	}
	g.RecordGuess('c')
	g.RecordGuess('t')
	if g.IsWon() == g.IsLost() {
		t.Errorf("won=%v lost=%v, want exactly one", g.IsWon(), g.IsLost())
	}
	if g.Status() != Won {
		t.Errorf("status = %q, want %q", g.Status(), Won)
	}
}

func TestGuessedSorted(t *testing.T) {
	g := New("borrow")
	g.RecordGuess('b')
	g.RecordGuess('z')
	want := []rune{'b', 'o', 'w', 'z'}
	if diff := cmp.Diff(want, g.Guessed()); diff != "" {
		t.Errorf("Guessed (-want +got)\n%s", diff)
	}
}
