// Package console is the line-based text surface the game talks to.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInputClosed means the player's input stream ended.
var ErrInputClosed = errors.New("console: input closed")

// IO prints lines to the player and reads their replies.
type IO interface {
	Print(line string)
	ReadLine(prompt string) (string, error)
}

// Terminal implements IO over a reader and a writer, normally stdin and
// stdout. A single buffered reader is kept so no typed-ahead input is lost
// between prompts.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a Terminal reading from in and writing to out.
func New(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out}
}

// Print writes line followed by a newline.
func (t *Terminal) Print(line string) {
	fmt.Fprintln(t.out, line)
}

// ReadLine writes prompt without a newline and blocks for one line of
// input, returned without its line ending.
func (t *Terminal) ReadLine(prompt string) (string, error) {
	fmt.Fprint(t.out, prompt)
	line, err := t.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if err == io.EOF {
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
