// Package confirm provides the single-use yes/no prompt used when a registry cannot be verified.
package confirm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	iopkg "github.com/devantler-tech/wilder/pkg/io"
	"github.com/devantler-tech/wilder/pkg/utils/notify"
	"golang.org/x/term"
)

var (
	// ErrGateClosed is returned when Ask is called after Close.
	ErrGateClosed = errors.New("confirmation prompt already closed")
	// ErrAlreadyAsked is returned when Ask is called a second time on the same gate.
	ErrAlreadyAsked = errors.New("confirmation prompt can only be answered once per command")
)

// promptSuffix is appended to every question.
const promptSuffix = " (y/n): "

// affirmativeAnswers are accepted case-insensitively after trimming.
//
//nolint:gochecknoglobals // static lookup table
var affirmativeAnswers = map[string]struct{}{
	"y":   {},
	"yes": {},
	"s":   {},
	"sí":  {},
}

// Gate owns the interactive input for the duration of one command.
// Open it where the command starts and defer Close so the terminal is released on every path.
type Gate struct {
	mu     sync.Mutex
	reader *bufio.Reader
	out    io.Writer

	fd     int
	state  *term.State
	asked  bool
	closed bool
}

// Open takes ownership of in for prompting and writes questions to out.
// When in is a terminal, its current state is captured so Close can restore it.
func Open(in io.Reader, out io.Writer) *Gate {
	if in == nil {
		in = os.Stdin
	}

	if out == nil {
		out = os.Stdout
	}

	gate := &Gate{
		reader: bufio.NewReader(in),
		out:    out,
		fd:     -1,
	}

	if file, ok := in.(*os.File); ok {
		fd := int(file.Fd()) //nolint:gosec // file descriptors fit in int

		if term.IsTerminal(fd) {
			gate.fd = fd

			state, err := term.GetState(fd)
			if err == nil {
				gate.state = state
			}
		}
	}

	return gate
}

// Ask writes prompt followed by " (y/n): " and reads one line of input.
// It returns true for y, yes, s or sí in any case; anything else, including
// empty input or end of input, is a refusal. Other read failures are returned.
func (g *Gate) Ask(prompt string) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return false, ErrGateClosed
	}

	if g.asked {
		return false, ErrAlreadyAsked
	}

	g.asked = true

	notify.Promptf(g.out, "%s%s", prompt, promptSuffix)

	line, err := g.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return false, fmt.Errorf("read answer: %w", err)
		}

		if line == "" {
			// Keep the next output off the prompt line.
			_, _ = io.WriteString(g.out, "\n")

			return false, nil
		}
	}

	return IsAffirmative(line), nil
}

// Close releases the input and restores the terminal state captured by Open.
// Close is safe to call more than once.
func (g *Gate) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return nil
	}

	g.closed = true

	if g.state == nil {
		return nil
	}

	err := term.Restore(g.fd, g.state)
	if err != nil {
		return err //nolint:wrapcheck // surfaced as-is to the command layer
	}

	return nil
}

// IsAffirmative reports whether answer is one of the accepted affirmative answers.
func IsAffirmative(answer string) bool {
	_, ok := affirmativeAnswers[iopkg.Fold(answer)]

	return ok
}
