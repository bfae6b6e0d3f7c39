// Package terminal reads the player's input from and draws the table to a text console
package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"fortio.org/terminal/ansipixels"
	"golang.org/x/term"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
)

const defaultWidth = 48

// ErrNoChoice is returned by Choose when there is nothing to choose from
var ErrNoChoice = errors.New("no options to choose from")

// Console is a line-oriented terminal
type Console struct {
	in  *bufio.Reader
	out io.Writer

	// fd is the output's file descriptor, or -1 if the output is not a file
	fd int

	// ap draws on stdout when it is a terminal, nil otherwise
	ap *ansipixels.AnsiPixels

	startReader sync.Once
	lines       chan string
	readErr     error
}

// New returns a console reading from in and writing to out
func New(in io.Reader, out io.Writer) *Console {
	fd := -1
	if f, ok := out.(*os.File); ok {
		fd = int(f.Fd())
	}

	c := &Console{
		in:    bufio.NewReader(in),
		out:   out,
		fd:    fd,
		lines: make(chan string),
	}

	if out == os.Stdout && c.IsInteractive() {
		c.ap = ansipixels.NewAnsiPixels(0)
	}

	return c
}

// NewStdio returns a console attached to stdin and stdout
func NewStdio() *Console {
	return New(os.Stdin, os.Stdout)
}

// IsInteractive returns true if the output is a terminal
func (c *Console) IsInteractive() bool {
	return c.fd >= 0 && term.IsTerminal(c.fd)
}

// Width returns the terminal width, or a default when it cannot be determined
func (c *Console) Width() int {
	if !c.IsInteractive() {
		return defaultWidth
	}

	width, _, err := term.GetSize(c.fd)
	if err != nil || width <= 0 {
		return defaultWidth
	}

	if width > 80 {
		return 80
	}

	return width
}

// Clear clears the screen on an interactive terminal
func (c *Console) Clear() {
	if c.ap == nil {
		return
	}

	c.ap.StartSyncMode()
	c.ap.ClearScreen()
	c.ap.EndSyncMode()
}

// colored returns true if cards should be drawn with coloured faces
func (c *Console) colored() bool {
	return c.ap != nil
}

// Println writes a line of text
func (c *Console) Println(a ...interface{}) {
	_, _ = fmt.Fprintln(c.out, a...)
}

func (c *Console) printf(format string, a ...interface{}) {
	_, _ = fmt.Fprintf(c.out, format, a...)
}

// ReadLine prints the prompt and returns the trimmed line the user types
// It returns ctx.Err() as soon as the context is cancelled, even while waiting for input.
func (c *Console) ReadLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if prompt != "" {
		c.printf("%s: ", prompt)
	}

	c.startReader.Do(func() { go c.readLines() })

	select {
	case <-ctx.Done():
		c.printf("\n")
		return "", ctx.Err()
	case line, ok := <-c.lines:
		if !ok {
			return "", c.readErr
		}

		return strings.TrimSpace(line), nil
	}
}

// readLines feeds c.lines until the input fails
// A line that arrives after a cancelled prompt waits for the next ReadLine.
func (c *Console) readLines() {
	defer close(c.lines)

	for {
		str, err := c.in.ReadString('\n')
		if err != nil && (err != io.EOF || str == "") {
			c.readErr = err
			return
		}

		c.lines <- str
		if err != nil {
			c.readErr = err
			return
		}
	}
}

// Choose prints a numbered list and returns the index of the option picked
// Invalid answers are asked again.
func (c *Console) Choose(ctx context.Context, title string, options []string) (int, error) {
	if len(options) == 0 {
		return -1, ErrNoChoice
	}

	if title != "" {
		c.Println(title)
	}

	for i, option := range options {
		c.printf("  %d) %s\n", i+1, option)
	}

	for {
		answer, err := c.ReadLine(ctx, "Choose")
		if err != nil {
			return -1, err
		}

		n, err := strconv.Atoi(answer)
		if err == nil && n >= 1 && n <= len(options) {
			return n - 1, nil
		}

		c.printf("Please enter a number from 1 to %d\n", len(options))
	}
}

// Confirm asks a yes/no question, defaulting to no
func (c *Console) Confirm(ctx context.Context, question string) (bool, error) {
	answer, err := c.ReadLine(ctx, question+" (y/N)")
	if err != nil {
		return false, err
	}

	return answer != "" && strings.ToLower(answer)[0] == 'y', nil
}
