// Package console wraps the line-oriented terminal shared by the game menu and
// the chat session. Both must read through the same Console so buffered input
// is never split between two readers.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const maxLineBytes = 1024 * 1024

// Console reads trimmed lines from in and writes prompts to out.
type Console struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// New builds a Console. A nil out discards output.
func New(in io.Reader, out io.Writer) (*Console, error) {
	if in == nil {
		return nil, fmt.Errorf("input reader is required")
	}
	if out == nil {
		out = io.Discard
	}
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return &Console{scanner: scanner, out: out}, nil
}

// Out returns the writer used for all terminal output.
func (c *Console) Out() io.Writer { return c.out }

// ReadLine prints label and returns the next input line, trimmed.
// It returns io.EOF once input is exhausted.
func (c *Console) ReadLine(label string) (string, error) {
	c.Print(label)
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.scanner.Text()), nil
}

// Print writes text without a trailing newline.
func (c *Console) Print(text string) {
	_, _ = io.WriteString(c.out, text)
}

// Println writes text followed by a newline.
func (c *Console) Println(text string) {
	_, _ = fmt.Fprintln(c.out, text)
}

// Newline writes a single line break.
func (c *Console) Newline() {
	_, _ = fmt.Fprintln(c.out)
}
