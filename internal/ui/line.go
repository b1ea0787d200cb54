package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/samdwyer/spaceman/internal/reveal"
)

// LineConsole plays the game as plain prompt/response text. It is used when
// stdin or stdout is not a terminal, and in tests. Styling degrades to plain
// text automatically when out is not a terminal.
type LineConsole struct {
	in  *bufio.Reader
	out io.Writer

	styles *lipgloss.Renderer
	title  lipgloss.Style
	warn   lipgloss.Style
}

// NewLineConsole creates a console reading answers from in and writing to out.
func NewLineConsole(in io.Reader, out io.Writer) *LineConsole {
	r := lipgloss.NewRenderer(out)
	return &LineConsole{
		in:     bufio.NewReader(in),
		out:    out,
		styles: r,
		title:  r.NewStyle().Bold(true),
		warn:   r.NewStyle().Foreground(lipgloss.Color("#FF5F5F")),
	}
}

// Show prints the drawing and the state of the word.
func (c *LineConsole) Show(b Board) {
	if b.Stage != nil {
		style := c.styles.NewStyle().Foreground(lipgloss.Color(b.Stage.Color))
		for _, line := range b.Stage.Lines {
			fmt.Fprintln(c.out, style.Render(line))
		}
	}
	fmt.Fprintf(c.out, "%s %s\n", c.title.Render("The word so far is"), reveal.Spaced(b.Reveal))
	fmt.Fprintf(c.out, "Letters guessed so far: %s\n", strings.Join(b.Guessed, ", "))
	fmt.Fprintf(c.out, "Incorrect guesses left: %d\n", b.Remaining())
}

// Say prints a line of narration.
func (c *LineConsole) Say(msg string) {
	fmt.Fprintln(c.out, msg)
}

// Warn prints a rejected-input message.
func (c *LineConsole) Warn(msg string) {
	fmt.Fprintln(c.out, c.warn.Render(msg))
}

// Prompt prints msg and returns the next input line without its line ending.
// A final line without a newline is still returned; io.EOF follows once the
// input is exhausted.
func (c *LineConsole) Prompt(ctx context.Context, msg string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fmt.Fprint(c.out, msg)
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
