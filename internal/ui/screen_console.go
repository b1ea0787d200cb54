package ui

import (
	"context"
	"io"

	"github.com/gdamore/tcell/v2"
)

// maxTranscript bounds the messages kept for redraws.
const maxTranscript = 200

// ScreenConsole plays the game full-screen in the terminal.
// Escape or Ctrl-C at any prompt ends the session as if input had closed.
type ScreenConsole struct {
	screen     *Screen
	renderer   *Renderer
	board      *Board
	transcript []Message
}

// NewScreenConsole creates a console drawing on screen.
func NewScreenConsole(screen *Screen) *ScreenConsole {
	return &ScreenConsole{
		screen:   screen,
		renderer: NewRenderer(screen),
	}
}

// Show replaces the board drawn above the transcript.
func (c *ScreenConsole) Show(b Board) {
	c.board = &b
	c.renderer.Render(c.board, c.transcript, "", "")
}

// Say adds a line of narration.
func (c *ScreenConsole) Say(msg string) {
	c.add(Message{Text: msg})
}

// Warn adds a rejected-input message.
func (c *ScreenConsole) Warn(msg string) {
	c.add(Message{Text: msg, Warn: true})
}

// Prompt shows msg on the bottom row and collects keystrokes until Enter.
func (c *ScreenConsole) Prompt(ctx context.Context, msg string) (string, error) {
	var input []rune
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		c.renderer.Render(c.board, c.transcript, msg, string(input))

		switch ev := c.screen.PollEvent().(type) {
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return "", io.EOF
			case tcell.KeyEnter:
				c.add(Message{Text: msg + string(input)})
				return string(input), nil
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				if len(input) > 0 {
					input = input[:len(input)-1]
				}
			case tcell.KeyRune:
				input = append(input, ev.Rune())
			}
		case *tcell.EventResize:
			c.screen.Sync()
		case nil:
			// Screen finalized underneath us
			return "", io.EOF
		}
	}
}

// Close restores the terminal.
func (c *ScreenConsole) Close() {
	c.screen.Close()
}

func (c *ScreenConsole) add(m Message) {
	c.transcript = append(c.transcript, m)
	if len(c.transcript) > maxTranscript {
		c.transcript = c.transcript[len(c.transcript)-maxTranscript:]
	}
}
