package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/spaceman/internal/reveal"
)

// Message is one line of the transcript under the board.
type Message struct {
	Text string
	Warn bool
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the board, as much recent transcript as fits, and the prompt
// with the input typed so far on the bottom row.
func (r *Renderer) Render(board *Board, transcript []Message, prompt, input string) {
	r.screen.Clear()
	_, height := r.screen.Size()

	titleStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	textStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)

	y := 0
	title := "SPACEMAN"
	if board != nil && board.Sinister {
		title += "  (sinister)"
	}
	r.drawText(0, y, title, titleStyle)
	y += 2

	if board != nil {
		if board.Stage != nil {
			artStyle := tcell.StyleDefault.Foreground(board.Stage.TCellColor())
			for _, line := range board.Stage.Lines {
				r.drawText(2, y, line, artStyle)
				y++
			}
			y++
		}
		r.drawText(0, y, "Word:    "+reveal.Spaced(board.Reveal), textStyle.Bold(true))
		y++
		r.drawText(0, y, "Guessed: "+strings.Join(board.Guessed, ", "), textStyle)
		y++
		r.drawText(0, y, fmt.Sprintf("Misses:  %d of %d", board.Incorrect, board.Limit), textStyle)
		y += 2
	}

	// Transcript fills the rows between the board and the prompt
	promptY := height - 1
	rows := promptY - y
	if rows > 0 {
		start := 0
		if len(transcript) > rows {
			start = len(transcript) - rows
		}
		for _, msg := range transcript[start:] {
			style := textStyle
			if msg.Warn {
				style = tcell.StyleDefault.Foreground(tcell.ColorRed)
			}
			r.drawText(0, y, msg.Text, style)
			y++
		}
	}

	promptStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	x := r.drawText(0, promptY, prompt, promptStyle)
	x = r.drawText(x, promptY, input, textStyle)
	r.screen.SetContent(x, promptY, '_', textStyle.Blink(true))

	r.screen.Show()
}

// drawText writes s starting at (x, y) and returns the column after it.
func (r *Renderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, style)
		x++
	}
	return x
}
