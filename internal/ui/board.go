package ui

import "github.com/samdwyer/spaceman/internal/gamedata"

// Board is everything the player sees between guesses.
type Board struct {
	Reveal    string // Reveal pattern, e.g. "c_t"
	Guessed   []string
	Incorrect int
	Limit     int
	Sinister  bool
	Stage     *gamedata.StageDef // Drawing for the current miss count, may be nil
}

// Remaining returns how many more misses the player can afford.
func (b Board) Remaining() int {
	if b.Incorrect >= b.Limit {
		return 0
	}
	return b.Limit - b.Incorrect
}
