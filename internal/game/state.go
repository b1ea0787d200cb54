// Package game provides the round rules and the session loop.
package game

// Outcome is where a round stands.
type Outcome int

const (
	// InProgress - the round is still accepting guesses
	InProgress Outcome = iota
	// Won - every letter of the secret word has been guessed
	Won
	// Lost - the incorrect-guess budget is spent
	Lost
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "in_progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the round has ended.
func (o Outcome) Terminal() bool {
	return o == Won || o == Lost
}
