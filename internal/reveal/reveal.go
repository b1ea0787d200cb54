// Package reveal projects a secret word and a set of guessed letters into
// what the player is allowed to see.
//
// All functions are case-sensitive. Callers lower-case input before it
// reaches this package, so secret words must be lower-case too.
package reveal

import "strings"

// Mask is the character shown for a position whose letter is not yet guessed.
const Mask = '_'

// IsWordGuessed reports whether every character of secret appears in guessed.
func IsWordGuessed(secret string, guessed []string) bool {
	for _, r := range secret {
		if !contains(guessed, r) {
			return false
		}
	}
	return true
}

// GuessedWord returns secret with every unguessed position replaced by Mask.
// The result has the same number of runes as secret.
func GuessedWord(secret string, guessed []string) string {
	var b strings.Builder
	b.Grow(len(secret))
	for _, r := range secret {
		if contains(guessed, r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(Mask)
		}
	}
	return b.String()
}

// IsGuessInWord reports whether guess occurs anywhere in secret.
func IsGuessInWord(guess, secret string) bool {
	return guess != "" && strings.Contains(secret, guess)
}

// Spaced separates the cells of a reveal pattern with single spaces, so
// consecutive masks stay countable on screen.
func Spaced(pattern string) string {
	cells := make([]string, 0, len(pattern))
	for _, r := range pattern {
		cells = append(cells, string(r))
	}
	return strings.Join(cells, " ")
}

func contains(guessed []string, r rune) bool {
	s := string(r)
	for _, g := range guessed {
		if g == s {
			return true
		}
	}
	return false
}
