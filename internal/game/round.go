package game

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/spaceman/internal/reveal"
	"github.com/samdwyer/spaceman/internal/telemetry"
)

var (
	// ErrInvalidGuess is returned for input that is not exactly one letter.
	ErrInvalidGuess = errors.New("guess must be a single letter")
	// ErrAlreadyGuessed is returned when the letter was guessed earlier in the round.
	ErrAlreadyGuessed = errors.New("letter already guessed")
	// ErrRoundOver is returned for guesses after the round has ended.
	ErrRoundOver = errors.New("round is over")
)

// Round holds the state of a single secret word.
type Round struct {
	ID        string
	Secret    string
	Sinister  bool     // Swap the secret after correct guesses
	Limit     int      // Incorrect guesses allowed, the secret's length
	Guessed   []string // In the order they were guessed
	Incorrect int
	Turns     int // Accepted guesses
	Outcome   Outcome
}

// GuessResult describes an accepted guess.
type GuessResult struct {
	Letter  string
	Correct bool
	Outcome Outcome
}

// NewRound starts a round for secret.
func NewRound(secret string, sinister bool) *Round {
	return &Round{
		Secret:   secret,
		Sinister: sinister,
		Limit:    utf8.RuneCountInString(secret),
		Guessed:  []string{},
		Outcome:  InProgress,
	}
}

// Guess applies one guess. Input is lower-cased first; surrounding spaces
// make it invalid. Rejected input returns an error and leaves the round
// untouched, so it costs no turn.
func (r *Round) Guess(ctx context.Context, input string) (GuessResult, error) {
	if r.Outcome.Terminal() {
		return GuessResult{}, ErrRoundOver
	}

	letter, err := r.normalize(input)
	if err != nil {
		return GuessResult{}, err
	}

	_, span := telemetry.Tracer("round").Start(ctx, "round.guess")
	defer span.End()

	correct := reveal.IsGuessInWord(letter, r.Secret)
	if !correct {
		r.Incorrect++
	}
	r.Guessed = append(r.Guessed, letter)
	r.Turns++
	r.evaluate()

	span.SetAttributes(
		attribute.String("round_id", r.ID),
		attribute.String("letter", letter),
		attribute.Bool("correct", correct),
		attribute.Int("incorrect", r.Incorrect),
		attribute.Int("turn", r.Turns),
		attribute.String("outcome", r.Outcome.String()),
	)

	return GuessResult{Letter: letter, Correct: correct, Outcome: r.Outcome}, nil
}

// Swap replaces the secret with word. Words of a different length are
// ignored, since the budget is fixed for the round. Reports whether the
// secret changed.
func (r *Round) Swap(word string) bool {
	if word == r.Secret || utf8.RuneCountInString(word) != r.Limit {
		return false
	}
	r.Secret = word
	r.evaluate()
	return true
}

// Reveal returns the secret with unguessed letters masked.
func (r *Round) Reveal() string {
	return reveal.GuessedWord(r.Secret, r.Guessed)
}

// Remaining returns how many more misses the round can take.
func (r *Round) Remaining() int {
	if r.Incorrect >= r.Limit {
		return 0
	}
	return r.Limit - r.Incorrect
}

// HasGuessed reports whether letter was already guessed this round.
func (r *Round) HasGuessed(letter string) bool {
	for _, g := range r.Guessed {
		if g == letter {
			return true
		}
	}
	return false
}

func (r *Round) normalize(input string) (string, error) {
	letter := strings.ToLower(input)
	if r.HasGuessed(letter) {
		return "", ErrAlreadyGuessed
	}
	if utf8.RuneCountInString(letter) != 1 || letter[0] < 'a' || letter[0] > 'z' {
		return "", ErrInvalidGuess
	}
	return letter, nil
}

// evaluate updates Outcome. A loss and a win cannot both hold: the winning
// guess is correct and never moves Incorrect.
func (r *Round) evaluate() {
	switch {
	case r.Incorrect >= r.Limit:
		r.Outcome = Lost
	case reveal.IsWordGuessed(r.Secret, r.Guessed):
		r.Outcome = Won
	default:
		r.Outcome = InProgress
	}
}
