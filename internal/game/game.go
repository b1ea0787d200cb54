package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/spaceman/internal/gamedata"
	"github.com/samdwyer/spaceman/internal/telemetry"
	"github.com/samdwyer/spaceman/internal/ui"
)

const (
	sinisterChoice = "2"
	againChoice    = "1"
)

// Console is where the game talks to the player.
type Console interface {
	Show(board ui.Board)
	Say(msg string)
	Warn(msg string)
	// Prompt blocks for one line of input. io.EOF means the player is gone.
	Prompt(ctx context.Context, msg string) (string, error)
}

// WordSource supplies secret words.
type WordSource interface {
	RandomWord(ctx context.Context) (string, error)
	// Sinister returns a word consistent with the guesses so far, or current.
	Sinister(ctx context.Context, current string, guessed []string) string
}

// Game runs rounds until the player stops.
type Game struct {
	console Console
	words   WordSource
	art     *gamedata.Art
	log     zerolog.Logger
	newID   func() string
}

// New creates a game. art may be nil, in which case no drawing is shown.
func New(console Console, words WordSource, art *gamedata.Art, log zerolog.Logger) *Game {
	return &Game{
		console: console,
		words:   words,
		art:     art,
		log:     log.With().Str("component", "game").Logger(),
		newID:   uuid.NewString,
	}
}

// Run plays rounds until the player declines another or input ends.
// A word list that cannot be read is returned as an error.
func (g *Game) Run(ctx context.Context) error {
	ctx, span := telemetry.Tracer("game").Start(ctx, "session.run")
	defer span.End()

	rounds := 0
	defer func() {
		span.SetAttributes(attribute.Int("rounds", rounds))
		g.log.Info().Int("rounds", rounds).Msg("session ended")
	}()

	for {
		secret, err := g.words.RandomWord(ctx)
		if err != nil {
			span.RecordError(err)
			return fmt.Errorf("load secret word: %w", err)
		}

		_, err = g.Play(ctx, secret)
		if err != nil {
			return ignoreEOF(err)
		}
		rounds++

		answer, err := g.console.Prompt(ctx, "Play again with a new word? Enter 1 to play again, anything else to quit: ")
		if err != nil {
			return ignoreEOF(err)
		}
		if strings.TrimSpace(answer) != againChoice {
			return nil
		}
	}
}

// Play runs one round with the given secret word and returns it once it has
// ended.
func (g *Game) Play(ctx context.Context, secret string) (*Round, error) {
	round := NewRound(secret, false)
	round.ID = g.newID()
	log := g.log.With().Str("round_id", round.ID).Logger()

	ctx, span := telemetry.Tracer("game").Start(ctx, "round.play")
	defer span.End()

	g.console.Say(fmt.Sprintf("Welcome to spaceman! Fill in the word one letter at a time. "+
		"If you guess incorrectly %d times, you lose!", round.Limit))
	g.console.Say(fmt.Sprintf("There are %d letters in the secret word.", round.Limit))

	mode, err := g.console.Prompt(ctx, "Enter 2 for a sinister game, anything else for a normal game: ")
	if err != nil {
		return round, err
	}
	round.Sinister = strings.TrimSpace(mode) == sinisterChoice

	span.SetAttributes(
		attribute.String("round_id", round.ID),
		attribute.Int("limit", round.Limit),
		attribute.Bool("sinister", round.Sinister),
	)
	log.Info().Int("limit", round.Limit).Bool("sinister", round.Sinister).Msg("round started")

	for !round.Outcome.Terminal() {
		g.console.Show(g.board(round))

		res, err := g.takeTurn(ctx, round)
		if err != nil {
			log.Info().Err(err).Int("turns", round.Turns).Msg("round abandoned")
			return round, err
		}

		if res.Correct {
			g.console.Say(fmt.Sprintf("Yes! %q is in the word.", res.Letter))
		} else {
			g.console.Say(fmt.Sprintf("Oh no, %q isn't in the word! %d incorrect guesses remaining.",
				res.Letter, round.Remaining()))
		}

		if round.Sinister && res.Correct && !round.Outcome.Terminal() {
			g.resolveSinister(ctx, round, log)
		}
	}

	g.console.Show(g.board(round))
	switch round.Outcome {
	case Won:
		g.console.Say(fmt.Sprintf("Great job, you guessed the word, which was %q!", round.Secret))
	case Lost:
		g.console.Say(fmt.Sprintf("%d incorrect guesses, sorry, you lose! The word was %q.",
			round.Incorrect, round.Secret))
	}

	span.SetAttributes(
		attribute.String("outcome", round.Outcome.String()),
		attribute.Int("turns", round.Turns),
		attribute.Int("incorrect", round.Incorrect),
	)
	log.Info().
		Str("outcome", round.Outcome.String()).
		Int("turns", round.Turns).
		Int("incorrect", round.Incorrect).
		Str("secret", round.Secret).
		Msg("round finished")

	return round, nil
}

// takeTurn prompts until the player enters a usable guess and applies it.
func (g *Game) takeTurn(ctx context.Context, round *Round) (GuessResult, error) {
	for {
		input, err := g.console.Prompt(ctx, "Enter a single letter guess: ")
		if err != nil {
			return GuessResult{}, err
		}

		res, err := round.Guess(ctx, input)
		switch {
		case errors.Is(err, ErrAlreadyGuessed):
			g.console.Warn("You already guessed that letter! Enter a different letter; no guess consumed.")
		case errors.Is(err, ErrInvalidGuess):
			g.console.Warn("Invalid guess. Single letters only! No numbers, special symbols, or words.")
		case err != nil:
			return GuessResult{}, err
		default:
			return res, nil
		}
	}
}

// resolveSinister swaps the secret for another word matching the board.
func (g *Game) resolveSinister(ctx context.Context, round *Round, log zerolog.Logger) {
	before := round.Secret
	if round.Swap(g.words.Sinister(ctx, round.Secret, round.Guessed)) {
		log.Debug().Str("from", before).Str("to", round.Secret).Msg("secret word swapped")
	}
}

func (g *Game) board(round *Round) ui.Board {
	b := ui.Board{
		Reveal:    round.Reveal(),
		Guessed:   round.Guessed,
		Incorrect: round.Incorrect,
		Limit:     round.Limit,
		Sinister:  round.Sinister,
	}
	if g.art != nil {
		b.Stage = g.art.Stage(round.Incorrect, round.Limit)
	}
	return b
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
