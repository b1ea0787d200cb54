// Package words reads the word list and picks secret words from it.
//
// The list is a single line of lower-case words separated by single spaces.
// It is read from disk on every call; nothing is cached between rounds.
package words

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/spaceman/internal/telemetry"
)

// ErrEmptyDictionary is returned when the word list holds no words.
var ErrEmptyDictionary = errors.New("word list is empty")

// maxLineSize bounds the single line the list is stored on.
const maxLineSize = 16 << 20

// Dictionary picks words from a word-list file.
type Dictionary struct {
	path string
	rng  *rand.Rand
	log  zerolog.Logger
}

// New creates a dictionary backed by the file at path.
func New(path string, rng *rand.Rand, log zerolog.Logger) *Dictionary {
	return &Dictionary{
		path: path,
		rng:  rng,
		log:  log.With().Str("component", "words").Logger(),
	}
}

// Path returns the word-list location.
func (d *Dictionary) Path() string {
	return d.path
}

// Words reads the word list. Only the first line is considered; it is split
// on single spaces and empty tokens are dropped. Duplicates are kept.
func (d *Dictionary) Words(ctx context.Context) ([]string, error) {
	_, span := telemetry.Tracer("words").Start(ctx, "words.load")
	defer span.End()

	f, err := os.Open(d.path)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("open word list %s: %w", d.path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	var line string
	if sc.Scan() {
		line = sc.Text()
	}
	if err := sc.Err(); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("read word list %s: %w", d.path, err)
	}

	words := split(line)
	span.SetAttributes(attribute.Int("words.count", len(words)))
	d.log.Debug().Int("count", len(words)).Str("path", d.path).Msg("word list loaded")
	return words, nil
}

// RandomWord returns a word chosen uniformly at random from the list.
func (d *Dictionary) RandomWord(ctx context.Context) (string, error) {
	words, err := d.Words(ctx)
	if err != nil {
		return "", err
	}
	if len(words) == 0 {
		return "", fmt.Errorf("%s: %w", d.path, ErrEmptyDictionary)
	}
	return words[d.rng.Intn(len(words))], nil
}

// split turns the word-list line into tokens.
func split(line string) []string {
	line = strings.TrimRight(line, "\r\n")
	tokens := strings.Split(line, " ")
	words := tokens[:0]
	for _, t := range tokens {
		if t != "" {
			words = append(words, t)
		}
	}
	return words
}
