package words

import (
	"context"
	"regexp"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/spaceman/internal/reveal"
	"github.com/samdwyer/spaceman/internal/telemetry"
)

// Sinister returns a dictionary word consistent with everything the player
// has been told so far. The replacement has the same length, the same letter
// at every revealed position, and no missed letter anywhere. A correctly
// guessed letter may appear again at a hidden position; it then shows as
// revealed.
//
// When no word fits, or the list cannot be read, current is returned.
func (d *Dictionary) Sinister(ctx context.Context, current string, guessed []string) string {
	ctx, span := telemetry.Tracer("words").Start(ctx, "sinister.resolve")
	defer span.End()

	pattern := reveal.GuessedWord(current, guessed)
	span.SetAttributes(attribute.String("pattern", pattern))

	re, err := Pattern(current, guessed)
	if err != nil {
		d.log.Warn().Err(err).Str("pattern", pattern).Msg("sinister pattern did not compile")
		return current
	}

	words, err := d.Words(ctx)
	if err != nil {
		d.log.Warn().Err(err).Msg("sinister lookup skipped")
		return current
	}

	matches := Matches(re, words)
	span.SetAttributes(attribute.Int("sinister.candidates", len(matches)))
	if len(matches) == 0 {
		d.log.Debug().Str("pattern", pattern).Msg("no sinister candidate")
		return current
	}

	next := strings.TrimSpace(matches[d.rng.Intn(len(matches))])
	span.SetAttributes(attribute.Bool("sinister.swapped", next != current))
	d.log.Debug().
		Str("pattern", pattern).
		Int("candidates", len(matches)).
		Bool("swapped", next != current).
		Msg("sinister word chosen")
	return next
}

// Pattern compiles the anchored expression a replacement for current must
// match. Revealed letters are literals; hidden positions accept any ASCII
// letter except the misses.
func Pattern(current string, guessed []string) (*regexp.Regexp, error) {
	var missed []string
	for _, g := range guessed {
		if !reveal.IsGuessInWord(g, current) {
			missed = append(missed, g)
		}
	}
	hidden := hiddenClass(missed)

	var b strings.Builder
	b.WriteByte('^')
	for _, r := range reveal.GuessedWord(current, guessed) {
		if r == reveal.Mask {
			b.WriteString(hidden)
			continue
		}
		b.WriteString(regexp.QuoteMeta(string(r)))
	}
	b.WriteByte('$')

	return regexp.Compile(b.String())
}

// Matches returns the words re accepts, in list order. Duplicates in the
// list stay duplicated, weighting the random pick the same way.
func Matches(re *regexp.Regexp, words []string) []string {
	var out []string
	for _, w := range words {
		if re.MatchString(w) {
			out = append(out, w)
		}
	}
	return out
}

// hiddenClass is a character class of the letters a hidden position may hold.
func hiddenClass(missed []string) string {
	taken := map[rune]bool{}
	for _, m := range missed {
		for _, r := range m {
			taken[r] = true
		}
	}

	var b strings.Builder
	b.WriteByte('[')
	for _, bounds := range [][2]rune{{'a', 'z'}, {'A', 'Z'}} {
		for r := bounds[0]; r <= bounds[1]; r++ {
			if !taken[r] {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte(']')
	return b.String()
}
