package game

import (
	"bytes"
	"context"
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/samdwyer/spaceman/internal/gamedata"
	"github.com/samdwyer/spaceman/internal/reveal"
	"github.com/samdwyer/spaceman/internal/ui"
	"github.com/samdwyer/spaceman/internal/words"
)

// stubWords hands out secret words in order and scripts sinister swaps.
type stubWords struct {
	secrets  []string
	next     int
	err      error
	swaps    []string // Returned by successive Sinister calls; current once exhausted
	sinister int      // Number of Sinister calls
}

func (s *stubWords) RandomWord(ctx context.Context) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	w := s.secrets[s.next%len(s.secrets)]
	s.next++
	return w, nil
}

func (s *stubWords) Sinister(ctx context.Context, current string, guessed []string) string {
	s.sinister++
	if s.sinister <= len(s.swaps) {
		return s.swaps[s.sinister-1]
	}
	return current
}

// newTestGame builds a game reading the given input lines.
func newTestGame(source WordSource, input string) (*Game, *bytes.Buffer) {
	var out bytes.Buffer
	console := ui.NewLineConsole(strings.NewReader(input), &out)
	g := New(console, source, gamedata.MustLoadArt(), zerolog.Nop())
	g.newID = func() string { return "test-round" }
	return g, &out
}

func TestPlayWin(t *testing.T) {
	g, out := newTestGame(&stubWords{}, "1\nd\no\ng\n")

	round, err := g.Play(context.Background(), "dog")
	if err != nil {
		t.Fatalf("Play() error: %v", err)
	}

	if round.Outcome != Won {
		t.Errorf("Outcome = %v, want Won", round.Outcome)
	}
	if round.Turns != 3 || round.Incorrect != 0 {
		t.Errorf("Turns = %d, Incorrect = %d, want 3 and 0", round.Turns, round.Incorrect)
	}
	if round.ID != "test-round" {
		t.Errorf("ID = %q, want %q", round.ID, "test-round")
	}

	text := out.String()
	for _, want := range []string{"incorrectly 3 times", "3 letters", "Great job", `"dog"`} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
}

func TestPlayLoss(t *testing.T) {
	g, out := newTestGame(&stubWords{}, "1\nx\ny\nz\nd\n")

	round, err := g.Play(context.Background(), "dog")
	if err != nil {
		t.Fatalf("Play() error: %v", err)
	}

	if round.Outcome != Lost {
		t.Errorf("Outcome = %v, want Lost", round.Outcome)
	}
	if round.Incorrect != 3 || round.Turns != 3 {
		t.Errorf("Incorrect = %d, Turns = %d, want 3 and 3", round.Incorrect, round.Turns)
	}
	if round.HasGuessed("d") {
		t.Error("round kept accepting guesses after the loss")
	}

	text := out.String()
	if !strings.Contains(text, "you lose") || !strings.Contains(text, `"dog"`) {
		t.Errorf("loss announcement missing:\n%s", text)
	}
	if !strings.Contains(text, "2 incorrect guesses remaining") {
		t.Errorf("remaining-guess feedback missing:\n%s", text)
	}
}

func TestPlayRejectsBadInput(t *testing.T) {
	// mode, then: hit, repeat, digit, word, symbol, upper-case repeat, hit, hit
	input := "\nd\nd\n1\nab\n!\nD\no\ng\n"
	g, out := newTestGame(&stubWords{}, input)

	round, err := g.Play(context.Background(), "dog")
	if err != nil {
		t.Fatalf("Play() error: %v", err)
	}

	if round.Outcome != Won || round.Turns != 3 || round.Incorrect != 0 {
		t.Errorf("round = %v after %d turns with %d misses, want Won, 3, 0",
			round.Outcome, round.Turns, round.Incorrect)
	}

	text := out.String()
	if got := strings.Count(text, "already guessed"); got != 2 {
		t.Errorf("repeat warnings = %d, want 2", got)
	}
	if got := strings.Count(text, "Invalid guess"); got != 3 {
		t.Errorf("invalid warnings = %d, want 3", got)
	}
}

func TestPlayNormalModeNeverSwaps(t *testing.T) {
	source := &stubWords{swaps: []string{"cot"}}
	g, _ := newTestGame(source, "1\nc\na\nt\n")

	round, err := g.Play(context.Background(), "cat")
	if err != nil {
		t.Fatalf("Play() error: %v", err)
	}
	if source.sinister != 0 {
		t.Errorf("Sinister called %d times in a normal round", source.sinister)
	}
	if round.Secret != "cat" || round.Outcome != Won {
		t.Errorf("Secret = %q, Outcome = %v, want cat and Won", round.Secret, round.Outcome)
	}
}

func TestPlaySinisterSwapsAfterCorrectGuesses(t *testing.T) {
	// c hits and swaps cat -> cot, so a now misses; o hits; t wins
	source := &stubWords{swaps: []string{"cot"}}
	g, out := newTestGame(source, "2\nc\na\no\nt\n")

	round, err := g.Play(context.Background(), "cat")
	if err != nil {
		t.Fatalf("Play() error: %v", err)
	}

	if !round.Sinister {
		t.Error("Sinister = false, want true after choosing 2")
	}
	if round.Secret != "cot" {
		t.Errorf("Secret = %q, want %q", round.Secret, "cot")
	}
	if round.Outcome != Won || round.Incorrect != 1 || round.Turns != 4 {
		t.Errorf("round = %v, %d misses, %d turns, want Won, 1, 4",
			round.Outcome, round.Incorrect, round.Turns)
	}
	// After c and o; never after the miss or the winning guess
	if source.sinister != 2 {
		t.Errorf("Sinister called %d times, want 2", source.sinister)
	}
	if !strings.Contains(out.String(), `"cot"`) {
		t.Errorf("announcement should name the swapped word:\n%s", out.String())
	}
}

func TestPlaySinisterSwapCompletesWord(t *testing.T) {
	// Every hidden position of "ccc" holds the c just found
	source := &stubWords{swaps: []string{"ccc"}}
	g, out := newTestGame(source, "2\nc\n")

	round, err := g.Play(context.Background(), "cat")
	if err != nil {
		t.Fatalf("Play() error: %v", err)
	}

	if round.Outcome != Won || round.Turns != 1 {
		t.Errorf("round = %v after %d turns, want Won after 1", round.Outcome, round.Turns)
	}
	if !strings.Contains(out.String(), `Great job, you guessed the word, which was "ccc"`) {
		t.Errorf("win announcement missing:\n%s", out.String())
	}
}

func TestPlaySinisterWithDictionary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("car cat cup"), 0o644); err != nil {
		t.Fatalf("write word list: %v", err)
	}
	dict := words.New(path, rand.New(rand.NewSource(3)), zerolog.Nop())

	// Every path through car/cat/cup ends within these guesses
	var out bytes.Buffer
	console := ui.NewLineConsole(strings.NewReader("2\nc\na\nt\nr\nu\np\n"), &out)
	g := New(console, dict, nil, zerolog.Nop())

	round, err := g.Play(context.Background(), "cat")
	if err != nil {
		t.Fatalf("Play() error: %v", err)
	}

	if !round.Outcome.Terminal() {
		t.Fatalf("Outcome = %v, want the round finished", round.Outcome)
	}
	switch round.Secret {
	case "car", "cat", "cup":
	default:
		t.Errorf("Secret = %q, want a word from the list", round.Secret)
	}
	if !strings.HasPrefix(round.Reveal(), "c") {
		t.Errorf("Reveal() = %q lost the revealed c", round.Reveal())
	}
	if round.Outcome == Won && strings.ContainsRune(round.Reveal(), reveal.Mask) {
		t.Errorf("Reveal() = %q after a win", round.Reveal())
	}
}

func TestRunPlaysAgain(t *testing.T) {
	source := &stubWords{secrets: []string{"dog", "cat"}}
	input := "1\nd\no\ng\n1\n1\nc\na\nt\nn\n"
	g, out := newTestGame(source, input)

	if err := g.Run(context.Background()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if source.next != 2 {
		t.Errorf("RandomWord called %d times, want 2", source.next)
	}
	text := out.String()
	if got := strings.Count(text, "Great job"); got != 2 {
		t.Errorf("wins announced %d times, want 2", got)
	}
	if !strings.Contains(text, `"dog"`) || !strings.Contains(text, `"cat"`) {
		t.Errorf("both secret words should be announced:\n%s", text)
	}
}

func TestRunEndsOnEOF(t *testing.T) {
	source := &stubWords{secrets: []string{"dog"}}
	g, _ := newTestGame(source, "1\nd\n")

	if err := g.Run(context.Background()); err != nil {
		t.Errorf("Run() with closed input = %v, want nil", err)
	}
}

func TestRunWordListErrors(t *testing.T) {
	missing := words.New(filepath.Join(t.TempDir(), "words.txt"), rand.New(rand.NewSource(1)), zerolog.Nop())
	g, _ := newTestGame(missing, "1\n")

	err := g.Run(context.Background())
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Run() with missing list = %v, want os.ErrNotExist", err)
	}

	boom := errors.New("boom")
	g, _ = newTestGame(&stubWords{err: boom}, "1\n")
	if err := g.Run(context.Background()); !errors.Is(err, boom) {
		t.Errorf("Run() = %v, want wrapped boom", err)
	}
}

func TestRunWithWordListFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("cat\n"), 0o644); err != nil {
		t.Fatalf("write word list: %v", err)
	}
	dict := words.New(path, rand.New(rand.NewSource(1)), zerolog.Nop())
	g, out := newTestGame(dict, "2\nc\na\nt\nq\n")

	if err := g.Run(context.Background()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if !strings.Contains(out.String(), `Great job, you guessed the word, which was "cat"`) {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}
