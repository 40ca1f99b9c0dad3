// Package console is the terminal front end: it prints instructions,
// prompts, feedback and results, and reads player input line by line.
//
// Feedback symbols:
//
//	✓  letter is correct and in the right position
//	≈  letter is in the hidden word at another position
//	✗  letter is not in the hidden word
//
// With colour enabled the guessed letters are also drawn as coloured tiles.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
	"github.com/robalobadob/wordle/apps/go-cli/internal/store"
)

// Presenter writes game events to an io.Writer.
type Presenter struct {
	out    io.Writer
	styles Styles
	color  bool
}

// NewPresenter returns a Presenter writing to out.
func NewPresenter(out io.Writer, color bool) *Presenter {
	return &Presenter{out: out, styles: NewStyles(out, DefaultTheme(), color), color: color}
}

// ColorEnabled reports whether w is a terminal and colour was not disabled.
func ColorEnabled(w io.Writer, noColor bool) bool {
	if noColor {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (p *Presenter) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}

// Welcome prints the instructions.
func (p *Presenter) Welcome(opts game.Options) {
	p.printf("Welcome to the Word Guessing Game!\n")
	p.printf("A player has to guess a hidden %d-letter word.\n", opts.WordLength)
	p.printf("You have %d attempts to find the hidden word.\n", opts.MaxAttempts)
	if opts.Mode == game.ModeMatch {
		p.printf("After each guess you are only told whether it was the hidden word.\n")
	} else {
		p.printf("Your Progress Guide:\n")
		p.printf("- '%s' means the letter at that position is correct.\n", game.GlyphCorrect)
		p.printf("- '%s' means the letter is in the hidden word but in a different position.\n", game.GlyphPresent)
		p.printf("- '%s' means the letter is not in the hidden word.\n", game.GlyphAbsent)
	}
	p.printf("Good luck!\n\n")
}

// Prompt asks for the next guess.
func (p *Presenter) Prompt(attempt, maxAttempts, length int) {
	p.printf("Attempt %d/%d: Enter your %d-letter guess: ", attempt, maxAttempts, length)
}

// maxEcho caps how much of a rejected guess is repeated back.
const maxEcho = 32

// Rejected explains why a guess was not accepted.
func (p *Presenter) Rejected(guess string, length int, err error) {
	if len(guess) > maxEcho {
		guess = guess[:maxEcho] + "..."
	}
	msg := fmt.Sprintf("Invalid guess! Make sure '%s' is a valid %d-letter word from the word list.", guess, length)
	p.printf("%s %s\n\n", p.styles.Error.Render(msg), p.styles.Muted.Render("("+reason(err)+")"))
}

// Scored prints the feedback for an accepted guess.
func (p *Presenter) Scored(t game.Turn) {
	if t.Feedback == nil {
		if t.Outcome != game.Won {
			p.printf("Not the hidden word.\n")
		}
		return
	}
	if p.color {
		p.printf("%s  %s\n", RenderTiles(p.styles, t.Guess, t.Feedback), t.Feedback)
		return
	}
	p.printf("Feedback: %s\n", t.Feedback)
}

// Won congratulates the player.
func (p *Presenter) Won(t game.Turn) {
	p.printf("%s (%d %s)\n", p.styles.Success.Render("Congratulations! You've guessed the word correctly!"),
		t.Attempt, plural(t.Attempt, "attempt"))
}

// Lost reveals the target.
func (p *Presenter) Lost(target string) {
	p.printf("Sorry, you've run out of attempts. Better luck next time!\n")
	p.printf("The hidden word was: %s\n", target)
}

// Remaining prints how many guesses are left.
func (p *Presenter) Remaining(n int) {
	p.printf("You have %d %s left.\n\n", n, plural(n, "attempt"))
}

// AskReplay asks whether to start another round.
func (p *Presenter) AskReplay() {
	p.printf("Do you want to play again? (yes/no): ")
}

// Summary prints the session statistics, the guess distribution and the
// most recent rounds, newest first.
func (p *Presenter) Summary(s store.Summary, recent []store.Result) {
	p.printf("\nPlayed: %d  Wins: %d (%.0f%%)  Streak: %d  Best streak: %d\n",
		s.Played, s.Wins, s.WinRate(), s.CurrentStreak, s.MaxStreak)
	p.distribution(s.Distribution)

	if len(recent) == 0 {
		return
	}
	p.printf("Recent rounds:\n")
	for _, r := range recent {
		if r.Won {
			p.printf("  %s  %s in %d/%d\n", r.Target, p.styles.Success.Render("won"), r.Attempts, r.MaxAttempts)
			continue
		}
		p.printf("  %s  %s\n", r.Target, p.styles.Error.Render("lost"))
	}
}

func (p *Presenter) distribution(d map[int]int) {
	if len(d) == 0 {
		return
	}

	keys := make([]int, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	p.printf("Guess distribution:\n")
	for _, k := range keys {
		n := d[k]
		p.printf("  %d: %s %d\n", k, strings.Repeat("#", n), n)
	}
}

// Goodbye ends the session.
func (p *Presenter) Goodbye() {
	p.printf("Thanks for playing! Goodbye!\n")
}

// RenderTiles draws each letter of guess in the style of its mark.
func RenderTiles(s Styles, guess string, fb game.Feedback) string {
	var b strings.Builder
	for i, m := range fb {
		if i >= len(guess) {
			break
		}
		b.WriteString(s.Tile(m).Render(strings.ToUpper(guess[i : i+1])))
	}
	return b.String()
}

// reason strips the "invalid guess: " prefix from a rejection error.
func reason(err error) string {
	if err == nil {
		return "unknown"
	}
	msg := err.Error()
	if i := strings.LastIndex(msg, ": "); i >= 0 {
		return msg[i+2:]
	}
	return msg
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

// Reader reads one trimmed line per call. Lines have no length limit; an
// oversized guess is rejected by the round like any other bad guess.
type Reader struct {
	br *bufio.Reader
}

// NewReader wraps r.
func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReader(r)}
}

// ReadLine blocks until a line is available. It returns io.EOF at end of
// input and ctx.Err() if ctx is already done. A final line without a
// newline is still returned.
func (r *Reader) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	line, err := r.br.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}
