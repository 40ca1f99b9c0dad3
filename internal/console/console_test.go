package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
	"github.com/robalobadob/wordle/apps/go-cli/internal/store"
)

func TestPresenter_Welcome(t *testing.T) {
	var buf bytes.Buffer
	p := NewPresenter(&buf, false)

	p.Welcome(game.DefaultOptions())

	out := buf.String()
	assert.Contains(t, out, "hidden 5-letter word")
	assert.Contains(t, out, "You have 6 attempts")
	assert.Contains(t, out, "'✓' means the letter at that position is correct.")
	assert.Contains(t, out, "'≈'")
	assert.Contains(t, out, "'✗'")
}

func TestPresenter_WelcomeMatchMode(t *testing.T) {
	var buf bytes.Buffer
	p := NewPresenter(&buf, false)

	p.Welcome(game.Options{WordLength: 5, MaxAttempts: 5, Mode: game.ModeMatch})

	assert.Contains(t, buf.String(), "You have 5 attempts")
	assert.NotContains(t, buf.String(), "Progress Guide")
}

func TestPresenter_Round(t *testing.T) {
	var buf bytes.Buffer
	p := NewPresenter(&buf, false)

	p.Prompt(1, 6, 5)
	p.Scored(game.Turn{Guess: "boost", Feedback: game.Score("boost", "stone"), Attempt: 1, Remaining: 5})
	p.Remaining(5)
	p.Remaining(1)
	p.Won(game.Turn{Attempt: 1})
	p.Lost("stone")

	out := buf.String()
	assert.Contains(t, out, "Attempt 1/6: Enter your 5-letter guess: ")
	assert.Contains(t, out, "Feedback: ✗✗✓≈≈\n")
	assert.Contains(t, out, "You have 5 attempts left.")
	assert.Contains(t, out, "You have 1 attempt left.")
	assert.Contains(t, out, "Congratulations! You've guessed the word correctly! (1 attempt)")
	assert.Contains(t, out, "The hidden word was: stone")
}

func TestPresenter_Rejected(t *testing.T) {
	var buf bytes.Buffer
	p := NewPresenter(&buf, false)

	p.Rejected("abcde", 5, game.ErrNotInWordList)

	assert.Contains(t, buf.String(), "Invalid guess! Make sure 'abcde' is a valid 5-letter word from the word list. (not in word list)")
}

func TestPresenter_RejectedClipsLongGuess(t *testing.T) {
	var buf bytes.Buffer
	p := NewPresenter(&buf, false)

	p.Rejected(strings.Repeat("a", 70000), 5, game.ErrWrongLength)

	out := buf.String()
	assert.Contains(t, out, "'"+strings.Repeat("a", maxEcho)+"...'")
	assert.Less(t, len(out), 200)
}

func TestPresenter_ScoredMatchMode(t *testing.T) {
	var buf bytes.Buffer
	p := NewPresenter(&buf, false)

	p.Scored(game.Turn{Guess: "boost", Outcome: game.InProgress})
	p.Scored(game.Turn{Guess: "stone", Outcome: game.Won})

	assert.Equal(t, "Not the hidden word.\n", buf.String())
}

func TestPresenter_Summary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPresenter(&buf, false)

	p.Summary(store.Summary{Played: 4, Wins: 3, CurrentStreak: 2, MaxStreak: 2, Distribution: map[int]int{4: 1, 2: 2}},
		[]store.Result{
			{Target: "stone", Won: true, Attempts: 2, MaxAttempts: 6},
			{Target: "crane", Won: false, Attempts: 6, MaxAttempts: 6},
		})

	out := buf.String()
	assert.Contains(t, out, "Played: 4  Wins: 3 (75%)  Streak: 2  Best streak: 2")
	assert.Less(t, strings.Index(out, "  2: ## 2"), strings.Index(out, "  4: # 1"))
	assert.Contains(t, out, "Recent rounds:\n  stone  won in 2/6\n  crane  lost\n")
}

func TestPresenter_SummaryWithoutRecent(t *testing.T) {
	var buf bytes.Buffer
	p := NewPresenter(&buf, false)

	p.Summary(store.Summary{Played: 1, Distribution: map[int]int{}}, nil)

	assert.NotContains(t, buf.String(), "Recent rounds")
	assert.NotContains(t, buf.String(), "Guess distribution")
}

func TestPresenter_AskReplayAndGoodbye(t *testing.T) {
	var buf bytes.Buffer
	p := NewPresenter(&buf, false)

	p.AskReplay()
	p.Goodbye()

	assert.Equal(t, "Do you want to play again? (yes/no): Thanks for playing! Goodbye!\n", buf.String())
}

func TestRenderTiles_Plain(t *testing.T) {
	var buf bytes.Buffer
	s := NewStyles(&buf, DefaultTheme(), false)

	assert.Equal(t, "BOOST", RenderTiles(s, "boost", game.Score("boost", "stone")))
}

func TestColorEnabled(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, ColorEnabled(&buf, false))
	assert.False(t, ColorEnabled(&buf, true))
}

func TestReader(t *testing.T) {
	r := NewReader(strings.NewReader("  Stone \nyes\n"))
	ctx := context.Background()

	line, err := r.ReadLine(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Stone", line)

	line, err = r.ReadLine(ctx)
	require.NoError(t, err)
	assert.Equal(t, "yes", line)

	_, err = r.ReadLine(ctx)
	assert.ErrorIs(t, err, io.EOF)
}

func TestReader_LongLine(t *testing.T) {
	long := strings.Repeat("a", 70000)
	r := NewReader(strings.NewReader(long + "\nstone"))
	ctx := context.Background()

	line, err := r.ReadLine(ctx)
	require.NoError(t, err)
	assert.Len(t, line, 70000)

	line, err = r.ReadLine(ctx)
	require.NoError(t, err, "last line without a newline is still read")
	assert.Equal(t, "stone", line)

	_, err = r.ReadLine(ctx)
	assert.ErrorIs(t, err, io.EOF)
}

func TestReader_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewReader(strings.NewReader("stone\n")).ReadLine(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
