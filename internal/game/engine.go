// internal/game/engine.go
//
// Round controller for a single game round.
// Responsibilities:
//   - Draw a target from the pool through a Picker.
//   - Validate and apply guesses (length, alphabetic, word list).
//   - Score accepted guesses (see Score).
//   - Track state transitions: playing → won/lost.
//
// Notes:
//   - Word length and attempt budget come from Options; nothing is global.
//   - Rejected guesses never consume an attempt.
//   - The target is only readable through Reveal once the round is over.
package game

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultWordLength  = 5
	DefaultMaxAttempts = 6
	// LegacyMaxAttempts is the budget of the match-only variant.
	LegacyMaxAttempts = 5
)

// Options configures a round.
type Options struct {
	WordLength  int
	MaxAttempts int
	Mode        Mode
}

// DefaultOptions returns the canonical 5-letter, 6-attempt feedback game.
func DefaultOptions() Options {
	return Options{WordLength: DefaultWordLength, MaxAttempts: DefaultMaxAttempts, Mode: ModeFeedback}
}

func (o Options) validate() error {
	if o.WordLength <= 0 {
		return fmt.Errorf("%w: word length %d", ErrInvalidOptions, o.WordLength)
	}
	if o.MaxAttempts <= 0 {
		return fmt.Errorf("%w: max attempts %d", ErrInvalidOptions, o.MaxAttempts)
	}
	return nil
}

// Pool is the draw pool and guess dictionary. *words.List implements it.
type Pool interface {
	Dictionary
	Len() int
	At(i int) string
}

// Picker returns an index in [0, n). words.RandomIndex draws uniformly.
type Picker func(n int) int

// Round holds the state of a single round.
type Round struct {
	id       string
	opts     Options
	dict     Dictionary
	target   string
	attempts int // accepted guesses so far, winning guess included
	outcome  Outcome
	history  []Turn
	started  time.Time
	finished time.Time
}

// NewRound draws a target from pool with pick and returns a round awaiting
// its first guess.
func NewRound(opts Options, pool Pool, pick Picker) (*Round, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if pool == nil || pool.Len() == 0 {
		return nil, ErrEmptyPool
	}
	if pick == nil {
		return nil, fmt.Errorf("%w: nil picker", ErrInvalidOptions)
	}

	i := pick(pool.Len())
	if i < 0 || i >= pool.Len() {
		return nil, fmt.Errorf("%w: picker returned %d for pool of %d", ErrInvalidOptions, i, pool.Len())
	}
	target := Normalize(pool.At(i))
	if len(target) != opts.WordLength {
		return nil, fmt.Errorf("%w: target length %d, want %d", ErrInvalidOptions, len(target), opts.WordLength)
	}

	return &Round{
		id:      uuid.NewString(),
		opts:    opts,
		dict:    pool,
		target:  target,
		outcome: InProgress,
		started: time.Now(),
	}, nil
}

// Guess validates and applies a raw guess.
//
// Validation errors wrap ErrInvalidGuess and leave the round untouched.
// Guessing after the round ended returns ErrRoundOver.
//
// State transitions:
//   - guess == target          → Won.
//   - attempts reach the limit → Lost.
//   - otherwise                → still playing.
func (r *Round) Guess(raw string) (Turn, error) {
	if r.outcome.Terminal() {
		return Turn{}, ErrRoundOver
	}
	if err := Check(raw, r.dict, r.opts.WordLength); err != nil {
		return Turn{}, err
	}
	guess := Normalize(raw)

	var fb Feedback
	if r.opts.Mode == ModeFeedback {
		fb = Score(guess, r.target)
	}

	r.attempts++
	switch {
	case guess == r.target:
		r.finish(Won)
	case r.attempts >= r.opts.MaxAttempts:
		r.finish(Lost)
	}

	t := Turn{
		Guess:     guess,
		Feedback:  fb,
		Attempt:   r.attempts,
		Remaining: r.opts.MaxAttempts - r.attempts,
		Outcome:   r.outcome,
	}
	r.history = append(r.history, t)
	return t, nil
}

func (r *Round) finish(o Outcome) {
	r.outcome = o
	r.finished = time.Now()
}

// ID returns the round identifier.
func (r *Round) ID() string { return r.id }

// Options returns the options the round was created with.
func (r *Round) Options() Options { return r.opts }

// Outcome returns the current outcome.
func (r *Round) Outcome() Outcome { return r.outcome }

// Attempts returns the number of accepted guesses.
func (r *Round) Attempts() int { return r.attempts }

// Remaining returns how many guesses are left.
func (r *Round) Remaining() int { return r.opts.MaxAttempts - r.attempts }

// NextAttempt returns the 1-based number of the next guess.
func (r *Round) NextAttempt() int { return r.attempts + 1 }

// History returns a copy of the accepted turns.
func (r *Round) History() []Turn { return append([]Turn(nil), r.history...) }

// StartedAt and FinishedAt bound the round; FinishedAt is zero while playing.
func (r *Round) StartedAt() time.Time  { return r.started }
func (r *Round) FinishedAt() time.Time { return r.finished }

// Reveal returns the target once the round is over.
func (r *Round) Reveal() (string, bool) {
	if !r.outcome.Terminal() {
		return "", false
	}
	return r.target, true
}
