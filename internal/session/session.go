// Package session runs rounds back to back until the player stops.
//
// The session owns no I/O of its own: player input comes through Input and
// every message goes through Presenter, so the same loop drives the
// terminal and the tests.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
	"github.com/robalobadob/wordle/apps/go-cli/internal/store"
)

// AffirmativeToken is the only answer that starts another round.
const AffirmativeToken = "yes"

// recentLimit is how many finished rounds the summary lists.
const recentLimit = 5

// Input supplies one line of player input per call.
// It returns io.EOF when no more input is available.
type Input interface {
	ReadLine(ctx context.Context) (string, error)
}

// Presenter shows game events to the player.
type Presenter interface {
	Welcome(opts game.Options)
	Prompt(attempt, maxAttempts, length int)
	Rejected(guess string, length int, err error)
	Scored(t game.Turn)
	Won(t game.Turn)
	Lost(target string)
	Remaining(n int)
	AskReplay()
	Summary(s store.Summary, recent []store.Result)
	Goodbye()
}

// Session repeats rounds while the player answers AffirmativeToken.
type Session struct {
	opts  game.Options
	pool  game.Pool
	pick  game.Picker
	in    Input
	out   Presenter
	store store.Store

	single bool
}

// Option tweaks a Session.
type Option func(*Session)

// SingleRound ends the session after one round without offering a replay.
// Daily play uses it: every round of the day would draw the same word.
func SingleRound() Option {
	return func(s *Session) { s.single = true }
}

// New wires a session. st may be nil, in which case rounds are not recorded.
func New(opts game.Options, pool game.Pool, pick game.Picker, in Input, out Presenter, st store.Store, options ...Option) *Session {
	s := &Session{opts: opts, pool: pool, pick: pick, in: in, out: out, store: st}
	for _, o := range options {
		o(s)
	}
	return s
}

// Run plays rounds until the player declines, input ends or ctx is done.
// Running out of input is a normal end of session, not an error.
func (s *Session) Run(ctx context.Context) error {
	s.out.Welcome(s.opts)

	for {
		if err := s.playRound(ctx); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		if s.single {
			break
		}

		s.out.AskReplay()
		answer, err := s.in.ReadLine(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		if game.Normalize(answer) != AffirmativeToken {
			break
		}
	}

	s.showSummary(ctx)
	s.out.Goodbye()
	return nil
}

// playRound drives one round to Won or Lost.
func (s *Session) playRound(ctx context.Context) error {
	r, err := game.NewRound(s.opts, s.pool, s.pick)
	if err != nil {
		return fmt.Errorf("start round: %w", err)
	}
	log.Debug().Str("round", r.ID()).Int("maxAttempts", s.opts.MaxAttempts).Str("mode", s.opts.Mode.String()).Msg("round started")

	for !r.Outcome().Terminal() {
		s.out.Prompt(r.NextAttempt(), s.opts.MaxAttempts, s.opts.WordLength)
		line, err := s.in.ReadLine(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				log.Debug().Str("round", r.ID()).Int("attempts", r.Attempts()).Msg("input ended mid-round")
			}
			return err
		}

		turn, err := r.Guess(line)
		if err != nil {
			if errors.Is(err, game.ErrInvalidGuess) {
				s.out.Rejected(game.Normalize(line), s.opts.WordLength, err)
				continue
			}
			return err
		}

		s.out.Scored(turn)
		switch turn.Outcome {
		case game.Won:
			s.out.Won(turn)
		case game.Lost:
			target, _ := r.Reveal()
			s.out.Lost(target)
		default:
			s.out.Remaining(turn.Remaining)
		}
	}

	log.Debug().Str("round", r.ID()).Str("outcome", r.Outcome().String()).Int("attempts", r.Attempts()).Msg("round finished")
	s.record(ctx, r)
	return nil
}

// record saves a finished round. Failures are logged, never fatal.
func (s *Session) record(ctx context.Context, r *game.Round) {
	if s.store == nil {
		return
	}
	target, _ := r.Reveal()
	res := store.Result{
		RoundID:     r.ID(),
		Target:      target,
		Won:         r.Outcome() == game.Won,
		Attempts:    r.Attempts(),
		MaxAttempts: r.Options().MaxAttempts,
		StartedAt:   r.StartedAt(),
		FinishedAt:  r.FinishedAt(),
	}
	if err := s.store.Save(ctx, res); err != nil {
		log.Warn().Err(err).Str("round", r.ID()).Msg("save round")
	}
}

func (s *Session) showSummary(ctx context.Context) {
	if s.store == nil {
		return
	}
	sum, err := s.store.Summary(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("session summary")
		return
	}
	if sum.Played == 0 {
		return
	}
	recent, err := s.store.Recent(ctx, recentLimit)
	if err != nil {
		log.Warn().Err(err).Msg("recent rounds")
	}
	s.out.Summary(sum, recent)
}
