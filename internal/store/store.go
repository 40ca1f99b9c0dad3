// internal/store/store.go
//
// Round history for the current session.
// Finished rounds are saved here and summarized when the session ends
// (games played, wins, streaks, guess distribution).
//
// Implementations:
//   - NewMemoryStore: map/slice guarded by a mutex.
//   - OpenSQLite:     in-memory SQLite database (nothing is written to disk).
//
// Both are safe for concurrent use. Saving a round ID twice keeps the first.

package store

import (
	"context"
	"time"
)

// Result is one finished round.
type Result struct {
	RoundID     string
	Target      string
	Won         bool
	Attempts    int // accepted guesses, winning guess included
	MaxAttempts int
	StartedAt   time.Time
	FinishedAt  time.Time
}

// Summary aggregates all saved results.
type Summary struct {
	Played        int
	Wins          int
	CurrentStreak int
	MaxStreak     int
	Distribution  map[int]int // attempts → number of wins
}

// WinRate returns wins/played in percent, 0 when nothing was played.
func (s Summary) WinRate() float64 {
	if s.Played == 0 {
		return 0
	}
	return float64(s.Wins) * 100 / float64(s.Played)
}

// Store defines the persistence interface for finished rounds.
type Store interface {
	// Save records a finished round.
	Save(ctx context.Context, r Result) error

	// Summary aggregates every saved round.
	Summary(ctx context.Context) (Summary, error)

	// Recent returns up to limit rounds, newest first.
	Recent(ctx context.Context, limit int) ([]Result, error)

	// Close releases resources held by the store.
	Close() error
}

// streaks walks results oldest first: a win extends the streak, a loss resets it.
func streaks(won []bool) (current, best int) {
	for _, w := range won {
		if w {
			current++
			if current > best {
				best = current
			}
		} else {
			current = 0
		}
	}
	return current, best
}
