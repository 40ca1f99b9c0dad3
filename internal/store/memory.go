// internal/store/memory.go
//
// In-memory implementation of Store.
// Results are kept in insertion order in a slice; an index map rejects
// duplicate round IDs. Concurrency-safe via RWMutex.

package store

import (
	"context"
	"sync"
)

// memory is an in-memory slice-based Store implementation.
type memory struct {
	mu      sync.RWMutex        // guards results and seen
	results []Result            // oldest first
	seen    map[string]struct{} // keyed by Result.RoundID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{seen: make(map[string]struct{})}
}

// Save appends the result unless its round ID was already saved.
func (m *memory) Save(ctx context.Context, r Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, dup := m.seen[r.RoundID]; dup {
		return nil
	}
	m.seen[r.RoundID] = struct{}{}
	m.results = append(m.results, r)
	return nil
}

func (m *memory) Summary(ctx context.Context) (Summary, error) {
	if err := ctx.Err(); err != nil {
		return Summary{}, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	s := Summary{Played: len(m.results), Distribution: make(map[int]int)}
	won := make([]bool, 0, len(m.results))
	for _, r := range m.results {
		won = append(won, r.Won)
		if r.Won {
			s.Wins++
			s.Distribution[r.Attempts]++
		}
	}
	s.CurrentStreak, s.MaxStreak = streaks(won)
	return s, nil
}

func (m *memory) Recent(ctx context.Context, limit int) ([]Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	if limit <= 0 || limit > len(m.results) {
		limit = len(m.results)
	}
	out := make([]Result, 0, limit)
	for i := len(m.results) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.results[i])
	}
	return out, nil
}

func (m *memory) Close() error { return nil }
