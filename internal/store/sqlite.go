// internal/store/sqlite.go
//
// SQLite implementation of Store.
// Responsibilities:
//   - Opening an in-memory SQLite database (one connection, so every query
//     sees the same database; nothing outlives the process).
//   - Applying the embedded migrations (idempotent, recorded in _migrations).
//   - Saving rounds and computing the session summary.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-cli/assets"
)

type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens an in-memory SQLite database and applies migrations.
func OpenSQLite(ctx context.Context) (Store, error) {
	db, err := openDB()
	if err != nil {
		return nil, err
	}
	if err := migrate(ctx, db, assets.Migrations()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &sqliteStore{db: db}, nil
}

// openDB opens a private in-memory database.
//
// A ":memory:" database belongs to a single connection, so the pool is
// pinned to one connection that is never recycled.
func openDB() (*sql.DB, error) {
	db, err := sql.Open("sqlite3", ":memory:?_foreign_keys=on")
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return db, nil
}

// migrate applies *.sql files from fsys in lexical order.
//
// - Uses a _migrations table to track applied files.
// - Each file runs in its own transaction.
func migrate(ctx context.Context, db *sql.DB, fsys fs.FS) error {
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	var files []string
	if err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(strings.ToLower(d.Name()), ".sql") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return fmt.Errorf("walk migrations: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := db.QueryRowContext(ctx, `SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", f).Msg("already applied")
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("query _migrations: %w", err)
		}

		sqlBytes, err := fs.ReadFile(fsys, f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}

		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, string(sqlBytes)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		log.Debug().Str("migration", f).Msg("applied")
	}
	return nil
}

// Save inserts a round row. Existing round IDs are ignored.
func (s *sqliteStore) Save(ctx context.Context, r Result) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT OR IGNORE INTO rounds
            (id, target, won, attempts, max_attempts, started_at, finished_at, seq)
        VALUES (?, ?, ?, ?, ?, ?, ?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM rounds))`,
		r.RoundID, r.Target, r.Won, r.Attempts, r.MaxAttempts,
		r.StartedAt.UTC().Format(time.RFC3339Nano), r.FinishedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert round %s: %w", r.RoundID, err)
	}
	return nil
}

// Summary counts rounds and wins, builds the win distribution and walks
// rounds in order for streaks.
func (s *sqliteStore) Summary(ctx context.Context) (Summary, error) {
	sum := Summary{Distribution: make(map[int]int)}

	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1), COALESCE(SUM(won), 0) FROM rounds`,
	).Scan(&sum.Played, &sum.Wins); err != nil {
		return Summary{}, fmt.Errorf("count rounds: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT attempts, COUNT(1) FROM rounds WHERE won = 1 GROUP BY attempts`)
	if err != nil {
		return Summary{}, fmt.Errorf("distribution: %w", err)
	}
	for rows.Next() {
		var attempts, n int
		if err := rows.Scan(&attempts, &n); err != nil {
			rows.Close()
			return Summary{}, err
		}
		sum.Distribution[attempts] = n
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return Summary{}, err
	}

	rows, err = s.db.QueryContext(ctx, `SELECT won FROM rounds ORDER BY seq ASC`)
	if err != nil {
		return Summary{}, fmt.Errorf("streaks: %w", err)
	}
	defer rows.Close()

	won := make([]bool, 0, sum.Played)
	for rows.Next() {
		var w bool
		if err := rows.Scan(&w); err != nil {
			return Summary{}, err
		}
		won = append(won, w)
	}
	if err := rows.Err(); err != nil {
		return Summary{}, err
	}
	sum.CurrentStreak, sum.MaxStreak = streaks(won)
	return sum, nil
}

// Recent returns up to limit rounds, newest first. limit <= 0 means all.
func (s *sqliteStore) Recent(ctx context.Context, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, target, won, attempts, max_attempts, started_at, finished_at
        FROM rounds
        ORDER BY seq DESC
        LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query rounds: %w", err)
	}
	defer rows.Close()

	var out []Result
	for rows.Next() {
		var (
			r                 Result
			started, finished string
		)
		if err := rows.Scan(&r.RoundID, &r.Target, &r.Won, &r.Attempts, &r.MaxAttempts, &started, &finished); err != nil {
			return nil, err
		}
		r.StartedAt = mustParse(started)
		r.FinishedAt = mustParse(finished)
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *sqliteStore) Close() error { return s.db.Close() }

// mustParse parses RFC3339 timestamps; on error returns zero time.
func mustParse(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}
