package results

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/robalobadob/hangman/internal/game"
)

// timeLayout is fixed-width so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Result is one finished game.
type Result struct {
	ID         string     `json:"id"`
	Word       string     `json:"word"`
	State      game.State `json:"state"`
	Wrong      int        `json:"wrong"`
	Guesses    int        `json:"guesses"`
	StartedAt  time.Time  `json:"startedAt"`
	FinishedAt time.Time  `json:"finishedAt"`
}

// FromGame builds the ledger row for a finished game.
func FromGame(g *game.Game) Result {
	return Result{
		ID:         g.ID,
		Word:       g.Word,
		State:      g.State,
		Wrong:      g.Wrong,
		Guesses:    g.Guessed.Len(),
		StartedAt:  g.StartedAt,
		FinishedAt: g.FinishedAt,
	}
}

// Summary aggregates the whole ledger.
type Summary struct {
	Played int `json:"played"`
	Won    int `json:"won"`
	Lost   int `json:"lost"`
	Streak int `json:"streak"` // consecutive wins ending with the newest game
}

// ErrUnfinished is returned when recording a game that is still in progress.
var ErrUnfinished = errors.New("results: game not finished")

type Store struct{ db *sql.DB }

// Open opens the ledger at dsn and applies migrations.
func Open(dsn string) (*Store, error) {
	db, err := openDB(dsn)
	if err != nil {
		return nil, fmt.Errorf("results: open: %w", err)
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("results: migrate: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Record inserts r. A result already recorded under the same ID is ignored.
func (s *Store) Record(ctx context.Context, r Result) error {
	if r.State != game.StateWon && r.State != game.StateLost {
		return ErrUnfinished
	}
	_, err := s.db.ExecContext(ctx, `
        INSERT OR IGNORE INTO results
            (id, word, state, wrong, guesses, started_at, finished_at)
        VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Word, string(r.State), r.Wrong, r.Guesses,
		r.StartedAt.UTC().Format(timeLayout), r.FinishedAt.UTC().Format(timeLayout),
	)
	return err
}

// Summary counts games and computes the current win streak.
func (s *Store) Summary(ctx context.Context) (Summary, error) {
	var sum Summary
	if err := s.db.QueryRowContext(ctx, `
        SELECT COUNT(1),
               COALESCE(SUM(state = 'won'), 0),
               COALESCE(SUM(state = 'lost'), 0)
        FROM results`,
	).Scan(&sum.Played, &sum.Won, &sum.Lost); err != nil {
		return Summary{}, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT state FROM results ORDER BY finished_at DESC, rowid DESC`)
	if err != nil {
		return Summary{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var st string
		if err := rows.Scan(&st); err != nil {
			return Summary{}, err
		}
		if game.State(st) != game.StateWon {
			break
		}
		sum.Streak++
	}
	return sum, rows.Err()
}

// Limits for Recent.
const (
	defaultRecent = 20
	maxRecent     = 100
)

// Recent returns up to limit results, newest first. Non-positive limits
// select the default of 20; larger ones are capped at 100.
func (s *Store) Recent(ctx context.Context, limit int) ([]Result, error) {
	switch {
	case limit <= 0:
		limit = defaultRecent
	case limit > maxRecent:
		limit = maxRecent
	}
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, word, state, wrong, guesses, started_at, finished_at
        FROM results
        ORDER BY finished_at DESC, rowid DESC
        LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Result{}
	for rows.Next() {
		var (
			r                 Result
			state             string
			started, finished string
		)
		if err := rows.Scan(&r.ID, &r.Word, &state, &r.Wrong, &r.Guesses, &started, &finished); err != nil {
			return nil, err
		}
		r.State = game.State(state)
		if r.StartedAt, err = time.Parse(timeLayout, started); err != nil {
			return nil, fmt.Errorf("results: %s started_at: %w", r.ID, err)
		}
		if r.FinishedAt, err = time.Parse(timeLayout, finished); err != nil {
			return nil, fmt.Errorf("results: %s finished_at: %w", r.ID, err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
