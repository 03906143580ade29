// ABOUTME: SQLite-backed candidate catalog
// ABOUTME: Loads the browsing deck in position order and upserts imports

package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"mentordeck/deck"
)

// Store serves candidates from the local database, in the position order
// assigned at import time.
type Store struct {
	db *sql.DB
}

// NewStore wraps an open database
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// LoadAll returns every candidate ordered by catalog position
func (s *Store) LoadAll(ctx context.Context) ([]deck.Candidate, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, headline, category, skills, years, bio
		 FROM candidates ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidates: %w", err)
	}
	defer rows.Close()

	var candidates []deck.Candidate
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read candidates: %w", err)
	}

	return candidates, nil
}

// Count returns how many candidates the catalog holds
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM candidates`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count candidates: %w", err)
	}
	return count, nil
}

// Upsert inserts or replaces one candidate at the given position
func (s *Store) Upsert(ctx context.Context, c deck.Candidate, position int) error {
	return execUpsert(ctx, s.db, c, position, time.Now().UTC())
}

// execer covers both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

func execUpsert(ctx context.Context, e execer, c deck.Candidate, position int, now time.Time) error {
	skills, err := json.Marshal(c.Skills)
	if err != nil {
		return fmt.Errorf("failed to encode skills: %w", err)
	}

	_, err = e.ExecContext(ctx,
		`INSERT INTO candidates(id, name, headline, category, skills, years, bio, position, created_at, updated_at)
		 VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   name=excluded.name, headline=excluded.headline, category=excluded.category,
		   skills=excluded.skills, years=excluded.years, bio=excluded.bio,
		   position=excluded.position, updated_at=excluded.updated_at`,
		c.ID, c.Name, c.Headline, c.Category, string(skills), c.Years, c.Bio, position, now, now)
	if err != nil {
		return fmt.Errorf("failed to upsert candidate: %w", err)
	}
	return nil
}

func scanCandidate(rows *sql.Rows) (deck.Candidate, error) {
	var c deck.Candidate
	var skills string
	if err := rows.Scan(&c.ID, &c.Name, &c.Headline, &c.Category, &skills, &c.Years, &c.Bio); err != nil {
		return deck.Candidate{}, fmt.Errorf("failed to scan candidate: %w", err)
	}
	if skills != "" {
		if err := json.Unmarshal([]byte(skills), &c.Skills); err != nil {
			return deck.Candidate{}, fmt.Errorf("candidate %s: failed to decode skills: %w", c.ID, err)
		}
	}
	return c, nil
}
