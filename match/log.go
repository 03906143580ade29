// ABOUTME: Match log for committed candidate selections
// ABOUTME: Records accepted candidates and serves the recent-match history

// Package match persists committed selections. When the viewer accepts the
// card on screen, the engine emits the current candidate and this log
// records who was matched and when.
package match

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"mentordeck/deck"
	"mentordeck/store"
)

// Match is one committed selection.
type Match struct {
	ID            string
	CandidateID   string
	CandidateName string
	MatchedAt     time.Time
}

// Log records and lists matches in the local database.
type Log struct {
	db *sql.DB
}

// NewLog wraps an open database
func NewLog(db *sql.DB) *Log {
	return &Log{db: db}
}

// Record stores a committed selection for the candidate. The candidate
// name is denormalized so history survives catalog reimports.
func (l *Log) Record(ctx context.Context, c deck.Candidate) (Match, error) {
	m := Match{
		ID:            uuid.NewString(),
		CandidateID:   c.ID,
		CandidateName: c.Name,
		MatchedAt:     store.Now(),
	}

	_, err := l.db.ExecContext(ctx,
		`INSERT INTO matches(id, candidate_id, candidate_name, matched_at) VALUES(?, ?, ?, ?)`,
		m.ID, m.CandidateID, m.CandidateName, m.MatchedAt)
	if err != nil {
		return Match{}, fmt.Errorf("failed to record match: %w", err)
	}

	return m, nil
}

// Recent returns the newest matches, most recent first
func (l *Log) Recent(ctx context.Context, limit int) ([]Match, error) {
	if limit <= 0 {
		return nil, nil
	}

	rows, err := l.db.QueryContext(ctx,
		`SELECT id, candidate_id, candidate_name, matched_at
		 FROM matches ORDER BY matched_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches: %w", err)
	}
	defer rows.Close()

	var matches []Match
	for rows.Next() {
		var m Match
		if err := rows.Scan(&m.ID, &m.CandidateID, &m.CandidateName, &m.MatchedAt); err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read matches: %w", err)
	}

	return matches, nil
}

// Count returns the total number of recorded matches
func (l *Log) Count(ctx context.Context) (int, error) {
	var count int
	err := l.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM matches`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count matches: %w", err)
	}
	return count, nil
}
