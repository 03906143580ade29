// ABOUTME: Catalog import pipeline with near-duplicate detection
// ABOUTME: Skips candidates whose identity text nearly matches earlier entries

package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"

	"mentordeck/deck"
	"mentordeck/pool"
	"mentordeck/store"
)

// duplicateThreshold is the normalized similarity at or above which a later
// candidate is treated as a copy of an earlier one.
const duplicateThreshold = 0.85

// Report summarizes one import run.
type Report struct {
	Imported int
	Skipped  []Skipped
}

// Skipped records a candidate dropped by the near-duplicate scan.
type Skipped struct {
	Candidate   deck.Candidate
	DuplicateOf string // id of the earlier candidate it collided with
	Similarity  float64
}

// Import upserts candidates into the database, skipping entries that are
// near-duplicates of earlier ones. Input order decides catalog positions
// and who survives a collision: the earlier entry wins. The whole run is
// one transaction, so a failed import leaves the catalog untouched.
func Import(ctx context.Context, db *sql.DB, candidates []deck.Candidate) (Report, error) {
	dups := duplicateScan(candidates)

	var report Report
	err := store.WithTx(db, func(tx *sql.Tx) error {
		now := store.Now()
		position := 0
		for i, c := range candidates {
			if skipped, isDup := dups[i]; isDup {
				report.Skipped = append(report.Skipped, skipped)
				continue
			}
			if err := execUpsert(ctx, tx, c, position, now); err != nil {
				return fmt.Errorf("failed to import %s: %w", c.ID, err)
			}
			position++
			report.Imported++
		}
		return nil
	})
	if err != nil {
		return Report{}, err
	}

	return report, nil
}

// duplicateScan compares every candidate against all earlier ones and maps
// input indexes to skip records. Each entry owns its comparisons against
// earlier entries, so workers never write the same slot.
func duplicateScan(candidates []deck.Candidate) map[int]Skipped {
	if len(candidates) < 2 {
		return nil
	}

	results := make([]*Skipped, len(candidates))

	wp := pool.New(0)
	defer wp.Close()

	for i := 1; i < len(candidates); i++ {
		wp.Submit(func() {
			for j := 0; j < i; j++ {
				sim := similarity(candidates[i], candidates[j])
				if sim >= duplicateThreshold {
					results[i] = &Skipped{
						Candidate:   candidates[i],
						DuplicateOf: candidates[j].ID,
						Similarity:  sim,
					}
					return
				}
			}
		})
	}
	wp.Wait()

	dups := make(map[int]Skipped)
	for i, r := range results {
		if r != nil {
			dups[i] = *r
		}
	}
	return dups
}

// similarity scores how alike two candidates' identity text is, from 0
// (unrelated) to 1 (identical). Sharing an id is an exact duplicate
// regardless of text.
func similarity(a, b deck.Candidate) float64 {
	if a.ID == b.ID {
		return 1
	}

	sa, sb := identityText(a), identityText(b)
	if sa == "" || sb == "" {
		return 0
	}
	if sa == sb {
		return 1
	}

	distance := levenshtein.ComputeDistance(sa, sb)
	maxLen := len(sa)
	if len(sb) > maxLen {
		maxLen = len(sb)
	}
	return 1.0 - float64(distance)/float64(maxLen)
}

// identityText normalizes the fields that identify a candidate to a human:
// the name plus the headline, case- and whitespace-folded.
func identityText(c deck.Candidate) string {
	s := strings.TrimSpace(c.Name) + " " + strings.TrimSpace(c.Headline)
	return strings.ToUpper(strings.Join(strings.Fields(s), " "))
}
