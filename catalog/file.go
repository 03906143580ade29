// ABOUTME: Handles reading and writing TOML deck files of candidates
// ABOUTME: Parses [[candidate]] tables in document order with validation

// Package catalog loads the candidate deck from its sources: TOML deck
// files for portable decks and the local database for the imported
// catalog. Both sources yield candidates in a stable order, which is the
// order the deck is browsed in.
package catalog

import (
	"context"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"mentordeck/deck"
)

// deckFile mirrors the on-disk TOML layout: a sequence of [[candidate]]
// tables.
type deckFile struct {
	Candidates []candidateEntry `toml:"candidate"`
}

type candidateEntry struct {
	ID       string   `toml:"id"`
	Name     string   `toml:"name"`
	Headline string   `toml:"headline"`
	Category string   `toml:"category"`
	Skills   []string `toml:"skills"`
	Years    int      `toml:"years"`
	Bio      string   `toml:"bio"`
}

// File serves candidates straight from a TOML deck file, bypassing the
// database. Useful for trying out a deck before importing it.
type File struct {
	Path string
}

// LoadAll reads the deck file and returns its candidates in document order
func (f *File) LoadAll(ctx context.Context) ([]deck.Candidate, error) {
	return ReadDeckFile(f.Path)
}

// ReadDeckFile parses a TOML deck file
// Every candidate needs at least an id and a name; order is preserved
func ReadDeckFile(path string) ([]deck.Candidate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read deck file: %w", err)
	}

	var df deckFile
	if err := toml.Unmarshal(data, &df); err != nil {
		return nil, fmt.Errorf("failed to parse deck file: %w", err)
	}

	candidates := make([]deck.Candidate, 0, len(df.Candidates))
	for i, e := range df.Candidates {
		if e.ID == "" {
			return nil, fmt.Errorf("candidate %d: missing id", i+1)
		}
		if e.Name == "" {
			return nil, fmt.Errorf("candidate %q: missing name", e.ID)
		}
		candidates = append(candidates, deck.Candidate{
			ID:       e.ID,
			Name:     e.Name,
			Headline: e.Headline,
			Category: e.Category,
			Skills:   e.Skills,
			Years:    e.Years,
			Bio:      e.Bio,
		})
	}

	return candidates, nil
}

// WriteDeckFile writes candidates as a TOML deck file
// Creates a backup (.bak) of the existing file before overwriting
func WriteDeckFile(path string, candidates []deck.Candidate) error {
	// Create backup if file exists
	if _, err := os.Stat(path); err == nil {
		backupPath := path + ".bak"
		if err := os.Rename(path, backupPath); err != nil {
			return fmt.Errorf("failed to create backup: %w", err)
		}
	}

	df := deckFile{Candidates: make([]candidateEntry, 0, len(candidates))}
	for _, c := range candidates {
		df.Candidates = append(df.Candidates, candidateEntry{
			ID:       c.ID,
			Name:     c.Name,
			Headline: c.Headline,
			Category: c.Category,
			Skills:   c.Skills,
			Years:    c.Years,
			Bio:      c.Bio,
		})
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create deck file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(df); err != nil {
		return fmt.Errorf("failed to encode deck file: %w", err)
	}

	return nil
}
