// ABOUTME: Import mode implementation for loading deck files into the catalog
// ABOUTME: Handles duplicate reporting, result output, and signal handling for command-line usage

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"mentordeck/catalog"
	"mentordeck/config"
)

// ImportOptions contains command-line options for import mode
type ImportOptions struct {
	DeckPath     string
	DatabasePath string
	Config       config.Config
}

// RunImport reads a TOML deck file and upserts its candidates into the
// catalog database, reporting entries skipped as near-duplicates
func RunImport(opts ImportOptions) error {
	fmt.Printf("Reading deck file: %s\n", opts.DeckPath)

	entries, err := catalog.ReadDeckFile(opts.DeckPath)
	if err != nil {
		return err
	}

	fmt.Printf("Found %d candidates\n", len(entries))

	db, err := openDatabase(opts.Config, opts.DatabasePath)
	if err != nil {
		return err
	}

	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Warning: failed to close database: %v", err)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-stop
		cancel()
	}()

	report, err := catalog.Import(ctx, db, entries)
	if err != nil {
		return fmt.Errorf("failed to import deck: %w", err)
	}

	fmt.Printf("\nImported %d of %d candidates\n", report.Imported, len(entries))

	if len(report.Skipped) > 0 {
		fmt.Println("\nSkipped as likely duplicates:")

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		if _, err := fmt.Fprintln(w, "ID\tName\tDuplicate of\tSimilarity"); err != nil {
			log.Printf("Warning: failed to write header: %v", err)
		}

		for _, s := range report.Skipped {
			if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\n",
				s.Candidate.ID,
				truncate(s.Candidate.Name, 30),
				s.DuplicateOf,
				s.Similarity,
			); err != nil {
				log.Printf("Warning: failed to write row for %s: %v", s.Candidate.ID, err)
			}
		}

		if err := w.Flush(); err != nil {
			log.Printf("Warning: failed to flush output: %v", err)
		}
	}

	cat := catalog.NewStore(db)
	if count, err := cat.Count(ctx); err == nil {
		fmt.Printf("\nCatalog now holds %d candidates\n", count)
	}

	fmt.Println("Done!")

	return nil
}
