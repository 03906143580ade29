// ABOUTME: Entry point for the mentordeck application
// ABOUTME: Handles command-line parsing, profiling, and routing to import or matching modes

// Package main provides the entry point for mentordeck, a terminal deck browser for mentor matching.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"

	"mentordeck/config"
	"mentordeck/tui"
)

func main() {
	os.Exit(run())
}

func run() int {
	cpuprofile := flag.String("cpuprofile", "", "write cpu profile to file")
	memprofile := flag.String("memprofile", "", "write memory profile to file")
	importPath := flag.String("import", "", "import candidates from a TOML deck file and exit")
	deckPath := flag.String("deck", "", "browse a TOML deck file directly instead of the database")
	dbPath := flag.String("db", "", "catalog database path (default: user data dir)")
	debugFlag := flag.Bool("debug", false, "enable debug logging to mentordeck-debug.log")
	dryRun := flag.Bool("dry-run", false, "browse without persisting matches or progress")
	flag.Parse()

	if flag.NArg() > 0 {
		fmt.Println("Usage: mentordeck [flags]")
		fmt.Println("Example: mentordeck -import mentors.toml && mentordeck")
		fmt.Println("\nFlags:")
		flag.PrintDefaults()

		return 1
	}

	if *cpuprofile != "" {
		stopCPUProfile := setupCPUProfile(*cpuprofile)
		defer stopCPUProfile()
	}

	if *memprofile != "" {
		defer writeMemoryProfile(*memprofile)
	}

	if *debugFlag {
		if err := SetupDebugLog("mentordeck-debug.log"); err != nil {
			log.Printf("Failed to setup debug log: %v", err)

			return 1
		}
	}

	cfg, _ := config.LoadConfig(config.GetConfigPath())

	if *importPath != "" {
		if err := RunImport(ImportOptions{
			DeckPath:     *importPath,
			DatabasePath: *dbPath,
			Config:       cfg,
		}); err != nil {
			log.Printf("Import error: %v", err)

			return 1
		}

		return 0
	}

	deps, cleanup, err := buildDependencies(cfg, *deckPath, *dbPath)
	if err != nil {
		log.Printf("Startup error: %v", err)

		return 1
	}
	defer cleanup()

	opts := tui.Options{
		DryRun:    *dryRun,
		WatchPath: *deckPath,
	}

	if err := tui.Run(opts, deps); err != nil {
		log.Printf("TUI error: %v", err)

		return 1
	}

	return 0
}

// setupCPUProfile starts CPU profiling, returns cleanup function
func setupCPUProfile(filename string) func() {
	f, err := os.Create(filename)
	if err != nil {
		log.Fatalf("could not create CPU profile: %v", err)
	}

	if err := pprof.StartCPUProfile(f); err != nil {
		_ = f.Close()
		log.Fatalf("could not start CPU profile: %v", err)
	}

	return func() {
		pprof.StopCPUProfile()

		if err := f.Close(); err != nil {
			log.Printf("Warning: failed to close CPU profile: %v", err)
		}
	}
}

// writeMemoryProfile writes memory profile to file
func writeMemoryProfile(filename string) {
	f, err := os.Create(filename)
	if err != nil {
		log.Printf("could not create memory profile: %v", err)

		return
	}

	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("Warning: failed to close memory profile: %v", err)
		}
	}()

	runtime.GC()

	if err := pprof.WriteHeapProfile(f); err != nil {
		log.Printf("could not write memory profile: %v", err)
	}
}
