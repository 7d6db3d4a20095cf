// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"runtime"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	showBoard  = flag.Bool("board", false, "Print the final board after each script")
	listMoves  = flag.Bool("moves", false, "List the legal moves of the side to move after each script")

	// Position setup
	startFEN = flag.String("fen", "", "Start every script from this FEN position")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	verbose   = flag.Bool("v", false, "Log every committed move")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no summary)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")

	// Performance options
	workers = flag.Int("workers", 0, "Number of scripts replayed concurrently (0 = auto-detect based on CPU cores)")

	// File input options
	fileListFile = flag.String("f", "", "File containing list of script files to replay (one per line)")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	cfg.StartFEN = *startFEN
	cfg.ShowBoard = *showBoard
	cfg.ListMoves = *listMoves
	cfg.Workers = resolveWorkers(*workers)

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
}

// resolveWorkers maps the -workers flag to a pool size.
func resolveWorkers(n int) int {
	if n > 0 {
		return n
	}
	n = runtime.NumCPU()
	if n > config.MaxWorkers {
		n = config.MaxWorkers
	}
	return n
}
