// chess-rules replays coordinate-pair move scripts under the rules of chess
// and reports the state of each game.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-rules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	setupLogFile(cfg)
	setupOutputFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if cfg.StartFEN != "" {
		if _, err := engine.NewBoardFromFEN(cfg.StartFEN); err != nil {
			fmt.Fprintf(os.Stderr, "Error in start position: %v\n", err)
			os.Exit(1)
		}
	}

	items, loadErrors := loadAllInputs(cfg)
	results := replayAll(cfg, items)

	failed := loadErrors
	for _, res := range results {
		writeResult(cfg, res)
		if res.Error != nil {
			failed++
		}
	}

	if cfg.Verbosity > 0 {
		reportStatistics(cfg, results, failed)
	}
	if failed > 0 {
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

// loadAllInputs parses the scripts named on the command line and in the -f
// list, or stdin when there are none. Unreadable scripts are logged and counted.
func loadAllInputs(cfg *config.Config) ([]worker.WorkItem, int) {
	names := flag.Args()
	if *fileListFile != "" {
		listed, err := readFileList(*fileListFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading file list %s: %v\n", *fileListFile, err)
			os.Exit(1)
		}
		names = append(names, listed...)
	}

	if len(names) == 0 {
		item, err := loadScript(os.Stdin, "stdin")
		if err != nil {
			fmt.Fprintf(cfg.LogFile, "%v\n", err)
			return nil, 1
		}
		return []worker.WorkItem{item}, 0
	}

	var items []worker.WorkItem
	failed := 0
	for _, name := range names {
		item, err := loadScriptFile(name)
		if err != nil {
			fmt.Fprintf(cfg.LogFile, "%v\n", err)
			failed++
			continue
		}
		items = append(items, item)
	}
	return items, failed
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-rules [options] [script-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Replays chess move scripts and reports the status of each game.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nScript format:\n")
	fmt.Fprintf(os.Stderr, "  One move per line as \"fromX fromY toX toY\", coordinates 0-7.\n")
	fmt.Fprintf(os.Stderr, "  x is the file (0 = a), y is the rank (0 = White's back rank).\n")
	fmt.Fprintf(os.Stderr, "  Blank lines and text after '#' are ignored.\n")
}
