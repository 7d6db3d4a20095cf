// Package config provides configuration for the chess-rules command.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// MaxWorkers caps the number of concurrent replays.
const MaxWorkers = 64

// Config holds all program configuration.
type Config struct {
	// Verbosity: 0=nothing, 1=per-script summary, 2=running commentary.
	Verbosity int

	// StartFEN is the position every script starts from ("" for the standard start).
	StartFEN string

	// Workers is the number of scripts replayed concurrently.
	Workers int

	// ShowBoard prints the final board after each script.
	ShowBoard bool

	// ListMoves prints the legal moves of the side to move after each script.
	ListMoves bool

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Workers:    1,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return fmt.Errorf("verbosity %d not in 0-2: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.Workers < 1 || c.Workers > MaxWorkers {
		return fmt.Errorf("workers %d not in 1-%d: %w", c.Workers, MaxWorkers, errors.ErrInvalidConfig)
	}
	if c.OutputFile == nil || c.LogFile == nil {
		return fmt.Errorf("output and log writers are required: %w", errors.ErrInvalidConfig)
	}
	return nil
}

// Logf writes a diagnostic line to the log when the verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.Verbosity >= level && c.LogFile != nil {
		fmt.Fprintf(c.LogFile, format, args...)
	}
}
