// Package errors provides sentinel errors and error types for the chess rules engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrOutOfBounds indicates a coordinate outside the 8x8 board.
	ErrOutOfBounds = errors.New("square out of bounds")

	// ErrSquareOccupied indicates a piece was placed on a square that already holds one.
	ErrSquareOccupied = errors.New("square occupied")

	// ErrNoPiece indicates there is no (matching) piece on the requested square.
	ErrNoPiece = errors.New("no piece on square")

	// ErrWrongTurn indicates a piece of the side not to move was asked to move.
	ErrWrongTurn = errors.New("not this side's turn")

	// ErrIllegalMove indicates a move that violates the piece's movement rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrSelfCheck indicates a move that would leave the mover's own king in check.
	ErrSelfCheck = errors.New("move leaves king in check")

	// ErrGameOver indicates a move was submitted after checkmate or stalemate.
	ErrGameOver = errors.New("game is over")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrParseFailure indicates a malformed move script.
	ErrParseFailure = errors.New("parse failure")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps errors with move context: the ply being played and the
// squares involved. It supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err    error  // The underlying error
	PlyNum int    // 1-based ply number (0 if not applicable)
	Piece  string // Description of the moving piece (if known)
	From   string // Source square, e.g. "(4,1)"
	To     string // Destination square
	Script string // Script name (if known)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Script != "" {
		parts = append(parts, e.Script)
	}
	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}
	if e.Piece != "" {
		parts = append(parts, e.Piece)
	}
	if e.From != "" || e.To != "" {
		parts = append(parts, fmt.Sprintf("move %s->%s", e.From, e.To))
	}

	context := strings.Join(parts, ", ")

	switch {
	case e.Err != nil && context != "":
		return fmt.Sprintf("%s: %v", context, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	case context != "":
		return context
	}
	return "move error"
}

// Unwrap returns the underlying error.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents a move script or FEN parsing error with location context.
type ParseError struct {
	Err      error  // The underlying error
	File     string // Source file name
	Line     int    // Line number (1-based)
	Expected string // What was expected
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.File != "" {
		loc := e.File
		if e.Line > 0 {
			loc += fmt.Sprintf(":%d", e.Line)
		}
		parts = append(parts, loc)
	} else if e.Line > 0 {
		parts = append(parts, fmt.Sprintf("line %d", e.Line))
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
