package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Status is the state of the side to move.
type Status int

const (
	Ongoing Status = iota
	Check
	Checkmate
	Stalemate
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case Ongoing:
		return "ongoing"
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	}
	return "unknown"
}

// IsOver reports whether the game has ended.
func (s Status) IsOver() bool {
	return s == Checkmate || s == Stalemate
}

// StatusOf classifies the position for the side to move.
// Board.IsThereCheckmate does not separate mate from stalemate, so the check
// test decides between them.
func StatusOf(b *chess.Board) Status {
	inCheck := b.IsThereCheck()
	if b.IsThereCheckmate() {
		if inCheck {
			return Checkmate
		}
		return Stalemate
	}
	if inCheck {
		return Check
	}
	return Ongoing
}
