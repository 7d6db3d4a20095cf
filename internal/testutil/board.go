package testutil

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// SetupBoard returns a board holding exactly the given pieces with turn to move.
// It calls t.Fatal if a piece cannot be placed.
func SetupBoard(t *testing.T, turn chess.Colour, pieces ...*chess.Piece) *chess.Board {
	t.Helper()
	b := chess.NewBoard()
	for _, p := range pieces {
		if err := b.AddPiece(p); err != nil {
			t.Fatalf("placing %v: %v", p, err)
		}
	}
	b.SetTurn(turn)
	return b
}

// MustPiece returns the piece on (x, y), failing the test if the square is
// empty or off the board.
func MustPiece(t *testing.T, b *chess.Board, x, y int) *chess.Piece {
	t.Helper()
	p, err := b.GetPiece(x, y)
	if err != nil {
		t.Fatalf("GetPiece(%d, %d): %v", x, y, err)
	}
	if p == nil {
		t.Fatalf("no piece on (%d,%d)\n%s", x, y, b)
	}
	return p
}

// Squares builds a square list from flat x, y pairs.
func Squares(coords ...int) []chess.Square {
	if len(coords)%2 != 0 {
		panic("testutil.Squares: odd number of coordinates")
	}
	squares := make([]chess.Square, 0, len(coords)/2)
	for i := 0; i < len(coords); i += 2 {
		squares = append(squares, chess.Sq(coords[i], coords[i+1]))
	}
	return squares
}
