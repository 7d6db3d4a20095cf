// Package chess provides the board, the pieces and the movement rules.
package chess

import "fmt"

// BoardSize is the number of files and ranks on the board.
const BoardSize = 8

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns +1 for White, -1 for Black (for pawn direction).
func (c Colour) Forward() int {
	if c == White {
		return 1
	}
	return -1
}

// BackRank returns the rank holding the colour's major pieces at the start.
func (c Colour) BackRank() int {
	if c == White {
		return 0
	}
	return BoardSize - 1
}

// PawnStartRank returns the rank the colour's pawns start on.
func (c Colour) PawnStartRank() int {
	return c.BackRank() + c.Forward()
}

// Kind represents a chess piece type.
type Kind int

const (
	Rook Kind = iota
	Knight
	Bishop
	Queen
	King
	Pawn
	NumKinds
)

var kindNames = [NumKinds]string{"Rook", "Knight", "Bishop", "Queen", "King", "Pawn"}

// String returns the string representation of a kind.
func (k Kind) String() string {
	if k >= 0 && k < NumKinds {
		return kindNames[k]
	}
	return "Unknown"
}

var kindLetters = [NumKinds]byte{'R', 'N', 'B', 'Q', 'K', 'P'}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	if k >= 0 && k < NumKinds {
		return kindLetters[k]
	}
	return '?'
}

// Square is an (x, y) board coordinate. X is the file, Y the rank;
// (0,0) is White's left corner and Y grows toward Black.
type Square struct {
	X int
	Y int
}

// Sq is shorthand for Square{X: x, Y: y}.
func Sq(x, y int) Square {
	return Square{X: x, Y: y}
}

// String renders the square as "(x,y)".
func (s Square) String() string {
	return fmt.Sprintf("(%d,%d)", s.X, s.Y)
}

// Offset returns the square shifted by (dx, dy). The result may be off the board.
func (s Square) Offset(dx, dy int) Square {
	return Square{X: s.X + dx, Y: s.Y + dy}
}

// Valid reports whether the square is on the board.
func (s Square) Valid() bool {
	return IsValidPosition(s.X, s.Y)
}

// IsValidPosition reports whether both coordinates are in [0,7].
func IsValidPosition(x, y int) bool {
	return x >= 0 && x < BoardSize && y >= 0 && y < BoardSize
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
