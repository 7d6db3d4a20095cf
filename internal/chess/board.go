package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Board is an 8x8 grid of pieces plus the side to move.
// Each occupied slot owns its piece, and that piece's Square always names the slot.
//
// A Board is not safe for concurrent mutation; callers serialize access.
type Board struct {
	// grid[x][y] holds the piece on square (x, y), or nil.
	grid [BoardSize][BoardSize]*Piece

	// Who has the next move.
	turn Colour
}

// NewBoard creates a new empty board with White to move.
func NewBoard() *Board {
	return &Board{turn: White}
}

var backRank = [BoardSize]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// Reset clears the board and sets up the standard starting position.
func (b *Board) Reset() {
	b.grid = [BoardSize][BoardSize]*Piece{}
	for _, colour := range [2]Colour{White, Black} {
		for x := 0; x < BoardSize; x++ {
			b.place(NewPiece(colour, backRank[x], x, colour.BackRank()))
			b.place(NewPiece(colour, Pawn, x, colour.PawnStartRank()))
		}
	}
	b.turn = White
}

// Turn returns the colour to move.
func (b *Board) Turn() Colour {
	return b.turn
}

// SetTurn sets the colour to move. Used when setting up positions.
func (b *Board) SetTurn(c Colour) {
	b.turn = c
}

// IsValidPosition reports whether (x, y) is on the board.
func (b *Board) IsValidPosition(x, y int) bool {
	return IsValidPosition(x, y)
}

// IsOccupied reports whether (x, y) holds a piece. Off-board squares count as
// occupied so that move generation treats the edge as a wall.
func (b *Board) IsOccupied(x, y int) bool {
	if !IsValidPosition(x, y) {
		return true
	}
	return b.grid[x][y] != nil
}

// GetPiece returns the piece at (x, y), or nil for an empty square.
func (b *Board) GetPiece(x, y int) (*Piece, error) {
	if !IsValidPosition(x, y) {
		return nil, fmt.Errorf("get (%d,%d): %w", x, y, errors.ErrOutOfBounds)
	}
	return b.grid[x][y], nil
}

// at is GetPiece for callers that tolerate off-board input; it returns nil there.
func (b *Board) at(x, y int) *Piece {
	if !IsValidPosition(x, y) {
		return nil
	}
	return b.grid[x][y]
}

// AddPiece places p on its own square. It refuses to overwrite an occupant.
func (b *Board) AddPiece(p *Piece) error {
	sq := p.Square
	if !sq.Valid() {
		return fmt.Errorf("add %s: %w", p, errors.ErrOutOfBounds)
	}
	if occupant := b.grid[sq.X][sq.Y]; occupant != nil {
		return fmt.Errorf("add %s: held by %s %s: %w", p, occupant.Colour, occupant.Kind, errors.ErrSquareOccupied)
	}
	b.place(p)
	return nil
}

// place stores p on its square unconditionally. Only used on squares known to be free.
func (b *Board) place(p *Piece) {
	b.grid[p.Square.X][p.Square.Y] = p
}

// RemovePiece takes the piece off (x, y) and returns it (nil if the square was empty).
func (b *Board) RemovePiece(x, y int) (*Piece, error) {
	p, err := b.GetPiece(x, y)
	if err != nil {
		return nil, err
	}
	b.grid[x][y] = nil
	return p, nil
}

// MovePiece moves p to (x, y), evicting any occupant, and passes the turn to
// the other side. It does not check legality: callers validate the move with
// IsValidMove or PossibleMoves first. The captured piece, if any, is returned
// as a detached copy.
func (b *Board) MovePiece(p *Piece, x, y int) (*Piece, error) {
	captured, err := b.relocate(p, x, y)
	if err != nil {
		return nil, err
	}
	b.turn = b.turn.Opposite()
	return captured, nil
}

// relocate moves p to (x, y) without touching the turn.
func (b *Board) relocate(p *Piece, x, y int) (*Piece, error) {
	if !IsValidPosition(x, y) {
		return nil, fmt.Errorf("move to (%d,%d): %w", x, y, errors.ErrOutOfBounds)
	}
	if p == nil || b.at(p.Square.X, p.Square.Y) != p {
		return nil, fmt.Errorf("move to (%d,%d): piece not on this board: %w", x, y, errors.ErrNoPiece)
	}

	var captured *Piece
	if victim := b.grid[x][y]; victim != nil && victim != p {
		captured = victim.Clone()
	}

	b.grid[p.Square.X][p.Square.Y] = nil
	p.Square = Square{X: x, Y: y}
	b.grid[x][y] = p
	return captured, nil
}

// Clone returns a deep, independent copy of the board.
func (b *Board) Clone() *Board {
	c := &Board{turn: b.turn}
	for x := 0; x < BoardSize; x++ {
		for y := 0; y < BoardSize; y++ {
			if p := b.grid[x][y]; p != nil {
				c.place(p.Clone())
			}
		}
	}
	return c
}

// Simulate returns a clone of the board with the piece on from moved to to.
// The clone keeps the current turn, so its IsThereCheck tests the mover's king.
func (b *Board) Simulate(from, to Square) (*Board, error) {
	sim := b.Clone()
	p := sim.at(from.X, from.Y)
	if p == nil {
		return nil, fmt.Errorf("simulate %s->%s: %w", from, to, errors.ErrNoPiece)
	}
	if _, err := sim.relocate(p, to.X, to.Y); err != nil {
		return nil, err
	}
	return sim, nil
}

// Pieces returns the pieces of the given colour, scanning rank by rank from
// rank 0 and file by file within a rank.
func (b *Board) Pieces(c Colour) []*Piece {
	var pieces []*Piece
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			if p := b.grid[x][y]; p != nil && p.Colour == c {
				pieces = append(pieces, p)
			}
		}
	}
	return pieces
}

// FindKing returns the king of the given colour, or nil if there is none.
func (b *Board) FindKing(c Colour) *Piece {
	for _, p := range b.Pieces(c) {
		if p.Kind == King {
			return p
		}
	}
	return nil
}

// String renders the board with rank 7 at the top. White pieces are
// uppercase, Black lowercase, empty squares '.'.
func (b *Board) String() string {
	var sb strings.Builder
	for y := BoardSize - 1; y >= 0; y-- {
		fmt.Fprintf(&sb, "%d ", y)
		for x := 0; x < BoardSize; x++ {
			if p := b.grid[x][y]; p != nil {
				sb.WriteByte(p.Letter())
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  01234567\n")
	return sb.String()
}
