package chess

import "fmt"

// Piece is one chess piece. It holds no reference to a board: every rule
// query takes the board it is evaluated against.
type Piece struct {
	Colour Colour
	Kind   Kind
	Square Square
}

// NewPiece creates a piece that is not yet placed on any board.
func NewPiece(colour Colour, kind Kind, x, y int) *Piece {
	return &Piece{Colour: colour, Kind: kind, Square: Square{X: x, Y: y}}
}

// String describes the piece, e.g. "White Knight at (1,0)".
func (p *Piece) String() string {
	return fmt.Sprintf("%s %s at %s", p.Colour, p.Kind, p.Square)
}

// Letter returns the FEN-style letter: uppercase for White, lowercase for Black.
func (p *Piece) Letter() byte {
	l := p.Kind.Letter()
	if p.Colour == Black {
		l += 'a' - 'A'
	}
	return l
}

// Clone returns a same-kind, same-colour, same-square copy not attached to any board.
func (p *Piece) Clone() *Piece {
	c := *p
	return &c
}

// Movement tables.
var (
	straightDirs  = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	diagonalDirs  = [][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	knightOffsets = [][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingOffsets   = [][2]int{{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}}
)

// IsValidMove reports whether the piece may move to (x, y) on b, judged in
// isolation: it does not consider whether the move exposes its own king.
func (p *Piece) IsValidMove(b *Board, x, y int) bool {
	if !IsValidPosition(x, y) {
		return false
	}
	dx := x - p.Square.X
	dy := y - p.Square.Y
	if dx == 0 && dy == 0 {
		return false
	}
	if target := b.at(x, y); target != nil && target.Colour == p.Colour {
		return false
	}

	adx, ady := abs(dx), abs(dy)
	switch p.Kind {
	case Rook:
		return (dx == 0 || dy == 0) && b.isPathClear(p.Square, x, y)
	case Bishop:
		return adx == ady && b.isPathClear(p.Square, x, y)
	case Queen:
		return (dx == 0 || dy == 0 || adx == ady) && b.isPathClear(p.Square, x, y)
	case Knight:
		return (adx == 1 && ady == 2) || (adx == 2 && ady == 1)
	case King:
		return adx <= 1 && ady <= 1
	case Pawn:
		return p.isValidPawnMove(b, dx, dy)
	}
	return false
}

// isValidPawnMove handles the single step, double step and diagonal capture.
func (p *Piece) isValidPawnMove(b *Board, dx, dy int) bool {
	fwd := p.Colour.Forward()
	from := p.Square
	to := from.Offset(dx, dy)

	switch {
	case dx == 0 && dy == fwd:
		return !b.IsOccupied(to.X, to.Y)
	case dx == 0 && dy == 2*fwd:
		return from.Y == p.Colour.PawnStartRank() &&
			!b.IsOccupied(from.X, from.Y+fwd) &&
			!b.IsOccupied(to.X, to.Y)
	case abs(dx) == 1 && dy == fwd:
		target := b.at(to.X, to.Y)
		return target != nil && target.Colour != p.Colour
	}
	return false
}

// PossibleMoves lists every square the piece can move to on b, in a fixed
// order. The list never contains the piece's own square and ignores self-check.
func (p *Piece) PossibleMoves(b *Board) []Square {
	switch p.Kind {
	case Rook:
		return p.slide(b, nil, straightDirs)
	case Bishop:
		return p.slide(b, nil, diagonalDirs)
	case Queen:
		return p.slide(b, p.slide(b, nil, straightDirs), diagonalDirs)
	case Knight:
		return p.jump(b, knightOffsets)
	case King:
		return p.jump(b, kingOffsets)
	case Pawn:
		return p.pawnMoves(b)
	}
	return nil
}

// slide walks each ray until the edge or the first occupied square,
// which is included when it holds an enemy piece.
func (p *Piece) slide(b *Board, moves []Square, dirs [][2]int) []Square {
	for _, dir := range dirs {
		sq := p.Square.Offset(dir[0], dir[1])
		for sq.Valid() {
			target := b.at(sq.X, sq.Y)
			if target != nil {
				if target.Colour != p.Colour {
					moves = append(moves, sq)
				}
				break // Blocked
			}
			moves = append(moves, sq)
			sq = sq.Offset(dir[0], dir[1])
		}
	}
	return moves
}

func (p *Piece) jump(b *Board, offsets [][2]int) []Square {
	var moves []Square
	for _, off := range offsets {
		sq := p.Square.Offset(off[0], off[1])
		if !sq.Valid() {
			continue
		}
		if target := b.at(sq.X, sq.Y); target == nil || target.Colour != p.Colour {
			moves = append(moves, sq)
		}
	}
	return moves
}

func (p *Piece) pawnMoves(b *Board) []Square {
	var moves []Square
	fwd := p.Colour.Forward()

	one := p.Square.Offset(0, fwd)
	if !b.IsOccupied(one.X, one.Y) {
		moves = append(moves, one)
		two := one.Offset(0, fwd)
		if p.Square.Y == p.Colour.PawnStartRank() && !b.IsOccupied(two.X, two.Y) {
			moves = append(moves, two)
		}
	}

	for _, dx := range [2]int{-1, 1} {
		sq := p.Square.Offset(dx, fwd)
		if target := b.at(sq.X, sq.Y); target != nil && target.Colour != p.Colour {
			moves = append(moves, sq)
		}
	}
	return moves
}
