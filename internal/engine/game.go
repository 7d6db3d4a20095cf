package engine

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Record describes one committed move.
type Record struct {
	Ply      int
	Piece    chess.Piece  // The mover, as it stands after the move
	From     chess.Square // Source square
	To       chess.Square // Destination square
	Captured *chess.Piece // Detached copy of the captured piece, or nil
	Status   Status       // Status of the side to move after this move
}

// Game is one game session over a single board. It is the caller the rules
// expect: it validates moves before committing them with Board.MovePiece.
//
// A Game is owned by one goroutine at a time.
type Game struct {
	board    *chess.Board
	status   Status
	history  []Record
	captured [2][]*chess.Piece // Indexed by the colour of the captured piece
}

// NewGame creates a game from the standard starting position.
func NewGame() *Game {
	b := chess.NewBoard()
	b.Reset()
	return NewGameFromBoard(b)
}

// NewGameFromBoard creates a game that takes ownership of b.
func NewGameFromBoard(b *chess.Board) *Game {
	return &Game{board: b, status: StatusOf(b)}
}

// Board returns the live board. Callers must not mutate it directly.
func (g *Game) Board() *chess.Board {
	return g.board
}

// Turn returns the colour to move.
func (g *Game) Turn() chess.Colour {
	return g.board.Turn()
}

// Status returns the status of the side to move.
func (g *Game) Status() Status {
	return g.status
}

// History returns the committed moves in order.
func (g *Game) History() []Record {
	return g.history
}

// Captured returns the pieces of colour c captured so far.
func (g *Game) Captured(c chess.Colour) []*chess.Piece {
	return g.captured[c]
}

// LeavesKingInCheck reports whether moving p to `to` on b would leave p's own
// king in check. The move is tried on a clone; b is not modified.
func LeavesKingInCheck(b *chess.Board, p *chess.Piece, to chess.Square) bool {
	sim, err := b.Simulate(p.Square, to)
	if err != nil {
		return true
	}
	sim.SetTurn(p.Colour)
	return sim.IsThereCheck()
}

// LegalMoves returns the destinations of the piece on from that do not leave
// its own king in check. Squares are in PossibleMoves order.
func (g *Game) LegalMoves(from chess.Square) ([]chess.Square, error) {
	p, err := g.board.GetPiece(from.X, from.Y)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("legal moves from %s: %w", from, errors.ErrNoPiece)
	}

	var moves []chess.Square
	for _, to := range p.PossibleMoves(g.board) {
		if !LeavesKingInCheck(g.board, p, to) {
			moves = append(moves, to)
		}
	}
	return moves, nil
}

// Move validates and commits the move from -> to for the side to move.
// Rejected moves leave the game untouched and return a *errors.MoveError.
func (g *Game) Move(from, to chess.Square) (Record, error) {
	moveErr := func(err error, piece string) error {
		return &errors.MoveError{
			Err:    err,
			PlyNum: len(g.history) + 1,
			Piece:  piece,
			From:   from.String(),
			To:     to.String(),
		}
	}

	if g.status.IsOver() {
		return Record{}, moveErr(fmt.Errorf("%s: %w", g.status, errors.ErrGameOver), "")
	}

	p, err := g.board.GetPiece(from.X, from.Y)
	if err != nil {
		return Record{}, moveErr(err, "")
	}
	if p == nil {
		return Record{}, moveErr(errors.ErrNoPiece, "")
	}
	name := fmt.Sprintf("%s %s", p.Colour, p.Kind)

	if p.Colour != g.board.Turn() {
		return Record{}, moveErr(errors.ErrWrongTurn, name)
	}
	if !slices.Contains(p.PossibleMoves(g.board), to) {
		return Record{}, moveErr(errors.ErrIllegalMove, name)
	}
	if LeavesKingInCheck(g.board, p, to) {
		return Record{}, moveErr(errors.ErrSelfCheck, name)
	}

	captured, err := g.board.MovePiece(p, to.X, to.Y)
	if err != nil {
		return Record{}, moveErr(err, name)
	}
	if captured != nil {
		g.captured[captured.Colour] = append(g.captured[captured.Colour], captured)
	}

	g.status = StatusOf(g.board)
	rec := Record{
		Ply:      len(g.history) + 1,
		Piece:    *p,
		From:     from,
		To:       to,
		Captured: captured,
		Status:   g.status,
	}
	g.history = append(g.history, rec)
	return rec, nil
}
