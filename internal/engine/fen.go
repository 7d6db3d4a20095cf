// Package engine sits between a presentation layer and the chess rules:
// it runs a game session, filters self-check moves and sets up positions.
package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"

// ConvertFENCharToKind converts a FEN character to a piece kind.
func ConvertFENCharToKind(c rune) (chess.Kind, bool) {
	switch unicode.ToUpper(c) {
	case 'K':
		return chess.King, true
	case 'Q':
		return chess.Queen, true
	case 'R':
		return chess.Rook, true
	case 'N':
		return chess.Knight, true
	case 'B':
		return chess.Bishop, true
	case 'P':
		return chess.Pawn, true
	}
	return 0, false
}

// NewBoardFromFEN creates a board from a FEN string. Only the piece placement
// and side-to-move fields are used; castling, en passant and the clocks are
// accepted and ignored since the rules do not model them.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}

	if err := parseSideToMove(board, parts); err != nil {
		return nil, err
	}

	return board, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("%d ranks in placement: %w", len(ranks), errors.ErrInvalidFEN)
	}

	for i, rank := range ranks {
		y := chess.BoardSize - 1 - i
		x := 0
		for _, c := range rank {
			if c >= '1' && c <= '8' {
				x += int(c - '0')
				continue
			}
			kind, ok := ConvertFENCharToKind(c)
			if !ok {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			if x >= chess.BoardSize {
				return fmt.Errorf("rank %d overflows: %w", y, errors.ErrInvalidFEN)
			}

			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}
			if err := board.AddPiece(chess.NewPiece(colour, kind, x, y)); err != nil {
				return fmt.Errorf("%v: %w", err, errors.ErrInvalidFEN)
			}
			x++
		}
		if x != chess.BoardSize {
			return fmt.Errorf("rank %d has %d files: %w", y, x, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		board.SetTurn(chess.White)
	case "b":
		board.SetTurn(chess.Black)
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// ToFEN renders the board's placement and side to move as a FEN string.
func ToFEN(board *chess.Board) string {
	var sb strings.Builder
	for y := chess.BoardSize - 1; y >= 0; y-- {
		empty := 0
		for x := 0; x < chess.BoardSize; x++ {
			p, _ := board.GetPiece(x, y)
			if p == nil {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(p.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if y > 0 {
			sb.WriteByte('/')
		}
	}

	if board.Turn() == chess.White {
		sb.WriteString(" w")
	} else {
		sb.WriteString(" b")
	}
	sb.WriteString(" - - 0 1")
	return sb.String()
}
