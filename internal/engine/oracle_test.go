package engine

import (
	"testing"

	refchess "github.com/corentings/chess/v2"
	"github.com/dylhunn/dragontoothmg"
)

// Positions without castling or en passant rights, where these rules and a
// full chess implementation must agree on check, checkmate and stalemate.
var oraclePositions = []struct {
	name string
	fen  string
	want Status
}{
	{"initial", InitialFEN, Ongoing},
	{"open game", "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w - - 2 3", Ongoing},
	{"fool's mate", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w - - 1 3", Checkmate},
	{"scholar's mate", "r1bqkb1r/pppp1Qpp/2n2n2/4p3/2B1P3/8/PPPP1PPP/RNB1K1NR b - - 0 4", Checkmate},
	{"back rank mate", "R6k/6pp/8/8/8/8/8/K7 b - - 0 1", Checkmate},
	{"smothered mate", "6rk/5Npp/8/8/8/8/8/6K1 b - - 0 1", Checkmate},
	{"rook check, king captures", "6Rk/8/8/8/8/8/8/K7 b - - 0 1", Check},
	{"knight check", "4k3/8/5N2/8/8/8/8/4K3 b - - 0 1", Check},
	{"queen stalemate", "k7/8/1Q6/8/8/8/8/7K b - - 0 1", Stalemate},
	{"pawn stalemate", "7k/5K2/6P1/8/8/8/8/8 b - - 0 1", Stalemate},
	{"rook screened by own knight", "4k3/8/8/8/8/8/4N3/4R1K1 b - - 0 1", Ongoing},
	{"bishop check on the diagonal", "4k3/8/8/1B6/8/8/8/4K3 b - - 0 1", Check},
}

func TestStatusOf_MatchesReferenceImplementations(t *testing.T) {
	for _, tt := range oraclePositions {
		t.Run(tt.name, func(t *testing.T) {
			board, err := NewBoardFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN: %v", err)
			}

			got := StatusOf(board)
			if got != tt.want {
				t.Errorf("StatusOf() = %v, want %v\n%s", got, tt.want, board)
			}

			opt, err := refchess.FEN(tt.fen)
			if err != nil {
				t.Fatalf("refchess.FEN: %v", err)
			}
			pos := refchess.NewGame(opt).Position()
			switch pos.Status() {
			case refchess.Checkmate:
				if got != Checkmate {
					t.Errorf("reference reports checkmate, StatusOf() = %v", got)
				}
			case refchess.Stalemate:
				if got != Stalemate {
					t.Errorf("reference reports stalemate, StatusOf() = %v", got)
				}
			default:
				if got.IsOver() {
					t.Errorf("reference reports a live game, StatusOf() = %v", got)
				}
			}

			dt := dragontoothmg.ParseFen(tt.fen)
			if want := dt.OurKingInCheck(); board.IsThereCheck() != want {
				t.Errorf("IsThereCheck() = %v, dragontoothmg OurKingInCheck() = %v", board.IsThereCheck(), want)
			}
		})
	}
}

// TestLegalMoveCount_MatchesDragontooth compares the number of legal moves
// (possible moves minus self-check) with dragontoothmg in positions where
// castling, en passant and promotion cannot occur.
func TestLegalMoveCount_MatchesDragontooth(t *testing.T) {
	fens := []string{
		InitialFEN,
		"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w - - 2 3",
		"k3r3/8/8/8/8/8/4B3/4K3 w - - 0 1",
		"6Rk/8/8/8/8/8/8/K7 b - - 0 1",
		"4k3/8/8/1B6/8/8/8/4K3 b - - 0 1",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			board, err := NewBoardFromFEN(fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN: %v", err)
			}
			g := NewGameFromBoard(board)

			count := 0
			for _, p := range board.Pieces(board.Turn()) {
				moves, err := g.LegalMoves(p.Square)
				if err != nil {
					t.Fatalf("LegalMoves(%v): %v", p.Square, err)
				}
				count += len(moves)
			}

			dt := dragontoothmg.ParseFen(fen)
			if want := len(dt.GenerateLegalMoves()); count != want {
				t.Errorf("legal move count = %d, dragontoothmg = %d\n%s", count, want, board)
			}
		})
	}
}
