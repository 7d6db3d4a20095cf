package chess

import "testing"

func TestIsThereCheck(t *testing.T) {
	tests := []struct {
		name   string
		turn   Colour
		pieces []*Piece
		want   bool
	}{
		{
			name:   "rook on open file",
			turn:   White,
			pieces: []*Piece{NewPiece(Black, Rook, 4, 0), NewPiece(White, King, 4, 7)},
			want:   true,
		},
		{
			name: "rook file blocked",
			turn: White,
			pieces: []*Piece{
				NewPiece(Black, Rook, 4, 0), NewPiece(White, King, 4, 7), NewPiece(White, Pawn, 4, 3),
			},
			want: false,
		},
		{
			name:   "only the side to move counts",
			turn:   Black,
			pieces: []*Piece{NewPiece(Black, Rook, 4, 0), NewPiece(White, King, 4, 7), NewPiece(Black, King, 0, 0)},
			want:   false,
		},
		{
			name:   "knight check",
			turn:   Black,
			pieces: []*Piece{NewPiece(Black, King, 4, 7), NewPiece(White, Knight, 5, 5)},
			want:   true,
		},
		{
			name:   "pawn attacks diagonally",
			turn:   Black,
			pieces: []*Piece{NewPiece(Black, King, 4, 4), NewPiece(White, Pawn, 3, 3)},
			want:   true,
		},
		{
			name:   "pawn does not attack forward",
			turn:   Black,
			pieces: []*Piece{NewPiece(Black, King, 4, 4), NewPiece(White, Pawn, 4, 3)},
			want:   false,
		},
		{
			name:   "bishop check",
			turn:   White,
			pieces: []*Piece{NewPiece(White, King, 0, 0), NewPiece(Black, Bishop, 6, 6)},
			want:   true,
		},
		{
			name:   "no king",
			turn:   White,
			pieces: []*Piece{NewPiece(Black, Queen, 4, 4)},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := setupBoard(t, tt.turn, tt.pieces...)
			if got := b.IsThereCheck(); got != tt.want {
				t.Errorf("IsThereCheck() = %v; want %v\n%s", got, tt.want, b)
			}
		})
	}
}

func TestIsThereCheckStartingPosition(t *testing.T) {
	b := NewBoard()
	b.Reset()
	if b.IsThereCheck() {
		t.Error("IsThereCheck() = true in the starting position")
	}
	if b.IsThereCheckmate() {
		t.Error("IsThereCheckmate() = true in the starting position")
	}
}

func TestIsThereCheckmate(t *testing.T) {
	tests := []struct {
		name      string
		turn      Colour
		pieces    []*Piece
		wantCheck bool
		wantMate  bool
	}{
		{
			name: "back rank mate",
			turn: Black,
			pieces: []*Piece{
				NewPiece(White, Rook, 0, 7), NewPiece(White, King, 0, 0),
				NewPiece(Black, King, 7, 7), NewPiece(Black, Pawn, 6, 6), NewPiece(Black, Pawn, 7, 6),
			},
			wantCheck: true,
			wantMate:  true,
		},
		{
			name: "king captures the checking rook",
			turn: Black,
			pieces: []*Piece{
				NewPiece(White, Rook, 6, 7), NewPiece(White, King, 0, 0), NewPiece(Black, King, 7, 7),
			},
			wantCheck: true,
			wantMate:  false,
		},
		{
			name: "block with a piece",
			turn: Black,
			pieces: []*Piece{
				NewPiece(White, Rook, 0, 7), NewPiece(White, King, 0, 0),
				NewPiece(Black, King, 7, 7), NewPiece(Black, Pawn, 6, 6), NewPiece(Black, Pawn, 7, 6),
				NewPiece(Black, Bishop, 2, 5),
			},
			wantCheck: true,
			wantMate:  false,
		},
		{
			name: "escape square",
			turn: Black,
			pieces: []*Piece{
				NewPiece(White, Rook, 0, 7), NewPiece(White, King, 0, 0),
				NewPiece(Black, King, 7, 7), NewPiece(Black, Pawn, 6, 6),
			},
			wantCheck: true,
			wantMate:  false,
		},
		{
			name: "stalemate counts as mate",
			turn: Black,
			pieces: []*Piece{
				NewPiece(Black, King, 0, 7), NewPiece(White, Queen, 1, 5), NewPiece(White, King, 7, 0),
			},
			wantCheck: false,
			wantMate:  true,
		},
		{
			name: "no pieces to move",
			turn: White,
			pieces: []*Piece{
				NewPiece(Black, King, 0, 7),
			},
			wantCheck: false,
			wantMate:  true,
		},
		{
			name: "pawn captures the checking knight",
			turn: White,
			pieces: []*Piece{
				NewPiece(White, King, 4, 0), NewPiece(White, Pawn, 3, 1), NewPiece(White, Pawn, 5, 1),
				NewPiece(White, Queen, 3, 0), NewPiece(White, Bishop, 5, 0), NewPiece(White, Pawn, 4, 1),
				NewPiece(Black, Knight, 3, 2), NewPiece(Black, King, 4, 7),
			},
			wantCheck: true,
			wantMate:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := setupBoard(t, tt.turn, tt.pieces...)
			before := b.String()

			if got := b.IsThereCheck(); got != tt.wantCheck {
				t.Errorf("IsThereCheck() = %v; want %v\n%s", got, tt.wantCheck, b)
			}
			if got := b.IsThereCheckmate(); got != tt.wantMate {
				t.Errorf("IsThereCheckmate() = %v; want %v\n%s", got, tt.wantMate, b)
			}
			if b.String() != before || b.Turn() != tt.turn {
				t.Error("checkmate detection mutated the board")
			}
		})
	}
}

// TestFoolsMate plays 1.f3 e5 2.g4 Qh4 with MovePiece.
func TestFoolsMate(t *testing.T) {
	b := NewBoard()
	b.Reset()

	moves := [][4]int{{5, 1, 5, 2}, {4, 6, 4, 4}, {6, 1, 6, 3}, {3, 7, 7, 3}}
	for i, mv := range moves {
		p := mustGet(t, b, mv[0], mv[1])
		if !p.IsValidMove(b, mv[2], mv[3]) {
			t.Fatalf("move %d: %v cannot go to (%d,%d)", i+1, p, mv[2], mv[3])
		}
		if _, err := b.MovePiece(p, mv[2], mv[3]); err != nil {
			t.Fatalf("move %d: %v", i+1, err)
		}
	}

	if !b.IsThereCheck() {
		t.Error("IsThereCheck() = false after Qh4")
	}
	if !b.IsThereCheckmate() {
		t.Errorf("IsThereCheckmate() = false after Qh4\n%s", b)
	}
}
