package chess

// IsThereCheck reports whether the king of the side to move stands on a
// square reachable by any opposing piece. A side without a king is never in check.
func (b *Board) IsThereCheck() bool {
	king := b.FindKing(b.turn)
	if king == nil {
		return false
	}
	return b.isSquareAttacked(king.Square, b.turn.Opposite())
}

// isSquareAttacked reports whether any piece of byColour lists sq among its possible moves.
func (b *Board) isSquareAttacked(sq Square, byColour Colour) bool {
	for _, p := range b.Pieces(byColour) {
		for _, to := range p.PossibleMoves(b) {
			if to == sq {
				return true
			}
		}
	}
	return false
}

// IsThereCheckmate reports whether every possible move of the side to move
// leaves its king in check. Each candidate is tried on a clone of the board.
//
// A side with no possible moves at all is reported as mated as well, so this
// is also true for stalemate; callers tell the two apart with IsThereCheck.
func (b *Board) IsThereCheckmate() bool {
	for _, p := range b.Pieces(b.turn) {
		for _, to := range p.PossibleMoves(b) {
			sim, err := b.Simulate(p.Square, to)
			if err != nil {
				continue
			}
			if !sim.IsThereCheck() {
				return false
			}
		}
	}
	return true
}
