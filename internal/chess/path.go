package chess

// isPathClear reports whether every square strictly between from and (x, y)
// is empty. The two squares must share a file, a rank or a diagonal.
func (b *Board) isPathClear(from Square, x, y int) bool {
	dx := sign(x - from.X)
	dy := sign(y - from.Y)

	sq := from.Offset(dx, dy)
	for sq.X != x || sq.Y != y {
		if b.IsOccupied(sq.X, sq.Y) {
			return false
		}
		sq = sq.Offset(dx, dy)
	}
	return true
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
