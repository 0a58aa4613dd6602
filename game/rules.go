package game

import (
	"github.com/domino14/gomoku/board"
	"github.com/domino14/gomoku/evaluator"
)

// WinLength stones in a row win. Longer rows win too.
const WinLength = 5

// RunLength is the longest line of same-colored stones through c in any of
// the four directions. It is 0 for an empty cell.
func RunLength(b *board.Board, c board.Coord) int {
	if b.IsEmpty(c) || !b.InBounds(c) {
		return 0
	}
	who := b.At(c)
	best := 0
	for _, d := range evaluator.Directions {
		n := 1
		for _, sign := range [2]int{1, -1} {
			cur := c.Add(sign*d.DX, sign*d.DY)
			for b.InBounds(cur) && b.At(cur) == who {
				n++
				cur = cur.Add(sign*d.DX, sign*d.DY)
			}
		}
		best = max(best, n)
	}
	return best
}

// HasFive reports whether player has WinLength or more in a row anywhere.
func HasFive(b *board.Board, player board.Cell) bool {
	for _, c := range b.Stones(player) {
		if RunLength(b, c) >= WinLength {
			return true
		}
	}
	return false
}
