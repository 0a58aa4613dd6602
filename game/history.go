package game

import (
	"fmt"
	"strings"

	"github.com/domino14/gomoku/board"
)

// Turn is one placed stone.
type Turn struct {
	Player board.Cell
	Move   board.Coord
}

func (t Turn) String() string {
	return t.Player.String() + " " + t.Move.String()
}

// HistoryString lists the moves one per line, numbered from 1.
func (g *Game) HistoryString() string {
	var sb strings.Builder
	for i, t := range g.history {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, t)
	}
	return sb.String()
}
