package game

import (
	"fmt"
	"strings"
)

// ToDisplayText renders the board with the game status to its right.
func (g *Game) ToDisplayText() string {
	lines := strings.Split(strings.TrimRight(g.board.ToDisplayText(), "\n"), "\n")
	addText(lines, 3, 4, fmt.Sprintf("Turn %d", g.Turn()))
	switch {
	case g.playing == Playing:
		addText(lines, 4, 4, fmt.Sprintf("%s to move", g.onturn))
	case g.winner.IsPlayer():
		addText(lines, 4, 4, fmt.Sprintf("%s wins", g.winner))
	default:
		addText(lines, 4, 4, "draw")
	}
	if n := len(g.history); n > 0 {
		addText(lines, 5, 4, "Last: "+g.history[n-1].String())
	}
	return strings.Join(lines, "\n") + "\n"
}

func addText(lines []string, row int, hpad int, text string) {
	if row >= len(lines) {
		return
	}
	lines[row] += strings.Repeat(" ", hpad) + text
}
