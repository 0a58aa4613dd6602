package search

import (
	"fmt"

	"github.com/domino14/gomoku/board"
)

const noParent = -1

// A GameNode is one hypothetical placement. Nodes live in the solver's
// arena and refer to each other by index; the arena is rebuilt for every
// decision.
type GameNode struct {
	move     board.Coord
	player   board.Cell
	parent   int
	children []int
	value    float64
	depth    uint8
	valued   bool
}

func (g *GameNode) Move() board.Coord {
	return g.move
}

func (g *GameNode) Player() board.Cell {
	return g.player
}

// Value is only meaningful once the search has processed the node.
func (g *GameNode) Value() (float64, bool) {
	return g.value, g.valued
}

func (g *GameNode) Depth() uint8 {
	return g.depth
}

func (g *GameNode) String() string {
	return fmt.Sprintf("<gamenode %v %v depth %d val %v>", g.player, g.move, g.depth, g.value)
}

type arena struct {
	nodes []GameNode
}

func (a *arena) reset() {
	a.nodes = a.nodes[:0]
	a.nodes = append(a.nodes, GameNode{parent: noParent})
}

func (a *arena) add(parent int, move board.Coord, player board.Cell, depth int) int {
	idx := len(a.nodes)
	a.nodes = append(a.nodes, GameNode{
		move:   move,
		player: player,
		parent: parent,
		depth:  uint8(depth),
	})
	a.nodes[parent].children = append(a.nodes[parent].children, idx)
	return idx
}

func (a *arena) setValue(idx int, v float64) {
	a.nodes[idx].value = v
	a.nodes[idx].valued = true
}

// line walks from a node back to the root and returns the moves in play
// order.
func (a *arena) line(idx int) []board.Coord {
	var seq []board.Coord
	for idx > 0 {
		seq = append([]board.Coord{a.nodes[idx].move}, seq...)
		idx = a.nodes[idx].parent
	}
	return seq
}
