// Package movegen maintains the candidate-move frontier: the empty cells
// near existing stones that the search considers at each ply.
package movegen

import (
	"fmt"

	"github.com/domino14/gomoku/board"
)

// Reach is how far from an occupied cell a candidate may lie, in both axes.
const Reach = 2

// neighborhood holds the 24 offsets of the 5x5 square around a cell,
// excluding the cell itself.
var neighborhood = func() [][2]int {
	offs := make([][2]int, 0, (2*Reach+1)*(2*Reach+1)-1)
	for dx := -Reach; dx <= Reach; dx++ {
		for dy := -Reach; dy <= Reach; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			offs = append(offs, [2]int{dx, dy})
		}
	}
	return offs
}()

// CandidateSet is an ordered set of coordinates. Membership is a row-major
// bitmap, so iteration order is X, then Y.
type CandidateSet struct {
	dim     int
	members []bool
	size    int
}

// Step records what one Apply changed so that Undo can revert it exactly.
type Step struct {
	At           board.Coord
	Player       board.Cell
	added        []board.Coord
	wasCandidate bool
}

// Added returns the coordinates this step inserted into the set.
func (s Step) Added() []board.Coord {
	return s.added
}

// NewCandidateSet seeds a set from the current board. An empty board
// yields only its center.
func NewCandidateSet(b *board.Board) *CandidateSet {
	s := &CandidateSet{dim: b.Dim(), members: make([]bool, b.Dim()*b.Dim())}
	if b.NumOccupied() == 0 {
		s.insert(b.Center())
		return s
	}
	for x := 0; x < s.dim; x++ {
		for y := 0; y < s.dim; y++ {
			c := board.Coord{X: x, Y: y}
			if b.IsEmpty(c) {
				continue
			}
			for _, d := range neighborhood {
				q := c.Add(d[0], d[1])
				if b.IsEmpty(q) && !s.Contains(q) {
					s.insert(q)
				}
			}
		}
	}
	return s
}

func (s *CandidateSet) Len() int {
	return s.size
}

// Contains is false for anything off the board.
func (s *CandidateSet) Contains(c board.Coord) bool {
	if c.X < 0 || c.Y < 0 || c.X >= s.dim || c.Y >= s.dim {
		return false
	}
	return s.members[c.X*s.dim+c.Y]
}

// Coords returns a snapshot of the members in ascending order.
func (s *CandidateSet) Coords() []board.Coord {
	out := make([]board.Coord, 0, s.size)
	for i, in := range s.members {
		if in {
			out = append(out, board.Coord{X: i / s.dim, Y: i % s.dim})
		}
	}
	return out
}

// Apply places player's stone at c and updates the frontier: c leaves the
// set, and every empty neighbor not already present joins it.
func (s *CandidateSet) Apply(b *board.Board, c board.Coord, player board.Cell) Step {
	st := Step{At: c, Player: player, wasCandidate: s.Contains(c)}
	b.Place(c, player)
	if st.wasCandidate {
		s.remove(c)
	}
	for _, d := range neighborhood {
		q := c.Add(d[0], d[1])
		if b.IsEmpty(q) && !s.Contains(q) {
			s.insert(q)
			st.added = append(st.added, q)
		}
	}
	return st
}

// Undo reverts an Apply. Steps must be undone in reverse order.
func (s *CandidateSet) Undo(b *board.Board, st Step) {
	for _, q := range st.added {
		if !s.Contains(q) {
			panic(fmt.Errorf("undo %v: added candidate %v already gone", st.At, q))
		}
		s.remove(q)
	}
	if b.At(st.At) != st.Player {
		panic(fmt.Errorf("undo %v: expected %v stone, found %v", st.At, st.Player, b.At(st.At)))
	}
	b.Remove(st.At)
	if st.wasCandidate {
		s.insert(st.At)
	}
}

func (s *CandidateSet) Clone() *CandidateSet {
	n := &CandidateSet{dim: s.dim, size: s.size, members: make([]bool, len(s.members))}
	copy(n.members, s.members)
	return n
}

func (s *CandidateSet) Equals(o *CandidateSet) bool {
	if s.dim != o.dim || s.size != o.size {
		return false
	}
	for i := range s.members {
		if s.members[i] != o.members[i] {
			return false
		}
	}
	return true
}

func (s *CandidateSet) insert(c board.Coord) {
	s.members[c.X*s.dim+c.Y] = true
	s.size++
}

func (s *CandidateSet) remove(c board.Coord) {
	s.members[c.X*s.dim+c.Y] = false
	s.size--
}
