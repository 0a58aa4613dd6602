package movegen

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/gomoku/board"
)

func TestEmptyBoardSeedsCenter(t *testing.T) {
	is := is.New(t)
	for _, dim := range []int{15, 9, 4} {
		b := board.NewBoard(dim)
		s := NewCandidateSet(b)
		is.Equal(s.Len(), 1)
		is.Equal(s.Coords(), []board.Coord{b.Center()})
	}
	is.Equal(NewCandidateSet(board.NewBoard(15)).Coords(), []board.Coord{{X: 7, Y: 7}})
}

func TestNeighborhoodSize(t *testing.T) {
	is := is.New(t)
	is.Equal(len(neighborhood), 24)
	b := board.NewBoard(15)
	b.Place(board.Coord{X: 7, Y: 7}, board.Black)
	s := NewCandidateSet(b)
	is.Equal(s.Len(), 24)
	is.True(!s.Contains(board.Coord{X: 7, Y: 7}))
	is.True(s.Contains(board.Coord{X: 5, Y: 9}))
	is.True(!s.Contains(board.Coord{X: 4, Y: 7}))
}

func TestCornerSeedingStaysOnBoard(t *testing.T) {
	is := is.New(t)
	b := board.NewBoard(15)
	b.Place(board.Coord{X: 0, Y: 0}, board.White)
	s := NewCandidateSet(b)
	// 3x3 block in the corner minus the stone itself.
	is.Equal(s.Len(), 8)
	for _, c := range s.Coords() {
		is.True(b.InBounds(c))
		is.True(b.IsEmpty(c))
	}
}

func TestCoordsAscending(t *testing.T) {
	b := board.FromRows([]string{
		".......",
		".......",
		"...x...",
		"....o..",
		".......",
		".......",
		".......",
	})
	s := NewCandidateSet(b)
	coords := s.Coords()
	for i := 1; i < len(coords); i++ {
		assert.True(t, coords[i-1].Less(coords[i]), "%v before %v", coords[i-1], coords[i])
	}
}

func TestApplyUndoRoundTrip(t *testing.T) {
	is := is.New(t)
	b := board.NewBoard(15)
	s := NewCandidateSet(b)
	origBoard := b.Copy()
	origSet := s.Clone()

	moves := []board.Coord{{X: 7, Y: 7}, {X: 7, Y: 8}, {X: 6, Y: 6}, {X: 0, Y: 0}, {X: 14, Y: 14}, {X: 8, Y: 9}}
	player := board.Black
	var steps []Step
	for _, m := range moves {
		steps = append(steps, s.Apply(b, m, player))
		is.True(!s.Contains(m))
		for _, c := range s.Coords() {
			is.True(b.IsEmpty(c))
		}
		player = player.Opponent()
	}
	for i := len(steps) - 1; i >= 0; i-- {
		s.Undo(b, steps[i])
	}
	is.True(b.Equals(origBoard))
	is.True(s.Equals(origSet))
}

func TestApplyRecordsOnlyNewCandidates(t *testing.T) {
	is := is.New(t)
	b := board.NewBoard(15)
	b.Place(board.Coord{X: 7, Y: 7}, board.Black)
	s := NewCandidateSet(b)
	before := s.Clone()

	st := s.Apply(b, board.Coord{X: 7, Y: 8}, board.White)
	// Column 10 is new; everything else around (7,8) was already present.
	assert.ElementsMatch(t, []board.Coord{{X: 5, Y: 10}, {X: 6, Y: 10}, {X: 7, Y: 10}, {X: 8, Y: 10}, {X: 9, Y: 10}}, st.Added())
	s.Undo(b, st)
	is.True(s.Equals(before))
	is.True(s.Contains(board.Coord{X: 7, Y: 8}))
}

func TestIncrementalMatchesReseed(t *testing.T) {
	is := is.New(t)
	b := board.NewBoard(9)
	s := NewCandidateSet(b)
	for _, m := range []board.Coord{{X: 4, Y: 4}, {X: 3, Y: 5}, {X: 5, Y: 3}, {X: 2, Y: 2}, {X: 6, Y: 7}} {
		s.Apply(b, m, board.Black)
		is.True(s.Equals(NewCandidateSet(b)))
	}
}
