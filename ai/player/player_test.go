package player

import (
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/gomoku/board"
	"github.com/domino14/gomoku/config"
	"github.com/domino14/gomoku/evaluator"
	"github.com/domino14/gomoku/search"
)

func TestBestMoveLeavesBoardAlone(t *testing.T) {
	is := is.New(t)
	b := board.FromRows([]string{
		".......",
		".......",
		"..xo...",
		"...x...",
		"...o...",
		".......",
		".......",
	})
	before := b.Fingerprint()
	p := NewAlphaBetaPlayer(2, false, evaluator.NoJitter)
	m, err := p.BestMove(b, board.White)
	is.NoErr(err)
	is.True(b.IsEmpty(m))
	is.Equal(b.Fingerprint(), before)
	is.Equal(p.LastResult().Move, m)
	is.Equal(p.LastVariation()[0], m)
}

func TestBestMoveEmptyBoard(t *testing.T) {
	is := is.New(t)
	p := NewAlphaBetaPlayerFromConfig(config.DefaultConfig())
	is.Equal(p.Depth(), 3)
	m, err := p.BestMove(board.NewBoard(15), board.Black)
	is.NoErr(err)
	is.Equal(m, board.Coord{X: 7, Y: 7})
}

func TestBestMoveFullBoard(t *testing.T) {
	is := is.New(t)
	p := NewAlphaBetaPlayer(1, false, evaluator.NoJitter)
	_, err := p.BestMove(board.FromRows([]string{"xo", "ox"}), board.White)
	is.True(errors.Is(err, search.ErrNoMoves))
}

func TestNames(t *testing.T) {
	is := is.New(t)
	p := NewAlphaBetaPlayer(3, false, evaluator.NoJitter)
	is.Equal(p.Name(), "alphabeta-d3")
	p.SetPruning(false)
	p.SetDepth(2)
	is.Equal(p.Name(), "minimax-d2")
}

func TestPruningDoesNotChangeDecision(t *testing.T) {
	is := is.New(t)
	rows := []string{
		".........",
		".........",
		"...xo....",
		"....x....",
		"...ox....",
		"....o....",
		".........",
		".........",
		".........",
	}
	pruned := NewAlphaBetaPlayer(3, false, evaluator.NoJitter)
	full := NewAlphaBetaPlayer(3, true, evaluator.NoJitter)
	m1, err := pruned.BestMove(board.FromRows(rows), board.Black)
	is.NoErr(err)
	m2, err := full.BestMove(board.FromRows(rows), board.Black)
	is.NoErr(err)
	is.Equal(m1, m2)
	is.True(pruned.LastResult().Leaves <= full.LastResult().Leaves)
}
