package game

import (
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/gomoku/board"
)

func TestBlackMovesFirstAndTurnsAlternate(t *testing.T) {
	is := is.New(t)
	g := NewGame(15)
	is.Equal(g.PlayerOnTurn(), board.Black)
	is.NoErr(g.PlayMove(board.Coord{X: 7, Y: 7}))
	is.Equal(g.PlayerOnTurn(), board.White)
	is.NoErr(g.PlayMove(board.Coord{X: 7, Y: 8}))
	is.Equal(g.Turn(), 2)
	is.Equal(g.History()[1], Turn{Player: board.White, Move: board.Coord{X: 7, Y: 8}})
}

func TestIllegalMoves(t *testing.T) {
	is := is.New(t)
	g := NewGame(15)
	is.NoErr(g.PlayMove(board.Coord{X: 0, Y: 0}))
	err := g.PlayMove(board.Coord{X: 0, Y: 0})
	is.True(errors.Is(err, ErrIllegalMove))
	is.True(errors.Is(err, board.ErrOccupied))
	err = g.PlayMove(board.Coord{X: 15, Y: 0})
	is.True(errors.Is(err, board.ErrOutOfBounds))
	is.Equal(g.PlayerOnTurn(), board.White)
}

func TestFiveWinsAndUndoReopens(t *testing.T) {
	is := is.New(t)
	g := NewGame(15)
	for i := 0; i < 4; i++ {
		is.NoErr(g.PlayMove(board.Coord{X: 3 + i, Y: 3 + i}))
		is.NoErr(g.PlayMove(board.Coord{X: 0, Y: i}))
	}
	is.Equal(g.Playing(), Playing)
	is.NoErr(g.PlayMove(board.Coord{X: 7, Y: 7}))
	is.Equal(g.Playing(), GameOver)
	is.Equal(g.Winner(), board.Black)
	is.True(errors.Is(g.PlayMove(board.Coord{X: 9, Y: 9}), ErrGameOver))
	is.True(strings.Contains(g.ToDisplayText(), "black wins"))

	is.NoErr(g.UnplayLastMove())
	is.Equal(g.Playing(), Playing)
	is.Equal(g.Winner(), board.Empty)
	is.Equal(g.PlayerOnTurn(), board.Black)
	is.True(g.Board().IsEmpty(board.Coord{X: 7, Y: 7}))
}

func TestUndoOnFreshGame(t *testing.T) {
	is := is.New(t)
	is.True(errors.Is(NewGame(5).UnplayLastMove(), ErrEmptyHistory))
}

func TestDrawOnFullBoard(t *testing.T) {
	is := is.New(t)
	g := NewGame(2)
	for _, c := range []board.Coord{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: 1}} {
		is.NoErr(g.PlayMove(c))
	}
	is.Equal(g.Playing(), GameOver)
	is.Equal(g.Winner(), board.Empty)
	is.True(strings.Contains(g.ToDisplayText(), "draw"))
}

func TestNewFromPosition(t *testing.T) {
	is := is.New(t)
	b := board.FromRows([]string{"x..", "...", "..o"})
	g, err := NewFromPosition(b, board.White)
	is.NoErr(err)
	is.Equal(g.PlayerOnTurn(), board.White)
	is.NoErr(g.PlayMove(board.Coord{X: 1, Y: 1}))
	// The source board is untouched.
	is.True(b.IsEmpty(board.Coord{X: 1, Y: 1}))

	_, err = NewFromPosition(b, board.Empty)
	is.True(errors.Is(err, board.ErrInvalidState))
}
