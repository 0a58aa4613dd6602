// Package game holds the rules of five-in-a-row: whose turn it is, which
// moves are legal and when the game is over. Players, human or computer,
// live outside of this package.
package game

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/domino14/gomoku/board"
)

// PlayState tells whether a game is still being played.
type PlayState int

const (
	Playing PlayState = iota
	GameOver
)

func (p PlayState) String() string {
	if p == Playing {
		return "playing"
	}
	return "game-over"
}

var (
	ErrGameOver     = errors.New("game is over")
	ErrIllegalMove  = errors.New("illegal move")
	ErrEmptyHistory = errors.New("no move to take back")
)

// Game is the state of one game. Black moves first.
type Game struct {
	board   *board.Board
	onturn  board.Cell
	playing PlayState
	winner  board.Cell
	history []Turn
}

func NewGame(dim int) *Game {
	return &Game{
		board:  board.NewBoard(dim),
		onturn: board.Black,
	}
}

// NewFromPosition starts a game from an arbitrary position with onturn to
// move. It is not checked for an existing five.
func NewFromPosition(b *board.Board, onturn board.Cell) (*Game, error) {
	if !onturn.IsPlayer() {
		return nil, fmt.Errorf("%w: %v cannot be on turn", board.ErrInvalidState, onturn)
	}
	g := &Game{board: b.Copy(), onturn: onturn}
	if g.board.Full() {
		g.playing = GameOver
	}
	return g, nil
}

// PlayMove places a stone for the player on turn and passes the turn.
func (g *Game) PlayMove(c board.Coord) error {
	if g.playing == GameOver {
		return ErrGameOver
	}
	if !g.board.InBounds(c) {
		return fmt.Errorf("%w: %v: %w", ErrIllegalMove, c, board.ErrOutOfBounds)
	}
	if !g.board.IsEmpty(c) {
		return fmt.Errorf("%w: %v: %w", ErrIllegalMove, c, board.ErrOccupied)
	}
	g.board.Place(c, g.onturn)
	g.history = append(g.history, Turn{Player: g.onturn, Move: c})

	if RunLength(g.board, c) >= WinLength {
		g.playing = GameOver
		g.winner = g.onturn
		log.Debug().Str("winner", g.onturn.String()).Int("turn", len(g.history)).Msg("game-won")
	} else if g.board.Full() {
		g.playing = GameOver
		log.Debug().Int("turn", len(g.history)).Msg("game-drawn")
	}
	g.onturn = g.onturn.Opponent()
	return nil
}

// UnplayLastMove takes back the most recent move, including a winning one.
func (g *Game) UnplayLastMove() error {
	if len(g.history) == 0 {
		return ErrEmptyHistory
	}
	last := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]
	g.board.Remove(last.Move)
	g.onturn = last.Player
	g.playing = Playing
	g.winner = board.Empty
	return nil
}

func (g *Game) PlayerOnTurn() board.Cell {
	return g.onturn
}

// Board returns the live board. Callers must not modify it.
func (g *Game) Board() *board.Board {
	return g.board
}

// Turn is the number of moves played so far.
func (g *Game) Turn() int {
	return len(g.history)
}

func (g *Game) History() []Turn {
	return g.history
}

// Winner is Empty while the game goes on and after a draw.
func (g *Game) Winner() board.Cell {
	return g.winner
}

func (g *Game) Playing() PlayState {
	return g.playing
}
