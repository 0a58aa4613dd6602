// Package player turns a board snapshot into a chosen move. It owns nothing
// between decisions except the jitter stream.
package player

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/domino14/gomoku/board"
	"github.com/domino14/gomoku/config"
	"github.com/domino14/gomoku/evaluator"
	"github.com/domino14/gomoku/movegen"
	"github.com/domino14/gomoku/search"
)

// AIPlayer picks a move for `me` on the given board. The board is not
// modified.
type AIPlayer interface {
	BestMove(b *board.Board, me board.Cell) (board.Coord, error)
	Name() string
}

// AlphaBetaPlayer runs one alpha-beta search per decision.
type AlphaBetaPlayer struct {
	depth          int
	disablePruning bool
	jitter         evaluator.Jitter

	lastResult search.Result
	lastPV     []board.Coord
}

func NewAlphaBetaPlayer(depth int, disablePruning bool, jitter evaluator.Jitter) *AlphaBetaPlayer {
	return &AlphaBetaPlayer{depth: depth, disablePruning: disablePruning, jitter: jitter}
}

// NewAlphaBetaPlayerFromConfig reads depth, pruning and jitter seed from
// cfg.
func NewAlphaBetaPlayerFromConfig(cfg *config.Config) *AlphaBetaPlayer {
	return NewAlphaBetaPlayer(
		cfg.GetInt(config.ConfigSearchDepth),
		cfg.GetBool(config.ConfigDisablePruning),
		evaluator.NewJitter(cfg.GetInt64(config.ConfigJitterSeed)))
}

func (p *AlphaBetaPlayer) Name() string {
	if p.disablePruning {
		return fmt.Sprintf("minimax-d%d", p.depth)
	}
	return fmt.Sprintf("alphabeta-d%d", p.depth)
}

func (p *AlphaBetaPlayer) Depth() int {
	return p.depth
}

func (p *AlphaBetaPlayer) SetDepth(d int) {
	p.depth = d
}

func (p *AlphaBetaPlayer) SetPruning(on bool) {
	p.disablePruning = !on
}

func (p *AlphaBetaPlayer) SetJitter(j evaluator.Jitter) {
	p.jitter = j
}

// BestMove searches a private copy of b.
func (p *AlphaBetaPlayer) BestMove(b *board.Board, me board.Cell) (board.Coord, error) {
	work := b.Copy()
	cands := movegen.NewCandidateSet(work)
	ev := evaluator.NewEvaluator(me, p.jitter)
	solver := search.NewSolver(work, cands, ev, search.SolverOptions{
		MaxDepth:       p.depth,
		DisablePruning: p.disablePruning,
	})
	res, err := solver.Solve(me)
	if err != nil {
		return board.Coord{}, err
	}
	if !b.IsEmpty(res.Move) {
		// The candidate set only ever holds empty cells.
		panic(fmt.Errorf("search chose occupied cell %v", res.Move))
	}
	p.lastResult = res
	p.lastPV = solver.PrincipalVariation()
	log.Debug().
		Str("player", p.Name()).
		Str("me", me.String()).
		Uint64("position", b.Fingerprint()).
		Stringer("move", res.Move).
		Float64("value", res.Value).
		Int("nodes", res.Nodes).
		Msg("best-move")
	return res.Move, nil
}

// LastResult is the outcome of the most recent BestMove call.
func (p *AlphaBetaPlayer) LastResult() search.Result {
	return p.lastResult
}

// LastVariation is the expected line of play from the most recent call.
func (p *AlphaBetaPlayer) LastVariation() []board.Coord {
	return p.lastPV
}
