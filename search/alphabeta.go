// Package search implements the move search: depth-limited minimax with
// alpha-beta pruning over the candidate-move frontier.
package search

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/gomoku/board"
	"github.com/domino14/gomoku/movegen"
)

// thanks Wikipedia:
/**function alphabeta(node, depth, α, β, maximizingPlayer) is
    if depth = 0 or node is a terminal node then
        return the heuristic value of node
    if maximizingPlayer then
        value := −∞
        for each child of node do
            value := max(value, alphabeta(child, depth − 1, α, β, FALSE))
            α := max(α, value)
            if α ≥ β then
                break (* β cut-off *)
        return value
    else
        value := +∞
        for each child of node do
            value := min(value, alphabeta(child, depth − 1, α, β, TRUE))
            β := min(β, value)
            if β ≤ α then
                break (* α cut-off *)
        return value
**/

// DefaultDepth is the number of plies searched when nothing else is
// configured.
const DefaultDepth = 3

var (
	ErrNoMoves      = errors.New("no candidate moves")
	ErrInvalidDepth = errors.New("search depth must be at least 1")
	ErrInvalidAgent = errors.New("agent must be black or white")
)

// Evaluator scores a board from a fixed point of view.
type Evaluator interface {
	Evaluate(b *board.Board) float64
}

type SolverOptions struct {
	// MaxDepth is the ply at which nodes become leaves. Ply 1 is the
	// agent's own move.
	MaxDepth int
	// DisablePruning turns the search into plain minimax.
	DisablePruning bool
}

// Result describes one finished decision.
type Result struct {
	Move    board.Coord
	Value   float64
	Nodes   int
	Leaves  int
	Elapsed time.Duration
}

// ChildValue is a root child and the value the search assigned it.
type ChildValue struct {
	Move  board.Coord
	Value float64
}

// Solver searches one position. It mutates the board and candidate set it
// is given while searching and leaves both exactly as it found them.
type Solver struct {
	board *board.Board
	cands *movegen.CandidateSet
	eval  Evaluator
	opts  SolverOptions

	tree   arena
	agent  board.Cell
	leaves int
	chosen int
}

func NewSolver(b *board.Board, cands *movegen.CandidateSet, eval Evaluator, opts SolverOptions) *Solver {
	return &Solver{board: b, cands: cands, eval: eval, opts: opts}
}

// Solve finds the move for agent, who is to play on the current board.
func (s *Solver) Solve(agent board.Cell) (Result, error) {
	if !agent.IsPlayer() {
		return Result{}, ErrInvalidAgent
	}
	if s.opts.MaxDepth < 1 {
		return Result{}, fmt.Errorf("%w: got %d", ErrInvalidDepth, s.opts.MaxDepth)
	}
	log.Debug().Int("max-depth", s.opts.MaxDepth).
		Bool("pruning", !s.opts.DisablePruning).
		Str("agent", agent.String()).
		Int("candidates", s.cands.Len()).
		Msg("alphabeta-solve-config")

	tstart := time.Now()
	s.agent = agent
	s.leaves = 0
	s.chosen = 0
	s.tree.reset()

	if s.cands.Len() == 0 {
		return Result{}, ErrNoMoves
	}
	fingerprint := s.board.Fingerprint()
	candsBefore := s.cands.Clone()

	s.searchRoot()

	if s.board.Fingerprint() != fingerprint || !s.cands.Equals(candsBefore) {
		panic(errors.New("search did not restore the board and candidate set"))
	}

	move, value := s.pickRootMove()
	res := Result{
		Move:    move,
		Value:   value,
		Nodes:   len(s.tree.nodes) - 1,
		Leaves:  s.leaves,
		Elapsed: time.Since(tstart),
	}
	log.Debug().
		Float64("time-elapsed-sec", res.Elapsed.Seconds()).
		Int("nodes", res.Nodes).
		Int("leaves", res.Leaves).
		Stringer("move", res.Move).
		Float64("value", res.Value).
		Msg("solve-returning")
	return res, nil
}

// searchRoot values every root child. The root is a max node that never
// cuts off; each child is searched with alpha one ulp below the running
// maximum so a child that ties the maximum comes back with its exact value.
func (s *Solver) searchRoot() {
	best := math.Inf(-1)
	for _, c := range s.cands.Coords() {
		child := s.tree.add(0, c, s.agent, 1)
		alpha := math.Inf(-1)
		if !s.opts.DisablePruning && !math.IsInf(best, -1) {
			alpha = math.Nextafter(best, math.Inf(-1))
		}
		v := s.visit(child, 1, alpha, math.Inf(1))
		best = max(best, v)
	}
	s.tree.setValue(0, best)
}

// pickRootMove scans the root children in candidate order. A child whose
// value is at least the running maximum replaces the pick, so the last of
// several equal best children wins.
func (s *Solver) pickRootMove() (board.Coord, float64) {
	best := math.Inf(-1)
	for _, idx := range s.tree.nodes[0].children {
		n := &s.tree.nodes[idx]
		if n.value >= best {
			best = n.value
			s.chosen = idx
		}
	}
	return s.tree.nodes[s.chosen].move, best
}

// visit plays the node's move, searches below it and takes the move back.
// The undo is deferred so it runs however the subtree exits.
func (s *Solver) visit(idx int, depth int, α, β float64) float64 {
	n := &s.tree.nodes[idx]
	step := s.cands.Apply(s.board, n.move, n.player)
	defer s.cands.Undo(s.board, step)
	return s.alphabeta(idx, depth+1, α, β)
}

// alphabeta values the node at parent by expanding the moves for ply depth.
func (s *Solver) alphabeta(parent int, depth int, α, β float64) float64 {
	if depth > s.opts.MaxDepth || s.cands.Len() == 0 {
		v := s.eval.Evaluate(s.board)
		s.leaves++
		s.tree.setValue(parent, v)
		return v
	}

	plays := s.cands.Coords()
	if depth%2 == 1 {
		// Maximizing: the agent moves.
		value := math.Inf(-1)
		for _, c := range plays {
			child := s.tree.add(parent, c, s.agent, depth)
			value = max(value, s.visit(child, depth, α, β))
			if s.opts.DisablePruning {
				continue
			}
			α = max(α, value)
			if α >= β {
				break // β cut-off
			}
		}
		s.tree.setValue(parent, value)
		return value
	}
	// Minimizing: the opponent moves.
	value := math.Inf(1)
	opp := s.agent.Opponent()
	for _, c := range plays {
		child := s.tree.add(parent, c, opp, depth)
		value = min(value, s.visit(child, depth, α, β))
		if s.opts.DisablePruning {
			continue
		}
		β = min(β, value)
		if β <= α {
			break // α cut-off
		}
	}
	s.tree.setValue(parent, value)
	return value
}

// RootChildren lists the root children that were searched, in candidate
// order, with their values.
func (s *Solver) RootChildren() []ChildValue {
	if len(s.tree.nodes) == 0 {
		return nil
	}
	return lo.Map(s.tree.nodes[0].children, func(idx int, _ int) ChildValue {
		return ChildValue{Move: s.tree.nodes[idx].move, Value: s.tree.nodes[idx].value}
	})
}

// PrincipalVariation follows the chosen root move and then, at each level,
// the first child whose value matches its parent's.
func (s *Solver) PrincipalVariation() []board.Coord {
	if s.chosen == 0 {
		return nil
	}
	idx := s.chosen
	for {
		n := &s.tree.nodes[idx]
		next, ok := lo.Find(n.children, func(c int) bool {
			return s.tree.nodes[c].valued && s.tree.nodes[c].value == n.value
		})
		if !ok {
			break
		}
		idx = next
	}
	return s.tree.line(idx)
}

// NodesCreated counts the arena nodes of the last search, root excluded.
func (s *Solver) NodesCreated() int {
	return max(len(s.tree.nodes)-1, 0)
}

func (s *Solver) LeavesEvaluated() int {
	return s.leaves
}
