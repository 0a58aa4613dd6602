// Package evaluator scores a position by classifying the lines through every
// stone on the board against a fixed catalog of window signatures.
package evaluator

import (
	"encoding/binary"

	"lukechampine.com/frand"

	"github.com/domino14/gomoku/board"
)

const (
	// JitterRange bounds the random term added to each player's raw score.
	JitterRange = 20
	// OpponentFactor scales the opponent's raw score before it is subtracted.
	OpponentFactor = 1.2
)

// Direction is a unit step along a line.
type Direction struct {
	DX, DY int
}

var (
	Horizontal = Direction{0, 1}
	Vertical   = Direction{1, 0}
	DownRight  = Direction{1, 1}
	UpRight    = Direction{-1, 1}
)

// Directions are the four line orientations, in classification order.
var Directions = [4]Direction{Horizontal, Vertical, DownRight, UpRight}

// Jitter supplies the random term. *frand.RNG satisfies it.
type Jitter interface {
	Intn(n int) int
}

type noJitter struct{}

func (noJitter) Intn(int) int { return 0 }

// NoJitter always contributes zero.
var NoJitter Jitter = noJitter{}

// NewJitter returns a jitter source. A zero seed draws from system entropy;
// any other seed yields a reproducible stream.
func NewJitter(seed int64) Jitter {
	if seed == 0 {
		return frand.New()
	}
	key := make([]byte, 32)
	binary.LittleEndian.PutUint64(key, uint64(seed))
	return frand.NewCustom(key, 1024, 12)
}

// Tally counts category occurrences for one player.
type Tally [NumCategories]int

// Situation holds a tally per player, indexed by board.Cell.
type Situation [3]Tally

func (s *Situation) For(player board.Cell) *Tally {
	return &s[player]
}

// Evaluator scores boards from one player's point of view.
type Evaluator struct {
	perspective board.Cell
	jitter      Jitter
}

func NewEvaluator(perspective board.Cell, jitter Jitter) *Evaluator {
	if jitter == nil {
		jitter = NoJitter
	}
	return &Evaluator{perspective: perspective, jitter: jitter}
}

func (e *Evaluator) Perspective() board.Cell {
	return e.perspective
}

// Evaluate tallies the board and scores it.
func (e *Evaluator) Evaluate(b *board.Board) float64 {
	sit := Analyze(b)
	return e.Score(&sit)
}

// Score turns a situation into a scalar: own minus OpponentFactor times the
// opponent, each with its own jitter draw.
func (e *Evaluator) Score(sit *Situation) float64 {
	own := float64(e.jitter.Intn(JitterRange))
	opp := float64(e.jitter.Intn(JitterRange))
	ownTally := sit.For(e.perspective)
	oppTally := sit.For(e.perspective.Opponent())
	for c := Category(0); c < NumCategories; c++ {
		own += float64(ownTally[c]) * Weights[c]
		opp += float64(oppTally[c]) * Weights[c]
	}
	return own - OpponentFactor*opp
}

// Analyze classifies every line through every stone.
func Analyze(b *board.Board) Situation {
	var sit Situation
	dim := b.Dim()
	for x := 0; x < dim; x++ {
		for y := 0; y < dim; y++ {
			at := board.Coord{X: x, Y: y}
			owner := b.At(at)
			if owner == board.Empty {
				continue
			}
			for _, dir := range Directions {
				if cat, ok := Classify(b, at, dir); ok {
					sit[owner][cat]++
				}
			}
		}
	}
	return sit
}

// Classify matches the windows around the stone at `at` along dir, widest
// threat first. It reports false when nothing matches or the cell is empty.
func Classify(b *board.Board, at board.Coord, dir Direction) (Category, bool) {
	own := b.At(at)
	if own == board.Empty {
		return 0, false
	}
	var buf [7]byte
	// buf[1:7] covers offsets -2..+3; buf[0] is offset -3.
	fillWindow(b, at, dir, own, -2, 2, buf[1:6])
	if cat, ok := fivePatterns[string(buf[1:6])]; ok {
		return cat, true
	}
	fillWindow(b, at, dir, own, 3, 3, buf[6:7])
	if cat, ok := sixPatterns[string(buf[1:7])]; ok {
		return cat, true
	}
	fillWindow(b, at, dir, own, -3, -3, buf[0:1])
	if cat, ok := sevenPatterns[string(buf[0:7])]; ok {
		return cat, true
	}
	return 0, false
}

// Window renders the symbols for offsets lo..hi along dir. It is exported
// for diagnostics.
func Window(b *board.Board, at board.Coord, dir Direction, lo, hi int) string {
	buf := make([]byte, hi-lo+1)
	fillWindow(b, at, dir, b.At(at), lo, hi, buf)
	return string(buf)
}

func fillWindow(b *board.Board, at board.Coord, dir Direction, own board.Cell, lo, hi int, dst []byte) {
	for i, k := 0, lo; k <= hi; i, k = i+1, k+1 {
		c := at.Add(k*dir.DX, k*dir.DY)
		switch {
		case !b.InBounds(c):
			dst[i] = symBlocked
		case b.At(c) == board.Empty:
			dst[i] = symEmpty
		case b.At(c) == own:
			dst[i] = symOwn
		default:
			dst[i] = symBlocked
		}
	}
}
