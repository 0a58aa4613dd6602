package board

import (
	"errors"
	"fmt"
)

// DefaultDim is the standard board size for five-in-a-row.
const DefaultDim = 15

var (
	ErrOutOfBounds  = errors.New("coordinate out of bounds")
	ErrOccupied     = errors.New("cell is occupied")
	ErrEmptyCell    = errors.New("cell is empty")
	ErrInvalidState = errors.New("invalid cell state")
)

// A Cell is the state of one intersection on the board.
type Cell uint8

const (
	Empty Cell = iota
	Black
	White
)

// CellFromPlayerID maps the external player ids (1 and 2) to a Cell.
func CellFromPlayerID(id int) (Cell, error) {
	switch id {
	case 1:
		return Black, nil
	case 2:
		return White, nil
	}
	return Empty, fmt.Errorf("%w: player id %d", ErrInvalidState, id)
}

// IsPlayer is true for Black and White.
func (c Cell) IsPlayer() bool {
	return c == Black || c == White
}

// Opponent returns the other player. It returns Empty for Empty.
func (c Cell) Opponent() Cell {
	switch c {
	case Black:
		return White
	case White:
		return Black
	}
	return Empty
}

func (c Cell) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	}
	return "empty"
}

// Symbol is the single-character display form of the cell.
func (c Cell) Symbol() byte {
	switch c {
	case Black:
		return 'x'
	case White:
		return 'o'
	}
	return '.'
}

// Coord is a 0-based board coordinate. X indexes rows, Y indexes columns.
type Coord struct {
	X, Y int
}

// Less orders coordinates by X, then Y.
func (c Coord) Less(o Coord) bool {
	if c.X != o.X {
		return c.X < o.X
	}
	return c.Y < o.Y
}

// Add offsets the coordinate. The result may be off the board.
func (c Coord) Add(dx, dy int) Coord {
	return Coord{c.X + dx, c.Y + dy}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Board is a square grid of cells. It is not safe for concurrent use; a
// search owns its board for the duration of one decision.
type Board struct {
	dim      int
	cells    []Cell
	occupied int
}

func NewBoard(dim int) *Board {
	if dim <= 0 {
		panic(fmt.Errorf("%w: board dimension %d", ErrInvalidState, dim))
	}
	return &Board{dim: dim, cells: make([]Cell, dim*dim)}
}

func (b *Board) Dim() int {
	return b.dim
}

func (b *Board) InBounds(c Coord) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < b.dim && c.Y < b.dim
}

// IsEmpty reports whether c is on the board and unoccupied.
func (b *Board) IsEmpty(c Coord) bool {
	return b.InBounds(c) && b.cells[b.index(c)] == Empty
}

// At returns the state of an on-board cell.
func (b *Board) At(c Coord) Cell {
	if !b.InBounds(c) {
		panic(fmt.Errorf("at %v: %w", c, ErrOutOfBounds))
	}
	return b.cells[b.index(c)]
}

// Place puts a stone for player on an empty, on-board cell. Anything else
// is a caller defect and panics.
func (b *Board) Place(c Coord, player Cell) {
	if !b.InBounds(c) {
		panic(fmt.Errorf("place %v: %w", c, ErrOutOfBounds))
	}
	if !player.IsPlayer() {
		panic(fmt.Errorf("place %v: %w: %v", c, ErrInvalidState, player))
	}
	idx := b.index(c)
	if b.cells[idx] != Empty {
		panic(fmt.Errorf("place %v: %w by %v", c, ErrOccupied, b.cells[idx]))
	}
	b.cells[idx] = player
	b.occupied++
}

// Remove takes a stone off the board. The cell must be occupied.
func (b *Board) Remove(c Coord) {
	if !b.InBounds(c) {
		panic(fmt.Errorf("remove %v: %w", c, ErrOutOfBounds))
	}
	idx := b.index(c)
	if b.cells[idx] == Empty {
		panic(fmt.Errorf("remove %v: %w", c, ErrEmptyCell))
	}
	b.cells[idx] = Empty
	b.occupied--
}

// Set overwrites a cell. It is meant for loading snapshots and reports bad
// input as an error instead of panicking.
func (b *Board) Set(c Coord, cell Cell) error {
	if !b.InBounds(c) {
		return fmt.Errorf("set %v: %w", c, ErrOutOfBounds)
	}
	if cell > White {
		return fmt.Errorf("set %v: %w: %d", c, ErrInvalidState, cell)
	}
	idx := b.index(c)
	if b.cells[idx] != Empty {
		b.occupied--
	}
	if cell != Empty {
		b.occupied++
	}
	b.cells[idx] = cell
	return nil
}

// Center is the geometric center of the board.
func (b *Board) Center() Coord {
	return Coord{b.dim / 2, b.dim / 2}
}

func (b *Board) NumOccupied() int {
	return b.occupied
}

func (b *Board) Full() bool {
	return b.occupied == len(b.cells)
}

func (b *Board) Copy() *Board {
	n := &Board{dim: b.dim, occupied: b.occupied, cells: make([]Cell, len(b.cells))}
	copy(n.cells, b.cells)
	return n
}

func (b *Board) CopyFrom(o *Board) {
	if b.dim != o.dim {
		b.dim = o.dim
		b.cells = make([]Cell, len(o.cells))
	}
	copy(b.cells, o.cells)
	b.occupied = o.occupied
}

func (b *Board) index(c Coord) int {
	return c.X*b.dim + c.Y
}
