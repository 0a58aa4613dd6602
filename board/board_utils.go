package board

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash"
	"github.com/rs/zerolog/log"
)

// ToDisplayText renders the board with column numbers across the top and row
// numbers down the side. Both are 0-based, matching Coord.
func (b *Board) ToDisplayText() string {
	var sb strings.Builder
	n := b.Dim()
	sb.WriteString("\n    ")
	for y := 0; y < n; y++ {
		fmt.Fprintf(&sb, "%-2d", y%100)
	}
	sb.WriteString("\n   " + strings.Repeat("-", n*2+1) + "\n")
	for x := 0; x < n; x++ {
		fmt.Fprintf(&sb, "%2d| ", x)
		for y := 0; y < n; y++ {
			sb.WriteByte(b.cells[b.index(Coord{x, y})].Symbol())
			sb.WriteByte(' ')
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("   " + strings.Repeat("-", n*2+1) + "\n")
	return sb.String()
}

// Fingerprint is a 64-bit digest of the cell contents. Two boards with the
// same dimension and stones have the same fingerprint.
func (b *Board) Fingerprint() uint64 {
	buf := make([]byte, len(b.cells)+1)
	buf[0] = byte(b.dim)
	for i, c := range b.cells {
		buf[i+1] = byte(c)
	}
	return xxhash.Sum64(buf)
}

// Equals compares dimension and every cell.
func (b *Board) Equals(o *Board) bool {
	if b.dim != o.dim {
		log.Debug().Int("dim", b.dim).Int("other", o.dim).Msg("board-dims-differ")
		return false
	}
	if b.occupied != o.occupied {
		log.Debug().Int("occupied", b.occupied).Int("other", o.occupied).Msg("board-occupancy-differs")
		return false
	}
	for i := range b.cells {
		if b.cells[i] != o.cells[i] {
			log.Debug().Int("x", i/b.dim).Int("y", i%b.dim).Msg("board-cells-differ")
			return false
		}
	}
	return true
}

// Stones returns the coordinates holding a stone of the given player, in
// row-major order.
func (b *Board) Stones(player Cell) []Coord {
	var out []Coord
	for i, c := range b.cells {
		if c == player {
			out = append(out, Coord{i / b.dim, i % b.dim})
		}
	}
	return out
}

// FromRows builds a board from rows of symbols: 'x' or 'X' for black, 'o'
// or 'O' for white, anything else empty. Mostly useful for tests.
func FromRows(rows []string) *Board {
	b := NewBoard(len(rows))
	for x, row := range rows {
		for y := 0; y < len(row) && y < b.dim; y++ {
			switch row[y] {
			case 'x', 'X':
				b.Place(Coord{x, y}, Black)
			case 'o', 'O':
				b.Place(Coord{x, y}, White)
			}
		}
	}
	return b
}
