// Package gameio reads and writes the plain-text position snapshots and
// move replies exchanged with the outside world.
//
// A snapshot is whitespace-separated integers: the id of the player to move
// (1 black, 2 white) followed by dim*dim cells in row-major order, each 0
// for empty, 1 for black or 2 for white. A reply is "x y" and a newline.
package gameio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/gomoku/board"
)

var (
	ErrMalformed = errors.New("malformed snapshot")
	ErrTruncated = errors.New("snapshot is missing cells")
)

// ReadSnapshot parses a snapshot of a dim x dim board. It returns the
// player to move and the position.
func ReadSnapshot(r io.Reader, dim int) (board.Cell, *board.Board, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	next := func() (int, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, err
			}
			return 0, io.EOF
		}
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not an integer", ErrMalformed, sc.Text())
		}
		return v, nil
	}

	id, err := next()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return board.Empty, nil, fmt.Errorf("%w: empty input", ErrMalformed)
		}
		return board.Empty, nil, err
	}
	me, err := board.CellFromPlayerID(id)
	if err != nil {
		return board.Empty, nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	b := board.NewBoard(dim)
	for i := 0; i < dim*dim; i++ {
		v, err := next()
		if errors.Is(err, io.EOF) {
			return board.Empty, nil, fmt.Errorf("%w: read %d of %d", ErrTruncated, i, dim*dim)
		} else if err != nil {
			return board.Empty, nil, err
		}
		if v < 0 || v > 2 {
			return board.Empty, nil, fmt.Errorf("%w: cell value %d at index %d", ErrMalformed, v, i)
		}
		if err := b.Set(board.Coord{X: i / dim, Y: i % dim}, board.Cell(v)); err != nil {
			return board.Empty, nil, err
		}
	}
	if sc.Scan() {
		log.Warn().Str("extra", sc.Text()).Msg("snapshot-trailing-data")
	}
	return me, b, nil
}

func ReadSnapshotFile(path string, dim int) (board.Cell, *board.Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return board.Empty, nil, err
	}
	defer f.Close()
	return ReadSnapshot(f, dim)
}

// WriteSnapshot is the inverse of ReadSnapshot. Each board row goes on its
// own line.
func WriteSnapshot(w io.Writer, player board.Cell, b *board.Board) error {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(int(player)))
	sb.WriteString("\n")
	for x := 0; x < b.Dim(); x++ {
		for y := 0; y < b.Dim(); y++ {
			if y > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(strconv.Itoa(int(b.At(board.Coord{X: x, Y: y}))))
		}
		sb.WriteString("\n")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func WriteSnapshotFile(path string, player board.Cell, b *board.Board) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteSnapshot(f, player, b); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteMove writes the reply line for c.
func WriteMove(w io.Writer, c board.Coord) error {
	_, err := fmt.Fprintf(w, "%d %d\n", c.X, c.Y)
	return err
}

func WriteMoveFile(path string, c board.Coord) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteMove(f, c); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ParseMove reads a reply line back into a coordinate.
func ParseMove(s string) (board.Coord, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return board.Coord{}, fmt.Errorf("%w: move needs two fields, got %q", ErrMalformed, s)
	}
	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return board.Coord{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return board.Coord{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return board.Coord{X: x, Y: y}, nil
}
