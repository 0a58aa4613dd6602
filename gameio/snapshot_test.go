package gameio

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/gomoku/board"
)

func TestReadSnapshot(t *testing.T) {
	is := is.New(t)
	in := `2
0 0 0
0 1 0
0 0 2
`
	me, b, err := ReadSnapshot(strings.NewReader(in), 3)
	is.NoErr(err)
	is.Equal(me, board.White)
	is.Equal(b.At(board.Coord{X: 1, Y: 1}), board.Black)
	is.Equal(b.At(board.Coord{X: 2, Y: 2}), board.White)
	is.Equal(b.NumOccupied(), 2)
}

func TestReadSnapshotErrors(t *testing.T) {
	is := is.New(t)
	for _, tc := range []struct {
		in   string
		want error
	}{
		{"", ErrMalformed},
		{"3 0 0 0 0", ErrMalformed},
		{"1 0 0 0", ErrTruncated},
		{"1 0 a 0 0", ErrMalformed},
		{"1 0 0 7 0", ErrMalformed},
	} {
		_, _, err := ReadSnapshot(strings.NewReader(tc.in), 2)
		is.True(errors.Is(err, tc.want))
	}
}

func TestSnapshotFileRoundTrip(t *testing.T) {
	is := is.New(t)
	b := board.FromRows([]string{
		"x....",
		".o...",
		"..x..",
		".....",
		"....o",
	})
	path := filepath.Join(t.TempDir(), "in.txt")
	is.NoErr(WriteSnapshotFile(path, board.Black, b))
	me, got, err := ReadSnapshotFile(path, 5)
	is.NoErr(err)
	is.Equal(me, board.Black)
	is.True(got.Equals(b))
}

func TestWriteMove(t *testing.T) {
	is := is.New(t)
	var buf bytes.Buffer
	is.NoErr(WriteMove(&buf, board.Coord{X: 7, Y: 3}))
	is.Equal(buf.String(), "7 3\n")

	c, err := ParseMove(buf.String())
	is.NoErr(err)
	is.Equal(c, board.Coord{X: 7, Y: 3})

	_, err = ParseMove("7")
	is.True(errors.Is(err, ErrMalformed))
}

func TestWriteMoveFile(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "out.txt")
	is.NoErr(WriteMoveFile(path, board.Coord{X: 0, Y: 14}))
	_, _, err := ReadSnapshotFile(path, 15)
	// A move file is not a snapshot.
	is.True(err != nil)
}
