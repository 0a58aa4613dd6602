package bot

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/gomoku/board"
	"github.com/domino14/gomoku/config"
	"github.com/domino14/gomoku/gameio"
)

func testBot(dim int) *Bot {
	cfg := config.DefaultConfig()
	cfg.Set(config.ConfigBoardSize, dim)
	cfg.Set(config.ConfigSearchDepth, 2)
	cfg.Set(config.ConfigJitterSeed, 7)
	return NewBot(cfg)
}

func TestHandleEmptyBoard(t *testing.T) {
	is := is.New(t)
	var req bytes.Buffer
	is.NoErr(gameio.WriteSnapshot(&req, board.Black, board.NewBoard(9)))
	is.Equal(string(testBot(9).Handle(req.Bytes())), "4 4\n")
}

func TestHandleCompletesFive(t *testing.T) {
	is := is.New(t)
	b := board.FromRows([]string{
		".........",
		".........",
		"..oooo...",
		".........",
		"..xxx....",
		".........",
		".........",
		".........",
		".........",
	})
	var req bytes.Buffer
	is.NoErr(gameio.WriteSnapshot(&req, board.White, b))
	reply := string(testBot(9).Handle(req.Bytes()))
	m, err := gameio.ParseMove(reply)
	is.NoErr(err)
	is.True(m == board.Coord{X: 2, Y: 1} || m == board.Coord{X: 2, Y: 6})
}

func TestHandleReportsErrors(t *testing.T) {
	is := is.New(t)
	bot := testBot(3)
	is.True(strings.HasPrefix(string(bot.Handle([]byte("1 0 0"))), "error: bad snapshot"))
	is.True(strings.HasPrefix(string(bot.Handle([]byte("1 1 2 1 2 1 2 1 2 1"))), "error: no move"))
}
