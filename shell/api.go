package shell

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/domino14/gomoku/automatic"
	"github.com/domino14/gomoku/board"
	"github.com/domino14/gomoku/config"
	"github.com/domino14/gomoku/evaluator"
	"github.com/domino14/gomoku/game"
	"github.com/domino14/gomoku/gameio"
)

const defaultAutoplayLog = "/tmp/gomoku_autoplay.txt"

type CmdOptions map[string][]string

func (c CmdOptions) String(key string) string {
	v := c[key]
	if len(v) > 0 {
		return v[0]
	}
	return ""
}

func (c CmdOptions) IntDefault(key string, defaultI int) (int, error) {
	v := c[key]
	if len(v) == 0 {
		return defaultI, nil
	}
	return strconv.Atoi(v[0])
}

func (sc *ShellController) dim() int {
	return sc.config.GetInt(config.ConfigBoardSize)
}

func (sc *ShellController) newGame(cmd *shellcmd) (*Response, error) {
	dim := sc.dim()
	if len(cmd.args) > 0 {
		var err error
		dim, err = strconv.Atoi(cmd.args[0])
		if err != nil {
			return nil, err
		}
		if dim < 1 {
			return nil, fmt.Errorf("board size must be positive, got %d", dim)
		}
		sc.config.Set(config.ConfigBoardSize, dim)
	}
	sc.game = game.NewGame(dim)
	return msg(sc.game.ToDisplayText()), nil
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	if len(cmd.args) > 0 && cmd.args[0] == "history" {
		return msg(sc.game.HistoryString()), nil
	}
	return msg(sc.game.ToDisplayText()), nil
}

func parseCoord(args []string) (board.Coord, error) {
	if len(args) != 2 {
		return board.Coord{}, errors.New("usage: play <x> <y>")
	}
	return gameio.ParseMove(args[0] + " " + args[1])
}

func (sc *ShellController) play(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	c, err := parseCoord(cmd.args)
	if err != nil {
		return nil, err
	}
	if err := sc.game.PlayMove(c); err != nil {
		return nil, err
	}
	return msg(sc.game.ToDisplayText()), nil
}

func (sc *ShellController) bestMove() (board.Coord, error) {
	if sc.game == nil {
		return board.Coord{}, errNoGame
	}
	if sc.game.Playing() == game.GameOver {
		return board.Coord{}, game.ErrGameOver
	}
	return sc.aiplayer.BestMove(sc.game.Board(), sc.game.PlayerOnTurn())
}

// gen shows the engine's choice and the expected line without playing it.
func (sc *ShellController) gen(cmd *shellcmd) (*Response, error) {
	m, err := sc.bestMove()
	if err != nil {
		return nil, err
	}
	res := sc.aiplayer.LastResult()
	pv := lo.Map(sc.aiplayer.LastVariation(), func(c board.Coord, _ int) string {
		return c.String()
	})
	var sb strings.Builder
	fmt.Fprintf(&sb, "Best move for %s: %v\n", sc.game.PlayerOnTurn(), m)
	fmt.Fprintf(&sb, "Value: %.1f\n", res.Value)
	fmt.Fprintf(&sb, "Variation: %s\n", strings.Join(pv, " "))
	fmt.Fprintf(&sb, "Nodes: %d  Leaves: %d  Time: %s", res.Nodes, res.Leaves, res.Elapsed)
	return msg(sb.String()), nil
}

func (sc *ShellController) aiplay(cmd *shellcmd) (*Response, error) {
	m, err := sc.bestMove()
	if err != nil {
		return nil, err
	}
	if err := sc.game.PlayMove(m); err != nil {
		return nil, err
	}
	return msg(fmt.Sprintf("Played %v\n%s", m, sc.game.ToDisplayText())), nil
}

func (sc *ShellController) undo(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	if err := sc.game.UnplayLastMove(); err != nil {
		return nil, err
	}
	return msg(sc.game.ToDisplayText()), nil
}

func (sc *ShellController) set(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return msg(fmt.Sprintf("depth %d\npruning %v\nseed %d\nsize %d",
			sc.aiplayer.Depth(), !sc.config.GetBool(config.ConfigDisablePruning),
			sc.config.GetInt64(config.ConfigJitterSeed), sc.dim())), nil
	}
	if len(cmd.args) != 2 {
		return nil, errors.New("usage: set <depth|pruning|seed> <value>")
	}
	opt, val := cmd.args[0], cmd.args[1]
	switch opt {
	case "depth":
		d, err := strconv.Atoi(val)
		if err != nil {
			return nil, err
		}
		if d < 1 {
			return nil, fmt.Errorf("depth must be at least 1, got %d", d)
		}
		sc.config.Set(config.ConfigSearchDepth, d)
		sc.aiplayer.SetDepth(d)
	case "pruning":
		on, err := strconv.ParseBool(val)
		if err != nil {
			return nil, err
		}
		sc.config.Set(config.ConfigDisablePruning, !on)
		sc.aiplayer.SetPruning(on)
	case "seed":
		seed, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return nil, err
		}
		sc.config.Set(config.ConfigJitterSeed, seed)
		sc.aiplayer.SetJitter(evaluator.NewJitter(seed))
	default:
		return nil, fmt.Errorf("unknown option %q", opt)
	}
	return msg("set " + opt + " to " + val), nil
}

func (sc *ShellController) load(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: load <file>")
	}
	onturn, b, err := gameio.ReadSnapshotFile(cmd.args[0], sc.dim())
	if err != nil {
		return nil, err
	}
	g, err := game.NewFromPosition(b, onturn)
	if err != nil {
		return nil, err
	}
	sc.game = g
	return msg(sc.game.ToDisplayText()), nil
}

func (sc *ShellController) save(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: save <file>")
	}
	if err := gameio.WriteSnapshotFile(cmd.args[0], sc.game.PlayerOnTurn(), sc.game.Board()); err != nil {
		return nil, err
	}
	return msg("saved " + cmd.args[0]), nil
}

// autoplay plays a batch of games and then analyzes them. Ctrl-C stops
// the batch early.
func (sc *ShellController) autoplay(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return nil, errors.New("usage: autoplay <games> [threads] [-file logfile]")
	}
	numGames, err := strconv.Atoi(cmd.args[0])
	if err != nil {
		return nil, err
	}
	threads := 1
	if len(cmd.args) > 1 {
		if threads, err = strconv.Atoi(cmd.args[1]); err != nil {
			return nil, err
		}
	}
	logfile := cmd.options.String("file")
	if logfile == "" {
		logfile = defaultAutoplayLog
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := automatic.StartCompVCompGames(ctx, sc.config, numGames, threads, logfile); err != nil {
		return nil, err
	}
	return sc.analyze(&shellcmd{cmd: "analyze", args: []string{logfile}})
}

func (sc *ShellController) analyze(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: analyze <logfile>")
	}
	sum, err := automatic.AnalyzeLogFile(cmd.args[0])
	if err != nil {
		return nil, err
	}
	return msg(sum.String()), nil
}
