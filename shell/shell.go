// Package shell is an interactive console for playing against the engine
// and running batches of engine-vs-engine games.
package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/domino14/gomoku/ai/player"
	"github.com/domino14/gomoku/config"
	"github.com/domino14/gomoku/game"
)

var (
	errNoData            = errors.New("no data in this line")
	errWrongOptionSyntax = errors.New("wrong format; all options need arguments")
	errQuit              = errors.New("quit")
	errNoGame            = errors.New("no game in progress; use `new` first")
)

type ShellController struct {
	l *readline.Instance

	config   *config.Config
	game     *game.Game
	aiplayer *player.AlphaBetaPlayer
}

type shellcmd struct {
	cmd     string
	args    []string
	options CmdOptions
}

type Response struct {
	message string
}

func msg(message string) *Response {
	return &Response{message: message}
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func newController(cfg *config.Config) *ShellController {
	return &ShellController{
		config:   cfg,
		aiplayer: player.NewAlphaBetaPlayerFromConfig(cfg),
	}
}

func NewShellController(cfg *config.Config) *ShellController {
	sc := newController(cfg)
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mgomoku>\033[0m ",
		HistoryFile:     "/tmp/gomoku_readline.tmp",
		AutoComplete:    completer,
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	sc.l = l
	return sc
}

// extractFields splits a line into a command, positional arguments and
// -key value options. Quoting follows shell rules.
func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := &shellcmd{cmd: fields[0], options: CmdOptions{}}
	for i := 1; i < len(fields); i++ {
		if strings.HasPrefix(fields[i], "-") && len(fields[i]) > 1 {
			if _, err := strconv.Atoi(fields[i]); err == nil {
				// A negative number is an argument.
				cmd.args = append(cmd.args, fields[i])
				continue
			}
			if i == len(fields)-1 {
				return nil, errWrongOptionSyntax
			}
			key := fields[i][1:]
			cmd.options[key] = append(cmd.options[key], fields[i+1])
			i++
			continue
		}
		cmd.args = append(cmd.args, fields[i])
	}
	return cmd, nil
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.l.Stdout())
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

func (sc *ShellController) dispatch(cmd *shellcmd) (*Response, error) {
	switch cmd.cmd {
	case "exit", "quit":
		return nil, errQuit
	case "help":
		return sc.help(cmd)
	case "new":
		return sc.newGame(cmd)
	case "show":
		return sc.show(cmd)
	case "play":
		return sc.play(cmd)
	case "gen":
		return sc.gen(cmd)
	case "aiplay":
		return sc.aiplay(cmd)
	case "undo":
		return sc.undo(cmd)
	case "set":
		return sc.set(cmd)
	case "load":
		return sc.load(cmd)
	case "save":
		return sc.save(cmd)
	case "autoplay":
		return sc.autoplay(cmd)
	case "analyze":
		return sc.analyze(cmd)
	}
	log.Debug().Msgf("you said: %v", strconv.Quote(cmd.cmd))
	return nil, fmt.Errorf("command %q not found; try `help`", cmd.cmd)
}

// execute runs one line. An empty line does nothing.
func (sc *ShellController) execute(line string) (*Response, error) {
	cmd, err := extractFields(line)
	if errors.Is(err, errNoData) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return sc.dispatch(cmd)
}

func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			}
			continue
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		resp, err := sc.execute(strings.TrimSpace(line))
		if errors.Is(err, errQuit) {
			sig <- syscall.SIGINT
			break
		} else if err != nil {
			sc.showError(err)
			continue
		}
		if resp != nil && resp.message != "" {
			sc.showMessage(resp.message)
		}
	}
	log.Debug().Msg("exiting-readline-loop")
}
