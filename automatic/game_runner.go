// Package automatic plays computer-vs-computer games, mostly to compare
// search settings against each other, and analyzes the resulting logs.
package automatic

import (
	"encoding/binary"
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/domino14/gomoku/ai/player"
	"github.com/domino14/gomoku/board"
	"github.com/domino14/gomoku/config"
	"github.com/domino14/gomoku/evaluator"
	"github.com/domino14/gomoku/game"
)

// openingReach bounds random opening stones to a square around the center.
const openingReach = 2

// GameRecord is one finished game, as written to the log file.
type GameRecord struct {
	GameID      string
	Player1     string
	Player2     string
	First       string
	Winner      string // a player name, or "draw"
	Turns       int
	Fingerprint uint64
}

const Draw = "draw"

var logHeader = []string{"gameID", "player1", "player2", "first", "winner", "turns", "fingerprint"}

func (r GameRecord) csvFields() []string {
	return []string{r.GameID, r.Player1, r.Player2, r.First, r.Winner,
		strconv.Itoa(r.Turns), strconv.FormatUint(r.Fingerprint, 16)}
}

// GameRunner is the master struct here for the automatic game logic.
type GameRunner struct {
	game          *game.Game
	config        *config.Config
	aiplayers     [2]player.AIPlayer
	names         [2]string
	rng           *frand.RNG
	dim           int
	openingStones int
}

// NewGameRunner builds a runner from the autoplay settings in cfg. A nonzero
// jitter seed is offset by stream so parallel runners do not play
// identical games.
func NewGameRunner(cfg *config.Config, stream int) *GameRunner {
	seed := cfg.GetInt64(config.ConfigJitterSeed)
	jitter := func(k int64) evaluator.Jitter {
		if seed == 0 {
			return evaluator.NewJitter(0)
		}
		return evaluator.NewJitter(seed + int64(stream)*3 + k)
	}
	minimax := cfg.GetBool(config.ConfigDisablePruning)
	p1 := player.NewAlphaBetaPlayer(cfg.GetInt(config.ConfigAutoplayDepth1), minimax, jitter(1))
	p2 := player.NewAlphaBetaPlayer(cfg.GetInt(config.ConfigAutoplayDepth2), minimax, jitter(2))

	r := &GameRunner{
		config:        cfg,
		dim:           cfg.GetInt(config.ConfigBoardSize),
		openingStones: cfg.GetInt(config.ConfigAutoplayOpeningStones),
	}
	r.Init(p1, p2)
	if seed == 0 {
		r.rng = frand.New()
	} else {
		key := make([]byte, 32)
		binary.LittleEndian.PutUint64(key, uint64(seed+int64(stream)*3))
		r.rng = frand.NewCustom(key, 1024, 12)
	}
	return r
}

// Init sets the two competitors. Their names get a -1 or -2 suffix so that
// identical settings can still be told apart in the logs.
func (r *GameRunner) Init(p1, p2 player.AIPlayer) {
	r.aiplayers = [2]player.AIPlayer{p1, p2}
	r.names = [2]string{p1.Name() + "-1", p2.Name() + "-2"}
}

func (r *GameRunner) Names() [2]string {
	return r.names
}

func (r *GameRunner) Game() *game.Game {
	return r.game
}

// StartGame sets up a fresh board and plays the random opening stones.
func (r *GameRunner) StartGame() {
	r.game = game.NewGame(r.dim)
	center := r.game.Board().Center()
	side := 2*openingReach + 1
	maxTries := 100 * r.openingStones
	for placed, tries := 0, 0; placed < r.openingStones && tries < maxTries &&
		r.game.Playing() == game.Playing; tries++ {
		c := center.Add(r.rng.Intn(side)-openingReach, r.rng.Intn(side)-openingReach)
		if !r.game.Board().IsEmpty(c) {
			continue
		}
		if err := r.game.PlayMove(c); err != nil {
			// Only an off-board coordinate on a tiny board gets here.
			log.Debug().Err(err).Msg("opening-stone-rejected")
			continue
		}
		placed++
	}
}

// PlayBestTurn asks the engine whose turn it is for a move and plays it.
// firstIdx is the index of the engine playing black.
func (r *GameRunner) PlayBestTurn(firstIdx int) error {
	idx := firstIdx
	if r.game.PlayerOnTurn() == board.White {
		idx = 1 - firstIdx
	}
	m, err := r.aiplayers[idx].BestMove(r.game.Board(), r.game.PlayerOnTurn())
	if err != nil {
		return err
	}
	log.Trace().Str("player", r.names[idx]).Stringer("move", m).Msg("autoplay-move")
	return r.game.PlayMove(m)
}

// PlayGame plays one game to the end. firstIdx (0 or 1) selects the engine
// that plays black.
func (r *GameRunner) PlayGame(gameID string, firstIdx int) (GameRecord, error) {
	r.StartGame()
	for r.game.Playing() == game.Playing {
		if err := r.PlayBestTurn(firstIdx); err != nil {
			return GameRecord{}, fmt.Errorf("game %s turn %d: %w", gameID, r.game.Turn(), err)
		}
	}
	rec := GameRecord{
		GameID:      gameID,
		Player1:     r.names[0],
		Player2:     r.names[1],
		First:       r.names[firstIdx],
		Winner:      Draw,
		Turns:       r.game.Turn(),
		Fingerprint: r.game.Board().Fingerprint(),
	}
	switch r.game.Winner() {
	case board.Black:
		rec.Winner = r.names[firstIdx]
	case board.White:
		rec.Winner = r.names[1-firstIdx]
	}
	log.Debug().Str("game", gameID).Str("winner", rec.Winner).Int("turns", rec.Turns).Msg("game-over")
	return rec, nil
}
