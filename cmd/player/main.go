// Command player makes one move decision: it reads a position snapshot,
// searches it and writes the chosen move.
//
//	player <input> <output> [--search-depth N] [--disable-pruning] [--jitter-seed S]
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/gomoku/ai/player"
	"github.com/domino14/gomoku/config"
	"github.com/domino14/gomoku/gameio"
)

func run(args []string) error {
	cfg := &config.Config{}
	if err := cfg.Load(args); err != nil {
		return err
	}
	zerolog.SetGlobalLevel(cfg.LogLevel())

	pos := cfg.Args()
	if len(pos) != 2 {
		return fmt.Errorf("usage: player <input> <output> [flags]")
	}
	in, out := pos[0], pos[1]

	me, b, err := gameio.ReadSnapshotFile(in, cfg.GetInt(config.ConfigBoardSize))
	if err != nil {
		return fmt.Errorf("reading %s: %w", in, err)
	}
	log.Debug().Str("input", in).Str("me", me.String()).Int("stones", b.NumOccupied()).
		Msg("snapshot-loaded")

	p := player.NewAlphaBetaPlayerFromConfig(cfg)
	m, err := p.BestMove(b, me)
	if err != nil {
		return err
	}
	if err := gameio.WriteMoveFile(out, m); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	log.Info().Stringer("move", m).Float64("value", p.LastResult().Value).
		Dur("elapsed", p.LastResult().Elapsed).Msg("move-written")
	return nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Error().Err(err).Msg("player-failed")
		os.Exit(1)
	}
}
