// Command autoplay pits two search settings against each other and prints
// a summary of the results. With the single argument "analyze" it only
// summarizes an existing log.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/gomoku/automatic"
	"github.com/domino14/gomoku/config"
)

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	zerolog.SetGlobalLevel(cfg.LogLevel())
	logfile := cfg.GetString(config.ConfigAutoplayLogfile)

	analyzeOnly := len(cfg.Args()) == 1 && cfg.Args()[0] == "analyze"
	if !analyzeOnly {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		err := automatic.StartCompVCompGames(ctx, cfg, cfg.GetInt(config.ConfigAutoplayGames),
			cfg.GetInt(config.ConfigAutoplayThreads), logfile)
		if err != nil {
			log.Error().Err(err).Msg("autoplay-failed")
			os.Exit(1)
		}
	}
	sum, err := automatic.AnalyzeLogFile(logfile)
	if err != nil {
		log.Error().Err(err).Msg("analyze-failed")
		os.Exit(1)
	}
	fmt.Print(sum.String())
}
