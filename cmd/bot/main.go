package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/gomoku/bot"
	"github.com/domino14/gomoku/config"
)

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	zerolog.SetGlobalLevel(cfg.LogLevel())
	log.Info().Str("nats", cfg.GetString(config.ConfigNatsURL)).
		Str("subject", cfg.GetString(config.ConfigBotSubject)).Msg("starting-bot")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := bot.Main(ctx, bot.NewBot(cfg)); err != nil {
		log.Error().Err(err).Msg("bot-exited")
		os.Exit(1)
	}
	log.Info().Msg("server gracefully shutting down")
}
