// Package bot answers move requests over NATS. A request is a position
// snapshot in the gameio text format; the reply is the chosen move as
// "x y", or a line starting with "error: ".
package bot

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"

	"github.com/domino14/gomoku/ai/player"
	"github.com/domino14/gomoku/config"
	"github.com/domino14/gomoku/gameio"
)

const connectAttempts = 5

type Bot struct {
	sync.Mutex
	config *config.Config
	player *player.AlphaBetaPlayer
	dim    int
}

func NewBot(cfg *config.Config) *Bot {
	return &Bot{
		config: cfg,
		player: player.NewAlphaBetaPlayerFromConfig(cfg),
		dim:    cfg.GetInt(config.ConfigBoardSize),
	}
}

func errorResponse(message string, err error) []byte {
	msg := message
	if err != nil {
		msg = fmt.Sprintf("%s: %s", msg, err.Error())
	}
	return []byte("error: " + msg + "\n")
}

// Handle turns one request payload into a reply payload. It never fails;
// problems are reported in the reply.
func (bot *Bot) Handle(data []byte) []byte {
	me, b, err := gameio.ReadSnapshot(bytes.NewReader(data), bot.dim)
	if err != nil {
		return errorResponse("bad snapshot", err)
	}
	// The jitter stream is shared between requests.
	bot.Lock()
	m, err := bot.player.BestMove(b, me)
	bot.Unlock()
	if err != nil {
		return errorResponse("no move", err)
	}
	var out bytes.Buffer
	if err := gameio.WriteMove(&out, m); err != nil {
		return errorResponse("write move", err)
	}
	return out.Bytes()
}

// Connect dials the configured NATS server, backing off between attempts.
func Connect(ctx context.Context, url string) (*nats.Conn, error) {
	var nc *nats.Conn
	err := retry.Do(
		func() error {
			var err error
			nc, err = nats.Connect(url)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(connectAttempts),
		retry.Delay(200*time.Millisecond),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			log.Err(err).Uint("n", n).Str("url", url).Msg("nats-connect-failed-try-again")
			return retry.BackOffDelay(n, err, config)
		}),
	)
	return nc, err
}

// Main subscribes the bot on its subject and serves until ctx is done.
func Main(ctx context.Context, bot *Bot) error {
	nc, err := Connect(ctx, bot.config.GetString(config.ConfigNatsURL))
	if err != nil {
		return err
	}
	defer nc.Close()

	subject := bot.config.GetString(config.ConfigBotSubject)
	sub, err := nc.Subscribe(subject, func(m *nats.Msg) {
		log.Info().Int("bytes", len(m.Data)).Msg("bot-request")
		if err := m.Respond(bot.Handle(m.Data)); err != nil {
			log.Err(err).Msg("bot-respond-failed")
		}
	})
	if err != nil {
		return err
	}
	if err := nc.Flush(); err != nil {
		return err
	}
	if err := nc.LastError(); err != nil {
		return err
	}
	log.Info().Str("subject", subject).Msg("bot-listening")

	<-ctx.Done()
	log.Info().Msg("bot-draining")
	return sub.Drain()
}
