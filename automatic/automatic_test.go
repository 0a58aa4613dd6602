package automatic

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/gomoku/ai/player"
	"github.com/domino14/gomoku/config"
	"github.com/domino14/gomoku/evaluator"
	"github.com/domino14/gomoku/game"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func smallConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Set(config.ConfigBoardSize, 7)
	cfg.Set(config.ConfigAutoplayDepth1, 1)
	cfg.Set(config.ConfigAutoplayDepth2, 1)
	cfg.Set(config.ConfigJitterSeed, 42)
	return cfg
}

func TestPlayGameRunsToTheEnd(t *testing.T) {
	is := is.New(t)
	r := NewGameRunner(smallConfig(), 0)
	rec, err := r.PlayGame("g1", 1)
	is.NoErr(err)
	is.Equal(r.Game().Playing(), game.GameOver)
	is.Equal(rec.Turns, r.Game().Turn())
	is.Equal(rec.First, r.Names()[1])
	is.True(rec.Winner == Draw || rec.Winner == r.Names()[0] || rec.Winner == r.Names()[1])
	is.Equal(rec.Fingerprint, r.Game().Board().Fingerprint())
}

func TestOpeningStones(t *testing.T) {
	is := is.New(t)
	cfg := smallConfig()
	cfg.Set(config.ConfigAutoplayOpeningStones, 3)
	r := NewGameRunner(cfg, 0)
	r.StartGame()
	is.Equal(r.Game().Turn(), 3)
	center := r.Game().Board().Center()
	for _, turn := range r.Game().History() {
		is.True(turn.Move.X >= center.X-openingReach && turn.Move.X <= center.X+openingReach)
		is.True(turn.Move.Y >= center.Y-openingReach && turn.Move.Y <= center.Y+openingReach)
	}
}

func TestNamesAreDistinct(t *testing.T) {
	is := is.New(t)
	r := NewGameRunner(smallConfig(), 0)
	p := player.NewAlphaBetaPlayer(1, false, evaluator.NoJitter)
	r.Init(p, p)
	is.Equal(r.Names(), [2]string{"alphabeta-d1-1", "alphabeta-d1-2"})
}

func TestCompVsCompWritesLog(t *testing.T) {
	is := is.New(t)
	out := filepath.Join(t.TempDir(), "games.csv")
	err := StartCompVCompGames(context.Background(), smallConfig(), 4, 2, out)
	is.NoErr(err)
	is.Equal(CVCCounter.Value(), int64(4))
	is.Equal(IsPlaying.Value(), int64(0))

	sum, err := AnalyzeLogFile(out)
	is.NoErr(err)
	is.Equal(sum.Games, 4)
	is.Equal(sum.Players[0].WentFirst, 2)
	is.Equal(sum.Players[1].WentFirst, 2)
	is.Equal(sum.Players[0].Wins+sum.Players[1].Wins+sum.Draws, 4)
}

func TestCompVsCompCancelled(t *testing.T) {
	is := is.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out := filepath.Join(t.TempDir(), "games.csv")
	is.NoErr(StartCompVCompGames(ctx, smallConfig(), 50, 2, out))
	is.True(CVCCounter.Value() < 50)
}

const sampleLog = `gameID,player1,player2,first,winner,turns,fingerprint
g000001,alphabeta-d2-1,alphabeta-d3-2,alphabeta-d2-1,alphabeta-d3-2,21,a1
g000002,alphabeta-d2-1,alphabeta-d3-2,alphabeta-d3-2,alphabeta-d3-2,17,b2
g000003,alphabeta-d2-1,alphabeta-d3-2,alphabeta-d2-1,alphabeta-d2-1,31,a1
g000004,alphabeta-d2-1,alphabeta-d3-2,alphabeta-d3-2,draw,49,c3
`

func TestAnalyzeLog(t *testing.T) {
	sum, err := AnalyzeLog(strings.NewReader(sampleLog))
	assert.NoError(t, err)
	assert.Equal(t, 4, sum.Games)
	assert.Equal(t, 1, sum.Draws)
	assert.Equal(t, 2, sum.FirstPlayerWins)
	assert.Equal(t, PlayerSummary{
		Name: "alphabeta-d2-1", Wins: 1, WinsGoingFirst: 1, WentFirst: 2,
		WinRate: sum.Players[0].WinRate, WinRateLow: sum.Players[0].WinRateLow,
		WinRateHigh: sum.Players[0].WinRateHigh,
	}, sum.Players[0])
	assert.InDelta(t, 0.375, sum.Players[0].WinRate, 1e-9)
	assert.InDelta(t, 0.625, sum.Players[1].WinRate, 1e-9)
	assert.Equal(t, 1, sum.Players[1].WinsGoingFirst)
	assert.InDelta(t, 29.5, sum.MeanLength, 1e-9)
	assert.Equal(t, 17, sum.MinLength)
	assert.Equal(t, 49, sum.MaxLength)
	assert.Equal(t, 3, sum.DistinctFinalPositions)

	text := sum.String()
	assert.Contains(t, text, "first-player-wins: 2")
	assert.Contains(t, text, "game length:")
}

func TestAnalyzeLogRejectsBadRows(t *testing.T) {
	_, err := AnalyzeLog(strings.NewReader("gameID,player1\n"))
	assert.Error(t, err)
	_, err = AnalyzeLog(strings.NewReader(strings.SplitN(sampleLog, "\n", 2)[0] + "\n"))
	assert.Error(t, err)
}
