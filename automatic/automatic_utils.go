package automatic

import (
	"context"
	"encoding/csv"
	"errors"
	"expvar"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/gomoku/config"
)

var (
	CVCCounter = expvar.NewInt("cvcCounter")
	IsPlaying  = expvar.NewInt("isPlaying")
)

var ErrAlreadyPlaying = errors.New("games are already being played, please wait till complete")

type job struct {
	gameID   string
	firstIdx int
}

// StartCompVCompGames plays numGames games on the given number of threads
// and writes one CSV record per game to outputFilename. Engines alternate
// going first. It returns when all games are done or ctx is cancelled;
// games already finished stay in the log either way.
func StartCompVCompGames(ctx context.Context, cfg *config.Config, numGames int,
	threads int, outputFilename string) error {

	if IsPlaying.Value() > 0 {
		return ErrAlreadyPlaying
	}
	threads = max(threads, 1)

	logfile, err := os.Create(outputFilename)
	if err != nil {
		return err
	}
	log.Info().Int("games", numGames).Int("threads", threads).
		Str("logfile", outputFilename).Msg("starting-autoplay")

	CVCCounter.Set(0)
	jobs := make(chan job, 100)
	logChan := make(chan GameRecord, 100)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(jobs)
		for i := 0; i < numGames; i++ {
			select {
			case jobs <- job{gameID: fmt.Sprintf("g%06d", i+1), firstIdx: i % 2}:
			case <-gctx.Done():
				log.Info().Int("queued", i).Msg("got-stop-signal")
				return nil
			}
		}
		log.Debug().Msg("finished-queueing-jobs")
		return nil
	})

	workers, wctx := errgroup.WithContext(gctx)
	for t := 0; t < threads; t++ {
		t := t // per-iteration copy; go directive is 1.21 (pre-loopvar semantics)
		workers.Go(func() error {
			r := NewGameRunner(cfg, t)
			IsPlaying.Add(1)
			defer IsPlaying.Add(-1)
			for j := range jobs {
				if wctx.Err() != nil {
					return nil
				}
				rec, err := r.PlayGame(j.gameID, j.firstIdx)
				if err != nil {
					return err
				}
				logChan <- rec
				CVCCounter.Add(1)
			}
			return nil
		})
	}

	g.Go(func() error {
		err := workers.Wait()
		close(logChan)
		return err
	})

	// Turn logger. It drains logChan so workers never block on it.
	writeErr := func() error {
		defer logfile.Close()
		w := csv.NewWriter(logfile)
		var werr error
		if err := w.Write(logHeader); err != nil {
			werr = err
		}
		for rec := range logChan {
			if werr != nil {
				continue
			}
			werr = w.Write(rec.csvFields())
		}
		w.Flush()
		if werr != nil {
			return werr
		}
		return w.Error()
	}()

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info().Int64("played", CVCCounter.Value()).Msg("all-games-finished")
	return writeErr
}
