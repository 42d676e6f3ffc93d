package autoplay

// Parallel session pool. Allows soak runs of many sessions across worker
// goroutines, in the same shape as computer-vs-computer game batches.

import (
	"context"
	"expvar"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/rbcasperson/match-three/config"
	"github.com/rbcasperson/match-three/rng"
)

var (
	SessionCounter *expvar.Int
	IsPlaying      *expvar.Int
)

func init() {
	SessionCounter = expvar.NewInt("sessionCounter")
	IsPlaying = expvar.NewInt("isPlaying")
}

// StartSessions plays numSessions full sessions across cfg.Threads workers
// and aggregates their results. A non-zero cfg.RandomSeed gives each worker a
// distinct but reproducible derived seed.
func StartSessions(ctx context.Context, cfg *config.Config, numSessions int) (*Stats, error) {
	threads := cfg.Threads
	if threads < 1 {
		threads = 1
	}
	log.Debug().Msgf("Starting %v sessions, %v threads", numSessions, threads)

	jobs := make(chan struct{}, numSessions)
	for i := 0; i < numSessions; i++ {
		jobs <- struct{}{}
	}
	close(jobs)

	results := make(chan *SessionResult, numSessions)
	g, ctx := errgroup.WithContext(ctx)
	SessionCounter.Set(0)

	for i := 0; i < threads; i++ {
		worker := i
		g.Go(func() error {
			var src rng.Source
			if cfg.RandomSeed != 0 {
				src = rng.NewSeededSource(cfg.RandomSeed + uint64(worker))
			}
			r, err := NewRunner(cfg, src)
			if err != nil {
				return err
			}
			IsPlaying.Add(1)
			defer IsPlaying.Add(-1)
			for range jobs {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				res, err := r.PlaySession()
				if err != nil {
					return err
				}
				results <- res
				SessionCounter.Add(1)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	close(results)

	stats := &Stats{}
	for res := range results {
		stats.add(res)
	}
	return stats, nil
}
