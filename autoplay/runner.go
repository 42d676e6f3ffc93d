// Package autoplay drives full self-played board sessions, for soak-testing
// the engine and collecting score statistics. A session repeatedly finds a
// productive swap, plays it, and resolves the resulting cascade chain; the
// board reshuffles itself whenever it deadlocks.
package autoplay

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/rbcasperson/match-three/board"
	"github.com/rbcasperson/match-three/config"
	"github.com/rbcasperson/match-three/game"
	"github.com/rbcasperson/match-three/match"
	"github.com/rbcasperson/match-three/orbs"
	"github.com/rbcasperson/match-three/rng"
)

// Runner plays sessions on one board. Not safe for concurrent use; the
// session pool creates one Runner per worker.
type Runner struct {
	board *game.Board
	cfg   *config.Config
	src   rng.Source
}

// A SessionResult summarizes one played session.
type SessionResult struct {
	Moves      int
	Shuffles   int
	Score      int
	GroupSizes []int
}

// NewRunner builds a runner and its board from the config. A nil src gets an
// OS-seeded source.
func NewRunner(cfg *config.Config, src rng.Source) (*Runner, error) {
	if src == nil {
		if cfg.RandomSeed != 0 {
			src = rng.NewSeededSource(cfg.RandomSeed)
		} else {
			src = rng.NewSource()
		}
	}
	b, err := game.New(cfg.BoardWidth, cfg.BoardHeight,
		orbs.StandardSet(cfg.OrbTypes), src)
	if err != nil {
		return nil, err
	}
	return &Runner{board: b, cfg: cfg, src: src}, nil
}

// Board exposes the runner's board, mainly for inspection in tests and the
// shell.
func (r *Runner) Board() *game.Board {
	return r.board
}

// PlaySession plays cfg.SessionMoves productive swaps, resolving every
// cascade chain to quiescence, and returns the accumulated result.
func (r *Runner) PlaySession() (*SessionResult, error) {
	res := &SessionResult{}
	for res.Moves < r.cfg.SessionMoves {
		if r.board.NeedsShuffle() {
			if err := r.board.Shuffle(); err != nil {
				return nil, err
			}
			res.Shuffles++
			continue
		}
		a, b, ok := r.findProductiveSwap()
		if !ok {
			// The potential-move check said a swap exists; not finding one
			// means the two procedures disagree.
			return nil, fmt.Errorf("no productive swap on a board with potential (fingerprint %x)",
				r.board.Grid().Fingerprint())
		}
		kept, err := r.board.Swap(a, b, true)
		if err != nil {
			return nil, err
		}
		if !kept {
			return nil, fmt.Errorf("productive swap %v<->%v was reverted", a, b)
		}
		res.Moves++
		// Chain resolution is deliberately caller-side: loop one evaluation
		// layer at a time until the board settles.
		for r.board.HasMatch() {
			events := r.board.Evaluate(nil, nil)
			res.Score += lo.SumBy(events, func(e game.MatchEvent) int { return e.Size })
			for _, e := range events {
				res.GroupSizes = append(res.GroupSizes, e.Size)
			}
		}
	}
	log.Debug().
		Int("moves", res.Moves).
		Int("score", res.Score).
		Int("shuffles", res.Shuffles).
		Msg("session complete")
	return res, nil
}

// findProductiveSwap picks a uniformly random adjacent swap that creates a
// match, by exhaustive search on a scratch copy of the grid.
func (r *Runner) findProductiveSwap() (board.Coord, board.Coord, bool) {
	work := r.board.Snapshot()
	type pair struct{ a, b board.Coord }
	var candidates []pair
	for row := 0; row < work.Height(); row++ {
		for col := 0; col < work.Width(); col++ {
			at := board.Coord{Row: row, Col: col}
			for _, n := range []board.Coord{{Row: row, Col: col + 1}, {Row: row + 1, Col: col}} {
				if !work.InBounds(n) {
					continue
				}
				work.Swap(at, n)
				if match.HasMatch(work) {
					candidates = append(candidates, pair{a: at, b: n})
				}
				work.Swap(at, n)
			}
		}
	}
	if len(candidates) == 0 {
		return board.Coord{}, board.Coord{}, false
	}
	pick := candidates[r.src.Intn(len(candidates))]
	return pick.a, pick.b, true
}
