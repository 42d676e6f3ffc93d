package game

import (
	"errors"
	"fmt"

	retry "github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"

	"github.com/rbcasperson/match-three/board"
	"github.com/rbcasperson/match-three/match"
)

const (
	// maxRepairPasses bounds the outer unmatch loop. Each pass performs one
	// orb-breaking swap, so on sane boards the match count falls quickly;
	// the cap guards against oscillation on degenerate state.
	maxRepairPasses = 256

	// maxFallbackSamples bounds the random-replacement search. It fails only
	// when almost every cell holds the group's orb.
	maxFallbackSamples = 4096
)

// repairState drives one group repair. The legacy algorithm broke out of
// nested loops by clobbering loop variables; this is the same control flow
// made explicit.
type repairState int

const (
	scanningDirections repairState = iota
	fallbackRandom
	repairDone
)

var errSampleRejected = errors.New("sampled cell cannot replace the target orb")

// Unmatch removes every current match with minimal local swaps, preserving
// the board's random appearance. It loops one-group-at-a-time because a
// repair swap can itself create or destroy other matches; the merged group
// list is re-derived each pass.
func (b *Board) Unmatch() error {
	for pass := 0; ; pass++ {
		groups := match.Merge(match.FindGroups(b.grid))
		if len(groups) == 0 {
			return nil
		}
		if pass >= maxRepairPasses {
			return fmt.Errorf("unmatch: %d passes left %d matches standing: %w",
				pass, len(groups), ErrInvariantViolation)
		}
		if err := b.repairGroup(groups[0]); err != nil {
			return err
		}
	}
}

// repairGroup breaks one merged group by swapping a well-chosen member cell
// with a different orb: first by trying the four axis neighbors in random
// order, then by sampling random replacement cells from the rest of the grid.
func (b *Board) repairGroup(g *match.Group) error {
	target, state := b.chooseTarget(g)
	for state != repairDone {
		switch state {
		case scanningDirections:
			if b.swapWithDifferentNeighbor(target, g) {
				state = repairDone
			} else {
				state = fallbackRandom
			}
		case fallbackRandom:
			if err := b.swapWithRandomCell(target, g); err != nil {
				return err
			}
			state = repairDone
		}
	}
	return nil
}

// chooseTarget picks which cell of the group to swap out, and whether the
// direction scan is worth attempting.
//
// A simple group (one row or one column) targets its median cell. If either
// cell beside the median on the perpendicular axis already holds the group's
// orb, the group sits against a parallel run of the same orb; swapping along
// a direction just re-forms the match, so the repair escapes straight to the
// random fallback.
//
// An irregular group targets a random intersection cell: one sitting on both
// a row and a column where the group has more than two members, so a single
// swap cuts both arms at once.
func (b *Board) chooseTarget(g *match.Group) (board.Coord, repairState) {
	ordered := g.Ordered()
	sameRow, sameCol := true, true
	for _, c := range ordered[1:] {
		if c.Row != ordered[0].Row {
			sameRow = false
		}
		if c.Col != ordered[0].Col {
			sameCol = false
		}
	}

	if sameRow || sameCol {
		median := ordered[len(ordered)/2]
		var beside []board.Coord
		if sameRow {
			beside = []board.Coord{
				{Row: median.Row - 1, Col: median.Col},
				{Row: median.Row + 1, Col: median.Col},
			}
		} else {
			beside = []board.Coord{
				{Row: median.Row, Col: median.Col - 1},
				{Row: median.Row, Col: median.Col + 1},
			}
		}
		for _, n := range beside {
			if b.grid.InBounds(n) && b.grid.Get(n) == g.Orb {
				log.Debug().Stringer("target", median).Msg("side-by-side run, escaping to random fallback")
				return median, fallbackRandom
			}
		}
		return median, scanningDirections
	}

	rowCounts := make(map[int]int)
	colCounts := make(map[int]int)
	for _, c := range g.Coords {
		rowCounts[c.Row]++
		colCounts[c.Col]++
	}
	var intersections []board.Coord
	for _, c := range g.Coords {
		if rowCounts[c.Row] > 2 && colCounts[c.Col] > 2 {
			intersections = append(intersections, c)
		}
	}
	if len(intersections) == 0 {
		// No true crossing cell; any member will do.
		intersections = g.Coords
	}
	return intersections[b.src.Intn(len(intersections))], scanningDirections
}

// swapWithDifferentNeighbor tries the four axis directions in random order
// and swaps the target with the first neighbor that exists and holds a
// different orb. Reports whether a swap happened.
func (b *Board) swapWithDifferentNeighbor(target board.Coord, g *match.Group) bool {
	dirs := []board.Coord{
		{Row: -1, Col: 0},
		{Row: 1, Col: 0},
		{Row: 0, Col: -1},
		{Row: 0, Col: 1},
	}
	b.src.Shuffle(len(dirs), func(i, j int) {
		dirs[i], dirs[j] = dirs[j], dirs[i]
	})
	for _, d := range dirs {
		n := board.Coord{Row: target.Row + d.Row, Col: target.Col + d.Col}
		if !b.grid.InBounds(n) || b.grid.Get(n) == g.Orb {
			continue
		}
		b.grid.Swap(target, n)
		return true
	}
	return false
}

// swapWithRandomCell repeatedly samples a uniformly random cell outside the
// group holding a different orb, and swaps the target with it. With at least
// two orb types on the board a hit arrives in constant expected time; the
// attempt cap converts a misconfigured board into ErrInvariantViolation
// instead of an endless spin.
func (b *Board) swapWithRandomCell(target board.Coord, g *match.Group) error {
	err := retry.Do(
		func() error {
			c := board.Coord{
				Row: b.src.Intn(b.grid.Height()),
				Col: b.src.Intn(b.grid.Width()),
			}
			if g.Contains(c) || b.grid.Get(c) == g.Orb {
				return errSampleRejected
			}
			return b.grid.Swap(target, c)
		},
		retry.Attempts(maxFallbackSamples),
		retry.Delay(0),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return fmt.Errorf("unmatch fallback: no replacement cell in %d samples: %w",
			maxFallbackSamples, ErrInvariantViolation)
	}
	return nil
}
