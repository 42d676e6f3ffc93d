// Package game owns the mutable board state and orchestrates the matching
// layers: construction with invariant repair, player and internal swaps,
// cascade resolution, and the shuffle/unmatch algorithms that keep the board
// playable. A Board is single-session, single-goroutine state; callers
// wanting concurrent sessions create one Board each.
package game

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/rbcasperson/match-three/board"
	"github.com/rbcasperson/match-three/match"
	"github.com/rbcasperson/match-three/orbs"
	"github.com/rbcasperson/match-three/rng"
)

// minAxis is the smallest playable dimension: the structural scan window is
// three cells long.
const minAxis = 3

// A MatchEvent records one resolved group, for scoring by the caller.
type MatchEvent struct {
	Orb  orbs.Orb
	Size int
}

// Board is the engine facade. It owns the grid exclusively; every other
// component reads it by reference and returns derived values.
type Board struct {
	grid  *board.Grid
	types orbs.Set
	src   rng.Source
}

// New constructs a board of the given dimensions over the given orb types,
// randomly filled and repaired until it holds no match but at least one
// potential move. A nil src gets an OS-seeded source.
func New(width, height int, types orbs.Set, src rng.Source) (*Board, error) {
	if width < minAxis || height < minAxis {
		return nil, fmt.Errorf("%dx%d is below the %d-cell scan window: %w",
			width, height, minAxis, ErrConfiguration)
	}
	if types.Distinct() < 2 {
		return nil, fmt.Errorf("%d distinct orb types, need at least 2: %w",
			types.Distinct(), ErrConfiguration)
	}
	if types.Contains(orbs.Empty) {
		return nil, fmt.Errorf("type set contains the cleared-cell sentinel: %w",
			ErrConfiguration)
	}
	if src == nil {
		src = rng.NewSource()
	}
	b := &Board{
		grid:  board.NewGrid(width, height),
		types: types.Clone(),
		src:   src,
	}
	b.grid.FillRandom(b.types, b.src)
	if err := b.Unmatch(); err != nil {
		return nil, err
	}
	if b.NeedsShuffle() {
		if err := b.Shuffle(); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Width is the number of columns.
func (b *Board) Width() int {
	return b.grid.Width()
}

// Height is the number of rows.
func (b *Board) Height() int {
	return b.grid.Height()
}

// Types returns a copy of the board's orb type set.
func (b *Board) Types() orbs.Set {
	return b.types.Clone()
}

// Grid exposes the live grid for reading. Callers must not mutate it; use
// Snapshot for an independent copy.
func (b *Board) Grid() *board.Grid {
	return b.grid
}

// Snapshot returns a deep copy of the current grid.
func (b *Board) Snapshot() *board.Grid {
	return b.grid.Clone()
}

// HasMatch reports whether a run of three or more exists right now. Exact,
// via structural enumeration.
func (b *Board) HasMatch() bool {
	return match.HasMatch(b.grid)
}

// HasPotentialMatch reports whether at least one swap would create a match.
func (b *Board) HasPotentialMatch() bool {
	return match.HasPotential(b.grid)
}

// NeedsShuffle is true when no swap can create a match.
func (b *Board) NeedsShuffle() bool {
	return !b.HasPotentialMatch()
}

// Swap exchanges the orbs at a and c. A player swap that creates no match is
// reverted, leaving the grid byte-identical to its pre-swap state; internal
// swaps always stand. The returned bool reports whether the swap was kept.
// Out-of-range coordinates fail before any mutation.
func (b *Board) Swap(a, c board.Coord, playerMove bool) (bool, error) {
	if err := b.grid.Swap(a, c); err != nil {
		return false, err
	}
	if playerMove && !match.HasMatch(b.grid) {
		// Bounds were already proven; swapping back cannot fail.
		b.grid.Swap(a, c)
		return false, nil
	}
	return true, nil
}

// Evaluate resolves one cascade step: record an event per group, clear every
// matched cell, then drop columns and refill from the top. A nil groups slice
// means "find and merge the current matches"; an explicitly empty one is a
// benign no-op. A nil or empty refill set means the board's full type set.
//
// One call resolves one layer; callers wanting chain reactions loop Evaluate
// while HasMatch holds.
func (b *Board) Evaluate(groups []*match.Group, refill orbs.Set) []MatchEvent {
	if groups == nil {
		groups = match.Merge(match.FindGroups(b.grid))
	}
	if len(groups) == 0 {
		return nil
	}
	if len(refill) == 0 {
		refill = b.types
	}
	events := make([]MatchEvent, 0, len(groups))
	for _, g := range groups {
		events = append(events, MatchEvent{Orb: g.Orb, Size: g.Size()})
		for _, c := range g.Coords {
			b.grid.Set(c, orbs.Empty)
		}
	}
	// Single top-to-bottom sweep: each cleared cell pulls its column down one
	// slot and draws a fresh orb into the top row. Stacked cleared cells in a
	// column stay marked until the sweep reaches their row, so one pass
	// drains them all.
	for row := 0; row < b.grid.Height(); row++ {
		for col := 0; col < b.grid.Width(); col++ {
			if b.grid.Get(board.Coord{Row: row, Col: col}) != orbs.Empty {
				continue
			}
			for z := row; z > 0; z-- {
				b.grid.Set(board.Coord{Row: z, Col: col},
					b.grid.Get(board.Coord{Row: z - 1, Col: col}))
			}
			b.grid.Set(board.Coord{Row: 0, Col: col},
				refill[b.src.Intn(len(refill))])
		}
	}
	return events
}

// maxShuffleAttempts bounds how many full reshuffles Shuffle will try before
// declaring the board unfixable. With >=2 orb types on a >=3x3 board a
// playable permutation is found almost immediately; the cap only trips on
// misconfigured state.
const maxShuffleAttempts = 64

// Shuffle permutes each row's orbs independently, repairs any matches the
// permutation introduced, and repeats until the board has a potential move.
// Used at construction and whenever the caller finds the board deadlocked.
func (b *Board) Shuffle() error {
	for attempt := 1; attempt <= maxShuffleAttempts; attempt++ {
		for r := 0; r < b.grid.Height(); r++ {
			row := b.grid.Row(r)
			b.src.Shuffle(len(row), func(i, j int) {
				row[i], row[j] = row[j], row[i]
			})
		}
		if err := b.Unmatch(); err != nil {
			return err
		}
		if !b.NeedsShuffle() {
			return nil
		}
		log.Debug().Int("attempt", attempt).Msg("reshuffle left no potential move, retrying")
	}
	return fmt.Errorf("no playable permutation after %d shuffles: %w",
		maxShuffleAttempts, ErrInvariantViolation)
}
