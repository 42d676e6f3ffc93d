package game

import (
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/rbcasperson/match-three/board"
	"github.com/rbcasperson/match-three/match"
	"github.com/rbcasperson/match-three/orbs"
	"github.com/rbcasperson/match-three/rng"
)

const (
	A orbs.Orb = 1
	B orbs.Orb = 2
	C orbs.Orb = 3
	D orbs.Orb = 4
)

// boardWith wraps a fixed grid in a Board, bypassing construction repair.
func boardWith(rows [][]orbs.Orb, types orbs.Set, seed uint64) *Board {
	return &Board{
		grid:  board.MakeGrid(rows),
		types: types,
		src:   rng.NewSeededSource(seed),
	}
}

// A 3x3 latin square: no match and no potential move.
func deadlockedRows() [][]orbs.Orb {
	return [][]orbs.Orb{
		{A, B, C},
		{B, C, A},
		{C, A, B},
	}
}

func orbCounts(g *board.Grid) map[orbs.Orb]int {
	counts := make(map[orbs.Orb]int)
	for r := 0; r < g.Height(); r++ {
		for c := 0; c < g.Width(); c++ {
			counts[g.Get(board.Coord{Row: r, Col: c})]++
		}
	}
	return counts
}

func TestNewBoardInvariant(t *testing.T) {
	is := is.New(t)
	for seed := uint64(1); seed <= 25; seed++ {
		b, err := New(8, 8, orbs.StandardSet(6), rng.NewSeededSource(seed))
		is.NoErr(err)
		is.True(!b.HasMatch())
		is.True(b.HasPotentialMatch())
	}
}

func TestNewBoardInvariantSmallBoards(t *testing.T) {
	is := is.New(t)
	for seed := uint64(1); seed <= 10; seed++ {
		b, err := New(4, 4, orbs.StandardSet(2), rng.NewSeededSource(seed))
		is.NoErr(err)
		is.True(!b.HasMatch())
		is.True(b.HasPotentialMatch())

		b, err = New(3, 3, orbs.StandardSet(3), rng.NewSeededSource(seed))
		is.NoErr(err)
		is.True(!b.HasMatch())
		is.True(b.HasPotentialMatch())
	}
}

func TestNewBoardConfigurationErrors(t *testing.T) {
	is := is.New(t)
	_, err := New(2, 8, orbs.StandardSet(4), nil)
	is.True(errors.Is(err, ErrConfiguration))

	_, err = New(8, 2, orbs.StandardSet(4), nil)
	is.True(errors.Is(err, ErrConfiguration))

	_, err = New(8, 8, orbs.StandardSet(1), nil)
	is.True(errors.Is(err, ErrConfiguration))

	// duplicates don't count as distinct types
	_, err = New(8, 8, orbs.Set{A, A, A}, nil)
	is.True(errors.Is(err, ErrConfiguration))

	// the cleared sentinel is not a playable type
	_, err = New(8, 8, orbs.Set{orbs.Empty, A, B}, nil)
	is.True(errors.Is(err, ErrConfiguration))
}

func TestSwapOutOfBounds(t *testing.T) {
	is := is.New(t)
	b := boardWith(deadlockedRows(), orbs.StandardSet(3), 1)
	before := b.grid.Fingerprint()

	_, err := b.Swap(board.Coord{Row: 0, Col: 0}, board.Coord{Row: 9, Col: 9}, true)
	is.True(errors.Is(err, board.ErrOutOfBounds))
	is.Equal(b.grid.Fingerprint(), before)
}

func TestPlayerSwapWithoutMatchReverts(t *testing.T) {
	is := is.New(t)
	b := boardWith(deadlockedRows(), orbs.StandardSet(3), 1)
	before := b.Snapshot()

	kept, err := b.Swap(board.Coord{Row: 0, Col: 0}, board.Coord{Row: 0, Col: 1}, true)
	is.NoErr(err)
	is.True(!kept)
	is.True(b.grid.Equal(before))
	is.Equal(b.grid.Fingerprint(), before.Fingerprint())
}

func TestPlayerSwapWithMatchStands(t *testing.T) {
	is := is.New(t)
	b := boardWith([][]orbs.Orb{
		{A, A, B, A},
		{B, B, A, B},
		{A, A, B, A},
		{B, B, A, B},
	}, orbs.StandardSet(2), 1)
	is.True(!b.HasMatch())

	kept, err := b.Swap(board.Coord{Row: 0, Col: 2}, board.Coord{Row: 0, Col: 3}, true)
	is.NoErr(err)
	is.True(kept)
	is.True(b.HasMatch())
	is.Equal(b.grid.Get(board.Coord{Row: 0, Col: 2}), A)
}

func TestInternalSwapNeverReverts(t *testing.T) {
	is := is.New(t)
	b := boardWith(deadlockedRows(), orbs.StandardSet(3), 1)

	kept, err := b.Swap(board.Coord{Row: 0, Col: 0}, board.Coord{Row: 0, Col: 1}, false)
	is.NoErr(err)
	is.True(kept)
	is.Equal(b.grid.Get(board.Coord{Row: 0, Col: 0}), B)
	is.Equal(b.grid.Get(board.Coord{Row: 0, Col: 1}), A)
}

func TestEvaluateNoMatchIsANoOp(t *testing.T) {
	is := is.New(t)
	b := boardWith(deadlockedRows(), orbs.StandardSet(3), 1)
	before := b.grid.Fingerprint()

	is.Equal(len(b.Evaluate(nil, nil)), 0)
	is.Equal(b.grid.Fingerprint(), before)

	// an explicitly empty group list is just as benign
	is.Equal(len(b.Evaluate([]*match.Group{}, nil)), 0)
	is.Equal(b.grid.Fingerprint(), before)
}

func TestEvaluateTopRowScenario(t *testing.T) {
	is := is.New(t)
	// 4x4, two types, row 0 = A A A B
	rows := [][]orbs.Orb{
		{A, A, A, B},
		{B, A, B, B},
		{A, B, A, A},
		{B, A, B, B},
	}
	b := boardWith(rows, orbs.StandardSet(2), 7)
	is.True(b.HasMatch())

	groups := match.Merge(match.FindGroups(b.grid))
	is.Equal(len(groups), 1)
	is.Equal(groups[0].Ordered(), []board.Coord{
		{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2},
	})

	events := b.Evaluate(nil, nil)
	is.Equal(events, []MatchEvent{{Orb: A, Size: 3}})

	// the cleared cells were in the top row: everything below is untouched
	// and the top is refilled from the board's types
	for r := 1; r < 4; r++ {
		for c := 0; c < 4; c++ {
			is.Equal(b.grid.Get(board.Coord{Row: r, Col: c}), rows[r][c])
		}
	}
	is.Equal(b.grid.Get(board.Coord{Row: 0, Col: 3}), B)
	for c := 0; c < 3; c++ {
		o := b.grid.Get(board.Coord{Row: 0, Col: c})
		is.True(o == A || o == B)
	}
}

func TestEvaluateGravityDropsColumn(t *testing.T) {
	is := is.New(t)
	// one vertical match in column 2 spanning rows 1-3
	b := boardWith([][]orbs.Orb{
		{A, B, C, B},
		{B, C, A, C},
		{C, B, A, B},
		{B, C, A, C},
	}, orbs.StandardSet(3), 7)

	events := b.Evaluate(nil, orbs.Set{D})
	is.Equal(events, []MatchEvent{{Orb: A, Size: 3}})

	// the C above the match drops to the bottom; the refill orb fills in
	// from the top
	col2 := []orbs.Orb{
		b.grid.Get(board.Coord{Row: 0, Col: 2}),
		b.grid.Get(board.Coord{Row: 1, Col: 2}),
		b.grid.Get(board.Coord{Row: 2, Col: 2}),
		b.grid.Get(board.Coord{Row: 3, Col: 2}),
	}
	is.Equal(col2, []orbs.Orb{D, D, D, C})
}

func TestEvaluateLeavesNoSentinels(t *testing.T) {
	is := is.New(t)
	b := boardWith([][]orbs.Orb{
		{A, A, A, A, B},
		{B, A, C, B, C},
		{C, A, B, C, B},
		{B, C, B, B, B},
		{C, B, C, A, C},
	}, orbs.StandardSet(3), 3)

	events := b.Evaluate(nil, nil)
	is.True(len(events) >= 2)
	counts := orbCounts(b.grid)
	is.Equal(counts[orbs.Empty], 0)
}

func TestUnmatchClearsVerticalRun(t *testing.T) {
	is := is.New(t)
	b := boardWith([][]orbs.Orb{
		{A, B, C, B},
		{B, C, A, C},
		{C, B, A, B},
		{B, C, A, C},
	}, orbs.StandardSet(3), 11)
	is.True(b.HasMatch())

	is.NoErr(b.Unmatch())
	is.True(!b.HasMatch())
}

func TestUnmatchPreservesOrbMultiset(t *testing.T) {
	is := is.New(t)
	b := boardWith([][]orbs.Orb{
		{A, A, A, B},
		{B, A, B, B},
		{A, B, A, A},
		{B, A, B, B},
	}, orbs.StandardSet(2), 13)
	before := orbCounts(b.grid)

	is.NoErr(b.Unmatch())
	is.True(!b.HasMatch())
	// repair only swaps, so the orb population is unchanged
	is.Equal(orbCounts(b.grid), before)
}

func TestUnmatchSideBySideRuns(t *testing.T) {
	is := is.New(t)
	// two stacked horizontal A-runs: the configuration that loops naive
	// neighbor swapping and must take the random fallback
	b := boardWith([][]orbs.Orb{
		{A, A, A, B},
		{A, A, A, C},
		{B, C, B, B},
		{C, B, C, C},
	}, orbs.StandardSet(3), 17)

	is.NoErr(b.Unmatch())
	is.True(!b.HasMatch())
}

func TestUnmatchIrregularMatch(t *testing.T) {
	is := is.New(t)
	// a plus shape centered on (1,1)
	b := boardWith([][]orbs.Orb{
		{B, A, C, B},
		{A, A, A, C},
		{C, A, B, B},
		{B, C, C, A},
	}, orbs.StandardSet(3), 19)

	groups := match.Merge(match.FindGroups(b.grid))
	is.Equal(len(groups), 1)
	is.Equal(groups[0].Size(), 5)

	is.NoErr(b.Unmatch())
	is.True(!b.HasMatch())
}

func TestShuffleRestoresInvariant(t *testing.T) {
	is := is.New(t)
	b := boardWith(deadlockedRows(), orbs.StandardSet(3), 23)
	is.True(b.NeedsShuffle())
	before := orbCounts(b.grid)

	is.NoErr(b.Shuffle())
	is.True(!b.HasMatch())
	is.True(b.HasPotentialMatch())
	// shuffling permutes and swaps but never creates or destroys orbs
	is.Equal(orbCounts(b.grid), before)
}

func TestAccessors(t *testing.T) {
	is := is.New(t)
	b, err := New(5, 4, orbs.StandardSet(4), rng.NewSeededSource(2))
	is.NoErr(err)
	is.Equal(b.Width(), 5)
	is.Equal(b.Height(), 4)
	is.Equal(b.Types(), orbs.StandardSet(4))

	snap := b.Snapshot()
	is.True(snap.Equal(b.Grid()))
	snap.Set(board.Coord{Row: 0, Col: 0}, orbs.Empty)
	// snapshots are independent of the live grid
	is.True(b.Grid().Get(board.Coord{Row: 0, Col: 0}) != orbs.Empty)
}
