package match

import (
	"github.com/rbcasperson/match-three/board"
	"github.com/rbcasperson/match-three/orbs"
)

const (
	// Structural enumeration windows: one run of three per window.
	runWindowW = 3
	runWindowH = 1

	// Wide-scan windows: four columns across two adjacent lines.
	wideWindowW = 4
	wideWindowH = 2
)

// Column-index patterns that signal a contiguous or completable run inside a
// wide window: an orb whose combined occurrences across the two window rows
// land exactly on one of these masks is either matched already or one swap
// away from it.
var runShapes = [...]uint8{0b0111, 0b1110, 0b1111}

// FindGroups enumerates the exact matched runs on the grid: one 3-coordinate
// group per 3x1 window (horizontal and vertical) whose cells hold the same
// orb. Runs longer than three and irregular shapes appear as multiple
// overlapping groups; Merge combines them.
func FindGroups(g *board.Grid) []*Group {
	var groups []*Group
	for _, ch := range Chunks(g, runWindowW, runWindowH) {
		row := ch.Row(0)
		if row[0] == orbs.Empty || row[0] != row[1] || row[1] != row[2] {
			continue
		}
		groups = append(groups, &Group{
			Orb:    row[0],
			Coords: []board.Coord{ch.Abs(0, 0), ch.Abs(0, 1), ch.Abs(0, 2)},
		})
	}
	return groups
}

// HasMatch reports whether at least one run of three exists right now.
func HasMatch(g *board.Grid) bool {
	return len(FindGroups(g)) > 0
}

// WideScan is the cheap existence heuristic over 4x2 windows: true when any
// single window row holds one orb more than twice, or when an orb's combined
// column pattern across the two rows equals a canonical run shape. Every
// board with a latent or actual match on a >=4x4 grid trips it; it is not an
// exact decision procedure for smaller grids, where both window orientations
// cannot cover the short axis.
func WideScan(g *board.Grid) bool {
	for _, ch := range Chunks(g, wideWindowW, wideWindowH) {
		if wideWindowHit(&ch) {
			return true
		}
	}
	return false
}

func wideWindowHit(ch *Chunk) bool {
	var combined [256]uint8
	for i := 0; i < wideWindowH; i++ {
		var counts [256]uint8
		for j, o := range ch.Row(i) {
			if o == orbs.Empty {
				continue
			}
			counts[o]++
			if counts[o] > 2 {
				return true
			}
			combined[o] |= 1 << uint(j)
		}
	}
	for i := 0; i < wideWindowH; i++ {
		for _, o := range ch.Row(i) {
			if o == orbs.Empty {
				continue
			}
			for _, shape := range runShapes {
				if combined[o] == shape {
					return true
				}
			}
		}
	}
	return false
}

// LatentSwapExists is the exhaustive decision procedure for "at least one
// swap would create a match": it tries every adjacent swap on a scratch copy.
// Quadratic in board area times scan cost, so reserved for boards the wide
// scan cannot fully cover and for verifying the heuristic.
func LatentSwapExists(g *board.Grid) bool {
	work := g.Clone()
	for r := 0; r < work.Height(); r++ {
		for c := 0; c < work.Width(); c++ {
			at := board.Coord{Row: r, Col: c}
			for _, n := range []board.Coord{{Row: r, Col: c + 1}, {Row: r + 1, Col: c}} {
				if !work.InBounds(n) {
					continue
				}
				work.Swap(at, n)
				hit := HasMatch(work)
				work.Swap(at, n)
				if hit {
					return true
				}
			}
		}
	}
	return false
}

// HasPotential reports whether some swap could create a match. Grids at least
// 4 cells long in both axes use the wide scan; narrower grids fall back to
// exhaustive swap simulation, since one window orientation cannot run there.
func HasPotential(g *board.Grid) bool {
	if g.Width() >= wideWindowW && g.Height() >= wideWindowW {
		return WideScan(g)
	}
	return LatentSwapExists(g)
}
