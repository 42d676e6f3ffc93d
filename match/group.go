// Package match implements the scanning layers of the engine: sliding-window
// chunk production over the grid and its transpose, the wide-scan existence
// heuristic, exact structural enumeration of matched runs, and merging of
// overlapping runs into maximal connected groups.
package match

import (
	"sort"

	"github.com/samber/lo"

	"github.com/rbcasperson/match-three/board"
	"github.com/rbcasperson/match-three/orbs"
)

// A Group is a set of coordinates that all held the same orb when detected.
// Raw groups from enumeration are exactly three collinear cells; merged
// groups may be longer runs or L/T/plus shapes.
type Group struct {
	Orb    orbs.Orb
	Coords []board.Coord
}

// Size is the number of cells in the group.
func (g *Group) Size() int {
	return len(g.Coords)
}

// Contains reports whether c belongs to the group.
func (g *Group) Contains(c board.Coord) bool {
	return lo.Contains(g.Coords, c)
}

// Intersects reports whether the two groups share at least one coordinate.
func (g *Group) Intersects(o *Group) bool {
	return lo.SomeBy(o.Coords, g.Contains)
}

// Ordered returns the coordinates sorted row-major. The receiver is not
// modified.
func (g *Group) Ordered() []board.Coord {
	out := make([]board.Coord, len(g.Coords))
	copy(out, g.Coords)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

// absorb unions o's coordinates into g, skipping duplicates.
func (g *Group) absorb(o *Group) {
	for _, c := range o.Coords {
		if !g.Contains(c) {
			g.Coords = append(g.Coords, c)
		}
	}
}
