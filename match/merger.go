package match

import "github.com/rbcasperson/match-three/board"

// Merge unions raw 3-cell groups that share coordinates into maximal
// connected groups. The accumulator keeps absorbing from the remaining pool
// until a full pass adds nothing, so transitively-connected runs (long lines,
// L and T and plus shapes) collapse into one group. Quadratic in the number
// of raw groups, which is bounded by the board area.
//
// Output order follows the order seeds were first encountered; coordinate
// order within a group is not significant. Returned groups never share a
// coordinate.
func Merge(raw []*Group) []*Group {
	pool := make([]*Group, len(raw))
	for i, g := range raw {
		coords := make([]board.Coord, len(g.Coords))
		copy(coords, g.Coords)
		pool[i] = &Group{Orb: g.Orb, Coords: coords}
	}
	var merged []*Group
	for len(pool) > 0 {
		acc := pool[0]
		pool = pool[1:]
		for {
			absorbed := false
			rest := pool[:0]
			for _, g := range pool {
				if acc.Intersects(g) {
					acc.absorb(g)
					absorbed = true
				} else {
					rest = append(rest, g)
				}
			}
			pool = rest
			if !absorbed {
				break
			}
		}
		merged = append(merged, acc)
	}
	return merged
}
