package autoplay

import (
	"github.com/rs/zerolog/log"

	"github.com/rbcasperson/match-three/board"
	"github.com/rbcasperson/match-three/match"
	"github.com/rbcasperson/match-three/orbs"
	"github.com/rbcasperson/match-three/rng"
)

// A HeuristicReport compares the wide-scan potential-match heuristic against
// exhaustive single-swap simulation over randomly filled grids.
//
// A false negative (exhaustive says a move exists, the wide scan says none)
// would break the shuffle invariant, since shuffle trusts the wide scan on
// large boards. A false positive merely wastes a reshuffle check.
type HeuristicReport struct {
	Boards         int
	FalseNegatives int
	FalsePositives int
}

// VerifyPotentialHeuristic samples n random width x height grids over
// numTypes orb types and tallies disagreements between the two procedures.
func VerifyPotentialHeuristic(width, height, numTypes, n int, src rng.Source) HeuristicReport {
	types := orbs.StandardSet(numTypes)
	rep := HeuristicReport{Boards: n}
	g := board.NewGrid(width, height)
	for i := 0; i < n; i++ {
		g.FillRandom(types, src)
		wide := match.WideScan(g)
		exact := match.LatentSwapExists(g)
		if exact && !wide {
			rep.FalseNegatives++
			log.Debug().Msgf("wide-scan false negative:\n%s", g)
		}
		if wide && !exact {
			rep.FalsePositives++
		}
	}
	return rep
}
