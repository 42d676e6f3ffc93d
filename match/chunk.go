package match

import (
	"github.com/rbcasperson/match-three/board"
	"github.com/rbcasperson/match-three/orbs"
)

// A Chunk is one sliding w x h window over the grid. Horizontal chunks view
// the grid directly; vertical chunks come from a transposed copy, and Abs
// transposes coordinates back so callers always see original-grid positions.
// Chunks are ephemeral: they are recomputed from the live grid on every scan.
type Chunk struct {
	rows     [][]orbs.Orb
	origin   board.Coord // top-left offset in the scanned orientation
	vertical bool
}

// Width is the window width in the scanned orientation.
func (ch *Chunk) Width() int {
	return len(ch.rows[0])
}

// Height is the window height in the scanned orientation.
func (ch *Chunk) Height() int {
	return len(ch.rows)
}

// Row returns window row i in the scanned orientation. Treat it as read-only.
func (ch *Chunk) Row(i int) []orbs.Orb {
	return ch.rows[i]
}

// Vertical reports whether the chunk was produced over the transposed grid.
func (ch *Chunk) Vertical() bool {
	return ch.vertical
}

// Abs converts window-relative cell (i, j) to an absolute coordinate on the
// original grid.
func (ch *Chunk) Abs(i, j int) board.Coord {
	r, c := ch.origin.Row+i, ch.origin.Col+j
	if ch.vertical {
		return board.Coord{Row: c, Col: r}
	}
	return board.Coord{Row: r, Col: c}
}

// First is the absolute coordinate of the window's top-left cell.
func (ch *Chunk) First() board.Coord {
	return ch.Abs(0, 0)
}

// Last is the absolute coordinate of the window's bottom-right cell.
func (ch *Chunk) Last() board.Coord {
	return ch.Abs(ch.Height()-1, ch.Width()-1)
}

// Chunks enumerates every w x h window at every valid top-left offset, first
// over the grid, then over its transpose. A board too small for the window in
// one orientation simply yields no chunks for that orientation.
func Chunks(g *board.Grid, w, h int) []Chunk {
	out := appendChunks(nil, g, w, h, false)
	return appendChunks(out, g.Transposed(), w, h, true)
}

func appendChunks(out []Chunk, g *board.Grid, w, h int, vertical bool) []Chunk {
	for or := 0; or+h <= g.Height(); or++ {
		for oc := 0; oc+w <= g.Width(); oc++ {
			rows := make([][]orbs.Orb, h)
			for i := 0; i < h; i++ {
				rows[i] = g.Row(or + i)[oc : oc+w]
			}
			out = append(out, Chunk{
				rows:     rows,
				origin:   board.Coord{Row: or, Col: oc},
				vertical: vertical,
			})
		}
	}
	return out
}
