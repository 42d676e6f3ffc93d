// Package board implements the grid primitive for the match-three engine: a
// rectangular, row-major array of orbs with the swap, transpose, and snapshot
// operations the matching layers are built on. The Grid has no knowledge of
// matching rules; it is owned by a game.Board and handed to the match package
// by reference.
package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cespare/xxhash"

	"github.com/rbcasperson/match-three/orbs"
	"github.com/rbcasperson/match-three/rng"
)

// ErrOutOfBounds is returned when a coordinate falls outside the grid. The
// check always happens before any mutation.
var ErrOutOfBounds = errors.New("coordinate out of bounds")

// A Coord addresses one cell as (row, col), row 0 at the top.
type Coord struct {
	Row, Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// A Grid is the rectangular orb array. Dimensions are fixed for its lifetime.
type Grid struct {
	cells [][]orbs.Orb
}

// NewGrid creates an empty width x height grid.
func NewGrid(width, height int) *Grid {
	cells := make([][]orbs.Orb, height)
	for r := range cells {
		cells[r] = make([]orbs.Orb, width)
	}
	return &Grid{cells: cells}
}

// MakeGrid builds a grid from row literals, copying them. All rows must have
// the same length.
func MakeGrid(rows [][]orbs.Orb) *Grid {
	cells := make([][]orbs.Orb, len(rows))
	for r, row := range rows {
		cells[r] = make([]orbs.Orb, len(row))
		copy(cells[r], row)
	}
	return &Grid{cells: cells}
}

// Width is the number of columns.
func (g *Grid) Width() int {
	if len(g.cells) == 0 {
		return 0
	}
	return len(g.cells[0])
}

// Height is the number of rows.
func (g *Grid) Height() int {
	return len(g.cells)
}

// InBounds reports whether c addresses a cell on the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.Height() && c.Col >= 0 && c.Col < g.Width()
}

// Get returns the orb at c. The coordinate must be in bounds.
func (g *Grid) Get(c Coord) orbs.Orb {
	return g.cells[c.Row][c.Col]
}

// Set places an orb at c. The coordinate must be in bounds.
func (g *Grid) Set(c Coord, o orbs.Orb) {
	g.cells[c.Row][c.Col] = o
}

// Row returns the live backing slice for row r. Mutating it mutates the grid;
// the shuffle operation relies on this.
func (g *Grid) Row(r int) []orbs.Orb {
	return g.cells[r]
}

// Swap exchanges the orbs at a and b. Both coordinates are checked before
// either cell is touched.
func (g *Grid) Swap(a, b Coord) error {
	if !g.InBounds(a) {
		return fmt.Errorf("swap %v: %w", a, ErrOutOfBounds)
	}
	if !g.InBounds(b) {
		return fmt.Errorf("swap %v: %w", b, ErrOutOfBounds)
	}
	g.cells[a.Row][a.Col], g.cells[b.Row][b.Col] = g.cells[b.Row][b.Col], g.cells[a.Row][a.Col]
	return nil
}

// Transposed returns a new grid with rows and columns swapped. The receiver
// is not modified; scanning code runs one traversal convention over both
// orientations.
func (g *Grid) Transposed() *Grid {
	t := NewGrid(g.Height(), g.Width())
	for r := range g.cells {
		for c, o := range g.cells[r] {
			t.cells[c][r] = o
		}
	}
	return t
}

// Clone returns an independent deep copy.
func (g *Grid) Clone() *Grid {
	return MakeGrid(g.cells)
}

// Equal reports whether both grids hold identical cells.
func (g *Grid) Equal(o *Grid) bool {
	if g.Width() != o.Width() || g.Height() != o.Height() {
		return false
	}
	for r := range g.cells {
		for c := range g.cells[r] {
			if g.cells[r][c] != o.cells[r][c] {
				return false
			}
		}
	}
	return true
}

// Fingerprint hashes the cell contents. Two grids with equal cells share a
// fingerprint; tests and the autoplay runner use it to detect unchanged or
// repeated states cheaply.
func (g *Grid) Fingerprint() uint64 {
	h := xxhash.New()
	row := make([]byte, g.Width())
	for r := range g.cells {
		for c, o := range g.cells[r] {
			row[c] = byte(o)
		}
		h.Write(row)
	}
	return h.Sum64()
}

// FillRandom overwrites every cell with a uniformly sampled orb from types.
func (g *Grid) FillRandom(types orbs.Set, src rng.Source) {
	for r := range g.cells {
		for c := range g.cells[r] {
			g.cells[r][c] = types[src.Intn(len(types))]
		}
	}
}

// String renders the grid one row per line.
func (g *Grid) String() string {
	var sb strings.Builder
	for r := range g.cells {
		for c := range g.cells[r] {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteRune(g.cells[r][c].Rune())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
