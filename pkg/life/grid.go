package life

import (
	"fmt"
	"sort"
	"strings"

	"sparselife/pkg/core"
	"sparselife/pkg/geom"
)

// Grid holds the simulation state: the set of alive cells keyed by
// coordinate, each mapped to the generation it was born in. Any point
// absent from the map is dead, which keeps the unbounded plane at
// O(alive cells) memory.
type Grid struct {
	cells      map[geom.Point]uint64
	generation uint64
}

// Empty returns a grid with no alive cells at generation 0.
func Empty() *Grid {
	return &Grid{cells: make(map[geom.Point]uint64)}
}

// FromPoints returns a grid at generation 0 with every distinct input
// point alive. Duplicates collapse to one cell.
func FromPoints(points []geom.Point) *Grid {
	g := Empty()
	for _, p := range points {
		g.cells[p] = 0
	}
	return g
}

// Random returns a grid populated with uniform random points inside the
// rectangle [topLeft, bottomRight), exclusive on each axis. It samples
// 8/10 of the rectangle's area; duplicate draws collapse, so the
// realized population is at most that and the ~80% density is
// approximate. The same seed always yields the same grid.
func Random(seed int64, topLeft, bottomRight geom.Point) *Grid {
	rng := core.NewRNG(seed)
	desired := (bottomRight.X - topLeft.X) * (bottomRight.Y - topLeft.Y) * 8 / 10
	g := Empty()
	for i := int64(0); i < desired; i++ {
		g.AddPoint(geom.Point{
			X: rng.Int64Between(topLeft.X, bottomRight.X),
			Y: rng.Int64Between(topLeft.Y, bottomRight.Y),
		})
	}
	return g
}

// Generation returns the current simulation step, starting at 0.
func (g *Grid) Generation() uint64 { return g.generation }

// Population returns the number of alive cells.
func (g *Grid) Population() int { return len(g.cells) }

// AgeOf returns the age of an alive cell (current generation minus its
// birth generation) and true, or 0 and false for a dead cell.
func (g *Grid) AgeOf(p geom.Point) (uint64, bool) {
	birth, ok := g.cells[p]
	if !ok {
		return 0, false
	}
	return g.generation - birth, true
}

// AddPoint makes p alive, stamped with the current generation. Adding
// an already-alive point is a no-op: its original birth stamp, and
// therefore its age, is preserved. Returns the grid for chaining.
func (g *Grid) AddPoint(p geom.Point) *Grid {
	if _, ok := g.cells[p]; !ok {
		g.cells[p] = g.generation
	}
	return g
}

// RemovePoint kills p if alive; removing a dead point is a no-op.
// Returns the grid for chaining.
func (g *Grid) RemovePoint(p geom.Point) *Grid {
	delete(g.cells, p)
	return g
}

// ForEach visits every alive cell with its birth generation. Iteration
// order is unspecified. The grid must not be mutated during the visit.
func (g *Grid) ForEach(fn func(p geom.Point, birth uint64)) {
	for p, birth := range g.cells {
		fn(p, birth)
	}
}

// Bounds returns the bounding box of the alive cells, inclusive on both
// corners. ok is false for an empty grid.
func (g *Grid) Bounds() (min, max geom.Point, ok bool) {
	for p := range g.cells {
		if !ok {
			min, max, ok = p, p, true
			continue
		}
		if p.X < min.X {
			min.X = p.X
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return min, max, ok
}

// Tick advances the simulation by one generation and returns the grid
// for chaining. Both the survival and birth passes evaluate neighbor
// counts against the pre-tick cell set; the next generation is built in
// a fresh map and swapped in only after both passes complete.
func (g *Grid) Tick() *Grid {
	g.generation++
	next := make(map[geom.Point]uint64, len(g.cells))

	for cell, birth := range g.cells {
		count := g.countNeighbors(cell)
		if count > 1 && count < 4 {
			next[cell] = birth
		}
	}

	for cell := range g.deadCandidates() {
		if g.countNeighbors(cell) == 3 {
			next[cell] = g.generation
		}
	}

	g.cells = next
	return g
}

// countNeighbors reports how many of p's Moore neighbors are alive in
// the current cell set.
func (g *Grid) countNeighbors(p geom.Point) int {
	count := 0
	for _, n := range geom.Neighbors(p) {
		if _, ok := g.cells[n]; ok {
			count++
		}
	}
	return count
}

// deadCandidates collects every dead point adjacent to at least one
// alive cell. These are the only cells that can be born in a tick. The
// set form deduplicates candidates shared by several alive cells so the
// birth pass counts each point once.
func (g *Grid) deadCandidates() map[geom.Point]struct{} {
	candidates := make(map[geom.Point]struct{})
	for cell := range g.cells {
		for _, n := range geom.Neighbors(cell) {
			if _, alive := g.cells[n]; !alive {
				candidates[n] = struct{}{}
			}
		}
	}
	return candidates
}

// String renders a debug dump of the grid: generation, population and
// the sorted alive-cell list with birth stamps. Intended for logs, not
// for parsing.
func (g *Grid) String() string {
	points := make([]geom.Point, 0, len(g.cells))
	for p := range g.cells {
		points = append(points, p)
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Less(points[j]) })

	var b strings.Builder
	fmt.Fprintf(&b, "Grid{generation: %d, population: %d", g.generation, len(g.cells))
	for _, p := range points {
		fmt.Fprintf(&b, ", (%d,%d)@%d", p.X, p.Y, g.cells[p])
	}
	b.WriteString("}")
	return b.String()
}
