package life

import (
	"strconv"

	"sparselife/internal/core"
	"sparselife/pkg/geom"
	lifegrid "sparselife/pkg/life"
)

// Config holds parameters for the Life simulation's seed region.
type Config struct {
	Width  int64
	Height int64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 128, Height: 128}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	return c
}

// Life adapts the sparse Life grid to the core.Sim contract. The seed
// region is centered on the origin; after Reset the board evolves
// unbounded in every direction.
type Life struct {
	cfg  Config
	grid *lifegrid.Grid
}

// New returns a Life simulation seeded lazily on Reset.
func New(cfg Config) *Life {
	return &Life{cfg: cfg, grid: lifegrid.Empty()}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Generation returns the current simulation step.
func (l *Life) Generation() uint64 { return l.grid.Generation() }

// Population returns the number of alive cells.
func (l *Life) Population() int { return l.grid.Population() }

// Reset repopulates the seed region using the provided seed.
func (l *Life) Reset(seed int64) {
	topLeft := geom.Point{X: -l.cfg.Width / 2, Y: -l.cfg.Height / 2}
	bottomRight := topLeft.Add(geom.Point{X: l.cfg.Width, Y: l.cfg.Height})
	l.grid = lifegrid.Random(seed, topLeft, bottomRight)
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	l.grid.Tick()
}

// AgeAt reports the age of the cell at p, or false when dead.
func (l *Life) AgeAt(p geom.Point) (uint64, bool) {
	return l.grid.AgeOf(p)
}

// Bounds returns the bounding box of the alive cells.
func (l *Life) Bounds() (min, max geom.Point, ok bool) {
	return l.grid.Bounds()
}

// Grid exposes the underlying sparse grid for direct manipulation
// (painting cells in the UI, driver seeding).
func (l *Life) Grid() *lifegrid.Grid { return l.grid }

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
