package core

import "sparselife/pkg/geom"

// Sim defines the contract a sparse-plane simulation must implement.
// There is no fixed board size: the world is queried per coordinate and
// observers decide their own view window.
type Sim interface {
	Name() string
	Generation() uint64
	Population() int
	Reset(seed int64)
	Step()
	// AgeAt reports the age of the cell at p, or false when dead.
	AgeAt(p geom.Point) (uint64, bool)
	// Bounds returns the bounding box of the alive cells; ok is false
	// when the world is empty.
	Bounds() (min, max geom.Point, ok bool)
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
