package render

import (
	"sparselife/internal/core"
	"sparselife/pkg/geom"
)

// Viewport is a dense W*H window onto the sparse plane, row-major.
// Each cell holds 0 for dead or a clamped age-plus-one for alive, so a
// byte per cell is enough for shading.
type Viewport struct {
	W, H int
	data []uint8
}

// NewViewport allocates a viewport with the given pixel-cell dimensions.
func NewViewport(w, h int) *Viewport {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Viewport{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice for pixel conversion.
func (v *Viewport) Cells() []uint8 { return v.data }

// Index returns the linear slice index for viewport coordinates (x, y).
func (v *Viewport) Index(x, y int) int { return y*v.W + x }

// Fill snapshots the sim into the viewport. origin is the plane
// coordinate shown at the viewport's top-left corner; viewport y grows
// downward along the plane's Y axis.
func (v *Viewport) Fill(sim core.Sim, origin geom.Point) {
	for y := 0; y < v.H; y++ {
		for x := 0; x < v.W; x++ {
			p := origin.Add(geom.Point{X: int64(x), Y: int64(y)})
			age, alive := sim.AgeAt(p)
			if !alive {
				v.data[v.Index(x, y)] = 0
				continue
			}
			if age > 254 {
				age = 254
			}
			v.data[v.Index(x, y)] = uint8(age) + 1
		}
	}
}
