//go:build ebiten

package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws the status readout (generation, population, cursor age)
// on top of the simulation view.
type Overlay struct {
	visible bool
}

// NewOverlay constructs an overlay, visible by default.
func NewOverlay() *Overlay {
	return &Overlay{visible: true}
}

// Update toggles visibility on Tab.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		o.visible = !o.visible
	}
}

// Draw prints the status text when the overlay is visible.
func (o *Overlay) Draw(screen *ebiten.Image, status string) {
	if !o.visible {
		return
	}
	ebitenutil.DebugPrint(screen, status)
}
