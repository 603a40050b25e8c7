//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"time"

	"sparselife/internal/core"
	"sparselife/internal/render"
	"sparselife/internal/ui"
	"sparselife/pkg/geom"
	"sparselife/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// panStep is how many cells an arrow key pans per frame.
const panStep = 2

// Game adapts a core simulation to the ebiten.Game interface. The view
// window (origin, scale) is owned here: the simulation itself has no
// notion of a visible region.
type Game struct {
	sim     core.Sim
	view    *render.Viewport
	painter *render.GridPainter
	overlay *ui.Overlay
	stepper *core.FixedStep

	onColor  color.Color
	offColor color.Color

	origin   geom.Point
	scale    int
	paused   bool
	tickOnce bool
	seed     int64
	status   string
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	g := &Game{
		sim:      sim,
		view:     render.NewViewport(cfg.ViewW, cfg.ViewH),
		painter:  render.NewGridPainter(cfg.ViewW, cfg.ViewH),
		overlay:  ui.NewOverlay(),
		stepper:  core.NewFixedStep(cfg.TPS),
		onColor:  color.White,
		offColor: color.Black,
		origin:   geom.Point{X: -int64(cfg.ViewW) / 2, Y: -int64(cfg.ViewH) / 2},
		scale:    cfg.Scale,
		seed:     cfg.Seed,
	}
	if g.scale < 1 {
		g.scale = 1
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles input and advances the simulation on its tick cadence,
// which is decoupled from the frame rate.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		if !g.paused {
			g.stepper.Rewind()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.handlePan()
	g.handleZoom()
	g.handlePaint()
	g.overlay.Update()

	if (!g.paused && g.stepper.ShouldStep()) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}

	g.status = g.buildStatus()
	return nil
}

func (g *Game) handlePan() {
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.origin.X -= panStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.origin.X += panStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.origin.Y -= panStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.origin.Y += panStep
	}
}

func (g *Game) handleZoom() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) && g.scale < 16 {
		g.scale++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) && g.scale > 1 {
		g.scale--
	}
}

// gridEditor is implemented by sims whose cells can be edited directly.
type gridEditor interface {
	Grid() *life.Grid
}

// handlePaint adds cells under the cursor on left click and removes
// them on right click, when the sim exposes its grid.
func (g *Game) handlePaint() {
	editor, ok := g.sim.(gridEditor)
	if !ok {
		return
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		editor.Grid().AddPoint(g.cursorCell())
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		editor.Grid().RemovePoint(g.cursorCell())
	}
}

func (g *Game) cursorCell() geom.Point {
	mx, my := ebiten.CursorPosition()
	return g.origin.Add(geom.Point{X: int64(mx / g.scale), Y: int64(my / g.scale)})
}

func (g *Game) buildStatus() string {
	cursor := g.cursorCell()

	status := fmt.Sprintf("gen %d  pop %d  origin (%d,%d)  x%d",
		g.sim.Generation(), g.sim.Population(), g.origin.X, g.origin.Y, g.scale)
	if age, alive := g.sim.AgeAt(cursor); alive {
		status += fmt.Sprintf("\n(%d,%d) age %d", cursor.X, cursor.Y, age)
	} else {
		status += fmt.Sprintf("\n(%d,%d) dead", cursor.X, cursor.Y)
	}
	if g.paused {
		status += "  [paused]"
	}
	return status
}

// Draw renders the current simulation state through the view window.
func (g *Game) Draw(screen *ebiten.Image) {
	g.view.Fill(g.sim, g.origin)
	g.painter.Blit(screen, g.view, g.onColor, g.offColor, g.scale)
	g.overlay.Draw(screen, g.status)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.view.W * g.scale, g.view.H * g.scale
}
