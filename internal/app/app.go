//go:build ebiten

package app

import (
	"time"

	"embervox/internal/core"
	"embervox/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// mapCycler is implemented by scenes that can switch their output view.
type mapCycler interface {
	CycleMap()
}

// Game adapts a core scene to the ebiten.Game interface.
type Game struct {
	scene   core.Scene
	painter *render.GridPainter
	buf     []byte

	frameDt time.Duration

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided scene.
func New(scene core.Scene, scale, tps int, seed int64) *Game {
	size := scene.Size()
	if tps <= 0 {
		tps = 60
	}
	return &Game{
		scene:   scene,
		painter: render.NewGridPainter(size.W, size.H),
		buf:     make([]byte, size.W*size.H*4),
		frameDt: time.Second / time.Duration(tps),
		scale:   scale,
		seed:    seed,
	}
}

// Reset reinitializes the scene state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.scene.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the scene.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
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
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if cycler, ok := g.scene.(mapCycler); ok {
			cycler.CycleMap()
		}
	}

	if !g.paused {
		g.scene.Advance(g.frameDt)
	} else if g.tickOnce {
		// Nudge the scene forward by one automaton step at the default
		// simulation rate.
		g.scene.Advance(time.Second / 15)
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current scene frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Frame(g.buf)
	g.painter.Blit(screen, g.buf, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.scene.Size()
	return s.W * g.scale, s.H * g.scale
}
