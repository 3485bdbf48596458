//go:build ebiten

// Package previewapp adapts a conditioned frame sequence to the
// ebiten.Game interface, so a user can watch what a run's conditioner
// produced — at the same dwell timing the generated blueprint's selector
// will use — before spending the time to wire and export the blueprint
// itself.
package previewapp

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/colinchilds/giftorio/internal/core"
	"github.com/colinchilds/giftorio/internal/render"
	"github.com/colinchilds/giftorio/internal/ui"
)

// Game plays back a conditioned frame sequence.
type Game struct {
	frames    []*core.Frame
	dwell     int
	targetFPS int
	scale     int

	overlay *ui.Overlay
	ticker  *core.TickAccumulator
	index   int

	img *ebiten.Image
	buf []byte

	paused   bool
	tickOnce bool
}

// New constructs a Game that plays frames back one dwell period at a time.
// Each Update call advances a core.TickAccumulator of period dwell by one
// tick, so a frame stays on screen for dwell Update calls; dwell and
// targetFPS also feed the overlay readout.
func New(frames []*core.Frame, dwell, targetFPS, scale int) *Game {
	g := &Game{
		frames:    frames,
		dwell:     dwell,
		targetFPS: targetFPS,
		scale:     scale,
		overlay:   ui.NewOverlay(),
		ticker:    core.NewTickAccumulator(dwell),
	}
	if len(frames) > 0 {
		w, h := frames[0].W, frames[0].H
		g.img = ebiten.NewImage(w, h)
		g.buf = make([]byte, 4*w*h)
	}
	return g
}

// Update advances the preview by one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}

	g.overlay.Update()

	if len(g.frames) == 0 {
		return nil
	}
	if !g.paused || g.tickOnce {
		if n := g.ticker.Advance(1); n > 0 {
			g.index = (g.index + n) % len(g.frames)
		}
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current frame and the overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.img == nil || len(g.frames) == 0 {
		return
	}
	f := g.frames[g.index]
	render.FillFrameRGBA(g.buf, f)
	g.img.WritePixels(g.buf)

	op := &ebiten.DrawImageOptions{}
	scale := g.scale
	if scale <= 0 {
		scale = 1
	}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(g.img, op)

	g.overlay.Draw(screen, ui.Info{
		FrameIndex:  g.index,
		TotalFrames: len(g.frames),
		Mode:        f.Mode.String(),
		DwellTicks:  g.dwell,
		TargetFPS:   g.targetFPS,
	})
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if len(g.frames) == 0 {
		return 1, 1
	}
	scale := g.scale
	if scale <= 0 {
		scale = 1
	}
	f := g.frames[0]
	return f.W * scale, f.H * scale
}
