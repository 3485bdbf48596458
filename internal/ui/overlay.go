//go:build ebiten

// Package ui draws the preview window's on-screen readout: which
// conditioned frame is showing, its pixel mode, and the selector timing
// that frame would dwell for inside the generated blueprint.
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Info is the point-in-time readout the overlay renders. Unlike the
// teacher's per-simulation ParameterSnapshot, there is nothing here a user
// can adjust mid-run — a giftorio run's configuration is fixed for the
// whole conversion — so the overlay is read-only.
type Info struct {
	FrameIndex  int
	TotalFrames int
	Mode        string
	DwellTicks  int
	TargetFPS   int
}

// Overlay draws Info as a small text panel, toggled on and off with the 1
// key, in the corner of the preview window.
type Overlay struct {
	visible bool
}

// NewOverlay constructs a visible overlay.
func NewOverlay() *Overlay {
	return &Overlay{visible: true}
}

// Update toggles visibility in response to input.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.visible = !o.visible
	}
}

// Draw paints the readout onto screen if visible.
func (o *Overlay) Draw(screen *ebiten.Image, info Info) {
	if !o.visible {
		return
	}
	face := basicfont.Face7x13
	lines := []string{
		fmt.Sprintf("frame %d/%d", info.FrameIndex+1, info.TotalFrames),
		fmt.Sprintf("mode %s", info.Mode),
		fmt.Sprintf("dwell %d ticks @ %d fps", info.DwellTicks, info.TargetFPS),
		"[1] toggle overlay  [space] pause  [n] step  [q] quit",
	}
	col := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	for i, line := range lines {
		text.Draw(screen, line, face, 8, 16+i*14, col)
	}
}
