// Package pack implements the pixel packer (spec component C): compressing
// a conditioned frame into the smallest set of (signal, int32) pairs.
//
// Each pixel mode's encoding is a self-registering Packer, the same
// init()-time registration the teacher's cellular automata used to add
// themselves to a shared registry instead of being switch-cased by name.
package pack

import (
	"fmt"

	"github.com/colinchilds/giftorio/internal/catalog"
	"github.com/colinchilds/giftorio/internal/core"
)

// SignalValue pairs a catalogue signal with the packed value assigned to it.
type SignalValue struct {
	Signal catalog.Signal
	Value  int32
}

// Pack encodes one conditioned frame into an ordered list of (signal,
// value) pairs, assigning signals from pixelPool in order. pixelPool must
// be the same slice (and therefore the same assignment order) across every
// frame of a run, per spec's "lamp k always listens for signal σ_k"
// invariant.
func Pack(frame *core.Frame, pixelPool catalog.Catalog) ([]SignalValue, error) {
	factory, ok := core.Packers()[frame.Mode]
	if !ok {
		return nil, fmt.Errorf("pack: no packer registered for mode %v", frame.Mode)
	}
	packer := factory()
	per := packer.PixelsPerGroup()

	groups := (len(frame.Pix) + per - 1) / per
	if groups > len(pixelPool) {
		return nil, fmt.Errorf("pack: %w: need %d signals, catalogue has %d", ErrTooManyPixels, groups, len(pixelPool))
	}

	out := make([]SignalValue, 0, groups)
	for g := 0; g < groups; g++ {
		start := g * per
		end := start + per
		if end > len(frame.Pix) {
			end = len(frame.Pix)
		}
		buf := frame.Pix[start:end]
		if len(buf) < per {
			padded := make([]uint32, per)
			copy(padded, buf)
			buf = padded
		}
		out = append(out, SignalValue{Signal: pixelPool[g], Value: packer.PackGroup(buf)})
	}
	return out, nil
}

// ErrTooManyPixels is wrapped into every "catalogue too small" failure so
// callers can match it with errors.Is.
var ErrTooManyPixels = fmt.Errorf("too many pixels for the selected catalogue")
