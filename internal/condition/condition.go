// Package condition implements the frame conditioner (spec component B):
// temporal resampling to a target frame rate, proportional downscaling, and
// optional grayscale quantization.
package condition

import (
	"fmt"

	"github.com/colinchilds/giftorio/internal/core"
)

// TicksPerSecond is the game's fixed simulation rate.
const TicksPerSecond = 60

// Input is one source frame plus its presentation delay, in centiseconds —
// the same unit image/gif.GIF.Delay uses.
type Input struct {
	Frame   core.RawFrame
	DelayCS int
}

// Params controls conditioning.
type Params struct {
	TargetFPS     int
	MaxSize       int
	GrayscaleBits int
}

var log = core.NewLogger("condition")

// Dwell returns the number of ticks each output frame is displayed for,
// D = ceil(60/f).
func Dwell(targetFPS int) int {
	d := (TicksPerSecond + targetFPS - 1) / targetFPS
	if d < 1 {
		d = 1
	}
	return d
}

// csToTicks converts a GIF-style centisecond delay to game ticks, rounding
// to the nearest tick and never producing a zero-length frame (a delay of 0
// centiseconds, common in GIFs meaning "as fast as possible", must still be
// selectable for at least one tick).
func csToTicks(cs int) int {
	ticks := (cs*TicksPerSecond + 50) / 100
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}

// Condition resamples, downscales, and optionally quantizes the input
// frames, returning the conditioned frames in presentation order along with
// the per-frame tick dwell D.
func Condition(inputs []Input, p Params) ([]*core.Frame, int, error) {
	if len(inputs) == 0 {
		return nil, 0, fmt.Errorf("condition: no input frames")
	}
	w0, h0 := inputs[0].Frame.W, inputs[0].Frame.H
	for _, in := range inputs {
		if in.Frame.W != w0 || in.Frame.H != h0 {
			return nil, 0, fmt.Errorf("condition: all frames must share dimensions, got %dx%d and %dx%d", w0, h0, in.Frame.W, in.Frame.H)
		}
	}

	w, h := targetSize(w0, h0, p.MaxSize)
	dwell := Dwell(p.TargetFPS)

	sourceTicks := make([]int, len(inputs))
	totalTicks := 0
	for i, in := range inputs {
		sourceTicks[i] = csToTicks(in.DelayCS)
		totalTicks += sourceTicks[i]
	}
	if effective := totalTicks / len(inputs); effective < dwell && len(inputs) > 1 {
		log.Warnf("source's average frame dwell (%d ticks) is shorter than the requested dwell (%d ticks); output fps is capped by the requested fps regardless", effective, dwell)
	}

	// Sample one source frame per output window, boundary k*dwell for
	// k = 0, 1, 2, ...: each boundary is attributed to the source frame
	// whose cumulative presentation time first reaches or passes it —
	// the same cumulative-crossing rule the original image processor
	// used, starting from boundary 0 so the very first output is always
	// the source's actual first frame, not whatever frame happens to be
	// showing one whole dwell period in.
	maxOutputs := totalTicks / dwell
	if maxOutputs < 1 {
		maxOutputs = 1
	}
	out := make([]*core.Frame, 0, maxOutputs)
	acc, next := 0, 0
	for i, in := range inputs {
		if len(out) >= maxOutputs {
			break
		}
		acc += sourceTicks[i]
		var conditioned *core.Frame
		for acc >= next && len(out) < maxOutputs {
			if conditioned == nil {
				conditioned = downscaleBox(in.Frame, w, h)
				if p.GrayscaleBits > 0 {
					quantize(conditioned, p.GrayscaleBits)
				}
			}
			out = append(out, conditioned)
			next += dwell
		}
	}

	return out, dwell, nil
}
