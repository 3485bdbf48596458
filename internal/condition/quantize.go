package condition

import (
	"math"

	"github.com/colinchilds/giftorio/internal/core"
)

// quantize converts a full-colour frame in place to a g-bit grayscale frame:
// each pixel's luma is computed with the standard Rec. 601 weights, then
// mapped to the nearest of 2^g evenly spaced levels in [0, 255]. The stored
// value is the level index itself, in [0, 2^g-1].
func quantize(f *core.Frame, bits int) {
	levels := 1 << uint(bits)
	step := 255.0 / float64(levels-1)
	mode := core.ModeGray8
	if bits == 4 {
		mode = core.ModeGray4
	}
	for i, v := range f.Pix {
		r := float64((v >> 16) & 0xFF)
		g := float64((v >> 8) & 0xFF)
		b := float64(v & 0xFF)
		y := math.Round(0.299*r + 0.587*g + 0.114*b)
		level := int(math.Round(y / step))
		if level >= levels {
			level = levels - 1
		}
		if level < 0 {
			level = 0
		}
		f.Pix[i] = uint32(level)
	}
	f.Mode = mode
}
