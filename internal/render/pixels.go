// Package render converts conditioned frames into RGBA pixel buffers an
// ebiten.Image can display, the inverse of internal/condition's downscale
// and quantize steps.
package render

import "github.com/colinchilds/giftorio/internal/core"

// FillFrameRGBA writes one conditioned frame into buf as 8-bit RGBA,
// decoding each pixel word according to the frame's mode: full colour
// unpacks the packed 24-bit word directly, gray8 replicates the 8-bit luma
// level across all three channels, and gray4 widens its 4-bit level back
// to 8 bits by replicating the nibble (0xF -> 0xFF), i.e. level*17, the
// inverse of quantize's 16 evenly spaced levels. buf must be 4*len(f.Pix)
// bytes.
func FillFrameRGBA(buf []byte, f *core.Frame) {
	switch f.Mode {
	case core.ModeFullColor:
		for i, v := range f.Pix {
			base := i * 4
			buf[base+0] = uint8(v >> 16)
			buf[base+1] = uint8(v >> 8)
			buf[base+2] = uint8(v)
			buf[base+3] = 255
		}
	case core.ModeGray8:
		for i, v := range f.Pix {
			base := i * 4
			g := uint8(v)
			buf[base+0] = g
			buf[base+1] = g
			buf[base+2] = g
			buf[base+3] = 255
		}
	case core.ModeGray4:
		for i, v := range f.Pix {
			base := i * 4
			g := uint8(v&0xF) * 0x11
			buf[base+0] = g
			buf[base+1] = g
			buf[base+2] = g
			buf[base+3] = 255
		}
	}
}
