package condition

import "github.com/colinchilds/giftorio/internal/core"

// downscaleBox resamples a raw RGBA frame down to w×h using a box/area
// filter: every destination pixel is the average of the source pixels that
// fall into its box. This is deterministic and antialiased, unlike a
// nearest-neighbour or bilinear resample, matching spec's accuracy
// requirement for downscaling before any grayscale quantization.
//
// golang.org/x/image/draw (pulled in transitively through the ebiten
// dependency chain) ships NearestNeighbor/BiLinear/CatmullRom/
// ApproxBiLinear scalers but no box/area-average filter, so this one piece
// is plain arithmetic rather than a wired library call.
func downscaleBox(raw core.RawFrame, w, h int) *core.Frame {
	out := core.NewFrame(w, h, core.ModeFullColor)
	w0, h0 := raw.W, raw.H
	for oy := 0; oy < h; oy++ {
		y0 := oy * h0 / h
		y1 := (oy + 1) * h0 / h
		if y1 <= y0 {
			y1 = y0 + 1
		}
		if y1 > h0 {
			y1 = h0
		}
		for ox := 0; ox < w; ox++ {
			x0 := ox * w0 / w
			x1 := (ox + 1) * w0 / w
			if x1 <= x0 {
				x1 = x0 + 1
			}
			if x1 > w0 {
				x1 = w0
			}

			var rs, gs, bs, count int
			for yy := y0; yy < y1; yy++ {
				rowBase := yy * w0 * 4
				for xx := x0; xx < x1; xx++ {
					idx := rowBase + xx*4
					rs += int(raw.Pix[idx])
					gs += int(raw.Pix[idx+1])
					bs += int(raw.Pix[idx+2])
					count++
				}
			}
			if count == 0 {
				count = 1
			}
			r := uint32((rs + count/2) / count)
			g := uint32((gs + count/2) / count)
			b := uint32((bs + count/2) / count)
			out.Set(ox, oy, r<<16|g<<8|b)
		}
	}
	return out
}

// targetSize computes the output dimensions for a source of size (w0, h0)
// proportionally downscaled so neither side exceeds maxSide.
func targetSize(w0, h0, maxSide int) (int, int) {
	scale := 1.0
	longest := w0
	if h0 > longest {
		longest = h0
	}
	if longest > maxSide {
		scale = float64(maxSide) / float64(longest)
	}
	w := int(float64(w0)*scale + 0.5)
	h := int(float64(h0)*scale + 0.5)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}
