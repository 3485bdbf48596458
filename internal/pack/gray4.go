package pack

import "github.com/colinchilds/giftorio/internal/core"

// gray4 packs 8 pixels per signal word, one nibble lane per pixel, pixel k
// at bit position 4k. Grounded directly on internal/sims/elementary's
// bit-rule lookup — `idx := (left<<2)|(center<<1)|right; bit :=
// (rule>>idx)&1` — the same shift-and-mask shape, widened from a 3-bit rule
// index to an 8-lane nibble pack.
type gray4 struct{}

func (gray4) PixelsPerGroup() int { return 8 }

func (gray4) PackGroup(pixels []uint32) int32 {
	var w uint32
	for k, v := range pixels {
		w |= (v & 0xF) << uint(4*k)
	}
	return int32(w)
}

func init() {
	core.RegisterPacker(core.ModeGray4, func() core.Packer { return gray4{} })
}
