package pack

import "github.com/colinchilds/giftorio/internal/core"

// gray8 packs 4 pixels per signal word, one byte lane per pixel, pixel k of
// the group at byte position k (little-endian within the word). Grounded on
// internal/sims/briansbrain's 3-state neighbor scan, the teacher's simplest
// multi-value-per-cell automaton.
type gray8 struct{}

func (gray8) PixelsPerGroup() int { return 4 }

func (gray8) PackGroup(pixels []uint32) int32 {
	var w uint32
	for k, v := range pixels {
		w |= (v & 0xFF) << uint(8*k)
	}
	return int32(w)
}

func init() {
	core.RegisterPacker(core.ModeGray8, func() core.Packer { return gray8{} })
}
