package pack

import "github.com/colinchilds/giftorio/internal/core"

// fullColor packs one pixel per signal word: the low 24 bits carry
// R<<16|G<<8|B (already how condition.downscaleBox stores full-colour
// pixels), the high byte stays zero. Grounded on pkg/sims/life's minimal
// one-state-per-cell shape — the simplest possible packer.
type fullColor struct{}

func (fullColor) PixelsPerGroup() int { return 1 }

func (fullColor) PackGroup(pixels []uint32) int32 {
	return int32(pixels[0] & 0xFFFFFF)
}

func init() {
	core.RegisterPacker(core.ModeFullColor, func() core.Packer { return fullColor{} })
}
