package render

import (
	"testing"

	"github.com/colinchilds/giftorio/internal/core"
)

func TestFillFrameRGBAFullColor(t *testing.T) {
	f := core.NewFrame(1, 1, core.ModeFullColor)
	f.Set(0, 0, 0x10<<16|0x20<<8|0x30)
	buf := make([]byte, 4)
	FillFrameRGBA(buf, f)
	if buf[0] != 0x10 || buf[1] != 0x20 || buf[2] != 0x30 || buf[3] != 255 {
		t.Fatalf("got %v", buf)
	}
}

func TestFillFrameRGBAGray8IsAchromatic(t *testing.T) {
	f := core.NewFrame(1, 1, core.ModeGray8)
	f.Set(0, 0, 0x7F)
	buf := make([]byte, 4)
	FillFrameRGBA(buf, f)
	if buf[0] != buf[1] || buf[1] != buf[2] {
		t.Fatalf("expected equal channels, got %v", buf)
	}
	if buf[0] != 0x7F {
		t.Fatalf("expected luma 0x7F, got %#x", buf[0])
	}
}

func TestFillFrameRGBAGray4WidensFullScale(t *testing.T) {
	f := core.NewFrame(1, 1, core.ModeGray4)
	f.Set(0, 0, 0xF)
	buf := make([]byte, 4)
	FillFrameRGBA(buf, f)
	if buf[0] != 0xFF {
		t.Fatalf("expected max nibble to widen to 0xFF, got %#x", buf[0])
	}
}
