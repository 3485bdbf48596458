package pack

import (
	"errors"
	"testing"

	"github.com/colinchilds/giftorio/internal/catalog"
	"github.com/colinchilds/giftorio/internal/core"
)

func TestPackFullColor(t *testing.T) {
	f := core.NewFrame(2, 1, core.ModeFullColor)
	f.Set(0, 0, 0xFF0000)
	f.Set(1, 0, 0x00FF00)

	out, err := Pack(f, catalog.Base.Pixel())
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 signal words, got %d", len(out))
	}
	if out[0].Value != 0xFF0000 || out[1].Value != 0x00FF00 {
		t.Fatalf("unexpected values: %#x %#x", out[0].Value, out[1].Value)
	}
	if out[0].Signal == out[1].Signal {
		t.Fatalf("expected distinct signals per word")
	}
}

func TestPackGray8ExactnessInvariant(t *testing.T) {
	f := core.NewFrame(4, 1, core.ModeGray8)
	vals := []uint32{10, 20, 30, 40}
	for i, v := range vals {
		f.Set(i, 0, v)
	}
	out, err := Pack(f, catalog.Base.Pixel())
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 word for 4 gray8 pixels, got %d", len(out))
	}
	word := uint32(out[0].Value)
	for k, v := range vals {
		got := (word >> uint(8*k)) & 0xFF
		if got != v {
			t.Fatalf("pixel %d: got %d want %d", k, got, v)
		}
	}
}

func TestPackGray4ExactnessInvariant(t *testing.T) {
	f := core.NewFrame(8, 1, core.ModeGray4)
	vals := []uint32{1, 2, 3, 4, 5, 6, 7, 8}
	for i, v := range vals {
		f.Set(i, 0, v&0xF)
	}
	out, err := Pack(f, catalog.Base.Pixel())
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 word for 8 gray4 pixels, got %d", len(out))
	}
	word := uint32(out[0].Value)
	for k, v := range vals {
		got := (word >> uint(4*k)) & 0xF
		if got != v&0xF {
			t.Fatalf("pixel %d: got %d want %d", k, got, v&0xF)
		}
	}
}

func TestPackTooManyPixels(t *testing.T) {
	f := core.NewFrame(4096, 4096, core.ModeGray4)
	_, err := Pack(f, catalog.Base.Pixel())
	if err == nil || !errors.Is(err, ErrTooManyPixels) {
		t.Fatalf("expected ErrTooManyPixels, got %v", err)
	}
}

func TestPackSignalAssignmentIsOrderStableAcrossFrames(t *testing.T) {
	f1 := core.NewFrame(2, 1, core.ModeFullColor)
	f2 := core.NewFrame(2, 1, core.ModeFullColor)
	out1, _ := Pack(f1, catalog.Base.Pixel())
	out2, _ := Pack(f2, catalog.Base.Pixel())
	for i := range out1 {
		if out1[i].Signal != out2[i].Signal {
			t.Fatalf("signal assignment differs across frames at index %d", i)
		}
	}
}
