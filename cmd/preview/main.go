//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"image/gif"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/colinchilds/giftorio/internal/condition"
	"github.com/colinchilds/giftorio/internal/core"
	"github.com/colinchilds/giftorio/internal/previewapp"
	"github.com/colinchilds/giftorio/pkg/giftorio"
)

func main() {
	fps := flag.Int("fps", 10, "target playback fps")
	maxSize := flag.Int("max-size", 64, "longest output side, in lamps")
	grayscaleBits := flag.Int("grayscale-bits", 0, "0 (full colour), 4, or 8")
	quality := flag.String("quality", "normal", "substation quality tier")
	expansion := flag.Bool("expansion", false, "enable the expansion signal catalogue")
	scale := flag.Int("scale", 8, "preview window pixels per lamp")
	flag.Parse()

	if flag.NArg() < 1 {
		log.Fatal("usage: preview [flags] <file.gif>")
	}

	frames := loadFrames(flag.Arg(0))
	cfg := giftorio.Config{
		TargetFPS:         *fps,
		MaxSize:           *maxSize,
		GrayscaleBits:     *grayscaleBits,
		SubstationQuality: giftorio.Quality(*quality),
		UseExpansion:      *expansion,
	}

	out, err := giftorio.MakeBlueprint(frames, cfg, func(percent int, status string) bool {
		fmt.Fprintf(os.Stderr, "%3d%% %s\n", percent, status)
		return false
	})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(out)

	conditioned, dwell := reconditionForPreview(frames, cfg)

	game := previewapp.New(conditioned, dwell, cfg.TargetFPS, *scale)
	w, h := game.Layout(0, 0)
	ebiten.SetWindowTitle("giftorio preview")
	ebiten.SetWindowSize(w, h)
	ebiten.SetTPS(condition.TicksPerSecond)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

// reconditionForPreview runs the same conditioning stage MakeBlueprint
// already ran, so the preview window can show exactly what the generated
// blueprint's selector will dwell on. Re-running it is cheap relative to
// decoding and packing, and keeps pkg/giftorio's public surface free of a
// "give me the intermediate frames too" escape hatch.
func reconditionForPreview(frames []giftorio.TimedFrame, cfg giftorio.Config) ([]*core.Frame, int) {
	inputs := make([]condition.Input, len(frames))
	for i, f := range frames {
		inputs[i] = condition.Input{Frame: core.RawFrame{W: f.W, H: f.H, Pix: f.RGBA}, DelayCS: f.DelayCS}
	}
	conditioned, dwell, err := condition.Condition(inputs, condition.Params{
		TargetFPS:     cfg.TargetFPS,
		MaxSize:       cfg.MaxSize,
		GrayscaleBits: cfg.GrayscaleBits,
	})
	if err != nil {
		log.Fatal(err)
	}
	return conditioned, dwell
}

func loadFrames(path string) []giftorio.TimedFrame {
	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()

	g, err := gif.DecodeAll(f)
	if err != nil {
		log.Fatalf("decode gif: %v", err)
	}

	frames := make([]giftorio.TimedFrame, len(g.Image))
	for i, img := range g.Image {
		b := img.Bounds()
		w, h := b.Dx(), b.Dy()
		rgba := make([]byte, w*h*4)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				r, gg, bb, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
				idx := (y*w + x) * 4
				rgba[idx+0] = uint8(r >> 8)
				rgba[idx+1] = uint8(gg >> 8)
				rgba[idx+2] = uint8(bb >> 8)
				rgba[idx+3] = uint8(a >> 8)
			}
		}
		delay := g.Delay[i]
		if delay <= 0 {
			delay = 10
		}
		frames[i] = giftorio.TimedFrame{RGBA: rgba, W: w, H: h, DelayCS: delay}
	}
	return frames
}
