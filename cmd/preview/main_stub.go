//go:build !ebiten

package main

import (
	"flag"
	"fmt"
	"image/gif"
	"log"
	"os"

	"github.com/colinchilds/giftorio/pkg/giftorio"
)

func main() {
	fps := flag.Int("fps", 10, "target playback fps")
	maxSize := flag.Int("max-size", 64, "longest output side, in lamps")
	grayscaleBits := flag.Int("grayscale-bits", 0, "0 (full colour), 4, or 8")
	quality := flag.String("quality", "normal", "substation quality tier")
	expansion := flag.Bool("expansion", false, "enable the expansion signal catalogue")
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
	fmt.Fprintln(os.Stderr, "built without the 'ebiten' tag: skipping playback window.")
	fmt.Fprintln(os.Stderr, "re-run with `go run -tags ebiten ./cmd/preview` to preview playback.")
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
