// Command paramsweep reports, for a given source frame size, which
// (target_fps, max_size, grayscale_bits) combinations fit the selected
// signal catalogue — a feasibility table rather than a continuous search,
// since there is no objective here to descend, just a pass/fail per cell.
package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/colinchilds/giftorio/internal/catalog"
	"github.com/colinchilds/giftorio/internal/condition"
	"github.com/colinchilds/giftorio/internal/core"
	"github.com/colinchilds/giftorio/internal/pack"
)

var fpsGrid = []int{5, 10, 15, 30}
var maxSizeGrid = []int{16, 32, 64, 128, 300}
var grayscaleGrid = []int{0, 4, 8}

func main() {
	width := flag.Int("width", 64, "source frame width")
	height := flag.Int("height", 64, "source frame height")
	expansion := flag.Bool("expansion", false, "sweep against the expansion catalogue")
	flag.Parse()

	cat := catalog.Select(*expansion)
	raw := core.RawFrame{W: *width, H: *height, Pix: make([]byte, *width**height*4)}

	fmt.Printf("%-6s %-9s %-10s %-14s %-8s\n", "fps", "max_size", "gray_bits", "status", "signals")
	for _, fps := range fpsGrid {
		for _, maxSize := range maxSizeGrid {
			for _, gray := range grayscaleGrid {
				ok, signals, err := feasible(raw, fps, maxSize, gray, cat)
				status := "OK"
				switch {
				case err != nil:
					status = "error: " + err.Error()
				case !ok:
					status = "TooManyPixels"
				}
				fmt.Printf("%-6d %-9d %-10d %-14s %-8d\n", fps, maxSize, gray, status, signals)
			}
		}
	}
}

// feasible conditions and packs a single solid frame of raw's dimensions
// and reports whether the resulting signal count fits cat.
func feasible(raw core.RawFrame, fps, maxSize, gray int, cat catalog.Catalog) (ok bool, signals int, err error) {
	conditioned, _, err := condition.Condition([]condition.Input{{Frame: raw, DelayCS: 100}}, condition.Params{
		TargetFPS:     fps,
		MaxSize:       maxSize,
		GrayscaleBits: gray,
	})
	if err != nil {
		return false, 0, err
	}
	sv, err := pack.Pack(conditioned[0], cat.Pixel())
	if err != nil {
		if errors.Is(err, pack.ErrTooManyPixels) {
			return false, 0, nil
		}
		return false, 0, err
	}
	return true, len(sv), nil
}
