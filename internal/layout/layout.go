// Package layout implements the layout planner (spec component E): it
// places the lamp grid, the per-frame constant-combinator banks, and the
// power grid, and wires each bank's combinators into a single internal
// network. It never decides which bank is active on a given tick — that is
// the selector's job (internal/selector).
package layout

import (
	"fmt"

	"github.com/colinchilds/giftorio/internal/catalog"
	"github.com/colinchilds/giftorio/internal/core"
	"github.com/colinchilds/giftorio/internal/entity"
	"github.com/colinchilds/giftorio/internal/pack"
)

// Quality names a substation tier, or the medium-pole fallback.
type Quality string

const (
	QualityNone      Quality = "none"
	QualityNormal    Quality = "normal"
	QualityUncommon  Quality = "uncommon"
	QualityRare      Quality = "rare"
	QualityEpic      Quality = "epic"
	QualityLegendary Quality = "legendary"
)

// pitch is the side length of one power node's square supply lattice cell,
// in tiles. Substation values are the in-game supply-area constants for
// each quality tier; the medium-pole value is the vanilla medium electric
// pole's supply area, used when quality is "none".
var pitch = map[Quality]int{
	QualityNone:      7,
	QualityNormal:    18,
	QualityUncommon:  20,
	QualityRare:      22,
	QualityEpic:      24,
	QualityLegendary: 28,
}

// Params controls the planner.
type Params struct {
	Quality            Quality
	SlotsPerCombinator int // filters per constant combinator; defaulted if <= 0
}

// Bank is one frame's constant-combinator bank.
type Bank struct {
	FrameIndex    int // 1-based
	CombinatorIDs []int
}

// Result is everything the selector needs to wire the bus and the clock.
type Result struct {
	LampIDs []int // indexed by row-major pixel index
	Banks   []Bank
	// SelectorRow is the y coordinate reserved for the clock seed, the
	// clock decider, and the per-bank selector deciders — inside the
	// power lattice's footprint, unlike the negative-y coordinates a
	// clock built off to the side of the grid would need. Unused when
	// there is only one bank, since Build collapses that case to a
	// passthrough with no clock.
	SelectorRow int
}

var log = core.NewLogger("layout")

const defaultSlotsPerCombinator = 20

// Plan places lamps, frame banks, and the power grid into bp, wiring each
// bank's own combinators together, and returns handles the selector needs.
func Plan(bp *entity.Blueprint, frames []*core.Frame, packed [][]pack.SignalValue, cat catalog.Catalog, p Params) (*Result, error) {
	if len(frames) == 0 || len(packed) != len(frames) {
		return nil, fmt.Errorf("layout: frame count mismatch: %d frames, %d packed groups", len(frames), len(packed))
	}
	if p.SlotsPerCombinator <= 0 {
		p.SlotsPerCombinator = defaultSlotsPerCombinator
	}

	w, h := frames[0].W, frames[0].H
	res := &Result{LampIDs: make([]int, w*h)}

	placeLamps(bp, w, h, frames[0].Mode, packed[0], res)

	bankRowStart := h + 2
	for i, sigs := range packed {
		bank, err := placeBank(bp, sigs, i+1, bankRowStart+i, cat.FrameIndexSignal(), p)
		if err != nil {
			return nil, err
		}
		res.Banks = append(res.Banks, bank)
	}

	// The selector's clock and per-bank deciders (N > 1 only) sit on one
	// more row below the last bank, wide enough for the clock seed, the
	// clock decider, and one decider per bank — reserved here so the
	// power lattice below covers them too, instead of leaving them
	// stranded off the footprint it tiles.
	selectorRow := bankRowStart + len(packed)
	maxY := selectorRow
	footprintW := w
	for _, b := range res.Banks {
		if len(b.CombinatorIDs) > footprintW {
			footprintW = len(b.CombinatorIDs)
		}
	}
	if len(packed) > 1 {
		maxY = selectorRow + 1
		if cols := len(packed) + 2; cols > footprintW {
			footprintW = cols
		}
	}
	placePower(bp, footprintW, maxY, p.Quality)
	res.SelectorRow = selectorRow

	return res, nil
}

// placeLamps adds one lamp per pixel on integer tile coordinates (x, y),
// gated on the signal (and, for packed grayscale modes, the bit lane)
// assigned to its pixel group.
func placeLamps(bp *entity.Blueprint, w, h int, mode core.PixelMode, sample []pack.SignalValue, res *Result) {
	per := mode.PixelsPerWord()
	bitWidth := 32 / per
	if mode == core.ModeFullColor {
		bitWidth = 32
	}
	for k := 0; k < w*h; k++ {
		x, y := k%w, k/w
		sig := sample[k/per].Signal
		var payload entity.LampPayload
		if per == 1 {
			payload = entity.NewLampPayload(sig)
		} else {
			payload = entity.NewLampPayloadBits(sig, bitWidth*(k%per), bitWidth)
		}
		id := bp.AddEntity(entity.KindLamp, entity.Position{X: float64(x), Y: float64(y)}, payload)
		res.LampIDs[k] = id
	}
}

// placeBank adds one frame's constant combinators, chunking its packed
// signal values across as many combinators as SlotsPerCombinator requires,
// each additionally carrying a marker filter (the frame-index signal set to
// the 1-based frame number). All of a bank's combinators are wired together
// on one internal network so together they expose the whole frame.
func placeBank(bp *entity.Blueprint, sigs []pack.SignalValue, frameNumber, row int, marker catalog.Signal, p Params) (Bank, error) {
	usable := p.SlotsPerCombinator - 1 // one slot reserved for the marker filter
	if usable < 1 {
		usable = 1
	}
	n := (len(sigs) + usable - 1) / usable
	if n < 1 {
		n = 1
	}

	bank := Bank{FrameIndex: frameNumber}
	for c := 0; c < n; c++ {
		start := c * usable
		end := start + usable
		if end > len(sigs) {
			end = len(sigs)
		}
		filters := make([]entity.Filter, 0, end-start+1)
		for slot, sv := range sigs[start:end] {
			filters = append(filters, entity.Filter{Signal: sv.Signal, Value: sv.Value, Slot: slot})
		}
		filters = append(filters, entity.Filter{Signal: marker, Value: int32(frameNumber), Slot: len(filters)})

		payload := entity.ConstantCombinatorPayload{Sections: []entity.Section{{Filters: filters}}}
		id := bp.AddEntity(entity.KindConstantCombinator, entity.Position{X: float64(c), Y: float64(row)}, payload)
		bank.CombinatorIDs = append(bank.CombinatorIDs, id)

		if c > 0 {
			prev := bank.CombinatorIDs[c-1]
			if err := bp.Wire(prev, entity.PortOutputGreen, id, entity.PortOutputGreen); err != nil {
				return Bank{}, fmt.Errorf("layout: wiring bank %d: %w", frameNumber, err)
			}
		}
	}
	return bank, nil
}

// placePower tiles the planner's full footprint (lamp grid plus the bank
// rows below it) with substations — or, for quality "none", medium power
// poles — on a square lattice whose cell size is the quality's supply
// diameter, guaranteeing every entity falls within some node's coverage.
func placePower(bp *entity.Blueprint, w, maxY int, q Quality) {
	cell, ok := pitch[q]
	if !ok {
		log.Warnf("unknown substation quality %q, defaulting to normal", q)
		q, cell = QualityNormal, pitch[QualityNormal]
	}
	kind := entity.KindSubstation
	if q == QualityNone {
		kind = entity.KindMediumPole
	}
	quality := string(q)
	if q == QualityNone || q == QualityNormal {
		quality = "" // the game omits the quality field for the base tier
	}

	// Adjacent power nodes are wired together implicitly by the game once
	// placed in range, so no copper-wire edges are recorded here (spec.md
	// §4.E is explicit on this point).
	//
	// half must match Coverage's half exactly, or this lattice can place
	// a node believing it reaches a point that Coverage — the function
	// every invariant check uses — considers unpowered. Both take the
	// floor of the quality's supply diameter.
	half := cell / 2
	for gy := 0; gy*cell < maxY; gy++ {
		cy := gy*cell + half
		for gx := 0; gx*cell < w; gx++ {
			cx := gx*cell + half
			bp.AddEntity(kind, entity.Position{X: float64(cx), Y: float64(cy)}, entity.PowerPayload{Quality: quality})
		}
	}
}

// Coverage reports whether (x, y) falls within the square supply area of a
// power node centred at (cx, cy) for the given quality — Chebyshev
// distance, since in-game supply areas are square, not the circular
// Euclidean radius a patch-placement scan would use.
func Coverage(x, y, cx, cy int, q Quality) bool {
	half := pitch[q] / 2
	dx, dy := x-cx, y-cy
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx <= half && dy <= half
}
