package selector

import (
	"testing"

	"github.com/colinchilds/giftorio/internal/catalog"
	"github.com/colinchilds/giftorio/internal/entity"
	"github.com/colinchilds/giftorio/internal/layout"
)

func addLamp(bp *entity.Blueprint, i int) int {
	return bp.AddEntity(entity.KindLamp, entity.Position{X: float64(i)}, entity.NewLampPayload(catalog.Base[0]))
}

func addBank(bp *entity.Blueprint, frameIndex int) layout.Bank {
	id := bp.AddEntity(entity.KindConstantCombinator, entity.Position{X: 0, Y: float64(frameIndex)}, entity.ConstantCombinatorPayload{})
	return layout.Bank{FrameIndex: frameIndex, CombinatorIDs: []int{id}}
}

func TestSingleBankCollapsesToPassthrough(t *testing.T) {
	bp := entity.NewBlueprint()
	lamps := []int{addLamp(bp, 0)}
	banks := []layout.Bank{addBank(bp, 1)}
	before := len(bp.Entities)
	if err := Build(bp, lamps, banks, 0, 60, catalog.Base.FrameIndexSignal()); err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(bp.Entities) != before {
		t.Fatalf("N=1 should add no clock/decider entities, went from %d to %d", before, len(bp.Entities))
	}
	if len(bp.Wires) != 1 {
		t.Fatalf("expected 1 wire for the single-lamp passthrough, got %d", len(bp.Wires))
	}
}

func TestTwoBankSelectorWindowsTileWithoutGapOrOverlap(t *testing.T) {
	bp := entity.NewBlueprint()
	lamps := []int{addLamp(bp, 0)}
	banks := []layout.Bank{addBank(bp, 1), addBank(bp, 2)}
	dwell := 60
	if err := Build(bp, lamps, banks, 0, dwell, catalog.Base.FrameIndexSignal()); err != nil {
		t.Fatalf("Build: %v", err)
	}

	var deciders []entity.DeciderCombinatorPayload
	for _, e := range bp.Entities {
		if e.Kind == entity.KindDeciderCombinator {
			if p, ok := e.Payload.(entity.DeciderCombinatorPayload); ok && len(p.Outputs) == 1 && p.Outputs[0].Everything {
				deciders = append(deciders, p)
			}
		}
	}
	if len(deciders) != len(banks) {
		t.Fatalf("expected %d selector deciders, got %d", len(banks), len(deciders))
	}

	windows := make([][2]int32, len(deciders))
	for _, d := range deciders {
		var lower, upper int32
		for _, c := range d.Conditions {
			switch c.Operator {
			case entity.OpGE:
				lower = c.Constant
			case entity.OpLess:
				upper = c.Constant
			}
		}
		windows[lower/int32(dwell)] = [2]int32{lower, upper}
	}
	for k := 0; k < len(banks); k++ {
		want := [2]int32{int32(k * dwell), int32((k + 1) * dwell)}
		if windows[k] != want {
			t.Fatalf("bank %d window = %v, want %v", k, windows[k], want)
		}
	}
}

func TestBuildRejectsNoBanks(t *testing.T) {
	bp := entity.NewBlueprint()
	lamps := []int{addLamp(bp, 0)}
	if err := Build(bp, lamps, nil, 0, 60, catalog.Base.FrameIndexSignal()); err == nil {
		t.Fatal("expected error with zero banks")
	}
}
