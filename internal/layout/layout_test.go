package layout

import (
	"testing"

	"github.com/colinchilds/giftorio/internal/catalog"
	"github.com/colinchilds/giftorio/internal/core"
	"github.com/colinchilds/giftorio/internal/entity"
	"github.com/colinchilds/giftorio/internal/pack"
)

func frameAndPack(t *testing.T, w, h int, mode core.PixelMode, vals []uint32) (*core.Frame, []pack.SignalValue) {
	t.Helper()
	f := core.NewFrame(w, h, mode)
	for i, v := range vals {
		f.Set(i%w, i/w, v)
	}
	sigs, err := pack.Pack(f, catalog.Base.Pixel())
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	return f, sigs
}

func TestPlanLampCountMatchesPixelCount(t *testing.T) {
	f, sigs := frameAndPack(t, 2, 2, core.ModeGray8, []uint32{10, 20, 30, 40})
	bp := entity.NewBlueprint()
	res, err := Plan(bp, []*core.Frame{f}, [][]pack.SignalValue{sigs}, catalog.Base, Params{Quality: QualityNone})
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if len(res.LampIDs) != 4 {
		t.Fatalf("expected 4 lamps, got %d", len(res.LampIDs))
	}
	for _, id := range res.LampIDs {
		e, ok := bp.Get(id)
		if !ok || e.Kind != entity.KindLamp {
			t.Fatalf("lamp id %d missing or wrong kind", id)
		}
	}
}

func TestPlanOneBankPerFrame(t *testing.T) {
	f1, s1 := frameAndPack(t, 2, 1, core.ModeFullColor, []uint32{0xFF0000, 0x00FF00})
	f2, s2 := frameAndPack(t, 2, 1, core.ModeFullColor, []uint32{0x0000FF, 0xFFFFFF})
	bp := entity.NewBlueprint()
	res, err := Plan(bp, []*core.Frame{f1, f2}, [][]pack.SignalValue{s1, s2}, catalog.Base, Params{Quality: QualityNormal})
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if len(res.Banks) != 2 {
		t.Fatalf("expected 2 banks, got %d", len(res.Banks))
	}
	for i, bank := range res.Banks {
		if bank.FrameIndex != i+1 {
			t.Fatalf("bank %d has frame index %d", i, bank.FrameIndex)
		}
		if len(bank.CombinatorIDs) == 0 {
			t.Fatalf("bank %d has no combinators", i)
		}
	}
}

func TestBankFiltersAreDistinctExceptMarker(t *testing.T) {
	f, sigs := frameAndPack(t, 4, 4, core.ModeGray4, make([]uint32, 16))
	bp := entity.NewBlueprint()
	res, err := Plan(bp, []*core.Frame{f}, [][]pack.SignalValue{sigs}, catalog.Base, Params{Quality: QualityNormal})
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	marker := catalog.Base.FrameIndexSignal()
	for _, bank := range res.Banks {
		seen := map[catalog.Signal]int{}
		for _, id := range bank.CombinatorIDs {
			e, _ := bp.Get(id)
			payload := e.Payload.(entity.ConstantCombinatorPayload)
			for _, sec := range payload.Sections {
				for _, filt := range sec.Filters {
					if filt.Signal == marker {
						continue
					}
					seen[filt.Signal]++
					if seen[filt.Signal] > 1 {
						t.Fatalf("signal %v appears more than once in bank %d", filt.Signal, bank.FrameIndex)
					}
				}
			}
		}
	}
}

func TestEveryEntityIsPowered(t *testing.T) {
	f, sigs := frameAndPack(t, 10, 10, core.ModeGray4, make([]uint32, 100))
	bp := entity.NewBlueprint()
	_, err := Plan(bp, []*core.Frame{f}, [][]pack.SignalValue{sigs}, catalog.Base, Params{Quality: QualityNormal})
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	var powered []entity.Entity
	var nodes []entity.Entity
	for _, e := range bp.Entities {
		if e.Kind == entity.KindSubstation || e.Kind == entity.KindMediumPole {
			nodes = append(nodes, e)
		} else {
			powered = append(powered, e)
		}
	}
	if len(nodes) == 0 {
		t.Fatal("expected at least one power node")
	}
	for _, e := range powered {
		ok := false
		for _, n := range nodes {
			if Coverage(int(e.Position.X), int(e.Position.Y), int(n.Position.X), int(n.Position.Y), QualityNormal) {
				ok = true
				break
			}
		}
		if !ok {
			t.Fatalf("entity %d at %+v is not within any power node's coverage", e.ID, e.Position)
		}
	}
}

func TestPlanRejectsFrameCountMismatch(t *testing.T) {
	f, sigs := frameAndPack(t, 1, 1, core.ModeFullColor, []uint32{0})
	bp := entity.NewBlueprint()
	_, err := Plan(bp, []*core.Frame{f}, [][]pack.SignalValue{sigs, sigs}, catalog.Base, Params{Quality: QualityNormal})
	if err == nil {
		t.Fatal("expected error on mismatched frame/packed counts")
	}
}
