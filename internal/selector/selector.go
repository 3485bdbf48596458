// Package selector implements the selector logic (spec component F): the
// clock that counts ticks, and the per-bank decider network that gates
// exactly one frame bank onto the shared lamp bus each tick.
package selector

import (
	"fmt"

	"github.com/colinchilds/giftorio/internal/catalog"
	"github.com/colinchilds/giftorio/internal/entity"
	"github.com/colinchilds/giftorio/internal/layout"
)

// ErrSelectorTooWide marks a selector window that would need more than the
// two inline comparisons a decider condition list supports. The spec notes
// this never actually triggers, since ⌊T/D⌋ = k-1 always decomposes into
// exactly two comparisons; it is kept as a defensive check on that claim.
var ErrSelectorTooWide = fmt.Errorf("selector window needs more than two comparisons")

// Build wires the clock and the per-bank selector deciders into bp,
// connecting every selector's output — and, for a single bank, the bank
// itself — onto every lamp's input. row is the y coordinate layout.Plan
// reserved for the clock and selector deciders, inside the power lattice's
// footprint; dwell is D from the frame conditioner; marker is the
// catalogue's frame-index signal, the same signal the clock counts on.
func Build(bp *entity.Blueprint, lampIDs []int, banks []layout.Bank, row, dwell int, marker catalog.Signal) error {
	if len(banks) == 0 {
		return fmt.Errorf("selector: no banks to wire")
	}
	if len(banks) == 1 {
		return wireBusTo(bp, lampIDs, banks[0].CombinatorIDs[0])
	}

	n := len(banks)
	clockID, err := buildClock(bp, marker, n*dwell, row)
	if err != nil {
		return err
	}

	var deciderIDs []int
	for k, bank := range banks {
		lower := int32(k * dwell)
		upper := int32((k + 1) * dwell)
		if upper < lower {
			return ErrSelectorTooWide
		}
		payload := entity.DeciderCombinatorPayload{
			Conditions: []entity.Condition{
				{Signal: marker, Operator: entity.OpGE, Constant: lower, Join: entity.JoinAnd},
				{Signal: marker, Operator: entity.OpLess, Constant: upper},
			},
			Outputs: []entity.Output{
				{Everything: true, Source: entity.NetworkGreen},
			},
		}
		id := bp.AddEntity(entity.KindDeciderCombinator, entity.Position{X: float64(k + 2), Y: float64(row)}, payload)
		// Clock feed (red) and bank feed (green) are separate colours into
		// the same decider; red-red and green-green keep each wire's colour
		// consistent at both ends.
		if err := bp.Wire(clockID, entity.PortOutputRed, id, entity.PortInputRed); err != nil {
			return fmt.Errorf("selector: wiring clock to bank %d decider: %w", k+1, err)
		}
		if err := bp.Wire(bank.CombinatorIDs[0], entity.PortOutputGreen, id, entity.PortInputGreen); err != nil {
			return fmt.Errorf("selector: wiring bank %d to its decider: %w", k+1, err)
		}
		deciderIDs = append(deciderIDs, id)
	}

	return wireBus(bp, lampIDs, deciderIDs)
}

// buildClock adds the self-looping constant-combinator + decider-combinator
// pair that counts ticks modulo modulus on the marker signal: the constant
// seeds one tick's worth of count each pass, and the decider relays the
// running total back onto the same wire — resetting to zero once the total
// reaches modulus — closing the loop onto itself. Both entities sit at
// (x, row), alongside the selector deciders that follow at x=2, 3, ...,
// so the whole clock and selector row shares layout.Plan's reserved,
// power-covered footprint instead of drifting off it.
func buildClock(bp *entity.Blueprint, marker catalog.Signal, modulus, row int) (int, error) {
	seed := entity.ConstantCombinatorPayload{
		Sections: []entity.Section{{Filters: []entity.Filter{{Signal: marker, Value: 1, Slot: 0}}}},
	}
	seedID := bp.AddEntity(entity.KindConstantCombinator, entity.Position{X: 0, Y: float64(row)}, seed)

	clock := entity.DeciderCombinatorPayload{
		Conditions: []entity.Condition{
			{Signal: marker, Operator: entity.OpLess, Constant: int32(modulus)},
		},
		Outputs: []entity.Output{
			{Signal: marker, Source: entity.NetworkRed, CopyCount: true},
		},
	}
	clockID := bp.AddEntity(entity.KindDeciderCombinator, entity.Position{X: 1, Y: float64(row)}, clock)

	if err := bp.Wire(seedID, entity.PortOutputRed, clockID, entity.PortInputRed); err != nil {
		return 0, fmt.Errorf("selector: wiring clock seed: %w", err)
	}
	if err := bp.Wire(clockID, entity.PortOutputRed, clockID, entity.PortInputRed); err != nil {
		return 0, fmt.Errorf("selector: closing clock loop: %w", err)
	}
	return clockID, nil
}

// wireBus connects every selector decider's output to a chain of lamp
// inputs, putting every lamp and every decider on one shared network: the
// lamp bus. The bus runs on green throughout, the same colour the bank data
// already travels on, so every wire stays single-coloured at both ends.
func wireBus(bp *entity.Blueprint, lampIDs []int, deciderIDs []int) error {
	if len(lampIDs) == 0 {
		return fmt.Errorf("selector: no lamps to wire")
	}
	for i := 1; i < len(lampIDs); i++ {
		if err := bp.Wire(lampIDs[i-1], entity.PortInputGreen, lampIDs[i], entity.PortInputGreen); err != nil {
			return fmt.Errorf("selector: chaining lamp bus: %w", err)
		}
	}
	for _, id := range deciderIDs {
		if err := bp.Wire(id, entity.PortOutputGreen, lampIDs[0], entity.PortInputGreen); err != nil {
			return fmt.Errorf("selector: connecting decider to lamp bus: %w", err)
		}
	}
	return nil
}

// wireBusTo is the N=1 collapse: no clock, no selector decider — the sole
// bank's output connects straight to the lamp bus.
func wireBusTo(bp *entity.Blueprint, lampIDs []int, sourceID int) error {
	if len(lampIDs) == 0 {
		return fmt.Errorf("selector: no lamps to wire")
	}
	for i := 1; i < len(lampIDs); i++ {
		if err := bp.Wire(lampIDs[i-1], entity.PortInputGreen, lampIDs[i], entity.PortInputGreen); err != nil {
			return fmt.Errorf("selector: chaining lamp bus: %w", err)
		}
	}
	if err := bp.Wire(sourceID, entity.PortOutputGreen, lampIDs[0], entity.PortInputGreen); err != nil {
		return fmt.Errorf("selector: connecting sole bank to lamp bus: %w", err)
	}
	return nil
}
