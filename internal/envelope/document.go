package envelope

import (
	"fmt"

	"github.com/colinchilds/giftorio/internal/catalog"
	"github.com/colinchilds/giftorio/internal/entity"
)

// BlueprintVersion is the packed (major, minor, patch, build) version int64
// the spec's two blueprint-version Open Question resolves to: 1.1.110.0,
// a recent-enough released build at the time this pipeline was written. It
// is a compile-time constant: Encode always emits exactly this value.
const BlueprintVersion int64 = 281479278886912

// signalDoc is the wire shape of a signal reference.
type signalDoc struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

func toSignalDoc(s catalog.Signal) signalDoc {
	return signalDoc{Type: string(s.Category), Name: s.Name}
}

type iconDoc struct {
	Signal signalDoc `json:"signal"`
	Index  int       `json:"index"`
}

type positionDoc struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type filterDoc struct {
	Index  int       `json:"index"`
	Signal signalDoc `json:"signal"`
	Count  int32     `json:"count"`
}

type sectionDoc struct {
	Index   int         `json:"index"`
	Filters []filterDoc `json:"filters"`
}

type constantBehaviorDoc struct {
	Sections []sectionDoc `json:"sections"`
}

type conditionDoc struct {
	FirstSignal signalDoc `json:"first_signal"`
	Comparator  string    `json:"comparator"`
	Constant    int32     `json:"constant"`
	CompareType string    `json:"compare_type,omitempty"`
}

type deciderOutputDoc struct {
	Signal             *signalDoc `json:"signal,omitempty"`
	NetworksFromCount  string     `json:"network_from_count"`
	CopyCountFromInput bool       `json:"copy_count_from_input"`
}

type deciderBehaviorDoc struct {
	Conditions []conditionDoc     `json:"conditions"`
	Outputs    []deciderOutputDoc `json:"outputs"`
}

// lampBehaviorDoc carries the circuit gating this pipeline assigns to a
// lamp: which signal lights it, and which bit range of that signal's value
// this lamp reads (grayscale packing shares one signal across up to eight
// lamps, each reading its own byte or nibble lane; full-colour spans the
// whole 32-bit value).
type lampBehaviorDoc struct {
	UseColors bool      `json:"use_colors"`
	Signal    signalDoc `json:"signal"`
	BitOffset int       `json:"bit_offset"`
	BitWidth  int       `json:"bit_width"`
}

// controlBehaviorDoc is a flattened union: exactly one of Sections,
// Decider, or Lamp is set, mirroring how the game's own JSON schema
// distinguishes entity behaviour by which keys are present rather than a
// discriminant field.
type controlBehaviorDoc struct {
	Sections []sectionDoc        `json:"sections,omitempty"`
	Decider  *deciderBehaviorDoc `json:"decider_conditions,omitempty"`
	Lamp     *lampBehaviorDoc    `json:"lamp_condition,omitempty"`
}

type entityDoc struct {
	EntityNumber    int                 `json:"entity_number"`
	Name            string              `json:"name"`
	Position        positionDoc         `json:"position"`
	Quality         string              `json:"quality,omitempty"`
	ControlBehavior *controlBehaviorDoc `json:"control_behavior,omitempty"`
}

type blueprintDoc struct {
	Item     string      `json:"item"`
	Label    string      `json:"label"`
	Version  int64       `json:"version"`
	Icons    []iconDoc   `json:"icons"`
	Entities []entityDoc `json:"entities"`
	Wires    [][4]int    `json:"wires"`
}

type documentEnvelope struct {
	Blueprint blueprintDoc `json:"blueprint"`
}

func toDocument(bp *entity.Blueprint, label string, icons []catalog.Signal) (*documentEnvelope, error) {
	entities := make([]entityDoc, 0, len(bp.Entities))
	for _, e := range bp.Entities {
		doc := entityDoc{
			EntityNumber: e.ID,
			Name:         string(e.Kind),
			Position:     positionDoc{X: e.Position.X, Y: e.Position.Y},
		}
		switch p := e.Payload.(type) {
		case entity.ConstantCombinatorPayload:
			doc.ControlBehavior = &controlBehaviorDoc{Sections: toConstantBehavior(p).Sections}
		case entity.DeciderCombinatorPayload:
			doc.ControlBehavior = &controlBehaviorDoc{Decider: toDeciderBehavior(p)}
		case entity.LampPayload:
			doc.ControlBehavior = &controlBehaviorDoc{Lamp: toLampBehavior(p)}
		case entity.PowerPayload:
			doc.Quality = p.Quality
		default:
			return nil, fmt.Errorf("envelope: entity %d has unrecognized payload %T", e.ID, e.Payload)
		}
		entities = append(entities, doc)
	}

	wires := make([][4]int, 0, len(bp.Wires))
	for _, w := range bp.Wires {
		wires = append(wires, [4]int{w.AID, int(w.APort), w.BID, int(w.BPort)})
	}

	iconDocs := make([]iconDoc, 0, len(icons))
	for i, s := range icons {
		iconDocs = append(iconDocs, iconDoc{Signal: toSignalDoc(s), Index: i + 1})
	}

	return &documentEnvelope{Blueprint: blueprintDoc{
		Item:     "blueprint",
		Label:    label,
		Version:  BlueprintVersion,
		Icons:    iconDocs,
		Entities: entities,
		Wires:    wires,
	}}, nil
}

func toConstantBehavior(p entity.ConstantCombinatorPayload) *constantBehaviorDoc {
	sections := make([]sectionDoc, 0, len(p.Sections))
	for si, sec := range p.Sections {
		filters := make([]filterDoc, 0, len(sec.Filters))
		for _, f := range sec.Filters {
			filters = append(filters, filterDoc{Index: f.Slot + 1, Signal: toSignalDoc(f.Signal), Count: f.Value})
		}
		sections = append(sections, sectionDoc{Index: si + 1, Filters: filters})
	}
	return &constantBehaviorDoc{Sections: sections}
}

func toLampBehavior(p entity.LampPayload) *lampBehaviorDoc {
	return &lampBehaviorDoc{
		UseColors: p.UseColors,
		Signal:    toSignalDoc(p.Signal),
		BitOffset: p.BitOffset,
		BitWidth:  p.BitWidth,
	}
}

func toDeciderBehavior(p entity.DeciderCombinatorPayload) *deciderBehaviorDoc {
	conds := make([]conditionDoc, 0, len(p.Conditions))
	for _, c := range p.Conditions {
		cd := conditionDoc{FirstSignal: toSignalDoc(c.Signal), Comparator: string(c.Operator), Constant: c.Constant}
		if c.Join != "" {
			cd.CompareType = string(c.Join)
		}
		conds = append(conds, cd)
	}
	outs := make([]deciderOutputDoc, 0, len(p.Outputs))
	for _, o := range p.Outputs {
		od := deciderOutputDoc{NetworksFromCount: string(o.Source), CopyCountFromInput: o.CopyCount}
		if !o.Everything {
			sd := toSignalDoc(o.Signal)
			od.Signal = &sd
		}
		outs = append(outs, od)
	}
	return &deciderBehaviorDoc{Conditions: conds, Outputs: outs}
}
