package entity

import "github.com/colinchilds/giftorio/internal/catalog"

// LampPayload configures a lamp to display whatever colour is present on
// its input wire, gated by a circuit condition on the signal assigned to
// this lamp's pixel group (so a lamp lights only for its own group, even
// though every lamp shares one broadcast bus carrying every bank signal at
// once). BitOffset/BitWidth locate this lamp's pixel within a word shared
// by several lamps (grayscale packing puts up to 8 pixels in one signal);
// the game's lamp colour-mode condition can mask a signal to a bit range
// natively, so a full-colour lamp (one pixel per word) simply spans the
// whole word.
type LampPayload struct {
	UseColors bool
	Signal    catalog.Signal
	BitOffset int
	BitWidth  int
}

// NewLampPayload returns a lamp payload gated on the given signal, reading
// the entire word (the full-colour case: one pixel occupies the whole
// signal value).
func NewLampPayload(sig catalog.Signal) LampPayload {
	return LampPayload{UseColors: true, Signal: sig, BitOffset: 0, BitWidth: 32}
}

// NewLampPayloadBits returns a lamp payload gated on the given signal,
// reading only the [offset, offset+width) bit range of the shared word —
// the grayscale case, where several lamps' pixels are packed into one
// signal and each lamp reads its own byte or nibble lane.
func NewLampPayloadBits(sig catalog.Signal, offset, width int) LampPayload {
	return LampPayload{UseColors: true, Signal: sig, BitOffset: offset, BitWidth: width}
}

// Filter is one constant-combinator slot: a fixed signal/value pair.
type Filter struct {
	Signal catalog.Signal
	Value  int32
	Slot   int
}

// Section is an ordered list of up to S filters within one
// constant-combinator bank entry.
type Section struct {
	Filters []Filter
}

// ConstantCombinatorPayload is an ordered list of up to K sections.
type ConstantCombinatorPayload struct {
	Sections []Section
}

// Operator enumerates decider-combinator comparison operators.
type Operator string

const (
	OpLess    Operator = "<"
	OpGreater Operator = ">"
	OpEqual   Operator = "="
	OpLE      Operator = "<="
	OpGE      Operator = ">="
	OpNE      Operator = "!="
)

// Join enumerates how a condition combines with the one after it.
type Join string

const (
	JoinAnd Join = "and"
	JoinOr  Join = "or"
)

// Condition is one comparison in a decider combinator's condition list.
type Condition struct {
	Signal   catalog.Signal
	Operator Operator
	Constant int32
	Join     Join // how this condition combines with the next one; ignored on the last condition
}

// Network identifies which coloured input network an output reads from.
type Network string

const (
	NetworkRed   Network = "input-red"
	NetworkGreen Network = "input-green"
)

// Output is one decider-combinator output declaration.
type Output struct {
	Signal      catalog.Signal
	Everything  bool // true means "everything", ignoring Signal
	Source      Network
	CopyCount   bool // copy the triggering network's count instead of emitting 1
}

// DeciderCombinatorPayload is an ordered condition list (AND/OR-joined) plus
// an ordered list of output declarations.
type DeciderCombinatorPayload struct {
	Conditions []Condition
	Outputs    []Output
}

// PowerPayload records a power entity's quality tier, blank for the base
// tier (the game omits the quality field entirely for "normal").
type PowerPayload struct {
	Quality string
}
