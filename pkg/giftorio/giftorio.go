// Package giftorio converts a decoded animated GIF's frames into an
// importable blueprint string for a factory-automation game whose in-world
// circuit network drives a lamp grid. It is a pure library: no CLI, no
// environment variables, no persisted state — callers decode the source
// image and report progress; this package does everything in between.
package giftorio

import "github.com/colinchilds/giftorio/internal/orchestrator"

// Quality names a substation tier for the blueprint's power grid.
type Quality = orchestrator.Quality

const (
	QualityNone      = orchestrator.QualityNone
	QualityNormal    = orchestrator.QualityNormal
	QualityUncommon  = orchestrator.QualityUncommon
	QualityRare      = orchestrator.QualityRare
	QualityEpic      = orchestrator.QualityEpic
	QualityLegendary = orchestrator.QualityLegendary
)

// Config controls one MakeBlueprint run. Every field is validated at the
// start of the run, before any frame is touched.
type Config = orchestrator.Config

// TimedFrame is one decoded source frame plus its presentation delay in
// centiseconds — the unit image/gif.GIF.Delay already uses.
type TimedFrame = orchestrator.TimedFrame

// ProgressFunc reports milestone progress; returning true requests
// cancellation, honoured at the next milestone boundary.
type ProgressFunc = orchestrator.ProgressFunc

// ErrorKind is the flat error taxonomy every failure from this package
// belongs to.
type ErrorKind = orchestrator.ErrorKind

const (
	KindBadConfig       = orchestrator.KindBadConfig
	KindEmptyInput      = orchestrator.KindEmptyInput
	KindBadSize         = orchestrator.KindBadSize
	KindBadFps          = orchestrator.KindBadFps
	KindTooManyPixels   = orchestrator.KindTooManyPixels
	KindSelectorTooWide = orchestrator.KindSelectorTooWide
	KindCancelled       = orchestrator.KindCancelled
	KindInternal        = orchestrator.KindInternal
)

// Error is the value type returned for every failure; it supports
// errors.Is/errors.As via Unwrap.
type Error = orchestrator.Error

// MakeBlueprint runs the full pipeline — conditioning, packing, layout,
// selector wiring, and envelope encoding — and returns the final
// printable-ASCII blueprint string, or an error of dynamic type *Error.
func MakeBlueprint(frames []TimedFrame, cfg Config, progress ProgressFunc) (string, error) {
	return orchestrator.Run(frames, cfg, progress)
}
