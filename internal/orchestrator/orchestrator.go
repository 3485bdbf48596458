// Package orchestrator implements the orchestrator (spec component H): it
// validates configuration, drives conditioning, packing, layout, selector
// wiring, and envelope encoding in order, and reports progress at named
// milestones. pkg/giftorio is a thin public wrapper over this package.
package orchestrator

import (
	"errors"
	"fmt"

	"github.com/colinchilds/giftorio/internal/catalog"
	"github.com/colinchilds/giftorio/internal/condition"
	"github.com/colinchilds/giftorio/internal/core"
	"github.com/colinchilds/giftorio/internal/entity"
	"github.com/colinchilds/giftorio/internal/envelope"
	"github.com/colinchilds/giftorio/internal/layout"
	"github.com/colinchilds/giftorio/internal/pack"
	"github.com/colinchilds/giftorio/internal/selector"
)

// Quality names the substation tier a run's power grid should use.
type Quality string

const (
	QualityNone      Quality = "none"
	QualityNormal    Quality = "normal"
	QualityUncommon  Quality = "uncommon"
	QualityRare      Quality = "rare"
	QualityEpic      Quality = "epic"
	QualityLegendary Quality = "legendary"
)

// Config is the immutable, validated-once-at-entry configuration for one
// run.
type Config struct {
	TargetFPS         int
	MaxSize           int
	UseExpansion      bool
	SubstationQuality Quality
	GrayscaleBits     int
}

// TimedFrame is one decoded source frame plus its presentation delay, in
// centiseconds (image/gif's native unit).
type TimedFrame struct {
	RGBA    []byte
	W, H    int
	DelayCS int
}

// ProgressFunc reports a percent-complete milestone and a human-readable
// label; returning true requests cancellation, checked at the next
// milestone boundary.
type ProgressFunc func(percent int, status string) (cancel bool)

// ErrorKind is the flat error taxonomy from spec.md §7.
type ErrorKind string

const (
	KindBadConfig       ErrorKind = "BadConfig"
	KindEmptyInput      ErrorKind = "EmptyInput"
	KindBadSize         ErrorKind = "BadSize"
	KindBadFps          ErrorKind = "BadFps"
	KindTooManyPixels   ErrorKind = "TooManyPixels"
	KindSelectorTooWide ErrorKind = "SelectorTooWide"
	KindCancelled       ErrorKind = "Cancelled"
	KindInternal        ErrorKind = "Internal"
)

// Error is the value type every failure from this package is returned as.
type Error struct {
	Kind  ErrorKind
	Msg   string
	Cause error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("giftorio: %s: %s: %v", e.Kind, e.Msg, e.Cause)
	}
	return fmt.Sprintf("giftorio: %s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Cause }

var log = core.NewLogger("orchestrator")

func validate(cfg Config, frameCount int) error {
	if frameCount == 0 {
		return &Error{Kind: KindEmptyInput, Msg: "no frames supplied"}
	}
	if cfg.MaxSize < 2 || cfg.MaxSize > 300 {
		return &Error{Kind: KindBadSize, Msg: fmt.Sprintf("max_size %d outside [2, 300]", cfg.MaxSize)}
	}
	if cfg.TargetFPS < 1 || cfg.TargetFPS > 60 {
		return &Error{Kind: KindBadFps, Msg: fmt.Sprintf("target_fps %d outside [1, 60]", cfg.TargetFPS)}
	}
	if cfg.GrayscaleBits != 0 && cfg.GrayscaleBits != 4 && cfg.GrayscaleBits != 8 {
		return &Error{Kind: KindBadConfig, Msg: fmt.Sprintf("grayscale_bits %d must be 0, 4, or 8", cfg.GrayscaleBits)}
	}
	switch cfg.SubstationQuality {
	case "", QualityNone, QualityNormal:
	case QualityUncommon, QualityRare, QualityEpic, QualityLegendary:
		if !cfg.UseExpansion {
			return &Error{Kind: KindBadConfig, Msg: fmt.Sprintf("substation_quality %q requires use_expansion", cfg.SubstationQuality)}
		}
	default:
		return &Error{Kind: KindBadConfig, Msg: fmt.Sprintf("unrecognized substation_quality %q", cfg.SubstationQuality)}
	}
	return nil
}

// Run drives the full pipeline and returns the final blueprint string.
func Run(frames []TimedFrame, cfg Config, progress ProgressFunc) (string, error) {
	if err := validate(cfg, len(frames)); err != nil {
		return "", err
	}

	report := func(percent int, status string) error {
		if progress == nil {
			return nil
		}
		if progress(percent, status) {
			return &Error{Kind: KindCancelled, Msg: "cancelled during " + status}
		}
		return nil
	}

	if err := report(0, "Decoding"); err != nil {
		return "", err
	}

	inputs := make([]condition.Input, len(frames))
	for i, f := range frames {
		inputs[i] = condition.Input{
			Frame:   core.RawFrame{W: f.W, H: f.H, Pix: f.RGBA},
			DelayCS: f.DelayCS,
		}
	}

	if err := report(10, "Conditioning"); err != nil {
		return "", err
	}
	conditioned, dwell, err := condition.Condition(inputs, condition.Params{
		TargetFPS:     cfg.TargetFPS,
		MaxSize:       cfg.MaxSize,
		GrayscaleBits: cfg.GrayscaleBits,
	})
	if err != nil {
		return "", &Error{Kind: KindInternal, Msg: "frame conditioning failed", Cause: err}
	}

	cat := catalog.Select(cfg.UseExpansion)

	if err := report(25, "Packing"); err != nil {
		return "", err
	}
	packed := make([][]pack.SignalValue, len(conditioned))
	for i, f := range conditioned {
		sv, err := pack.Pack(f, cat.Pixel())
		if err != nil {
			if errors.Is(err, pack.ErrTooManyPixels) {
				return "", &Error{Kind: KindTooManyPixels, Msg: "catalogue too small for this configuration", Cause: err}
			}
			return "", &Error{Kind: KindInternal, Msg: "pixel packing failed", Cause: err}
		}
		packed[i] = sv
	}

	if err := report(45, "LayingOut"); err != nil {
		return "", err
	}
	bp := entity.NewBlueprint()
	res, err := layout.Plan(bp, conditioned, packed, cat, layout.Params{Quality: layout.Quality(cfg.SubstationQuality)})
	if err != nil {
		return "", &Error{Kind: KindInternal, Msg: "layout planning failed", Cause: err}
	}

	if err := report(70, "Wiring"); err != nil {
		return "", err
	}
	if err := selector.Build(bp, res.LampIDs, res.Banks, res.SelectorRow, dwell, cat.FrameIndexSignal()); err != nil {
		if errors.Is(err, selector.ErrSelectorTooWide) {
			return "", &Error{Kind: KindSelectorTooWide, Msg: "selector window needs more than two comparisons", Cause: err}
		}
		return "", &Error{Kind: KindInternal, Msg: "selector wiring failed", Cause: err}
	}

	if err := report(90, "Encoding"); err != nil {
		return "", err
	}
	icons := []catalog.Signal{cat.FrameIndexSignal()}
	if len(packed) > 0 && len(packed[0]) > 0 {
		icons = append(icons, packed[0][0].Signal)
	}
	out, err := envelope.Encode(bp, "giftorio", icons)
	if err != nil {
		return "", &Error{Kind: KindInternal, Msg: "envelope encoding failed", Cause: err}
	}

	if err := report(100, "Done"); err != nil {
		return "", err
	}
	log.Infof("produced blueprint: %d entities, %d wires, %d bytes", len(bp.Entities), len(bp.Wires), len(out))
	return out, nil
}
