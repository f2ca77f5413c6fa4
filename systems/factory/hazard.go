package factory

import (
	"fmt"

	"github.com/automoto/pacdots/archetypes"
	"github.com/automoto/pacdots/components"
	cfg "github.com/automoto/pacdots/config"
	"github.com/automoto/pacdots/gamemath"
	"github.com/automoto/pacdots/score"
	"github.com/automoto/pacdots/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateHazard spawns an armed hazard of the given kind. The removal delay
// comes from the registered length of the kind's audio cue, so cues must be
// registered first.
func CreateHazard(w donburi.World, kind string, pos gamemath.Vec3, sc *score.Score) (*donburi.Entry, error) {
	typeCfg, ok := cfg.Hazard.Types[kind]
	if !ok {
		return nil, fmt.Errorf("hazard %q: %w", kind, ErrUnknownHazard)
	}

	cue, ok := cueDuration(w, typeCfg.Sound)
	if !ok {
		return nil, fmt.Errorf("hazard %q sound %d: %w", kind, typeCfg.Sound, ErrMissingAudioCue)
	}
	if _, ok := components.Space.First(w); !ok {
		return nil, fmt.Errorf("hazard %q: %w", kind, ErrNoSpace)
	}

	hazard := archetypes.Hazard.Spawn(w)

	size := typeCfg.Radius * 2
	obj := resolv.NewObject(pos.X-typeCfg.Radius, pos.Z-typeCfg.Radius, size, size, tags.ResolvHazard)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = hazard
	components.Object.SetValue(hazard, components.ObjectData{Object: obj})

	components.Hazard.SetValue(hazard, components.HazardData{
		Kind:           kind,
		State:          components.HazardArmed,
		Points:         typeCfg.Points,
		ShowLabel:      typeCfg.ShowLabel,
		LabelText:      typeCfg.LabelText,
		Sound:          typeCfg.Sound,
		CueDuration:    cue,
		TrailingOffset: typeCfg.TrailingOffset,
		Position:       pos,
		Radius:         typeCfg.Radius,
		Visible:        true,
		Score:          sc,
	})

	if err := addToSpace(w, obj); err != nil {
		w.Remove(hazard.Entity())
		return nil, err
	}
	return hazard, nil
}

// cueDuration looks up a decoded cue length. A hazard without a sound has a
// zero-length cue.
func cueDuration(w donburi.World, sound cfg.SoundID) (float64, bool) {
	if sound == cfg.SoundNone {
		return 0, true
	}
	entry, ok := components.Audio.First(w)
	if !ok {
		return 0, false
	}
	d, ok := components.Audio.Get(entry).CueDurations[sound]
	return d, ok
}
