package components

import (
	cfg "github.com/automoto/pacdots/config"
	"github.com/automoto/pacdots/gamemath"
	"github.com/automoto/pacdots/score"
	"github.com/yohamta/donburi"
)

// HazardState is the lifecycle of a hazard. It only ever moves forward.
type HazardState int

const (
	HazardArmed HazardState = iota
	HazardConsumed
	HazardRemoved
)

func (s HazardState) String() string {
	switch s {
	case HazardArmed:
		return "armed"
	case HazardConsumed:
		return "consumed"
	case HazardRemoved:
		return "removed"
	}
	return "unknown"
}

type HazardData struct {
	Kind           string
	State          HazardState
	Points         int
	ShowLabel      bool
	LabelText      string // fixed label text, empty means the point value
	Sound          cfg.SoundID
	CueDuration    float64 // seconds, from the registered audio cue
	TrailingOffset float64 // seconds kept after the cue so the label can finish
	Position       gamemath.Vec3
	Radius         float64
	Visible        bool
	ConsumedAt     float64
	Score          *score.Score
}

// RemovalDelay is how long a consumed hazard lingers before it is destroyed.
func (h *HazardData) RemovalDelay() float64 {
	return h.CueDuration + h.TrailingOffset
}

var Hazard = donburi.NewComponentType[HazardData]()
