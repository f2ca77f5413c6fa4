package components

import (
	cfg "github.com/automoto/pacdots/config"
	"github.com/yohamta/donburi"
)

// AudioData is the per-world audio singleton. Systems queue cues in
// PendingSFX; the playback system drains the queue every frame. CueDurations
// holds the length of every decoded cue in seconds.
type AudioData struct {
	PendingSFX   []cfg.SoundID
	CueDurations map[cfg.SoundID]float64
}

var Audio = donburi.NewComponentType[AudioData]()
