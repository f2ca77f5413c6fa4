package systems

import (
	"github.com/automoto/pacdots/components"
	cfg "github.com/automoto/pacdots/config"
	"github.com/yohamta/donburi"
)

// GetOrCreateAudio returns the singleton Audio component for this world, creating it if needed
func GetOrCreateAudio(w donburi.World) *components.AudioData {
	entry, ok := components.Audio.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			PendingSFX:   make([]cfg.SoundID, 0, 8),
			CueDurations: make(map[cfg.SoundID]float64),
		})
	}
	return components.Audio.Get(entry)
}

// PlaySFX queues a sound effect to be played
func PlaySFX(w donburi.World, sound cfg.SoundID) {
	if sound == cfg.SoundNone {
		return
	}
	audioData := GetOrCreateAudio(w)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// DrainSFX returns the queued sound effects and empties the queue.
func DrainSFX(w donburi.World) []cfg.SoundID {
	audioData := GetOrCreateAudio(w)
	if len(audioData.PendingSFX) == 0 {
		return nil
	}
	pending := append([]cfg.SoundID(nil), audioData.PendingSFX...)
	audioData.PendingSFX = audioData.PendingSFX[:0]
	return pending
}

// RegisterCueDuration records how long a decoded cue plays, in seconds.
func RegisterCueDuration(w donburi.World, sound cfg.SoundID, seconds float64) {
	GetOrCreateAudio(w).CueDurations[sound] = seconds
}

// CueDuration reports the registered length of a cue.
func CueDuration(w donburi.World, sound cfg.SoundID) (float64, bool) {
	d, ok := GetOrCreateAudio(w).CueDurations[sound]
	return d, ok
}
