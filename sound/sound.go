// Package sound plays the cues queued by the simulation through ebiten's
// audio context.
package sound

import (
	"sync"

	"github.com/automoto/pacdots/assets"
	cfg "github.com/automoto/pacdots/config"
	"github.com/automoto/pacdots/logging"
	"github.com/automoto/pacdots/systems"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalSFXVolume    float64
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
		globalSFXVolume = cfg.Audio.SFXVolume
	})
}

// PreloadAll decodes every sound effect and registers its length with the
// world, so hazards can be timed by their cue. A cue that fails to decode
// is left unregistered; hazards using it will refuse to spawn.
func PreloadAll(w donburi.World) {
	initGlobalAudio()

	for id, path := range cfg.Sound.SFXPaths {
		if err := globalAudioLoader.PreloadSFX(path); err != nil {
			logging.L().Error("preload sound", zap.String("path", path), zap.Error(err))
			continue
		}
		d, err := globalAudioLoader.Duration(path)
		if err != nil {
			continue
		}
		systems.RegisterCueDuration(w, id, d)
		logging.L().Debug("sound ready", zap.String("path", path), zap.Float64("seconds", d))
	}
}

// UpdateAudio plays every sound effect queued this tick
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()
	for _, soundID := range systems.DrainSFX(e.World) {
		playSFX(soundID)
	}
}

func playSFX(soundID cfg.SoundID) {
	if globalSFXVolume <= 0 {
		return
	}

	path, ok := cfg.Sound.SFXPaths[soundID]
	if !ok {
		return
	}

	player, err := globalAudioLoader.LoadSFX(path)
	if err != nil {
		logging.L().Warn("play sound", zap.String("path", path), zap.Error(err))
		return
	}

	volume := globalSFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}

	player.SetVolume(volume)
	player.Play()
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(volume float64) {
	initGlobalAudio()
	globalSFXVolume = volume
}
