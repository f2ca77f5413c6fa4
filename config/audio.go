package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundIntro
	SoundChomp
	SoundDeathBall
	SoundDeath
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate int     `yaml:"sampleRate"`
	SFXVolume  float64 `yaml:"sfxVolume"`
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func resetAudio() {
	Audio = AudioConfig{
		SampleRate: 44100,
		SFXVolume:  0.8,
	}

	Sound = SoundConfig{
		SFXPaths: map[SoundID]string{
			SoundIntro:     "audio/intro.wav",
			SoundChomp:     "audio/chomp.wav",
			SoundDeathBall: "audio/deathball.wav",
			SoundDeath:     "audio/death.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundIntro: 0.7,
		},
	}
}

// ClampVolume limits a volume to the 0..1 range the mixer accepts.
func ClampVolume(v float64) float64 {
	return min(max(v, 0), 1)
}
