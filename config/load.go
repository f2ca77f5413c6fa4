package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the layout of an optional YAML override file. Sections that are
// present are decoded on top of the current values, so a file only needs to
// name what it changes. Entries under hazard.types replace the whole variant.
type File struct {
	Game   *Config       `yaml:"game"`
	Actor  *ActorConfig  `yaml:"actor"`
	Hazard *HazardConfig `yaml:"hazard"`
	Ghost  *GhostConfig  `yaml:"ghost"`
	Label  *LabelConfig  `yaml:"label"`
	Audio  *AudioConfig  `yaml:"audio"`
	Log    *LogConfig    `yaml:"log"`
	Debug  *DebugConfig  `yaml:"debug"`
}

// LoadFile applies the YAML overrides stored at path.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := Apply(data); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

// Apply decodes YAML overrides onto the global configuration and validates
// the result.
func Apply(data []byte) error {
	f := File{
		Game:   C,
		Actor:  &Actor,
		Hazard: &Hazard,
		Ghost:  &Ghost,
		Label:  &Label,
		Audio:  &Audio,
		Log:    &Log,
		Debug:  &Debug,
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("decode yaml: %w", err)
	}
	return Validate()
}

// Validate reports the first configuration value the game cannot run with.
func Validate() error {
	if C.TPS <= 0 {
		return fmt.Errorf("game.tps must be positive, got %d", C.TPS)
	}
	if C.CellSize <= 0 {
		return fmt.Errorf("game.cellSize must be positive, got %d", C.CellSize)
	}
	if Actor.Speed < 0 {
		return fmt.Errorf("actor.speed must not be negative, got %v", Actor.Speed)
	}
	if Actor.StartingLives <= 0 {
		return fmt.Errorf("actor.startingLives must be positive, got %d", Actor.StartingLives)
	}
	if Audio.SFXVolume < 0 || Audio.SFXVolume > 1 {
		return fmt.Errorf("audio.sfxVolume must be between 0 and 1, got %v", Audio.SFXVolume)
	}
	if _, ok := Hazard.Types[Hazard.DefaultKind]; !ok {
		return fmt.Errorf("hazard.defaultKind %q has no type entry", Hazard.DefaultKind)
	}
	if _, ok := Hazard.Types[Hazard.MarkerKind]; !ok {
		return fmt.Errorf("hazard.markerKind %q has no type entry", Hazard.MarkerKind)
	}
	for kind, t := range Hazard.Types {
		if t.TrailingOffset < 0 {
			return fmt.Errorf("hazard.types.%s.trailingOffset must not be negative", kind)
		}
	}
	return nil
}
