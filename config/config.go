package config

import "image/color"

// Config contains window and loop settings
type Config struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TPS       int    `yaml:"tps"` // simulation ticks per second
	LevelPath string `yaml:"level"`
	CellSize  int    `yaml:"cellSize"` // resolv space cell size in world units
}

// ActorConfig contains player-related configuration values
type ActorConfig struct {
	Speed          float64 `yaml:"speed"`          // world units per second
	CollisionSize  float64 `yaml:"collisionSize"`  // square hitbox edge
	StartingLives  int     `yaml:"startingLives"`
	RespawnDelay   float64 `yaml:"respawnDelay"`   // seconds between death and reset
	GameOverDelay  float64 `yaml:"gameOverDelay"`  // seconds between last death and game over
	IntroGate      bool    `yaml:"introGate"`      // hold input until the intro cue has played
	IntroLeadTime  float64 `yaml:"introLeadTime"`  // seconds before the end of the intro cue that input opens
	BlockedByWalls bool    `yaml:"blockedByWalls"` // undo moves that would overlap a wall
}

// HazardTypeConfig describes one hazard variant
type HazardTypeConfig struct {
	Points         int     `yaml:"points"`
	ShowLabel      bool    `yaml:"showLabel"`
	LabelText      string  `yaml:"labelText"`      // fixed label text; empty = point value
	TrailingOffset float64 `yaml:"trailingOffset"` // seconds added after the audio cue before removal
	Sound          SoundID `yaml:"sound"`
	Radius         float64 `yaml:"radius"`
}

// HazardConfig contains hazard (death ball / dot) configuration
type HazardConfig struct {
	Types       map[string]HazardTypeConfig `yaml:"types"`
	DefaultKind string                      `yaml:"defaultKind"`
	MarkerKind  string                      `yaml:"markerKind"` // kind spawned by level dot markers
}

// GhostConfig contains enemy configuration
type GhostConfig struct {
	Size            float64 `yaml:"size"`
	PatrolDuration  float64 `yaml:"patrolDuration"` // seconds for one leg of the patrol
	DefaultDistance float64 `yaml:"defaultDistance"`
}

// LabelConfig contains floating score text configuration
type LabelConfig struct {
	RiseDistance float64 `yaml:"riseDistance"`
	Duration     float64 `yaml:"duration"`
}

// HUDConfig contains on-screen display values
type HUDConfig struct {
	Margin          float64
	Height          float64 // strip above the maze holding score and lives
	BackgroundColor color.RGBA
	WallColor       color.RGBA
	PlayerColor     color.RGBA
	DeadPlayerColor color.RGBA
	GhostColor      color.RGBA
	HazardColors    map[string]color.RGBA
	TextColor       color.RGBA
	LabelColor      color.RGBA
}

// LogConfig contains logger settings
type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	DrawHitboxes bool `yaml:"drawHitboxes"`
}

// Global configuration instances
var C *Config
var Actor ActorConfig
var Hazard HazardConfig
var Ghost GhostConfig
var Label LabelConfig
var HUD HUDConfig
var Log LogConfig
var Debug DebugConfig

var (
	White       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow      = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	PaleYellow  = color.RGBA{R: 255, G: 230, B: 160, A: 255}
	Orange      = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red         = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed    = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Blue        = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	DarkBlue    = color.RGBA{R: 10, G: 10, B: 40, A: 255}
	Gray        = color.RGBA{R: 120, G: 120, B: 120, A: 255}
	BrightGreen = color.RGBA{R: 0, G: 255, B: 60, A: 255}
)

// Hazard kinds shipped with the game
const (
	HazardDeathBall     = "deathball"
	HazardPacDot        = "pacdot"
	HazardPacDotClassic = "pacdot_classic"
)

func init() {
	Reset()
}

// Reset restores every configuration value to its built-in default.
func Reset() {
	C = &Config{
		Title:     "Pacdots",
		Width:     448,
		Height:    520,
		TPS:       60,
		LevelPath: "levels/level01.tmx",
		CellSize:  16,
	}

	Actor = ActorConfig{
		Speed:          90.0,
		CollisionSize:  12.0,
		StartingLives:  3,
		RespawnDelay:   1.5,
		GameOverDelay:  1.0,
		IntroGate:      true,
		IntroLeadTime:  0.5,
		BlockedByWalls: true,
	}

	Hazard = HazardConfig{
		Types: map[string]HazardTypeConfig{
			// Plain death ball: plays its cue and vanishes, no points
			HazardDeathBall: {
				Points:         0,
				ShowLabel:      false,
				TrailingOffset: 0,
				Sound:          SoundDeathBall,
				Radius:         6,
			},
			// Food pellet: awards points and leaves the label up a little longer
			HazardPacDot: {
				Points:         100,
				ShowLabel:      true,
				TrailingOffset: 1.0,
				Sound:          SoundChomp,
				Radius:         3,
			},
			HazardPacDotClassic: {
				Points:         100,
				ShowLabel:      true,
				LabelText:      "100",
				TrailingOffset: 1.0,
				Sound:          SoundChomp,
				Radius:         3,
			},
		},
		DefaultKind: HazardPacDot,
		MarkerKind:  HazardPacDot,
	}

	Ghost = GhostConfig{
		Size:            14,
		PatrolDuration:  2.5,
		DefaultDistance: 96,
	}

	Label = LabelConfig{
		RiseDistance: 12,
		Duration:     0.8,
	}

	HUD = HUDConfig{
		Margin:          6,
		Height:          24,
		BackgroundColor: DarkBlue,
		WallColor:       Blue,
		PlayerColor:     Yellow,
		DeadPlayerColor: Gray,
		GhostColor:      LightRed,
		HazardColors: map[string]color.RGBA{
			HazardDeathBall:     Orange,
			HazardPacDot:        PaleYellow,
			HazardPacDotClassic: PaleYellow,
		},
		TextColor:  White,
		LabelColor: BrightGreen,
	}

	Log = LogConfig{
		Level:       "info",
		Development: true,
	}

	Debug = DebugConfig{
		DrawHitboxes: false,
	}

	resetAudio()
}
