package main

import (
	"errors"
	"flag"

	"github.com/automoto/pacdots/config"
	"github.com/automoto/pacdots/fonts"
	"github.com/automoto/pacdots/logging"
	"github.com/automoto/pacdots/scenes"
	"github.com/automoto/pacdots/sound"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type Game struct {
	scene scenes.Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene scenes.Scene) {
	g.scene = scene
}

func NewGame() *Game {
	g := &Game{}
	g.scene = scenes.NewWorldScene(g, config.C.LevelPath)
	return g
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the built-in configuration")
	levelPath := flag.String("level", "", "TMX level to play (embedded path or file on disk)")
	debug := flag.Bool("debug", false, "draw hitboxes and log at debug level")
	volume := flag.Float64("volume", -1, "sound effect volume from 0 to 1 (default from config)")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			bootLogger().Fatal("load config", zap.Error(err))
		}
	}
	if *levelPath != "" {
		config.C.LevelPath = *levelPath
	}
	if *debug {
		config.Debug.DrawHitboxes = true
		config.Log.Level = "debug"
	}

	logger, err := logging.New(config.Log)
	if err != nil {
		bootLogger().Fatal("build logger", zap.Error(err))
	}
	defer func() { _ = logger.Sync() }()
	logging.SetLogger(logger)

	if err := fonts.LoadDefaults(); err != nil {
		logger.Fatal("load fonts", zap.Error(err))
	}
	if *volume >= 0 {
		sound.SetSFXVolume(config.ClampVolume(*volume))
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)

	logger.Info("starting", zap.String("level", config.C.LevelPath), zap.Int("tps", config.C.TPS))
	if err := ebiten.RunGame(NewGame()); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("game stopped", zap.Error(err))
	}
}

// bootLogger is used before the configured logger exists.
func bootLogger() *zap.Logger {
	l, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return l
}
