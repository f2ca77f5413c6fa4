package scenes

import (
	"fmt"
	"sync"

	"github.com/automoto/pacdots/assets"
	"github.com/automoto/pacdots/input"
	"github.com/automoto/pacdots/logging"
	"github.com/automoto/pacdots/render"
	"github.com/automoto/pacdots/score"
	"github.com/automoto/pacdots/sound"
	"github.com/automoto/pacdots/systems"
	"github.com/automoto/pacdots/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// WorldScene runs one maze: the player, its dots and the ghosts.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	levelPath    string
	score        *score.Score
	once         sync.Once
	err          error
}

// NewWorldScene creates a scene playing the level at levelPath.
func NewWorldScene(sc SceneChanger, levelPath string) *WorldScene {
	return &WorldScene{sceneChanger: sc, levelPath: levelPath, score: score.New()}
}

func (ws *WorldScene) Update() error {
	ws.once.Do(ws.configure)
	if ws.err != nil {
		return ws.err
	}
	ws.ecs.Update()

	if systems.IsGameOver(ws.ecs.World) {
		logging.L().Info("game over", zap.Int("score", ws.score.Current()))
		ws.sceneChanger.ChangeScene(NewGameOverScene(ws.sceneChanger, ws.levelPath, ws.score.Current()))
	}
	return nil
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	world := donburi.NewWorld()
	ws.ecs = ecs.NewECS(world)

	systems.RegisterContactHandlers(world)
	// cue lengths must be known before hazards are built
	sound.PreloadAll(world)

	level, err := assets.LoadLevel(ws.levelPath)
	if err != nil {
		ws.err = err
		return
	}
	player, err := factory.PopulateLevel(world, level, ws.score)
	if err != nil {
		ws.err = fmt.Errorf("populate %s: %w", ws.levelPath, err)
		return
	}
	systems.StartIntroGate(world, player)

	ws.ecs.AddSystem(worldSystem(systems.UpdateClock))
	ws.ecs.AddSystem(input.UpdateInput)
	ws.ecs.AddSystem(worldSystem(systems.UpdateActors))
	ws.ecs.AddSystem(worldSystem(systems.UpdateGhosts))
	ws.ecs.AddSystem(worldSystem(systems.UpdateObjects))
	ws.ecs.AddSystem(worldSystem(systems.UpdateContacts))
	ws.ecs.AddSystem(worldSystem(systems.UpdateLabels))
	ws.ecs.AddSystem(sound.UpdateAudio)

	ws.ecs.AddRenderer(layerWorld, render.DrawLevel)
	ws.ecs.AddRenderer(layerWorld, render.DrawHazards)
	ws.ecs.AddRenderer(layerWorld, render.DrawGhosts)
	ws.ecs.AddRenderer(layerWorld, render.DrawActors)
	ws.ecs.AddRenderer(layerWorld, render.DrawLabels)
	ws.ecs.AddRenderer(layerWorld, render.DrawHitboxes)
	ws.ecs.AddRenderer(layerHUD, render.NewDrawHUD(ws.score))
}
