package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/pacdots/components"
	"github.com/automoto/pacdots/input"
	"github.com/automoto/pacdots/render"
	"github.com/automoto/pacdots/sound"
	"github.com/automoto/pacdots/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameOverScene displays the final score and offers a retry
type GameOverScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	levelPath    string
	finalScore   int
	once         sync.Once
}

// NewGameOverScene creates a new game over scene
func NewGameOverScene(sc SceneChanger, levelPath string, finalScore int) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, levelPath: levelPath, finalScore: finalScore}
}

func (gs *GameOverScene) Update() error {
	gs.once.Do(gs.configure)
	gs.ecs.Update()

	gameOver := systems.GetOrCreateGameOver(gs.ecs.World)
	if input.MenuJustPressed(input.MenuUp) {
		systems.MoveGameOverSelection(gameOver, -1)
	}
	if input.MenuJustPressed(input.MenuDown) {
		systems.MoveGameOverSelection(gameOver, 1)
	}
	if input.MenuJustPressed(input.MenuSelect) {
		switch gameOver.SelectedOption {
		case components.GameOverRetry:
			gs.sceneChanger.ChangeScene(NewWorldScene(gs.sceneChanger, gs.levelPath))
		case components.GameOverQuit:
			return ebiten.Termination
		}
	}
	return nil
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())
	systems.GetOrCreateGameOver(gs.ecs.World).FinalScore = gs.finalScore

	gs.ecs.AddSystem(sound.UpdateAudio)
	gs.ecs.AddRenderer(layerWorld, render.DrawGameOver)
}
