package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Scene is one screen of the game
type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// SceneChanger swaps the active scene
type SceneChanger interface {
	ChangeScene(scene Scene)
}

const (
	layerWorld ecs.LayerID = iota
	layerHUD
)

// worldSystem adapts a headless system to the ECS scheduler.
func worldSystem(f func(w donburi.World)) ecs.System {
	return func(e *ecs.ECS) {
		f(e.World)
	}
}
