package render

import (
	"github.com/automoto/pacdots/components"
	cfg "github.com/automoto/pacdots/config"
	"github.com/automoto/pacdots/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawLevel clears to the background colour and draws every wall.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.HUD.BackgroundColor)

	h := levelHeight(e.World)
	tags.Wall.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		x, y, w, d := rectToScreen(h, obj.X, obj.Y, obj.W, obj.H)
		vector.DrawFilledRect(screen, x, y, w, d, cfg.HUD.WallColor, false)
	})
}
