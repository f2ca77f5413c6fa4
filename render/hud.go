package render

import (
	"fmt"

	"github.com/automoto/pacdots/components"
	cfg "github.com/automoto/pacdots/config"
	"github.com/automoto/pacdots/fonts"
	"github.com/automoto/pacdots/score"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const livesIconRadius = 5

// NewDrawHUD returns a renderer showing the score and remaining lives. The
// score is read every frame.
func NewDrawHUD(sc *score.Score) ecs.Renderer {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		margin := cfg.HUD.Margin
		vector.DrawFilledRect(screen, 0, 0, float32(cfg.C.Width), float32(cfg.HUD.Height), cfg.HUD.BackgroundColor, false)

		face := fonts.HUD.Get()
		text.Draw(screen, fmt.Sprintf("SCORE %d", sc.Current()), face, int(margin), int(cfg.HUD.Height-margin), cfg.HUD.TextColor)

		entry, ok := components.Lives.First(e.World)
		if !ok {
			return
		}
		lives := components.Lives.Get(entry)
		y := float32(cfg.HUD.Height / 2)
		// spent lives stay as outlines so the row keeps its width
		for i := 0; i < max(lives.MaxLives, lives.Lives); i++ {
			x := float32(cfg.C.Width) - float32(margin) - livesIconRadius - float32(i)*(livesIconRadius*2+4)
			if i < lives.Lives {
				vector.DrawFilledCircle(screen, x, y, livesIconRadius, cfg.HUD.PlayerColor, true)
			} else {
				vector.StrokeCircle(screen, x, y, livesIconRadius, 1, cfg.HUD.DeadPlayerColor, true)
			}
		}
	}
}
