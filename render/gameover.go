package render

import (
	"fmt"
	"image/color"

	"github.com/automoto/pacdots/components"
	cfg "github.com/automoto/pacdots/config"
	"github.com/automoto/pacdots/fonts"
	"github.com/automoto/pacdots/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	gameOverTitleY    = 160
	gameOverScoreY    = 210
	gameOverMenuY     = 280
	gameOverItemSpace = 36
)

var gameOverOptions = [...]string{
	components.GameOverRetry: "PLAY AGAIN",
	components.GameOverQuit:  "QUIT",
}

// DrawGameOver renders the game over screen
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	gameOver := systems.GetOrCreateGameOver(e.World)
	width := screen.Bounds().Dx()

	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(screen.Bounds().Dy()), cfg.HUD.BackgroundColor, false)

	drawCentered(screen, "GAME OVER", fonts.Title, width, gameOverTitleY, cfg.Red)
	drawCentered(screen, fmt.Sprintf("SCORE %d", gameOver.FinalScore), fonts.Menu, width, gameOverScoreY, cfg.HUD.TextColor)

	for i, option := range gameOverOptions {
		c := cfg.Gray
		if components.GameOverOption(i) == gameOver.SelectedOption {
			c = cfg.Yellow
		}
		drawCentered(screen, option, fonts.Menu, width, gameOverMenuY+i*gameOverItemSpace, c)
	}
}

func drawCentered(screen *ebiten.Image, s string, name fonts.FontName, width, y int, c color.Color) {
	face := name.Get()
	bounds := text.BoundString(face, s)
	text.Draw(screen, s, face, (width-bounds.Dx())/2, y, c)
}
