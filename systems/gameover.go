package systems

import (
	"github.com/automoto/pacdots/components"
	"github.com/yohamta/donburi"
)

// gameOverOptions is the number of entries in the game over menu
const gameOverOptions = int(components.GameOverQuit) + 1

// GetOrCreateGameOver returns the singleton GameOver component, creating if needed
func GetOrCreateGameOver(w donburi.World) *components.GameOverData {
	entry, ok := components.GameOver.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.GameOver))
		components.GameOver.SetValue(entry, components.GameOverData{
			SelectedOption: components.GameOverRetry,
		})
	}
	return components.GameOver.Get(entry)
}

// MoveGameOverSelection steps the menu cursor by delta, wrapping around.
func MoveGameOverSelection(g *components.GameOverData, delta int) {
	next := (int(g.SelectedOption) + delta) % gameOverOptions
	if next < 0 {
		next += gameOverOptions
	}
	g.SelectedOption = components.GameOverOption(next)
}
