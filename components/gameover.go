package components

import "github.com/yohamta/donburi"

// GameOverOption represents the available game over menu selections
type GameOverOption int

const (
	GameOverRetry GameOverOption = iota
	GameOverQuit
)

// GameOverData stores the current state of the game over menu
type GameOverData struct {
	SelectedOption GameOverOption
	FinalScore     int
}

// GameOver is the component type for game over menu state
var GameOver = donburi.NewComponentType[GameOverData]()

// SessionData is the world singleton tracking whether the run has ended.
type SessionData struct {
	Over bool
}

var Session = donburi.NewComponentType[SessionData]()
