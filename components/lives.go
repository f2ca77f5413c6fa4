package components

import "github.com/yohamta/donburi"

type LivesData struct {
	Lives    int
	MaxLives int
	Deaths   int
}

var Lives = donburi.NewComponentType[LivesData]()
