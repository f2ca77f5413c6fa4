package components

import (
	"github.com/automoto/pacdots/gamemath"
	"github.com/yohamta/donburi"
)

// InputData stores which directions are held this tick. It is written by the
// input poller and read by the actor system; resolving simultaneous presses
// is left to the reader.
type InputData struct {
	Held [gamemath.DirectionCount]bool
}

// Clear releases every direction.
func (in *InputData) Clear() {
	in.Held = [gamemath.DirectionCount]bool{}
}

var Input = donburi.NewComponentType[InputData]()
