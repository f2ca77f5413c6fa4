package components

import (
	"github.com/automoto/pacdots/gamemath"
	"github.com/yohamta/donburi"
)

// ActorData is the player's motion state. Position is the centre of the
// actor on the X/Z plane; Anchor is where Reset puts it back.
type ActorData struct {
	Position  gamemath.Vec3
	Anchor    gamemath.Vec3
	Facing    gamemath.Direction
	Speed     float64
	Alive     bool
	Moving    bool
	Ready     bool // false while the intro cue is holding input
	IntroDone bool // the intro gate has opened once
}

// Init places the actor at start and makes start its reset anchor. The
// actor accepts input straight away.
func (a *ActorData) Init(start gamemath.Vec3, speed float64) {
	a.Anchor = start
	a.Speed = speed
	a.Ready = true
	a.Reset()
}

// Reset puts the actor back on its anchor, alive and facing down.
// Readiness is left alone.
func (a *ActorData) Reset() {
	a.Position = a.Anchor
	a.Alive = true
	a.Moving = false
	a.Facing = gamemath.DirectionDown
}

var Actor = donburi.NewComponentType[ActorData]()
