package components

import (
	"github.com/automoto/pacdots/gamemath"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// GhostData is an enemy sliding back and forth along one axis. Touching it
// is lethal to the player.
type GhostData struct {
	Position gamemath.Vec3
	Origin   gamemath.Vec3
	Axis     gamemath.Vec3 // unit vector of the patrol leg
	Patrol   *gween.Sequence
}

var Ghost = donburi.NewComponentType[GhostData]()
