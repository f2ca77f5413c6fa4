package systems

import (
	"github.com/automoto/pacdots/components"
	"github.com/yohamta/donburi"
)

// UpdateGhosts slides every ghost along its patrol leg. The patrol sequence
// runs out and back, then starts over.
func UpdateGhosts(w donburi.World) {
	dt := float32(GetOrCreateClock(w).DT)
	components.Ghost.Each(w, func(e *donburi.Entry) {
		ghost := components.Ghost.Get(e)
		if ghost.Patrol == nil {
			return
		}
		offset, _, done := ghost.Patrol.Update(dt)
		ghost.Position = ghost.Origin.Add(ghost.Axis.Scale(float64(offset)))
		if done {
			ghost.Patrol.Reset()
		}
	})
}
