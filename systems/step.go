package systems

import "github.com/yohamta/donburi"

// Step runs one simulation tick: clock, movement, ghosts, collider sync,
// contacts, then labels. The world scene registers the same systems in the
// same order.
func Step(w donburi.World) {
	UpdateClock(w)
	UpdateActors(w)
	UpdateGhosts(w)
	UpdateObjects(w)
	UpdateContacts(w)
	UpdateLabels(w)
}
