package systems

import (
	"github.com/automoto/pacdots/components"
	"github.com/yohamta/donburi"
)

// UpdateLabels advances the rise and fade of every floating label. Labels
// stay until their hazard is removed.
func UpdateLabels(w donburi.World) {
	dt := GetOrCreateClock(w).DT
	components.FloatingLabel.Each(w, func(e *donburi.Entry) {
		components.FloatingLabel.Get(e).Advance(dt)
	})
}
