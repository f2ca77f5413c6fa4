package systems

import (
	"math"

	"github.com/automoto/pacdots/components"
	cfg "github.com/automoto/pacdots/config"
	"github.com/yohamta/donburi"
)

// dueEpsilon absorbs float drift from summing dt every tick, so a task due
// at exactly 3.0 runs on the tick where Now reads 2.9999999.
const dueEpsilon = 1e-9

// GetOrCreateClock returns the world's clock singleton, creating it with a
// fixed step of 1/TPS if needed.
func GetOrCreateClock(w donburi.World) *components.ClockData {
	entry, ok := components.Clock.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Clock))
		dt := 1.0 / 60.0
		if cfg.C.TPS > 0 {
			dt = 1.0 / float64(cfg.C.TPS)
		}
		components.Clock.SetValue(entry, components.ClockData{DT: dt})
	}
	return components.Clock.Get(entry)
}

// Now is the current simulated time in seconds.
func Now(w donburi.World) float64 {
	return GetOrCreateClock(w).Now
}

// Schedule runs fn once delay seconds from now. Negative delays run on the
// next clock update.
func Schedule(w donburi.World, delay float64, fn func(w donburi.World)) {
	clock := GetOrCreateClock(w)
	clock.Enqueue(clock.Now+math.Max(0, delay), fn)
}

// UpdateClock advances time by one step and runs every task that has come
// due, earliest first. Tasks queued with no delay by a running task run in
// the same pass.
func UpdateClock(w donburi.World) {
	clock := GetOrCreateClock(w)
	clock.Now += clock.DT
	clock.Ticks++
	RunDueTasks(w)
}

// RunDueTasks runs the tasks due at the current time without advancing it.
func RunDueTasks(w donburi.World) {
	clock := GetOrCreateClock(w)
	for {
		task := clock.PopDue(clock.Now + dueEpsilon)
		if task == nil {
			return
		}
		task.Run(w)
		// a task may have replaced the clock entry's storage
		clock = GetOrCreateClock(w)
	}
}
