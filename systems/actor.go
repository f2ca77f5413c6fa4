package systems

import (
	"github.com/automoto/pacdots/components"
	cfg "github.com/automoto/pacdots/config"
	"github.com/automoto/pacdots/gamemath"
	"github.com/automoto/pacdots/logging"
	"github.com/automoto/pacdots/tags"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// InitActor places an actor at start, ready to move, with start as its
// reset anchor.
func InitActor(a *components.ActorData, start gamemath.Vec3, speed float64) {
	a.Init(start, speed)
}

// ResetActor puts the actor back on its anchor, alive and facing down.
// Readiness is left alone: once the intro has played it stays played.
func ResetActor(a *components.ActorData) {
	a.Reset()
}

// KillActor marks the actor dead. It reports false if it was already dead.
func KillActor(a *components.ActorData) bool {
	if !a.Alive {
		return false
	}
	a.Alive = false
	return true
}

// ResolveDirection picks the first held direction in priority order.
func ResolveDirection(held [gamemath.DirectionCount]bool) (gamemath.Direction, bool) {
	for _, d := range gamemath.DirectionPriority {
		if held[d] {
			return d, true
		}
	}
	return 0, false
}

// TickActor applies one step of input. A held direction turns the actor to
// face it and moves it forward by speed*dt.
func TickActor(a *components.ActorData, dir gamemath.Direction, ok bool, dt float64) {
	if !a.Ready {
		return
	}
	if !a.Alive {
		a.Moving = false
		return
	}
	if !ok {
		a.Moving = false
		return
	}
	a.Facing = dir
	a.Position = a.Position.Add(dir.Forward().Scale(a.Speed * dt))
	a.Moving = true
}

// UpdateActors moves every player from its input for this tick.
func UpdateActors(w donburi.World) {
	dt := GetOrCreateClock(w).DT
	tags.Player.Each(w, func(e *donburi.Entry) {
		actor := components.Actor.Get(e)
		input := components.Input.Get(e)

		dir, ok := ResolveDirection(input.Held)
		prev := actor.Position
		TickActor(actor, dir, ok, dt)

		if cfg.Actor.BlockedByWalls && actor.Position != prev && e.HasComponent(components.Object) {
			obj := components.Object.Get(e)
			if blockedAt(obj.Object, actor.Position, tags.ResolvSolid) {
				actor.Position = prev
				actor.Moving = false
			}
		}
	})
}

// StartIntroGate resets the actor and, unless the intro has already played,
// holds its input until the intro cue is nearly over.
func StartIntroGate(w donburi.World, e *donburi.Entry) {
	actor := components.Actor.Get(e)
	ResetActor(actor)
	if actor.IntroDone || !cfg.Actor.IntroGate {
		actor.Ready = true
		return
	}
	actor.Ready = false

	wait := 0.0
	if d, ok := CueDuration(w, cfg.SoundIntro); ok {
		wait = d - cfg.Actor.IntroLeadTime
	} else {
		logging.L().Warn("intro cue not registered, opening input immediately")
	}
	PlaySFX(w, cfg.SoundIntro)

	entity := e.Entity()
	Schedule(w, wait, func(w donburi.World) {
		if !w.Valid(entity) {
			return
		}
		actor := components.Actor.Get(w.Entry(entity))
		actor.Ready = true
		actor.IntroDone = true
		logging.L().Debug("actor ready", zap.Float64("at", Now(w)))
	})
}
