package systems

import (
	"github.com/automoto/pacdots/components"
	cfg "github.com/automoto/pacdots/config"
	"github.com/automoto/pacdots/logging"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// OnLethalContact kills the player. A life is spent once per death; the
// player is reset after RespawnDelay, or the session ends after
// GameOverDelay when no lives remain. A player whose input is still held by
// the intro gate cannot be hurt. It reports whether the player died.
func OnLethalContact(w donburi.World, e *donburi.Entry) bool {
	actor := components.Actor.Get(e)
	if !actor.Ready || !KillActor(actor) {
		return false
	}
	PlaySFX(w, cfg.SoundDeath)

	remaining := 0
	if e.HasComponent(components.Lives) {
		lives := components.Lives.Get(e)
		lives.Lives--
		lives.Deaths++
		remaining = lives.Lives
	}

	logging.L().Info("player died", zap.Int("livesLeft", remaining), zap.Float64("at", Now(w)))

	entity := e.Entity()
	if remaining > 0 {
		Schedule(w, cfg.Actor.RespawnDelay, func(w donburi.World) {
			if !w.Valid(entity) {
				return
			}
			ResetActor(components.Actor.Get(w.Entry(entity)))
		})
		return true
	}

	Schedule(w, cfg.Actor.GameOverDelay, func(w donburi.World) {
		GetOrCreateSession(w).Over = true
	})
	return true
}

// GetOrCreateSession returns the world's session singleton.
func GetOrCreateSession(w donburi.World) *components.SessionData {
	entry, ok := components.Session.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Session))
	}
	return components.Session.Get(entry)
}

// IsGameOver reports whether the run has ended.
func IsGameOver(w donburi.World) bool {
	entry, ok := components.Session.First(w)
	if !ok {
		return false
	}
	return components.Session.Get(entry).Over
}
