package systems

import (
	"testing"

	"github.com/automoto/pacdots/components"
	cfg "github.com/automoto/pacdots/config"
	"github.com/automoto/pacdots/gamemath"
	"github.com/automoto/pacdots/score"
	"github.com/automoto/pacdots/systems/factory"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

// newTestWorld builds a world with a collision space, contact routing and
// the standard cue lengths registered.
func newTestWorld(t *testing.T) donburi.World {
	t.Helper()
	t.Cleanup(cfg.Reset)

	w := donburi.NewWorld()
	RegisterContactHandlers(w)
	RegisterCueDuration(w, cfg.SoundIntro, 1.5)
	RegisterCueDuration(w, cfg.SoundChomp, 2.0)
	RegisterCueDuration(w, cfg.SoundDeathBall, 0.4)
	RegisterCueDuration(w, cfg.SoundDeath, 0.8)
	factory.CreateSpace(w, 256, 256, 16, 16)
	return w
}

func newReadyPlayer(t *testing.T, w donburi.World, at gamemath.Vec3) *donburi.Entry {
	t.Helper()
	player, err := factory.CreatePlayer(w, at)
	require.NoError(t, err)
	require.True(t, components.Actor.Get(player).Ready)
	return player
}

func newHazard(t *testing.T, w donburi.World, kind string, at gamemath.Vec3, sc *score.Score) *donburi.Entry {
	t.Helper()
	hazard, err := factory.CreateHazard(w, kind, at, sc)
	require.NoError(t, err)
	return hazard
}

func countLabels(w donburi.World) int {
	n := 0
	components.FloatingLabel.Each(w, func(*donburi.Entry) { n++ })
	return n
}

func hold(player *donburi.Entry, d gamemath.Direction) {
	in := components.Input.Get(player)
	in.Clear()
	in.Held[d] = true
}

func stepFor(w donburi.World, n int) {
	for i := 0; i < n; i++ {
		Step(w)
	}
}
