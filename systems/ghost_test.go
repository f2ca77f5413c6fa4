package systems

import (
	"testing"

	"github.com/automoto/pacdots/components"
	cfg "github.com/automoto/pacdots/config"
	"github.com/automoto/pacdots/gamemath"
	"github.com/automoto/pacdots/leveldata"
	"github.com/automoto/pacdots/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGhostPatrolsOutAndBack(t *testing.T) {
	w := newTestWorld(t)
	cfg.Ghost.PatrolDuration = 1
	GetOrCreateClock(w).DT = 0.25
	origin := gamemath.Vec3{X: 100, Z: 40}

	ghost, err := factory.CreateGhost(w, leveldata.GhostSpawn{
		Position: origin,
		Axis:     gamemath.Vec3{Z: 1},
		Distance: 32,
	})
	require.NoError(t, err)
	data := components.Ghost.Get(ghost)

	for i := 0; i < 2; i++ {
		UpdateClock(w)
		UpdateGhosts(w)
	}
	assert.Equal(t, origin.X, data.Position.X)
	assert.Greater(t, data.Position.Z, origin.Z)
	assert.Less(t, data.Position.Z, origin.Z+32)

	for i := 0; i < 2; i++ {
		UpdateClock(w)
		UpdateGhosts(w)
	}
	assert.InDelta(t, origin.Z+32, data.Position.Z, 0.5)

	for i := 0; i < 4; i++ {
		UpdateClock(w)
		UpdateGhosts(w)
	}
	assert.InDelta(t, origin.Z, data.Position.Z, 0.5)

	// keeps patrolling after the first loop
	for i := 0; i < 2; i++ {
		UpdateClock(w)
		UpdateGhosts(w)
	}
	assert.Greater(t, data.Position.Z, origin.Z+1)
}

func TestGhostColliderFollowsPatrol(t *testing.T) {
	w := newTestWorld(t)
	ghost, err := factory.CreateGhost(w, leveldata.GhostSpawn{
		Position: gamemath.Vec3{X: 100, Z: 40},
		Axis:     gamemath.Vec3{X: 1},
		Distance: 32,
	})
	require.NoError(t, err)

	stepFor(w, 30)
	data := components.Ghost.Get(ghost)
	obj := components.Object.Get(ghost).Object
	assert.InDelta(t, data.Position.X-obj.W/2, obj.X, 1e-9)
	assert.InDelta(t, data.Position.Z-obj.H/2, obj.Y, 1e-9)
}
