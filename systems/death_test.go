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

func TestLethalContactSpendsOneLife(t *testing.T) {
	w := newTestWorld(t)
	player := newReadyPlayer(t, w, gamemath.Vec3{X: 10, Z: 10})

	assert.True(t, OnLethalContact(w, player))
	assert.False(t, OnLethalContact(w, player))

	lives := components.Lives.Get(player)
	assert.Equal(t, cfg.Actor.StartingLives-1, lives.Lives)
	assert.Equal(t, cfg.Actor.StartingLives, lives.MaxLives)
	assert.Equal(t, 1, lives.Deaths)
	assert.False(t, components.Actor.Get(player).Alive)
	assert.Equal(t, []cfg.SoundID{cfg.SoundDeath}, GetOrCreateAudio(w).PendingSFX)
}

func TestRespawnResetsActor(t *testing.T) {
	w := newTestWorld(t)
	GetOrCreateClock(w).DT = 0.25
	anchor := gamemath.Vec3{X: 40, Z: 40}
	player := newReadyPlayer(t, w, anchor)
	actor := components.Actor.Get(player)

	hold(player, gamemath.DirectionUp)
	Step(w)
	require.NotEqual(t, anchor, actor.Position)

	OnLethalContact(w, player)
	// respawn is 1.5s out
	for i := 0; i < 5; i++ {
		Step(w)
		require.False(t, actor.Alive)
	}
	components.Input.Get(player).Clear()
	Step(w)

	assert.True(t, actor.Alive)
	assert.Equal(t, anchor, actor.Position)
	assert.Equal(t, gamemath.DirectionDown, actor.Facing)
	assert.False(t, actor.Moving)
	assert.False(t, IsGameOver(w))
}

func TestLastLifeEndsSession(t *testing.T) {
	w := newTestWorld(t)
	GetOrCreateClock(w).DT = 0.5
	cfg.Actor.StartingLives = 1
	player := newReadyPlayer(t, w, gamemath.Vec3{})

	OnLethalContact(w, player)
	assert.Zero(t, components.Lives.Get(player).Lives)
	assert.False(t, IsGameOver(w))

	UpdateClock(w)
	assert.False(t, IsGameOver(w))
	UpdateClock(w)
	assert.True(t, IsGameOver(w))

	// no respawn on the last life
	for i := 0; i < 10; i++ {
		UpdateClock(w)
	}
	assert.False(t, components.Actor.Get(player).Alive)
}

func TestGhostContactKills(t *testing.T) {
	w := newTestWorld(t)
	at := gamemath.Vec3{X: 60, Z: 60}
	player := newReadyPlayer(t, w, at)
	ghost, err := factory.CreateGhost(w, leveldata.GhostSpawn{Position: at, Axis: gamemath.Vec3{X: 1}})
	require.NoError(t, err)

	Step(w)
	assert.False(t, components.Actor.Get(player).Alive)
	assert.Equal(t, 1, components.Lives.Get(player).Deaths)

	// still touching while dead costs nothing more
	stepFor(w, 5)
	assert.Equal(t, 1, components.Lives.Get(player).Deaths)
	assert.True(t, w.Valid(ghost.Entity()))
}

func TestGhostCannotKillDuringIntro(t *testing.T) {
	w := newTestWorld(t)
	GetOrCreateClock(w).DT = 0.25
	at := gamemath.Vec3{X: 60, Z: 60}
	player, err := factory.CreatePlayer(w, at)
	require.NoError(t, err)
	_, err = factory.CreateGhost(w, leveldata.GhostSpawn{Position: at, Axis: gamemath.Vec3{X: 1}})
	require.NoError(t, err)
	StartIntroGate(w, player)

	// the gate opens at 1.0s, on the fourth tick
	for i := 0; i < 3; i++ {
		Step(w)
		require.True(t, components.Actor.Get(player).Alive, "tick %d", i)
	}
	assert.Zero(t, components.Lives.Get(player).Deaths)

	Step(w)
	assert.False(t, components.Actor.Get(player).Alive)
	assert.Equal(t, 1, components.Lives.Get(player).Deaths)
}

func TestIsGameOverWithoutSession(t *testing.T) {
	w := newTestWorld(t)
	assert.False(t, IsGameOver(w))
	GetOrCreateSession(w).Over = true
	assert.True(t, IsGameOver(w))
}
