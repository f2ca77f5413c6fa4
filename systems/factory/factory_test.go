package factory

import (
	"testing"

	"github.com/automoto/pacdots/components"
	cfg "github.com/automoto/pacdots/config"
	"github.com/automoto/pacdots/gamemath"
	"github.com/automoto/pacdots/leveldata"
	"github.com/automoto/pacdots/logging"
	"github.com/automoto/pacdots/score"
	"github.com/automoto/pacdots/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func registerCues(w donburi.World) {
	entry := w.Entry(w.Create(components.Audio))
	components.Audio.SetValue(entry, components.AudioData{
		CueDurations: map[cfg.SoundID]float64{
			cfg.SoundChomp:     2.0,
			cfg.SoundDeathBall: 0.4,
		},
	})
}

func count(w donburi.World, c donburi.IComponentType) int {
	return donburi.NewQuery(filter.Contains(c)).Count(w)
}

func TestCreateHazard(t *testing.T) {
	w := donburi.NewWorld()
	registerCues(w)
	CreateSpace(w, 128, 128, 16, 16)
	sc := score.New()

	hazard, err := CreateHazard(w, cfg.HazardPacDot, gamemath.Vec3{X: 32, Z: 48}, sc)
	require.NoError(t, err)

	h := components.Hazard.Get(hazard)
	assert.Equal(t, components.HazardArmed, h.State)
	assert.Equal(t, 100, h.Points)
	assert.True(t, h.Visible)
	assert.Equal(t, 3.0, h.RemovalDelay())
	assert.Same(t, sc, h.Score)

	obj := components.Object.Get(hazard).Object
	assert.True(t, obj.HasTags(tags.ResolvHazard))
	assert.Equal(t, 29.0, obj.X)
	assert.Equal(t, 45.0, obj.Y)
	assert.Same(t, hazard, obj.Data)
	assert.NotNil(t, obj.Space)
}

func TestCreateHazardErrors(t *testing.T) {
	t.Run("missing cue", func(t *testing.T) {
		w := donburi.NewWorld()
		CreateSpace(w, 128, 128, 16, 16)
		_, err := CreateHazard(w, cfg.HazardPacDot, gamemath.Vec3{}, score.New())
		assert.ErrorIs(t, err, ErrMissingAudioCue)
	})

	t.Run("no space", func(t *testing.T) {
		w := donburi.NewWorld()
		registerCues(w)
		_, err := CreateHazard(w, cfg.HazardPacDot, gamemath.Vec3{}, score.New())
		assert.ErrorIs(t, err, ErrNoSpace)
		assert.Zero(t, count(w, components.Hazard))
	})

	t.Run("unknown kind", func(t *testing.T) {
		w := donburi.NewWorld()
		registerCues(w)
		CreateSpace(w, 128, 128, 16, 16)
		_, err := CreateHazard(w, "banana", gamemath.Vec3{}, score.New())
		assert.ErrorIs(t, err, ErrUnknownHazard)
	})
}

func TestCreatePlayer(t *testing.T) {
	t.Cleanup(cfg.Reset)
	cfg.Actor.StartingLives = 5

	w := donburi.NewWorld()
	CreateSpace(w, 128, 128, 16, 16)
	player, err := CreatePlayer(w, gamemath.Vec3{X: 20, Z: 30})
	require.NoError(t, err)

	actor := components.Actor.Get(player)
	assert.Equal(t, gamemath.Vec3{X: 20, Z: 30}, actor.Anchor)
	assert.Equal(t, gamemath.DirectionDown, actor.Facing)
	assert.True(t, actor.Alive)
	assert.True(t, actor.Ready)
	assert.Equal(t, cfg.Actor.Speed, actor.Speed)
	assert.Equal(t, 5, components.Lives.Get(player).Lives)
	assert.Equal(t, 5, components.Lives.Get(player).MaxLives)
	assert.True(t, player.HasComponent(tags.Player))

	_, err = CreatePlayer(donburi.NewWorld(), gamemath.Vec3{})
	assert.ErrorIs(t, err, ErrNoSpace)
}

func TestPopulateLevelSkipsBadHazards(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	logging.SetLogger(zap.New(core))
	t.Cleanup(func() { logging.SetLogger(nil) })

	w := donburi.NewWorld()
	registerCues(w)
	level := &leveldata.Level{
		Name:        "test",
		Width:       160,
		Height:      160,
		Walls:       []leveldata.Wall{{X: 0, Z: 0, Width: 160, Depth: 16}},
		PlayerSpawn: gamemath.Vec3{X: 40, Z: 40},
		Ghosts:      []leveldata.GhostSpawn{{Position: gamemath.Vec3{X: 100, Z: 100}, Axis: gamemath.Vec3{X: 1}, Distance: 16}},
		Hazards: []leveldata.HazardSpawn{
			{Position: gamemath.Vec3{X: 60, Z: 40}, Kind: cfg.HazardPacDot, Marker: true},
			{Position: gamemath.Vec3{X: 80, Z: 40}, Kind: "mystery"},
			{Position: gamemath.Vec3{X: 100, Z: 40}, Kind: cfg.HazardDeathBall},
		},
	}

	player, err := PopulateLevel(w, level, score.New())
	require.NoError(t, err)
	require.NotNil(t, player)

	assert.Equal(t, 2, count(w, components.Hazard))
	assert.Equal(t, 1, count(w, tags.Ghost))
	assert.Equal(t, 1, count(w, tags.Wall))

	levelEntry, ok := components.Level.First(w)
	require.True(t, ok)
	assert.Same(t, level, components.Level.Get(levelEntry).CurrentLevel)

	skipped := logs.FilterMessage("skipping hazard").All()
	require.Len(t, skipped, 1)
	assert.Equal(t, "mystery", skipped[0].ContextMap()["kind"])
}
