package systems

import (
	"testing"

	"github.com/automoto/pacdots/components"
	cfg "github.com/automoto/pacdots/config"
	"github.com/automoto/pacdots/gamemath"
	"github.com/automoto/pacdots/score"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestLabelRisesAndFades(t *testing.T) {
	w := newTestWorld(t)
	GetOrCreateClock(w).DT = 0.1
	player := newReadyPlayer(t, w, gamemath.Vec3{})
	hazard := newHazard(t, w, cfg.HazardPacDot, gamemath.Vec3{X: 50, Z: 50}, score.New())
	require.True(t, OnHazardContact(w, hazard, player))

	var label *components.FloatingLabelData
	components.FloatingLabel.Each(w, func(e *donburi.Entry) {
		label = components.FloatingLabel.Get(e)
	})
	require.NotNil(t, label)
	assert.Equal(t, 1.0, label.Alpha)
	assert.Zero(t, label.Rise)

	UpdateLabels(w)
	assert.Greater(t, label.Rise, 0.0)
	assert.Less(t, label.Alpha, 1.0)
	assert.False(t, label.Settled)

	for i := 0; i < 10; i++ {
		UpdateLabels(w)
	}
	assert.True(t, label.Settled)
	assert.InDelta(t, cfg.Label.RiseDistance, label.Rise, 1e-4)
	assert.InDelta(t, 0, label.Alpha, 1e-4)

	// settled labels stay until their hazard goes
	assert.Equal(t, 1, countLabels(w))
}
