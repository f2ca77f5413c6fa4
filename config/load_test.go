package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyOverridesOnlyNamedFields(t *testing.T) {
	t.Cleanup(Reset)

	err := Apply([]byte(`
actor:
  speed: 5
  introGate: false
log:
  level: debug
`))
	require.NoError(t, err)

	assert.Equal(t, 5.0, Actor.Speed)
	assert.False(t, Actor.IntroGate)
	assert.Equal(t, 3, Actor.StartingLives, "unnamed fields keep their defaults")
	assert.Equal(t, "debug", Log.Level)
	assert.Equal(t, 60, C.TPS)
}

func TestApplyAddsHazardKind(t *testing.T) {
	t.Cleanup(Reset)

	err := Apply([]byte(`
hazard:
  types:
    cherry:
      points: 500
      showLabel: true
      trailingOffset: 1
      sound: 2
      radius: 5
`))
	require.NoError(t, err)

	cherry, ok := Hazard.Types["cherry"]
	require.True(t, ok)
	assert.Equal(t, 500, cherry.Points)
	assert.Equal(t, SoundChomp, cherry.Sound)
	_, ok = Hazard.Types[HazardDeathBall]
	assert.True(t, ok, "existing kinds survive the merge")
}

func TestApplyRejectsInvalidValues(t *testing.T) {
	t.Cleanup(Reset)

	assert.Error(t, Apply([]byte("game:\n  tps: 0\n")))
	Reset()
	assert.Error(t, Apply([]byte("hazard:\n  defaultKind: nope\n")))
	Reset()
	assert.Error(t, Apply([]byte("actor: [not, a, map]\n")))
	Reset()
	assert.ErrorContains(t, Apply([]byte("audio:\n  sfxVolume: 1.5\n")), "sfxVolume")
}

func TestClampVolume(t *testing.T) {
	assert.Equal(t, 0.0, ClampVolume(-0.5))
	assert.Equal(t, 0.4, ClampVolume(0.4))
	assert.Equal(t, 1.0, ClampVolume(3))
}

func TestLoadFile(t *testing.T) {
	t.Cleanup(Reset)

	path := filepath.Join(t.TempDir(), "pacdots.yaml")
	require.NoError(t, os.WriteFile(path, []byte("label:\n  duration: 2\n"), 0o644))

	require.NoError(t, LoadFile(path))
	assert.Equal(t, 2.0, Label.Duration)

	err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read config")
}
