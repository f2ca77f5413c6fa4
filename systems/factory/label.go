package factory

import (
	"github.com/automoto/pacdots/archetypes"
	"github.com/automoto/pacdots/components"
	cfg "github.com/automoto/pacdots/config"
	"github.com/automoto/pacdots/gamemath"
	"github.com/yohamta/donburi"
)

// CreateFloatingLabel spawns text owned by parent, anchored on the parent's
// hazard position when it has one.
func CreateFloatingLabel(w donburi.World, parent *donburi.Entry, text string) *donburi.Entry {
	var anchor gamemath.Vec3
	if parent.HasComponent(components.Hazard) {
		anchor = components.Hazard.Get(parent).Position
	}

	label := archetypes.FloatingLabel.Spawn(w)
	components.FloatingLabel.SetValue(label, components.NewFloatingLabel(
		text, parent.Entity(), anchor, cfg.Label.RiseDistance, cfg.Label.Duration,
	))
	return label
}
