package systems

import (
	"strconv"

	"github.com/automoto/pacdots/components"
	"github.com/automoto/pacdots/logging"
	"github.com/automoto/pacdots/systems/factory"
	"github.com/automoto/pacdots/tags"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// OnHazardContact consumes an armed hazard touched by the player. It reports
// whether the hazard was consumed by this call.
func OnHazardContact(w donburi.World, hazard, other *donburi.Entry) bool {
	if other == nil || !other.HasComponent(tags.Player) {
		return false
	}
	h := components.Hazard.Get(hazard)
	if h.State != components.HazardArmed {
		return false
	}

	h.State = components.HazardConsumed
	h.ConsumedAt = Now(w)
	if h.Score != nil {
		h.Score.Add(h.Points)
	}
	PlaySFX(w, h.Sound)

	if h.ShowLabel {
		factory.CreateFloatingLabel(w, hazard, LabelText(h))
	}

	h.Visible = false
	if hazard.HasComponent(components.Object) {
		obj := components.Object.Get(hazard).Object
		if obj.Space != nil {
			obj.Space.Remove(obj)
		}
	}

	logging.L().Debug("hazard consumed",
		zap.String("kind", h.Kind),
		zap.Int("points", h.Points),
		zap.Float64("removeIn", h.RemovalDelay()),
	)

	entity := hazard.Entity()
	Schedule(w, h.RemovalDelay(), func(w donburi.World) {
		RemoveHazard(w, entity)
	})
	return true
}

// LabelText is what a consumed hazard shows above itself.
func LabelText(h *components.HazardData) string {
	if h.LabelText != "" {
		return h.LabelText
	}
	return strconv.Itoa(h.Points)
}

// RemoveHazard destroys a hazard and every label it owns.
func RemoveHazard(w donburi.World, entity donburi.Entity) {
	if !w.Valid(entity) {
		return
	}
	entry := w.Entry(entity)
	if entry.HasComponent(components.Hazard) {
		h := components.Hazard.Get(entry)
		h.State = components.HazardRemoved
		logging.L().Debug("hazard removed",
			zap.String("kind", h.Kind),
			zap.Float64("lingered", Now(w)-h.ConsumedAt),
		)
	}
	if entry.HasComponent(components.Object) {
		obj := components.Object.Get(entry).Object
		if obj.Space != nil {
			obj.Space.Remove(obj)
		}
	}

	var children []donburi.Entity
	components.FloatingLabel.Each(w, func(e *donburi.Entry) {
		if components.FloatingLabel.Get(e).Parent == entity {
			children = append(children, e.Entity())
		}
	})
	for _, child := range children {
		w.Remove(child)
	}
	w.Remove(entity)
}
