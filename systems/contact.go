package systems

import (
	"github.com/automoto/pacdots/components"
	"github.com/automoto/pacdots/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// Contact is published when the player's collider overlaps another one.
// Tag is the resolv tag that matched.
type Contact struct {
	Source donburi.Entity
	Other  donburi.Entity
	Tag    string
}

var ContactEvent = events.NewEventType[Contact]()

// contactTags are the resolv tags the player is checked against, in the
// order their events are published.
var contactTags = []string{tags.ResolvHazard, tags.ResolvEnemy}

// RegisterContactHandlers wires hazard pickups and lethal contacts for a world.
func RegisterContactHandlers(w donburi.World) {
	ContactEvent.Subscribe(w, HandleContact)
}

// HandleContact routes a contact to the system that owns the other side.
// Anything it does not recognise is ignored.
func HandleContact(w donburi.World, c Contact) {
	if !w.Valid(c.Source) || !w.Valid(c.Other) {
		return
	}
	source := w.Entry(c.Source)
	other := w.Entry(c.Other)

	switch c.Tag {
	case tags.ResolvHazard:
		if other.HasComponent(components.Hazard) {
			OnHazardContact(w, other, source)
		}
	case tags.ResolvEnemy:
		if other.HasComponent(tags.Ghost) && source.HasComponent(tags.Player) {
			OnLethalContact(w, source)
		}
	}
}

// UpdateContacts publishes a Contact for every hazard or enemy overlapping a
// player, then delivers them.
func UpdateContacts(w donburi.World) {
	tags.Player.Each(w, func(e *donburi.Entry) {
		if !e.HasComponent(components.Object) {
			return
		}
		obj := components.Object.Get(e).Object
		for _, tag := range contactTags {
			for _, hit := range overlapping(obj, tag) {
				other, ok := hit.Data.(*donburi.Entry)
				if !ok || other == nil {
					continue
				}
				ContactEvent.Publish(w, Contact{Source: e.Entity(), Other: other.Entity(), Tag: tag})
			}
		}
	})
	ContactEvent.ProcessEvents(w)
}
