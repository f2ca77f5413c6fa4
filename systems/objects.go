package systems

import (
	"github.com/automoto/pacdots/components"
	"github.com/automoto/pacdots/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// PlaceObject centres obj on a world position. Resolv's Y axis is world Z.
func PlaceObject(obj *resolv.Object, pos gamemath.Vec3) {
	obj.X = pos.X - obj.W/2
	obj.Y = pos.Z - obj.H/2
	obj.Update()
}

// UpdateObjects copies actor and ghost positions onto their collision objects.
func UpdateObjects(w donburi.World) {
	components.Actor.Each(w, func(e *donburi.Entry) {
		if e.HasComponent(components.Object) {
			PlaceObject(components.Object.Get(e).Object, components.Actor.Get(e).Position)
		}
	})
	components.Ghost.Each(w, func(e *donburi.Entry) {
		if e.HasComponent(components.Object) {
			PlaceObject(components.Object.Get(e).Object, components.Ghost.Get(e).Position)
		}
	})
}
