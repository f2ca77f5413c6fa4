package factory

import (
	"github.com/automoto/pacdots/archetypes"
	"github.com/automoto/pacdots/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreateSpace(w donburi.World, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	components.Space.SetValue(space, components.SpaceData{
		Space: resolv.NewSpace(width, height, cellWidth, cellHeight),
	})
	return space
}

// addToSpace puts obj in the world's collision space.
func addToSpace(w donburi.World, obj *resolv.Object) error {
	spaceEntry, ok := components.Space.First(w)
	if !ok {
		return ErrNoSpace
	}
	components.Space.Get(spaceEntry).Add(obj)
	return nil
}
