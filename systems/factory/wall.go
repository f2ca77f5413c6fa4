package factory

import (
	"github.com/automoto/pacdots/archetypes"
	"github.com/automoto/pacdots/components"
	"github.com/automoto/pacdots/leveldata"
	"github.com/automoto/pacdots/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreateWall(w donburi.World, wall leveldata.Wall) (*donburi.Entry, error) {
	entry := archetypes.Wall.Spawn(w)

	// Create collision object
	obj := resolv.NewObject(wall.X, wall.Z, wall.Width, wall.Depth, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, wall.Width, wall.Depth))
	obj.Data = entry // Link for O(1) lookup

	components.Object.SetValue(entry, components.ObjectData{Object: obj})

	if err := addToSpace(w, obj); err != nil {
		w.Remove(entry.Entity())
		return nil, err
	}
	return entry, nil
}
