package factory

import (
	"github.com/automoto/pacdots/archetypes"
	"github.com/automoto/pacdots/components"
	cfg "github.com/automoto/pacdots/config"
	"github.com/automoto/pacdots/leveldata"
	"github.com/automoto/pacdots/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// CreateGhost spawns a ghost that patrols out along its axis and back.
func CreateGhost(w donburi.World, spawn leveldata.GhostSpawn) (*donburi.Entry, error) {
	ghost := archetypes.Ghost.Spawn(w)

	size := cfg.Ghost.Size
	obj := resolv.NewObject(spawn.Position.X-size/2, spawn.Position.Z-size/2, size, size, tags.ResolvEnemy)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = ghost
	components.Object.SetValue(ghost, components.ObjectData{Object: obj})

	leg := float32(cfg.Ghost.PatrolDuration)
	distance := float32(spawn.Distance)
	components.Ghost.SetValue(ghost, components.GhostData{
		Position: spawn.Position,
		Origin:   spawn.Position,
		Axis:     spawn.Axis,
		Patrol: gween.NewSequence(
			gween.New(0, distance, leg, ease.InOutSine),
			gween.New(distance, 0, leg, ease.InOutSine),
		),
	})

	if err := addToSpace(w, obj); err != nil {
		w.Remove(ghost.Entity())
		return nil, err
	}
	return ghost, nil
}
