package factory

import (
	"github.com/automoto/pacdots/archetypes"
	"github.com/automoto/pacdots/components"
	cfg "github.com/automoto/pacdots/config"
	"github.com/automoto/pacdots/gamemath"
	"github.com/automoto/pacdots/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreatePlayer spawns the player actor at start, facing down and ready to
// move. The world scene holds its input back with the intro gate.
func CreatePlayer(w donburi.World, start gamemath.Vec3) (*donburi.Entry, error) {
	player := archetypes.Player.Spawn(w)

	size := cfg.Actor.CollisionSize
	obj := resolv.NewObject(start.X-size/2, start.Z-size/2, size, size, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	actor := components.ActorData{}
	actor.Init(start, cfg.Actor.Speed)
	components.Actor.SetValue(player, actor)
	components.Lives.SetValue(player, components.LivesData{
		Lives:    cfg.Actor.StartingLives,
		MaxLives: cfg.Actor.StartingLives,
	})

	if err := addToSpace(w, obj); err != nil {
		w.Remove(player.Entity())
		return nil, err
	}
	return player, nil
}
