package tags

import "github.com/yohamta/donburi"

var (
	Player        = donburi.NewTag().SetName("Player")
	Wall          = donburi.NewTag().SetName("Wall")
	Ghost         = donburi.NewTag().SetName("Ghost")
	Hazard        = donburi.NewTag().SetName("Hazard")
	FloatingLabel = donburi.NewTag().SetName("FloatingLabel")
)

// Resolv tags for collision
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "Player"
	ResolvEnemy  = "Enemy"
	ResolvHazard = "hazard"
)
