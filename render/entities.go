package render

import (
	"image/color"

	"github.com/automoto/pacdots/components"
	cfg "github.com/automoto/pacdots/config"
	"github.com/automoto/pacdots/fonts"
	"github.com/automoto/pacdots/systems"
	"github.com/automoto/pacdots/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// mouthFrames is how many ticks the player's mouth stays open or shut.
const mouthFrames = 6

// DrawHazards draws every visible hazard as a dot in its kind's colour.
func DrawHazards(e *ecs.ECS, screen *ebiten.Image) {
	h := levelHeight(e.World)
	components.Hazard.Each(e.World, func(entry *donburi.Entry) {
		hazard := components.Hazard.Get(entry)
		if !hazard.Visible {
			return
		}
		c, ok := cfg.HUD.HazardColors[hazard.Kind]
		if !ok {
			c = cfg.White
		}
		x, y := toScreen(h, hazard.Position)
		vector.DrawFilledCircle(screen, x, y, float32(hazard.Radius), c, true)
	})
}

// DrawGhosts draws each ghost as a rounded body with two eyes.
func DrawGhosts(e *ecs.ECS, screen *ebiten.Image) {
	h := levelHeight(e.World)
	size := float32(cfg.Ghost.Size)
	components.Ghost.Each(e.World, func(entry *donburi.Entry) {
		ghost := components.Ghost.Get(entry)
		x, y := toScreen(h, ghost.Position)

		vector.DrawFilledCircle(screen, x, y-size/6, size/2, cfg.HUD.GhostColor, true)
		vector.DrawFilledRect(screen, x-size/2, y-size/6, size, size*2/3, cfg.HUD.GhostColor, false)
		vector.DrawFilledCircle(screen, x-size/5, y-size/5, size/7, cfg.White, true)
		vector.DrawFilledCircle(screen, x+size/5, y-size/5, size/7, cfg.White, true)
	})
}

// DrawActors draws the player, chomping while it moves.
func DrawActors(e *ecs.ECS, screen *ebiten.Image) {
	h := levelHeight(e.World)
	ticks := systems.GetOrCreateClock(e.World).Ticks
	radius := float32(cfg.Actor.CollisionSize / 2)

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		actor := components.Actor.Get(entry)
		x, y := toScreen(h, actor.Position)

		body := cfg.HUD.PlayerColor
		if !actor.Alive {
			body = cfg.HUD.DeadPlayerColor
		}
		vector.DrawFilledCircle(screen, x, y, radius, body, true)

		if !actor.Alive {
			return
		}
		open := !actor.Moving || (ticks/mouthFrames)%2 == 0
		if open {
			fwd := actor.Facing.Forward()
			mx := x + float32(fwd.X)*radius*0.8
			my := y - float32(fwd.Z)*radius*0.8
			vector.DrawFilledCircle(screen, mx, my, radius*0.45, cfg.HUD.BackgroundColor, true)
		}
	})
}

// DrawLabels draws the floating score text of consumed hazards.
func DrawLabels(e *ecs.ECS, screen *ebiten.Image) {
	h := levelHeight(e.World)
	face := fonts.Label.Get()
	components.FloatingLabel.Each(e.World, func(entry *donburi.Entry) {
		label := components.FloatingLabel.Get(entry)
		if label.Alpha <= 0 {
			return
		}
		pos := label.Anchor
		pos.Z += label.Rise
		x, y := toScreen(h, pos)
		bounds := text.BoundString(face, label.Text)
		text.Draw(screen, label.Text, face, int(x)-bounds.Dx()/2, int(y), withAlpha(cfg.HUD.LabelColor, label.Alpha))
	})
}

var hitboxColors = map[string]color.RGBA{
	tags.ResolvSolid:  cfg.Blue,
	tags.ResolvPlayer: cfg.Yellow,
	tags.ResolvEnemy:  cfg.Red,
	tags.ResolvHazard: cfg.BrightGreen,
}

// DrawHitboxes outlines every collider still in the space.
func DrawHitboxes(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawHitboxes {
		return
	}
	h := levelHeight(e.World)
	components.Object.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		if obj.Space == nil {
			return
		}
		c := cfg.White
		for tag, tc := range hitboxColors {
			if obj.HasTags(tag) {
				c = tc
				break
			}
		}
		x, y, w, d := rectToScreen(h, obj.X, obj.Y, obj.W, obj.H)
		vector.StrokeRect(screen, x, y, w, d, 1, c, false)
	})
}
