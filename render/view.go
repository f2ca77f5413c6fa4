// Package render draws the world with ebiten. The maze sits below a HUD
// strip; world Z grows up the screen.
package render

import (
	"image/color"

	"github.com/automoto/pacdots/components"
	cfg "github.com/automoto/pacdots/config"
	"github.com/automoto/pacdots/gamemath"
	"github.com/yohamta/donburi"
)

// levelHeight is the maze height in world units, or the window height
// below the HUD when no level is loaded.
func levelHeight(w donburi.World) float64 {
	if entry, ok := components.Level.First(w); ok {
		if lvl := components.Level.Get(entry).CurrentLevel; lvl != nil {
			return float64(lvl.Height)
		}
	}
	return float64(cfg.C.Height) - cfg.HUD.Height
}

// toScreen maps a world position to screen pixels.
func toScreen(h float64, pos gamemath.Vec3) (float32, float32) {
	return float32(pos.X), float32(cfg.HUD.Height + h - pos.Z)
}

// rectToScreen maps a world rectangle given by its minimum corner.
func rectToScreen(h, x, z, width, depth float64) (float32, float32, float32, float32) {
	return float32(x), float32(cfg.HUD.Height + h - z - depth), float32(width), float32(depth)
}

func withAlpha(c color.RGBA, alpha float64) color.NRGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(float64(c.A) * alpha)}
}
