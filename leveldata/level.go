// Package leveldata reads maze layouts from Tiled TMX files.
//
// Tiled works in pixels with Y pointing down the screen. Levels are
// converted to world units on the X/Z plane with Z pointing up the screen,
// one pixel per unit, so a point at pixel (x, y) lands at world
// (x, 0, Height-y).
package leveldata

import "github.com/automoto/pacdots/gamemath"

// Wall is an axis-aligned solid block. X and Z are its minimum corner.
type Wall struct {
	X, Z         float64
	Width, Depth float64
}

// Center is the middle of the wall in world space.
func (w Wall) Center() gamemath.Vec3 {
	return gamemath.Vec3{X: w.X + w.Width/2, Z: w.Z + w.Depth/2}
}

type GhostSpawn struct {
	Position gamemath.Vec3
	Axis     gamemath.Vec3 // unit patrol direction
	Distance float64
}

// HazardSpawn places one hazard. Marker is true for spawns that came from
// the invisible dot marker layer.
type HazardSpawn struct {
	Position gamemath.Vec3
	Kind     string
	Marker   bool
}

type Level struct {
	Name        string
	Width       int // world units
	Height      int
	Walls       []Wall
	PlayerSpawn gamemath.Vec3
	Ghosts      []GhostSpawn
	Hazards     []HazardSpawn
}
