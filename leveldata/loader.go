package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	cfg "github.com/automoto/pacdots/config"
	"github.com/automoto/pacdots/gamemath"
	"github.com/lafriks/go-tiled"
)

// Object group names read from a TMX map.
const (
	GroupWalls       = "Walls"
	GroupPlayerSpawn = "PlayerSpawn"
	GroupGhosts      = "Ghosts"
	GroupHazards     = "Hazards"
	GroupDotMarkers  = "DotMarkers"

	// LayerWallTiles is a tile layer whose every tile is a solid block.
	LayerWallTiles = "wg-tiles"
)

var (
	ErrNoPlayerSpawn = errors.New("no player spawn defined in map")
	// ErrTileLayerSize is returned when the wall tile layer does not hold
	// one tile per map cell.
	ErrTileLayerSize = errors.New("wall tile layer does not match map size")
)

// Load parses the TMX file at path inside fsys.
func Load(fsys fs.FS, path string) (*Level, error) {
	levelMap, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", path, err)
	}
	level, err := FromMap(levelMap)
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", path, err)
	}
	level.Name = path
	return level, nil
}

// FromMap converts an already parsed Tiled map.
func FromMap(levelMap *tiled.Map) (*Level, error) {
	height := float64(levelMap.Height * levelMap.TileHeight)
	level := &Level{
		Width:   levelMap.Width * levelMap.TileWidth,
		Height:  levelMap.Height * levelMap.TileHeight,
		Walls:   []Wall{},
		Ghosts:  []GhostSpawn{},
		Hazards: []HazardSpawn{},
	}

	toWorld := func(x, y float64) gamemath.Vec3 {
		return gamemath.Vec3{X: x, Z: height - y}
	}

	spawnFound := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupWalls:
			for _, o := range og.Objects {
				level.Walls = append(level.Walls, Wall{
					X:     o.X,
					Z:     height - o.Y - o.Height,
					Width: o.Width,
					Depth: o.Height,
				})
			}
		case GroupPlayerSpawn:
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				level.PlayerSpawn = toWorld(o.X, o.Y)
				spawnFound = true
			}
		case GroupGhosts:
			for _, o := range og.Objects {
				distance := o.Properties.GetFloat("distance")
				if distance == 0 {
					distance = cfg.Ghost.DefaultDistance
				}
				level.Ghosts = append(level.Ghosts, GhostSpawn{
					Position: toWorld(o.X, o.Y),
					Axis:     parseAxis(o.Properties.GetString("axis")),
					Distance: distance,
				})
			}
		case GroupHazards:
			for _, o := range og.Objects {
				level.Hazards = append(level.Hazards, HazardSpawn{
					Position: toWorld(o.X, o.Y),
					Kind:     objectKind(o, cfg.Hazard.DefaultKind),
				})
			}
		case GroupDotMarkers:
			for _, o := range og.Objects {
				level.Hazards = append(level.Hazards, HazardSpawn{
					Position: toWorld(o.X, o.Y),
					Kind:     objectKind(o, cfg.Hazard.MarkerKind),
					Marker:   true,
				})
			}
		}
	}

	tileWalls, err := wallTiles(levelMap)
	if err != nil {
		return nil, err
	}
	level.Walls = append(level.Walls, tileWalls...)

	if !spawnFound {
		return nil, ErrNoPlayerSpawn
	}
	return level, nil
}

// objectKind reads the "kind" property, falling back to the object's class
// and then to def.
func objectKind(o *tiled.Object, def string) string {
	if kind := o.Properties.GetString("kind"); kind != "" {
		return kind
	}
	if o.Class != "" {
		return o.Class
	}
	return def
}

// parseAxis reads a ghost's patrol axis. Besides x and z it accepts a
// direction name, which patrols towards that side first.
func parseAxis(s string) gamemath.Vec3 {
	s = strings.ToLower(strings.TrimSpace(s))
	if d, ok := gamemath.ParseDirection(s); ok {
		return d.Forward()
	}
	switch s {
	case "z", "y", "vertical":
		return gamemath.Vec3{Z: 1}
	}
	return gamemath.Vec3{X: 1}
}

// wallTiles turns every tile of the wall tile layer into a one-tile wall.
// The layer must cover the whole map; chunked layers of infinite maps are
// rejected.
func wallTiles(levelMap *tiled.Map) ([]Wall, error) {
	var walls []Wall
	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	height := float64(levelMap.Height) * tileH
	for _, layer := range levelMap.Layers {
		if layer.Name != LayerWallTiles {
			continue
		}
		if want := levelMap.Width * levelMap.Height; len(layer.Tiles) != want {
			return nil, fmt.Errorf("layer %s has %d tiles, want %d: %w", layer.Name, len(layer.Tiles), want, ErrTileLayerSize)
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile == nil || tile.IsNil() {
					continue
				}
				walls = append(walls, Wall{
					X:     float64(x) * tileW,
					Z:     height - float64(y+1)*tileH,
					Width: tileW,
					Depth: tileH,
				})
			}
		}
		break
	}
	return walls, nil
}
