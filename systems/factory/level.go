package factory

import (
	"fmt"

	"github.com/automoto/pacdots/archetypes"
	"github.com/automoto/pacdots/components"
	cfg "github.com/automoto/pacdots/config"
	"github.com/automoto/pacdots/leveldata"
	"github.com/automoto/pacdots/logging"
	"github.com/automoto/pacdots/score"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

func CreateLevel(w donburi.World, level *leveldata.Level) *donburi.Entry {
	entry := archetypes.Level.Spawn(w)
	components.Level.SetValue(entry, components.LevelData{CurrentLevel: level})
	return entry
}

// PopulateLevel builds the level entity, its collision space and everything
// placed in it, and returns the player. A hazard that cannot be built is
// logged and skipped; any other failure aborts.
func PopulateLevel(w donburi.World, level *leveldata.Level, sc *score.Score) (*donburi.Entry, error) {
	CreateLevel(w, level)
	CreateSpace(w, level.Width, level.Height, cfg.C.CellSize, cfg.C.CellSize)

	for _, wall := range level.Walls {
		if _, err := CreateWall(w, wall); err != nil {
			return nil, fmt.Errorf("create wall: %w", err)
		}
	}

	for _, spawn := range level.Ghosts {
		if _, err := CreateGhost(w, spawn); err != nil {
			return nil, fmt.Errorf("create ghost: %w", err)
		}
	}

	skipped := 0
	for _, spawn := range level.Hazards {
		if _, err := CreateHazard(w, spawn.Kind, spawn.Position, sc); err != nil {
			skipped++
			logging.L().Warn("skipping hazard",
				zap.String("kind", spawn.Kind),
				zap.Float64("x", spawn.Position.X),
				zap.Float64("z", spawn.Position.Z),
				zap.Error(err),
			)
		}
	}

	player, err := CreatePlayer(w, level.PlayerSpawn)
	if err != nil {
		return nil, fmt.Errorf("create player: %w", err)
	}

	logging.L().Info("level populated",
		zap.String("level", level.Name),
		zap.Int("walls", len(level.Walls)),
		zap.Int("ghosts", len(level.Ghosts)),
		zap.Int("hazards", len(level.Hazards)-skipped),
		zap.Int("skipped", skipped),
	)
	return player, nil
}
