package components

import (
	"time"

	"github.com/automoto/tilecollide/collision"
	"github.com/automoto/tilecollide/shared/leveldata"
	"github.com/automoto/tilecollide/spatial"
	"github.com/automoto/tilecollide/tile"
	"github.com/yohamta/donburi"
)

// LevelData is the singleton holding the loaded level and its collision
// engine.
type LevelData struct {
	CurrentLevel *leveldata.Level
	LevelIndex   int
	Levels       []*leveldata.Level

	Table  *tile.Table
	Engine *collision.Engine
	Index  *spatial.TileIndex // nil when the level is small enough to scan
	Bodies *spatial.Bodies[donburi.Entity]

	// Tick counts simulation steps; Epoch + Tick*Step is the engine clock.
	Tick  int64
	Epoch time.Time
	Step  time.Duration
}

// Now returns the simulation time.
func (l *LevelData) Now() time.Time {
	return l.Epoch.Add(time.Duration(l.Tick) * l.Step)
}

var Level = donburi.NewComponentType[LevelData]()
