package factory

import (
	"log"
	"time"

	"github.com/automoto/tilecollide/archetypes"
	"github.com/automoto/tilecollide/collision"
	"github.com/automoto/tilecollide/components"
	cfg "github.com/automoto/tilecollide/config"
	"github.com/automoto/tilecollide/shared/leveldata"
	"github.com/automoto/tilecollide/spatial"
	"github.com/automoto/tilecollide/tile"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevelAtIndex creates the level singleton for levels[levelIndex] and
// builds its collision engine over a private copy of the level grid, so the
// loaded level stays pristine across restarts.
func CreateLevelAtIndex(ecs *ecs.ECS, levels []*leveldata.Level, levelIndex int) *donburi.Entry {
	if len(levels) == 0 {
		panic("factory: no levels")
	}
	// Clamp index to valid range
	if levelIndex < 0 || levelIndex >= len(levels) {
		levelIndex = 0
	}
	current := levels[levelIndex]
	grid := current.Grid.Clone()

	table := tile.NewTable()
	if err := cfg.ApplyTileOverrides(table); err != nil {
		log.Printf("Warning: tile overrides ignored: %v", err)
		table = tile.NewTable()
	}

	collCfg := cfg.Collision
	collCfg.TileSize = current.TileSize

	data := &components.LevelData{
		CurrentLevel: current,
		LevelIndex:   levelIndex,
		Levels:       levels,
		Table:        table,
		Epoch:        time.Unix(0, 0),
		Step:         cfg.StepDuration(),
	}

	opts := []collision.Option{collision.WithClock(data.Now)}
	bodies := 1 + len(current.Walkers)
	if spatial.ShouldPartition(grid.Width()*grid.Height(), bodies) || cfg.Debug.ShowChunks {
		data.Index = spatial.NewTileIndex(grid, collCfg.PartitionCellTiles)
		opts = append(opts, collision.WithTileIndex(data.Index))
	}
	data.Engine = collision.New(grid, table, collCfg, opts...)

	w, h := current.PixelSize()
	data.Bodies = spatial.NewBodies[donburi.Entity](w, h, int(collCfg.TileSize)*collCfg.PartitionCellTiles)

	level := archetypes.Level.Spawn(ecs)
	components.Level.Set(level, data)

	log.Printf("Loaded level: %s (%dx%d tiles, tile index: %v)",
		current.Name, grid.Width(), grid.Height(), data.Index != nil)
	return level
}

// SetupLevel creates the level and spawns the player at the first spawn
// point plus every walker the level defines.
func SetupLevel(ecs *ecs.ECS, levels []*leveldata.Level, levelIndex int) *donburi.Entry {
	level := CreateLevelAtIndex(ecs, levels, levelIndex)
	current := components.Level.Get(level).CurrentLevel

	if len(current.Spawns) == 0 {
		log.Printf("Warning: level %s has no PlayerSpawn, using origin", current.Name)
		CreatePlayer(ecs, current.TileSize, current.TileSize)
	} else {
		CreatePlayer(ecs, current.Spawns[0].X, current.Spawns[0].Y)
	}

	for _, w := range current.Walkers {
		path, ok := current.PatrolPaths[w.PatrolPath]
		if !ok && w.PatrolPath != "" {
			log.Printf("Warning: walker at (%.0f,%.0f) references unknown path %q", w.X, w.Y, w.PatrolPath)
		}
		CreateWalker(ecs, w.X, w.Y, path)
	}
	return level
}

func trackBody(ecs *ecs.ECS, e *donburi.Entry) {
	level, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	components.Level.Get(level).Bodies.Insert(e.Entity(), components.Body.Get(e).Box)
}
