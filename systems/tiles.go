package systems

import (
	"log"

	"github.com/automoto/tilecollide/collision"
	"github.com/automoto/tilecollide/components"
	"github.com/automoto/tilecollide/tile"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func enqueueTileEdit(w donburi.World, cmd tile.Command) {
	entry, ok := components.Level.First(w)
	if !ok {
		return
	}
	components.Level.Get(entry).Engine.Grid().Enqueue(cmd)
}

// PlaceTile queues a placement for the next step.
func PlaceTile(ecs *ecs.ECS, at tile.Coord, t tile.Type) {
	components.TileEdit.Publish(ecs.World, tile.Command{Kind: tile.CommandPlace, At: at, Type: t})
}

// DestroyTile queues a removal for the next step.
func DestroyTile(ecs *ecs.ECS, at tile.Coord) {
	components.TileEdit.Publish(ecs.World, tile.Command{Kind: tile.CommandDestroy, At: at})
}

// UpdateTiles applies queued tile edits before anything moves, then wakes
// bodies near each changed tile so stale contacts are re-derived.
func UpdateTiles(ecs *ecs.ECS) {
	components.TileEdit.ProcessEvents(ecs.World)

	level := currentLevel(ecs)
	if level == nil {
		return
	}
	changes := level.Engine.Grid().ApplyPending()
	if len(changes) == 0 {
		return
	}

	woken := 0
	for _, c := range changes {
		area := level.Engine.TileRect(c.At)
		// One pixel of margin catches bodies resting on or against the tile.
		area.X--
		area.Y--
		area.W += 2
		area.H += 2
		for _, entity := range level.Bodies.Query(area) {
			entry := ecs.World.Entry(entity)
			if !entry.Valid() || !entry.HasComponent(components.Body) {
				continue
			}
			body := components.Body.Get(entry)
			body.Contact = collision.Result{}
			woken++
		}
	}
	log.Printf("Applied %d tile changes, woke %d bodies", len(changes), woken)
}
