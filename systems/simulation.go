package systems

import (
	"time"

	"github.com/automoto/tilecollide/collision"
	"github.com/automoto/tilecollide/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// AddSimulation registers the fixed-step simulation systems in run order and
// subscribes the tile edit queue. Call it once per ECS.
func AddSimulation(ecs *ecs.ECS) {
	components.TileEdit.Subscribe(ecs.World, enqueueTileEdit)

	ecs.AddSystem(UpdateClock)
	ecs.AddSystem(UpdateTiles)
	ecs.AddSystem(UpdatePatrols)
	ecs.AddSystem(UpdatePhysics)
	ecs.AddSystem(UpdateCollisions)
	ecs.AddSystem(UpdateHazards)
	ecs.AddSystem(UpdateDeadZones)
}

// UpdateClock advances the simulation clock used for drop-through grace.
func UpdateClock(ecs *ecs.ECS) {
	if level := currentLevel(ecs); level != nil {
		level.Tick++
	}
}

func currentLevel(ecs *ecs.ECS) *components.LevelData {
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Level.Get(entry)
}

// respawn returns a body to its spawn point with full health.
func respawn(level *components.LevelData, e *donburi.Entry) {
	body := components.Body.Get(e)
	spawn := components.Spawn.Get(e)
	spawn.Deaths++

	body.Box.X, body.Box.Y = spawn.X, spawn.Y
	body.VelX, body.VelY = 0, 0
	body.Contact = collision.Result{}
	body.OnLadder = false
	body.DropUntil = time.Time{}

	if e.HasComponent(components.Health) {
		health := components.Health.Get(e)
		health.Current = health.Max
		health.Invuln = health.InvulnFrames
	}
	level.Bodies.Move(e.Entity(), body.Box)
}
