package systems

import (
	"github.com/automoto/tilecollide/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeadZones respawns bodies that touch a dead zone.
func UpdateDeadZones(ecs *ecs.ECS) {
	level := currentLevel(ecs)
	if level == nil || len(level.CurrentLevel.DeadZones) == 0 {
		return
	}

	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		box := components.Body.Get(e).Box
		for _, dz := range level.CurrentLevel.DeadZones {
			if box.Overlaps(dz) {
				respawn(level, e)
				return
			}
		}
	})
}
