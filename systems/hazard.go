package systems

import (
	"github.com/automoto/tilecollide/collision"
	"github.com/automoto/tilecollide/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHazards damages bodies overlapping hazard tiles. A hit grants
// invulnerability frames; a body at zero health respawns.
func UpdateHazards(ecs *ecs.ECS) {
	level := currentLevel(ecs)
	if level == nil {
		return
	}

	components.Health.Each(ecs.World, func(e *donburi.Entry) {
		health := components.Health.Get(e)
		if health.Invuln > 0 {
			health.Invuln--
			return
		}

		body := components.Body.Get(e)
		damage := 0
		for _, h := range level.Engine.TilesOverlapping(body.Box, collision.FilterHazard) {
			damage = max(damage, h.Props.Damage)
		}
		if damage == 0 {
			return
		}

		health.Current -= damage
		health.Invuln = health.InvulnFrames
		if health.Current <= 0 {
			respawn(level, e)
		}
	})
}
