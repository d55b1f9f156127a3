package factory

import (
	"github.com/automoto/tilecollide/archetypes"
	"github.com/automoto/tilecollide/collision"
	"github.com/automoto/tilecollide/components"
	cfg "github.com/automoto/tilecollide/config"
	"github.com/automoto/tilecollide/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	box := gamemath.Rect{X: x, Y: y, W: cfg.Player.CollisionWidth, H: cfg.Player.CollisionHeight}
	components.Body.SetValue(player, components.BodyData{
		Body:   collision.Body{Box: box},
		Facing: 1,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Gravity:      cfg.Physics.Gravity,
		Acceleration: cfg.Player.Acceleration,
		MaxSpeed:     cfg.Player.MaxSpeed,
		JumpSpeed:    cfg.Player.JumpSpeed,
	})
	components.Health.SetValue(player, components.HealthData{
		Current:      cfg.Player.Health,
		Max:          cfg.Player.Health,
		InvulnFrames: cfg.Player.InvulnFrames,
	})
	components.Spawn.SetValue(player, components.SpawnData{X: x, Y: y})

	trackBody(ecs, player)
	return player
}
