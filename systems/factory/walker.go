package factory

import (
	"github.com/automoto/tilecollide/archetypes"
	"github.com/automoto/tilecollide/collision"
	"github.com/automoto/tilecollide/components"
	cfg "github.com/automoto/tilecollide/config"
	"github.com/automoto/tilecollide/shared/gamemath"
	"github.com/automoto/tilecollide/shared/leveldata"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWalker spawns an NPC body. With a path of two or more points it
// patrols there and back along the path's X coordinates.
func CreateWalker(ecs *ecs.ECS, x, y float64, path leveldata.PatrolPath) *donburi.Entry {
	walker := archetypes.Walker.Spawn(ecs)

	box := gamemath.Rect{X: x, Y: y, W: cfg.Walker.CollisionWidth, H: cfg.Walker.CollisionHeight}
	components.Body.SetValue(walker, components.BodyData{
		Body:   collision.Body{Box: box},
		Facing: -1,
	})
	components.Physics.SetValue(walker, components.PhysicsData{
		Gravity:      cfg.Physics.Gravity,
		Acceleration: cfg.Walker.Acceleration,
		MaxSpeed:     cfg.Walker.MaxSpeed,
	})
	components.Health.SetValue(walker, components.HealthData{
		Current:      cfg.Walker.Health,
		Max:          cfg.Walker.Health,
		InvulnFrames: cfg.Player.InvulnFrames,
	})
	components.Spawn.SetValue(walker, components.SpawnData{X: x, Y: y})

	patrol := components.PatrolData{Path: path, TargetX: box.CenterX()}
	patrol.Tween = patrolTween(path, cfg.Walker.LegSeconds)
	components.Patrol.SetValue(walker, patrol)

	trackBody(ecs, walker)
	return walker
}

// patrolTween walks the path's X coordinates forward and then back, one leg
// per segment.
func patrolTween(path leveldata.PatrolPath, legSeconds float32) *gween.Sequence {
	if len(path.Points) < 2 || legSeconds <= 0 {
		return nil
	}
	tw := gween.NewSequence()
	pts := path.Points
	for i := 0; i+1 < len(pts); i++ {
		tw.Add(gween.New(float32(pts[i].X), float32(pts[i+1].X), legSeconds, ease.Linear))
	}
	for i := len(pts) - 1; i > 0; i-- {
		tw.Add(gween.New(float32(pts[i].X), float32(pts[i-1].X), legSeconds, ease.Linear))
	}
	return tw
}
