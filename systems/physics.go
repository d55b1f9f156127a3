package systems

import (
	"math"

	"github.com/automoto/tilecollide/collision"
	"github.com/automoto/tilecollide/components"
	cfg "github.com/automoto/tilecollide/config"
	"github.com/automoto/tilecollide/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics turns intents into velocity: acceleration and tile friction
// on the ground, gravity in the air, climbing on ladders, jumps and
// drop-through requests.
func UpdatePhysics(ecs *ecs.ECS) {
	level := currentLevel(ecs)
	if level == nil {
		return
	}
	engine := level.Engine

	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		body := components.Body.Get(e)
		intent := components.Intent.Get(e)

		if intent.MoveX != 0 {
			body.Facing = math.Copysign(1, intent.MoveX)
			target := gamemath.ClampFloat(intent.MoveX, -1, 1) * physics.MaxSpeed
			body.VelX = gamemath.Approach(body.VelX, target, physics.Acceleration)
		} else {
			body.VelX = gamemath.ApplyFriction(body.VelX, frictionFor(engine, body))
		}
		body.VelX = gamemath.ClampSpeed(body.VelX, physics.MaxSpeed)

		body.OnLadder = len(engine.TilesOverlapping(body.Box, collision.FilterClimbable)) > 0
		grounded := body.Contact.OnGround

		switch {
		case intent.Drop && body.Contact.OnPlatform:
			box, until := engine.DropThrough(body.Box)
			if !until.IsZero() {
				body.Box = box
				body.DropUntil = until
				body.Contact = collision.Result{}
				level.Bodies.Move(e.Entity(), box)
			}
		case intent.Jump && (grounded || body.OnLadder):
			body.VelY = -physics.JumpSpeed
			body.OnLadder = false
		}

		if body.OnLadder {
			body.VelY = intent.Climb * cfg.Physics.ClimbSpeed
			return
		}

		// Apply gravity
		body.VelY += physics.Gravity
		body.VelY = gamemath.ClampFloat(body.VelY, cfg.Physics.MaxRiseSpeed, cfg.Physics.MaxFallSpeed)
	})
}

// frictionFor scales ground friction by the tile underfoot. Airborne bodies
// use air friction.
func frictionFor(engine *collision.Engine, body *components.BodyData) float64 {
	if !body.Contact.OnGround {
		return cfg.Physics.AirFriction
	}
	return cfg.Physics.Friction * engine.Properties(body.Contact.GroundCoord).Friction
}
