package systems

import (
	"log"

	"github.com/automoto/tilecollide/collision"
	"github.com/automoto/tilecollide/components"
	cfg "github.com/automoto/tilecollide/config"
	"github.com/automoto/tilecollide/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions moves every body by its velocity through the collision
// engine, then applies bounce tiles and refreshes the body partition.
func UpdateCollisions(ecs *ecs.ECS) {
	level := currentLevel(ecs)
	if level == nil {
		return
	}
	engine := level.Engine

	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		opts := collision.ResolveOptions{
			IgnorePlatforms: engine.PlatformsSuppressed(body.DropUntil),
		}

		fallSpeed := body.VelY
		prev := body.Contact
		res := engine.MoveBody(&body.Body, opts)
		body.Contact = res

		if res.OnGround && fallSpeed > cfg.Physics.BounceMinSpeed {
			if bounce := engine.Properties(res.GroundCoord).Bounce; bounce > 0 {
				body.VelY = max(-fallSpeed*bounce, cfg.Physics.MaxRiseSpeed)
			}
		}

		if cfg.Debug.LogContacts && e.HasComponent(tags.Player) && contactChanged(prev, res) {
			log.Printf("Player contact: ground=%v(%s) platform=%v slope=%v walls=%v/%v ceiling=%v at (%.1f,%.1f)",
				res.OnGround, res.Ground, res.OnPlatform, res.OnSlope,
				res.OnLeftWall, res.OnRightWall, res.OnCeiling, body.Box.X, body.Box.Y)
		}

		level.Bodies.Move(e.Entity(), body.Box)
	})
}

func contactChanged(a, b collision.Result) bool {
	return a.OnGround != b.OnGround || a.OnPlatform != b.OnPlatform || a.OnSlope != b.OnSlope ||
		a.OnLeftWall != b.OnLeftWall || a.OnRightWall != b.OnRightWall || a.OnCeiling != b.OnCeiling
}
