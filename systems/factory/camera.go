package factory

import (
	"github.com/automoto/tilecollide/archetypes"
	"github.com/automoto/tilecollide/components"
	"github.com/automoto/tilecollide/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera spawns the camera centered on the player, or on the origin
// when there is none.
func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)

	var pos math.Vec2
	if player, ok := tags.Player.First(ecs.World); ok {
		box := components.Body.Get(player).Box
		pos = math.NewVec2(box.CenterX(), box.CenterY())
	}
	components.Camera.SetValue(camera, components.CameraData{Position: pos})
	return camera
}
