package systems

import (
	"math"

	"github.com/automoto/tilecollide/components"
	"github.com/automoto/tilecollide/config"
	"github.com/automoto/tilecollide/tags"
	"github.com/yohamta/donburi/ecs"
)

// cameraSmoothing is the fraction of the distance to the target covered per
// step.
const cameraSmoothing = 0.15

// UpdateCamera eases the camera toward the player, keeping the view inside
// the level. Levels smaller than the view are centered.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	level := currentLevel(e)
	if level == nil {
		return
	}
	box := components.Body.Get(playerEntry).Box

	screenWidth := float64(config.Viewer.Width)
	screenHeight := float64(config.Viewer.Height)
	levelWidth, levelHeight := level.CurrentLevel.PixelSize()

	targetX := clampView(box.CenterX(), screenWidth, levelWidth)
	targetY := clampView(box.CenterY(), screenHeight, levelHeight)

	camera.Position.X += (targetX - camera.Position.X) * cameraSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * cameraSmoothing
}

func clampView(target, view, world float64) float64 {
	if world <= view {
		return world / 2
	}
	return math.Max(view/2, math.Min(world-view/2, target))
}
