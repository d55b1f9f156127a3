package systems

import (
	"math"

	"github.com/automoto/tilecollide/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// patrolArrive is how close a walker's center must get to its target before
// it stops pushing.
const patrolArrive = 2.0

// UpdatePatrols advances each walker's patrol tween and steers its intent
// toward the tweened X.
func UpdatePatrols(ecs *ecs.ECS) {
	level := currentLevel(ecs)
	if level == nil {
		return
	}
	dt := float32(level.Step.Seconds())

	components.Patrol.Each(ecs.World, func(e *donburi.Entry) {
		patrol := components.Patrol.Get(e)
		intent := components.Intent.Get(e)
		if patrol.Tween == nil {
			intent.MoveX = 0
			return
		}

		x, _, done := patrol.Tween.Update(dt)
		if done {
			patrol.Tween.Reset()
		}
		patrol.TargetX = float64(x)

		diff := patrol.TargetX - components.Body.Get(e).Box.CenterX()
		if math.Abs(diff) <= patrolArrive {
			intent.MoveX = 0
			return
		}
		intent.MoveX = math.Copysign(1, diff)
	})
}
