package components

import "github.com/yohamta/donburi"

// PhysicsData holds per-entity movement tuning.
type PhysicsData struct {
	Gravity      float64
	Acceleration float64
	MaxSpeed     float64
	JumpSpeed    float64
}

var Physics = donburi.NewComponentType[PhysicsData]()
