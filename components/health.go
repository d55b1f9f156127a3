package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int

	// Invuln counts down the frames left before damage applies again.
	Invuln       int
	InvulnFrames int
}

var Health = donburi.NewComponentType[HealthData]()
