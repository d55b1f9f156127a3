package components

import "github.com/yohamta/donburi"

// SpawnData is where a body respawns after dying or leaving the level.
type SpawnData struct {
	X, Y   float64
	Deaths int
}

var Spawn = donburi.NewComponentType[SpawnData]()
