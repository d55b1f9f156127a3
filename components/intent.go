package components

import "github.com/yohamta/donburi"

// IntentData is what a controller (keyboard, patrol, script) wants the body
// to do this tick.
type IntentData struct {
	MoveX float64 // -1..1
	Climb float64 // -1 up, 1 down
	Jump  bool
	Drop  bool
}

var Intent = donburi.NewComponentType[IntentData]()
