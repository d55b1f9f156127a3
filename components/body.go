package components

import (
	"time"

	"github.com/automoto/tilecollide/collision"
	"github.com/yohamta/donburi"
)

// BodyData is a moving collision box and the contacts of its last step.
type BodyData struct {
	collision.Body
	Contact collision.Result

	// DropUntil is the end of the current drop-through grace period.
	DropUntil time.Time
	OnLadder  bool
	Facing    float64
}

var Body = donburi.NewComponentType[BodyData]()
