package components

import (
	"github.com/automoto/tilecollide/shared/leveldata"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// PatrolData drives an NPC back and forth along a path. The tween yields the
// X coordinate the walker is heading for.
type PatrolData struct {
	Path    leveldata.PatrolPath
	Tween   *gween.Sequence
	TargetX float64
}

var Patrol = donburi.NewComponentType[PatrolData]()
