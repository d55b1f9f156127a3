package archetypes

import (
	"github.com/automoto/tilecollide/components"
	"github.com/automoto/tilecollide/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer.
const Default ecs.LayerID = 0

var (
	Player = newArchetype(
		tags.Player,
		components.Body,
		components.Physics,
		components.Intent,
		components.Health,
		components.Spawn,
	)
	Walker = newArchetype(
		tags.Walker,
		components.Body,
		components.Physics,
		components.Intent,
		components.Health,
		components.Spawn,
		components.Patrol,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		Default,
		append(a.components, cs...)...,
	))
	return e
}
