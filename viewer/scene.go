// Package viewer is the ebiten front end: it feeds keyboard and mouse input
// into the simulation, lets the user edit tiles and draws the collision
// state.
package viewer

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/tilecollide/archetypes"
	"github.com/automoto/tilecollide/components"
	cfg "github.com/automoto/tilecollide/config"
	"github.com/automoto/tilecollide/shared/leveldata"
	"github.com/automoto/tilecollide/systems"
	"github.com/automoto/tilecollide/systems/factory"
	"github.com/automoto/tilecollide/tags"
	"github.com/automoto/tilecollide/tile"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type Scene struct {
	ecs        *ecs.ECS
	levels     []*leveldata.Level
	levelIndex int
	pending    int // level to switch to after the current update, -1 for none

	input InputState
	brush tile.Type
	once  sync.Once
}

func NewScene(levels []*leveldata.Level, levelIndex int) *Scene {
	return &Scene{levels: levels, levelIndex: levelIndex, pending: -1, brush: tile.Solid}
}

func (s *Scene) Update() {
	s.once.Do(s.configure)
	s.ecs.Update()

	if s.pending >= 0 {
		s.levelIndex = s.pending
		s.pending = -1
		s.configure()
	}
}

func (s *Scene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if s.ecs == nil {
		return
	}
	s.ecs.Draw(screen)
}

// ReloadTiles reapplies tile overrides from the config to the running level.
func (s *Scene) ReloadTiles() {
	if s.ecs == nil {
		return
	}
	entry, ok := components.Level.First(s.ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(entry)
	if err := cfg.ApplyTileOverrides(level.Table); err != nil {
		log.Printf("Warning: tile overrides not applied: %v", err)
		return
	}
	level.Engine.Reload()
	log.Printf("Reloaded tile properties for %s", level.CurrentLevel.Name)
}

func (s *Scene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Input runs before the simulation so intents apply this step
	ecs.AddSystem(s.updateInput)
	systems.AddSimulation(ecs)
	ecs.AddSystem(systems.UpdateCamera)

	ecs.AddRenderer(archetypes.Default, DrawLevel)
	ecs.AddRenderer(archetypes.Default, DrawBodies)
	ecs.AddRenderer(archetypes.Default, DrawDebug)
	ecs.AddRenderer(archetypes.Default, s.drawHUD)

	s.ecs = ecs

	level := factory.SetupLevel(s.ecs, s.levels, s.levelIndex)
	s.levelIndex = components.Level.Get(level).LevelIndex
	factory.CreateCamera(s.ecs)
}

func (s *Scene) updateInput(e *ecs.ECS) {
	s.input.Poll()

	if player, ok := tags.Player.First(e.World); ok {
		*components.Intent.Get(player) = s.input.Intent()
	}

	switch {
	case s.input.JustPressed(ActionToggleDebug):
		cfg.Debug.Draw = !cfg.Debug.Draw
	case s.input.JustPressed(ActionToggleChunks):
		cfg.Debug.ShowChunks = !cfg.Debug.ShowChunks
	case s.input.JustPressed(ActionRestart):
		s.pending = s.levelIndex
	case s.input.JustPressed(ActionNextLevel):
		s.pending = (s.levelIndex + 1) % len(s.levels)
	}

	for key, t := range brushKeys {
		if ebiten.IsKeyPressed(key) {
			s.brush = t
		}
	}
	s.updateEditing(e)
}

// updateEditing places the brush tile under the cursor on left click and
// clears it on right click.
func (s *Scene) updateEditing(e *ecs.ECS) {
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if !left && !right {
		return
	}
	entry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	engine := components.Level.Get(entry).Engine

	wx, wy := cursorWorld(e)
	at := engine.TileAt(wx, wy)
	if !engine.Grid().InBounds(at.Col, at.Row) {
		return
	}
	current := engine.Grid().Get(at.Col, at.Row)
	switch {
	case left && current != s.brush:
		systems.PlaceTile(e, at, s.brush)
	case right && current != tile.Empty:
		systems.DestroyTile(e, at)
	}
}
