package factory

import (
	"testing"

	"github.com/automoto/tilecollide/components"
	cfg "github.com/automoto/tilecollide/config"
	"github.com/automoto/tilecollide/shared/leveldata"
	"github.com/automoto/tilecollide/tags"
	"github.com/automoto/tilecollide/tile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func testLevels() []*leveldata.Level {
	a := leveldata.MustParseRows(32,
		"....",
		".P..",
		"####",
	)
	a.Name = "a"
	b := leveldata.MustParseRows(16,
		"......",
		"..P...",
		"--....",
		"######",
	)
	b.Name = "b"
	b.PatrolPaths = map[string]leveldata.PatrolPath{
		"p": {Name: "p", Points: []leveldata.Point{{X: 8, Y: 40}, {X: 72, Y: 40}}},
	}
	b.Walkers = []leveldata.WalkerSpawn{
		{X: 8, Y: 0, PatrolPath: "p"},
		{X: 40, Y: 0, PatrolPath: "missing"},
	}
	return []*leveldata.Level{a, b}
}

func TestCreateLevelClampsIndexAndClonesGrid(t *testing.T) {
	cfg.Reset()
	e := ecs.NewECS(donburi.NewWorld())
	levels := testLevels()

	entry := CreateLevelAtIndex(e, levels, 7)
	data := components.Level.Get(entry)
	assert.Equal(t, 0, data.LevelIndex)
	assert.Equal(t, "a", data.CurrentLevel.Name)
	assert.Nil(t, data.Index)
	assert.Equal(t, 32.0, data.Engine.Config().TileSize)

	data.Engine.Grid().Set(0, 2, tile.Empty)
	assert.Equal(t, tile.Solid, levels[0].Grid.Get(0, 2))
}

func TestCreateLevelAppliesOverridesAndChunks(t *testing.T) {
	cfg.Reset()
	t.Cleanup(cfg.Reset)
	require.NoError(t, cfg.LoadBytes([]byte(`
debug:
  show_chunks: true
tiles:
  solid:
    solid: true
    friction: 0.3
`)))

	e := ecs.NewECS(donburi.NewWorld())
	data := components.Level.Get(CreateLevelAtIndex(e, testLevels(), 1))
	assert.NotNil(t, data.Index)
	assert.Equal(t, 16.0, data.Engine.Config().TileSize)
	assert.Equal(t, 0.3, data.Table.Lookup(tile.Solid).Friction)
	assert.Equal(t, 16*cfg.Collision.PartitionCellTiles, data.Bodies.CellSize())
}

func TestSetupLevelSpawnsBodies(t *testing.T) {
	cfg.Reset()
	e := ecs.NewECS(donburi.NewWorld())
	levelEntry := SetupLevel(e, testLevels(), 1)
	data := components.Level.Get(levelEntry)

	player, ok := tags.Player.First(e.World)
	require.True(t, ok)
	box := components.Body.Get(player).Box
	assert.Equal(t, 32.0, box.X)
	assert.Equal(t, 16.0, box.Y)

	var patrols, idle int
	tags.Walker.Each(e.World, func(w *donburi.Entry) {
		if components.Patrol.Get(w).Tween != nil {
			patrols++
		} else {
			idle++
		}
	})
	assert.Equal(t, 1, patrols)
	assert.Equal(t, 1, idle)
	assert.Equal(t, 3, data.Bodies.Len())
}

func TestPatrolTweenRoundTrip(t *testing.T) {
	path := leveldata.PatrolPath{Points: []leveldata.Point{{X: 0}, {X: 10}, {X: 30}}}
	tw := patrolTween(path, 1)
	require.NotNil(t, tw)

	x, _, done := tw.Update(1)
	assert.InDelta(t, 10, x, 1e-4)
	assert.False(t, done)
	x, _, _ = tw.Update(1)
	assert.InDelta(t, 30, x, 1e-4)
	x, _, _ = tw.Update(1)
	assert.InDelta(t, 10, x, 1e-4)
	x, _, done = tw.Update(1)
	assert.InDelta(t, 0, x, 1e-4)
	assert.True(t, done)

	assert.Nil(t, patrolTween(leveldata.PatrolPath{Points: []leveldata.Point{{X: 1}}}, 1))
	assert.Nil(t, patrolTween(path, 0))
}
