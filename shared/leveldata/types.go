// Package leveldata builds collision grids from Tiled TMX maps and from
// ASCII layouts. It has no dependencies on ebitengine or donburi.
package leveldata

import (
	"errors"

	"github.com/automoto/tilecollide/shared/gamemath"
	"github.com/automoto/tilecollide/tile"
)

// DefaultLayer is the tile layer holding world geometry.
const DefaultLayer = "wg-tiles"

var (
	ErrLayerNotFound = errors.New("leveldata: tile layer not found")
	ErrBadLayout     = errors.New("leveldata: bad layout")
)

// Level is the collision-relevant content of one map.
type Level struct {
	Name     string
	Grid     *tile.Grid
	TileSize float64
	Spawns   []SpawnPoint

	Walkers     []WalkerSpawn
	PatrolPaths map[string]PatrolPath
	DeadZones   []gamemath.Rect
}

// SpawnPoint represents a player spawn location.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// PixelSize returns the level's extent in world units.
func (l *Level) PixelSize() (w, h float64) {
	return float64(l.Grid.Width()) * l.TileSize, float64(l.Grid.Height()) * l.TileSize
}

// WalkerSpawn places an NPC body that follows a named patrol path.
type WalkerSpawn struct {
	X, Y       float64
	PatrolPath string
}

type Point struct {
	X, Y float64
}

// PatrolPath is a polyline in world coordinates.
type PatrolPath struct {
	Name   string
	Points []Point
}
