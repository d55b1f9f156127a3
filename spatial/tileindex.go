// Package spatial provides coarse secondary indexes over the tile grid and
// over moving bodies. Both are optimizations: queries answered through them
// match a full scan exactly.
package spatial

import (
	"sync"

	"github.com/automoto/tilecollide/tile"
)

// DefaultCellTiles is the coarse cell edge, in tiles.
const DefaultCellTiles = 4

// Partitioning pays off above these sizes.
const (
	PartitionMinTiles  = 10000
	PartitionMinBodies = 50
)

// ShouldPartition reports whether a world of the given size benefits from
// the coarse indexes.
func ShouldPartition(tiles, bodies int) bool {
	return tiles > PartitionMinTiles || bodies > PartitionMinBodies
}

// A chunk holds cellTiles² cells, which outgrows uint16 at 256 tiles.
type chunkCounts [tile.NumTypes]uint32

// TileIndex records, per coarse chunk, how many cells of each type it holds.
// It follows grid changes through Grid.OnChange.
type TileIndex struct {
	mu        sync.RWMutex
	grid      *tile.Grid
	cellTiles int
	cols      int
	rows      int
	chunks    []chunkCounts
}

// NewTileIndex scans g once and subscribes to its changes. cellTiles <= 0
// selects DefaultCellTiles.
func NewTileIndex(g *tile.Grid, cellTiles int) *TileIndex {
	if cellTiles <= 0 {
		cellTiles = DefaultCellTiles
	}
	idx := &TileIndex{
		grid:      g,
		cellTiles: cellTiles,
		cols:      (g.Width() + cellTiles - 1) / cellTiles,
		rows:      (g.Height() + cellTiles - 1) / cellTiles,
	}
	idx.chunks = make([]chunkCounts, idx.cols*idx.rows)
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			idx.chunks[idx.chunkIndex(col, row)][g.Get(col, row)]++
		}
	}
	g.OnChange(idx.update)
	return idx
}

// CellTiles returns the chunk edge in tiles.
func (idx *TileIndex) CellTiles() int { return idx.cellTiles }

// ChunkHas reports whether the chunk holding in-bounds cell (col, row)
// contains any type in want. Out-of-bounds cells always report true since
// they read as Solid and are not indexed.
func (idx *TileIndex) ChunkHas(col, row int, want tile.Mask) bool {
	if !idx.grid.InBounds(col, row) {
		return true
	}
	idx.mu.RLock()
	counts := &idx.chunks[idx.chunkIndex(col, row)]
	defer idx.mu.RUnlock()
	for t := tile.Type(0); t < tile.NumTypes; t++ {
		if counts[t] > 0 && want.Has(t) {
			return true
		}
	}
	return false
}

// ChunkEndCol returns the last in-bounds column of the chunk holding col.
func (idx *TileIndex) ChunkEndCol(col int) int {
	end := (col/idx.cellTiles+1)*idx.cellTiles - 1
	if end >= idx.grid.Width() {
		end = idx.grid.Width() - 1
	}
	return end
}

// Mask returns the set of types present in the chunk holding (col, row).
func (idx *TileIndex) Mask(col, row int) tile.Mask {
	if !idx.grid.InBounds(col, row) {
		return tile.MaskOf(tile.Solid)
	}
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	var m tile.Mask
	for t, n := range idx.chunks[idx.chunkIndex(col, row)] {
		if n > 0 {
			m |= tile.MaskOf(tile.Type(t))
		}
	}
	return m
}

func (idx *TileIndex) chunkIndex(col, row int) int {
	return (row/idx.cellTiles)*idx.cols + col/idx.cellTiles
}

func (idx *TileIndex) update(at tile.Coord, from, to tile.Type) {
	idx.mu.Lock()
	counts := &idx.chunks[idx.chunkIndex(at.Col, at.Row)]
	counts[from]--
	counts[to]++
	idx.mu.Unlock()
}
