package tile

import (
	"fmt"
	"sync"
)

// ChangeFunc is notified after a cell changed type.
type ChangeFunc func(at Coord, from, to Type)

// Grid is a fixed-size, row-major array of tile types. Reads may run
// concurrently; writes are exclusive with respect to reads.
//
// Coordinates outside [0,width)x[0,height) read as Solid so the world edge
// behaves as a wall.
type Grid struct {
	mu     sync.RWMutex
	width  int
	height int
	tiles  []Type

	pendingMu sync.Mutex
	pending   []Command

	listeners []ChangeFunc
}

// NewGrid allocates an all-Empty grid. It panics on non-positive dimensions.
func NewGrid(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("tile: invalid grid dimensions %dx%d", width, height))
	}
	return &Grid{
		width:  width,
		height: height,
		tiles:  make([]Type, width*height),
	}
}

// Clone returns a copy of the cells. Listeners and queued commands are not
// copied.
func (g *Grid) Clone() *Grid {
	g.mu.RLock()
	defer g.mu.RUnlock()
	c := &Grid{width: g.width, height: g.height, tiles: make([]Type, len(g.tiles))}
	copy(c.tiles, g.tiles)
	return c
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (col, row) addresses a stored cell.
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.width && row >= 0 && row < g.height
}

// Get returns the type at (col, row), or Solid when out of bounds.
func (g *Grid) Get(col, row int) Type {
	if !g.InBounds(col, row) {
		return Solid
	}
	g.mu.RLock()
	t := g.tiles[row*g.width+col]
	g.mu.RUnlock()
	return t
}

// Set writes t at (col, row). Out-of-bounds writes are ignored. Set is meant
// for level construction; during play use Enqueue and ApplyPending so that
// changes land between simulation steps. Unknown tags panic.
func (g *Grid) Set(col, row int, t Type) {
	mustKnown(t)
	if !g.InBounds(col, row) {
		return
	}
	g.mu.Lock()
	old := g.swap(col, row, t)
	g.mu.Unlock()
	if old != t {
		g.notify(Coord{Col: col, Row: row}, old, t)
	}
}

// OnChange registers fn to be called after every effective change. Listeners
// run outside the grid lock, in registration order.
func (g *Grid) OnChange(fn ChangeFunc) {
	g.mu.Lock()
	g.listeners = append(g.listeners, fn)
	g.mu.Unlock()
}

// Count returns how many stored cells hold t.
func (g *Grid) Count(t Type) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n := 0
	for _, v := range g.tiles {
		if v == t {
			n++
		}
	}
	return n
}

func (g *Grid) swap(col, row int, t Type) Type {
	idx := row*g.width + col
	old := g.tiles[idx]
	g.tiles[idx] = t
	return old
}

func (g *Grid) notify(at Coord, from, to Type) {
	g.mu.RLock()
	listeners := g.listeners
	g.mu.RUnlock()
	for _, fn := range listeners {
		fn(at, from, to)
	}
}

func mustKnown(t Type) {
	if !t.Known() {
		panic(fmt.Sprintf("tile: unknown type %d", uint8(t)))
	}
}
