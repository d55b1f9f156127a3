// Package collision resolves axis-aligned boxes against a tile grid: box
// queries, per-axis minimal separation, one-way platforms, slopes and
// drop-through. Resolution always runs X before Y.
package collision

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/automoto/tilecollide/shared/gamemath"
	"github.com/automoto/tilecollide/spatial"
	"github.com/automoto/tilecollide/tile"
)

// Engine is safe for concurrent Resolve calls as long as the grid is only
// mutated through Grid.ApplyPending between steps.
type Engine struct {
	grid  *tile.Grid
	table *tile.Table
	cfg   Config
	index *spatial.TileIndex
	now   func() time.Time

	masksMu sync.RWMutex
	masks   [numFilters]tile.Mask

	cache *tileCache
}

// Option configures an Engine.
type Option func(*Engine)

// WithTileIndex lets box queries skip chunks that hold no wanted tiles.
func WithTileIndex(idx *spatial.TileIndex) Option {
	return func(e *Engine) { e.index = idx }
}

// WithClock replaces time.Now for drop-through deadlines.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// New builds an engine over grid. A nil table selects the defaults. It panics
// on an invalid config.
func New(grid *tile.Grid, table *tile.Table, cfg Config, opts ...Option) *Engine {
	if grid == nil {
		panic("collision: nil grid")
	}
	if err := cfg.Validate(); err != nil {
		panic(err.Error())
	}
	if table == nil {
		table = tile.NewTable()
	}
	e := &Engine{
		grid:  grid,
		table: table,
		cfg:   cfg,
		now:   time.Now,
		cache: newTileCache(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.refreshMasks()
	grid.OnChange(func(at tile.Coord, _, _ tile.Type) { e.cache.invalidate(at) })
	return e
}

func (e *Engine) Grid() *tile.Grid   { return e.grid }
func (e *Engine) Table() *tile.Table { return e.table }
func (e *Engine) Config() Config     { return e.cfg }

// Reload recomputes filter masks and drops cached tile data. Call it after
// overriding properties in the table.
func (e *Engine) Reload() {
	e.refreshMasks()
	e.cache.reset()
}

// CacheLen reports the number of cached tile entries.
func (e *Engine) CacheLen() int { return e.cache.len() }

// TileRect returns the world box of a tile.
func (e *Engine) TileRect(c tile.Coord) gamemath.Rect {
	ts := e.cfg.TileSize
	return gamemath.Rect{X: float64(c.Col) * ts, Y: float64(c.Row) * ts, W: ts, H: ts}
}

// TileAt returns the coordinate of the tile containing a world point.
func (e *Engine) TileAt(x, y float64) tile.Coord {
	return tile.Coord{
		Col: int(math.Floor(x / e.cfg.TileSize)),
		Row: int(math.Floor(y / e.cfg.TileSize)),
	}
}

// Properties returns the effective properties at c.
func (e *Engine) Properties(c tile.Coord) tile.Properties {
	return e.info(c, e.grid.Get(c.Col, c.Row)).props
}

func (e *Engine) refreshMasks() {
	tb := e.table
	var m [numFilters]tile.Mask
	m[FilterAll] = tile.AllTypes
	m[FilterSolid] = tb.MaskWhere(func(p tile.Properties) bool { return p.Solid })
	m[FilterPlatform] = tb.MaskWhere(func(p tile.Properties) bool { return p.Platform })
	m[FilterSlope] = tile.MaskOf(tile.SlopeLeft, tile.SlopeRight)
	m[FilterHazard] = tb.MaskWhere(func(p tile.Properties) bool { return p.Damage > 0 })
	m[FilterClimbable] = tb.MaskWhere(func(p tile.Properties) bool { return p.Climbable })

	e.masksMu.Lock()
	e.masks = m
	e.masksMu.Unlock()
}

func (e *Engine) mask(f Filter) tile.Mask {
	if f < 0 || f >= numFilters {
		panic(fmt.Sprintf("collision: unknown filter %d", f))
	}
	e.masksMu.RLock()
	defer e.masksMu.RUnlock()
	return e.masks[f]
}

func mustFinite(box gamemath.Rect, dx, dy float64) {
	box.MustValid()
	gamemath.MustFinite("dx", dx)
	gamemath.MustFinite("dy", dy)
}
