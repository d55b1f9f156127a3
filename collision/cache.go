package collision

import (
	"sync"

	"github.com/automoto/tilecollide/shared/gamemath"
	"github.com/automoto/tilecollide/tile"
)

// tileInfo is the derived, static collision data of one cell.
type tileInfo struct {
	typ   tile.Type
	props tile.Properties
	rect  gamemath.Rect
}

// tileCache is a side table of derived tile data keyed by coordinate. The
// grid stays the source of truth: an entry whose type no longer matches the
// grid is rebuilt, and grid changes evict their coordinate.
type tileCache struct {
	mu      sync.RWMutex
	entries map[tile.Coord]tileInfo
}

func newTileCache() *tileCache {
	return &tileCache{entries: make(map[tile.Coord]tileInfo)}
}

func (c *tileCache) get(at tile.Coord) (tileInfo, bool) {
	c.mu.RLock()
	info, ok := c.entries[at]
	c.mu.RUnlock()
	return info, ok
}

func (c *tileCache) put(at tile.Coord, info tileInfo) {
	c.mu.Lock()
	c.entries[at] = info
	c.mu.Unlock()
}

func (c *tileCache) invalidate(at tile.Coord) {
	c.mu.Lock()
	delete(c.entries, at)
	c.mu.Unlock()
}

func (c *tileCache) reset() {
	c.mu.Lock()
	c.entries = make(map[tile.Coord]tileInfo)
	c.mu.Unlock()
}

func (c *tileCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// info returns derived data for c holding typ. Out-of-bounds cells are not
// cached.
func (e *Engine) info(c tile.Coord, typ tile.Type) tileInfo {
	inBounds := e.grid.InBounds(c.Col, c.Row)
	if inBounds {
		if cached, ok := e.cache.get(c); ok && cached.typ == typ {
			return cached
		}
	}
	info := tileInfo{typ: typ, props: e.table.Lookup(typ), rect: e.TileRect(c)}
	if inBounds {
		e.cache.put(c, info)
	}
	return info
}
