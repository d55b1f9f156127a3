package collision

import (
	"fmt"
	"math"

	"github.com/automoto/tilecollide/shared/gamemath"
	"github.com/automoto/tilecollide/tile"
)

// Filter selects which tiles a box query returns.
type Filter int

const (
	FilterAll Filter = iota
	FilterSolid
	FilterPlatform
	FilterSlope
	FilterHazard
	FilterClimbable
	numFilters
)

var filterNames = [...]string{"all", "solid", "platform", "slope", "hazard", "climbable"}

func (f Filter) String() string {
	if f < 0 || f >= numFilters {
		return fmt.Sprintf("Filter(%d)", int(f))
	}
	return filterNames[f]
}

// Hit is one tile returned by a box query.
type Hit struct {
	Coord tile.Coord
	Type  tile.Type
	Props tile.Properties
	Rect  gamemath.Rect
}

// TileSpan returns the inclusive tile range covered by r. Right and bottom
// edges are pulled in by Epsilon so a box that merely touches the next tile
// does not include it.
func (e *Engine) TileSpan(r gamemath.Rect) (c0, r0, c1, r1 int) {
	ts, eps := e.cfg.TileSize, e.cfg.Epsilon
	c0 = int(math.Floor(r.X / ts))
	r0 = int(math.Floor(r.Y / ts))
	c1 = int(math.Floor((r.Right() - eps) / ts))
	r1 = int(math.Floor((r.Bottom() - eps) / ts))
	if c1 < c0 {
		c1 = c0
	}
	if r1 < r0 {
		r1 = r0
	}
	return c0, r0, c1, r1
}

// TilesOverlapping returns the tiles in r's span matching f, in row-major
// order. Out-of-bounds cells count as Solid.
func (e *Engine) TilesOverlapping(r gamemath.Rect, f Filter) []Hit {
	r.MustValid()
	want := e.mask(f)
	c0, r0, c1, r1 := e.TileSpan(r)

	var hits []Hit
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if e.index != nil && !e.index.ChunkHas(col, row, want) {
				col = e.index.ChunkEndCol(col)
				if col >= c1 {
					break
				}
				continue
			}
			typ := e.grid.Get(col, row)
			if !want.Has(typ) {
				continue
			}
			at := tile.Coord{Col: col, Row: row}
			info := e.info(at, typ)
			hits = append(hits, Hit{Coord: at, Type: typ, Props: info.props, Rect: info.rect})
		}
	}
	return hits
}
