package collision

import (
	"math"

	"github.com/automoto/tilecollide/shared/gamemath"
	"github.com/automoto/tilecollide/tile"
)

// SlopeHeightAt returns the surface Y of the slope tile at c for worldX,
// clamped to the tile's horizontal extent. ok is false when c is not a slope.
func (e *Engine) SlopeHeightAt(c tile.Coord, worldX float64) (float64, bool) {
	typ := e.grid.Get(c.Col, c.Row)
	if !typ.IsSlope() {
		return 0, false
	}
	r := e.TileRect(c)
	return gamemath.SlopeSurfaceY(r.X, r.Y, r.W, worldX, typ == tile.SlopeLeft), true
}

// slopeSurface walks the column under box's center from the row holding
// its foot down to reach below it, stopping at the first solid tile. It
// returns the first slope found and its surface height at the center.
func (e *Engine) slopeSurface(box gamemath.Rect, reach float64) (Hit, float64, bool) {
	ts := e.cfg.TileSize
	cx := box.CenterX()
	bottom := box.Bottom()
	col := int(math.Floor(cx / ts))
	r0 := int(math.Floor((bottom - e.cfg.Epsilon) / ts))
	r1 := int(math.Floor((bottom + reach) / ts))

	for row := r0; row <= r1; row++ {
		typ := e.grid.Get(col, row)
		at := tile.Coord{Col: col, Row: row}
		info := e.info(at, typ)
		if typ.IsSlope() {
			h := gamemath.SlopeSurfaceY(info.rect.X, info.rect.Y, ts, cx, typ == tile.SlopeLeft)
			return Hit{Coord: at, Type: typ, Props: info.props, Rect: info.rect}, h, true
		}
		if info.props.Solid {
			break
		}
	}
	return Hit{}, 0, false
}

// IsOnSlope reports whether box's bottom sits on a slope surface.
func (e *Engine) IsOnSlope(box gamemath.Rect) bool {
	box.MustValid()
	tol := e.cfg.ContactTolerance
	_, h, ok := e.slopeSurface(box, tol)
	return ok && math.Abs(box.Bottom()-h) <= tol
}

// snapToSlope lifts a box that sank into a slope surface by no more than it
// could have moved this step. When stick is set, a box that walked off the
// surface is pulled back down onto it instead.
func (e *Engine) snapToSlope(box gamemath.Rect, dx, dy float64, stick bool) (gamemath.Rect, Hit, bool) {
	reach := e.cfg.ContactTolerance
	if stick {
		reach = math.Abs(dx) + e.cfg.SlopeSnapTolerance
	}
	hit, h, ok := e.slopeSurface(box, reach)
	if !ok {
		return box, Hit{}, false
	}
	pen := box.Bottom() - h
	maxUp := math.Abs(dx) + math.Max(dy, 0) + e.cfg.SlopeSnapTolerance
	if pen > maxUp || -pen > reach {
		return box, Hit{}, false
	}
	box.Y = gamemath.SnapToSlopeY(box.H, h, 0)
	return box, hit, true
}
