package collision

import (
	"math"

	"github.com/automoto/tilecollide/shared/gamemath"
	"github.com/automoto/tilecollide/tile"
)

// Result describes the contacts produced by one resolution step. Y grows
// downward, so ground contact means the box was pushed toward -Y.
type Result struct {
	Collided  bool
	CollidedX bool
	CollidedY bool

	OnGround    bool
	OnCeiling   bool
	OnLeftWall  bool
	OnRightWall bool
	OnPlatform  bool
	OnSlope     bool

	// Ground is the tile type underfoot when OnGround is set.
	Ground      tile.Type
	GroundCoord tile.Coord
}

type ResolveOptions struct {
	// IgnorePlatforms disables the platform filter, typically while
	// PlatformsSuppressed holds after a DropThrough.
	IgnorePlatforms bool
}

// Resolve moves box by (dx, dy) and pushes it out of the grid.
func (e *Engine) Resolve(box gamemath.Rect, dx, dy float64) (gamemath.Rect, Result) {
	return e.ResolveWith(box, dx, dy, ResolveOptions{})
}

// ResolveWith resolves X first, then Y against the X-corrected box. Platforms
// are checked before solids on the Y step, and slopes after it.
func (e *Engine) ResolveWith(box gamemath.Rect, dx, dy float64, opts ResolveOptions) (gamemath.Rect, Result) {
	mustFinite(box, dx, dy)
	var res Result

	onSlope := e.IsOnSlope(box)
	box = e.stepX(box, dx, onSlope, &res)
	box = e.stepY(box, dx, dy, onSlope, opts, &res)

	res.Collided = res.CollidedX || res.CollidedY
	return box, res
}

// stepX pushes against tiles entered by this move. A zero move never
// collides on X.
func (e *Engine) stepX(box gamemath.Rect, dx float64, onSlope bool, res *Result) gamemath.Rect {
	if dx == 0 {
		return box
	}
	moved := box.Translate(dx, 0)
	hits := e.enteredX(box, moved, e.TilesOverlapping(moved, FilterSolid))
	if len(hits) == 0 {
		return moved
	}
	if onSlope {
		if lifted, ok := e.stepUp(moved, hits); ok {
			return lifted
		}
	}
	out, side, _, ok := resolveAxis(moved, hits, AxisX, dx)
	if !ok {
		return moved
	}
	res.CollidedX = true
	res.OnRightWall = side == SideRight
	res.OnLeftWall = side == SideLeft
	return out
}

// enteredX drops hits the box already overlapped before moving, leaving
// that overlap to the Y pass. A column of solids covering every row the box
// spans is a wall face and stays.
func (e *Engine) enteredX(box, moved gamemath.Rect, hits []Hit) []Hit {
	var perCol map[int]int
	for _, h := range hits {
		if box.Overlaps(h.Rect) {
			perCol = make(map[int]int)
			break
		}
	}
	if perCol == nil {
		return hits
	}
	for _, h := range hits {
		perCol[h.Coord.Col]++
	}
	_, r0, _, r1 := e.TileSpan(moved)
	rows := r1 - r0 + 1

	out := hits[:0]
	for _, h := range hits {
		if !box.Overlaps(h.Rect) || perCol[h.Coord.Col] >= rows {
			out = append(out, h)
		}
	}
	return out
}

// stepUp lifts a box walking off a slope onto a ledge no taller than
// StepHeight.
func (e *Engine) stepUp(box gamemath.Rect, hits []Hit) (gamemath.Rect, bool) {
	top := math.Inf(1)
	for _, h := range hits {
		if box.Overlaps(h.Rect) {
			top = math.Min(top, h.Rect.Y)
		}
	}
	if math.IsInf(top, 1) || box.Bottom()-top > e.cfg.StepHeight {
		return box, false
	}
	lifted := box
	lifted.Y = top - box.H
	for _, h := range e.TilesOverlapping(lifted, FilterSolid) {
		if lifted.Overlaps(h.Rect) {
			return box, false
		}
	}
	return lifted, true
}

func (e *Engine) stepY(box gamemath.Rect, dx, dy float64, onSlope bool, opts ResolveOptions, res *Result) gamemath.Rect {
	moved := box.Translate(0, dy)

	if !opts.IgnorePlatforms {
		if h, ok := e.landingPlatform(moved, dy); ok {
			moved.Y = h.Rect.Y - moved.H
			res.CollidedY = true
			res.OnPlatform = true
			setGround(res, h)
		}
	}

	hits := e.TilesOverlapping(moved, FilterSolid)
	if out, side, h, ok := resolveAxis(moved, hits, AxisY, dy); ok {
		moved = out
		res.CollidedY = true
		switch side {
		case SideBottom:
			res.OnPlatform = false
			setGround(res, h)
		case SideTop:
			res.OnCeiling = true
			res.OnGround = false
			res.OnPlatform = false
		}
	}

	if dy >= 0 && !res.OnCeiling {
		if snapped, h, ok := e.snapToSlope(moved, dx, dy, onSlope && !res.OnGround); ok {
			if !res.OnGround || snapped.Y <= moved.Y {
				if snapped.Y < moved.Y {
					res.CollidedY = true
				}
				moved = snapped
				res.OnPlatform = false
				res.OnSlope = true
				setGround(res, h)
			}
		}
	}

	if dy >= 0 && !res.OnGround {
		e.probeGround(moved, opts, res)
	}
	return moved
}

// probeGround reports resting contact without moving the box.
func (e *Engine) probeGround(box gamemath.Rect, opts ResolveOptions, res *Result) {
	if h, ok := e.restingOn(box, FilterSolid); ok {
		setGround(res, h)
		return
	}
	if !opts.IgnorePlatforms {
		if h, ok := e.restingOn(box, FilterPlatform); ok {
			res.OnPlatform = true
			setGround(res, h)
			return
		}
	}
	tol := e.cfg.ContactTolerance
	if h, y, ok := e.slopeSurface(box, tol); ok && math.Abs(box.Bottom()-y) <= tol {
		res.OnSlope = true
		setGround(res, h)
	}
}

func setGround(res *Result, h Hit) {
	res.OnGround = true
	res.Ground = h.Type
	res.GroundCoord = h.Coord
}

// Body is a moving box with a velocity in world units per step.
type Body struct {
	Box  gamemath.Rect
	VelX float64
	VelY float64
}

// MoveBody resolves b by its velocity and zeroes the velocity on blocked
// axes. Vertical velocity is cleared on ground only while moving down and on
// ceilings only while moving up.
func (e *Engine) MoveBody(b *Body, opts ResolveOptions) Result {
	box, res := e.ResolveWith(b.Box, b.VelX, b.VelY, opts)
	b.Box = box
	if res.CollidedX {
		b.VelX = 0
	}
	if res.OnGround && b.VelY > 0 {
		b.VelY = 0
	}
	if res.OnCeiling && b.VelY < 0 {
		b.VelY = 0
	}
	return res
}
