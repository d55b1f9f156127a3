package collision

import (
	"math"
	"time"

	"github.com/automoto/tilecollide/shared/gamemath"
)

// CheckPlatform reports the platform top box should land on after moving
// down by dy. The foot must have started no lower than PlatformThreshold
// below the top and must now be at or below it. Platforms never block
// upward or horizontal motion.
func (e *Engine) CheckPlatform(box gamemath.Rect, dy float64) (float64, bool) {
	hit, ok := e.landingPlatform(box, dy)
	if !ok {
		return 0, false
	}
	return hit.Rect.Y, true
}

func (e *Engine) landingPlatform(box gamemath.Rect, dy float64) (Hit, bool) {
	if !(dy > 0) {
		return Hit{}, false
	}
	bottom := box.Bottom()
	prior := bottom - dy
	thr := e.cfg.PlatformThreshold

	// Covers every row whose top lies in [prior-thr, bottom].
	top := prior - thr
	swept := gamemath.Rect{X: box.X, Y: top, W: box.W, H: bottom - top + 2*e.cfg.Epsilon}

	var (
		best  Hit
		found bool
	)
	for _, h := range e.TilesOverlapping(swept, FilterPlatform) {
		t := h.Rect.Y
		if prior > t+thr || bottom < t {
			continue
		}
		if box.X >= h.Rect.Right() || box.Right() <= h.Rect.X {
			continue
		}
		if !found || t < best.Rect.Y {
			best, found = h, true
		}
	}
	return best, found
}

// IsOnPlatform reports whether box rests on a platform top.
func (e *Engine) IsOnPlatform(box gamemath.Rect) bool {
	_, ok := e.restingOn(box, FilterPlatform)
	return ok
}

// restingOn returns the first tile matching f whose top is within
// ContactTolerance of box's bottom and which overlaps it horizontally.
func (e *Engine) restingOn(box gamemath.Rect, f Filter) (Hit, bool) {
	box.MustValid()
	tol := e.cfg.ContactTolerance
	bottom := box.Bottom()
	strip := gamemath.Rect{X: box.X, Y: bottom - tol, W: box.W, H: 2 * tol}
	for _, h := range e.TilesOverlapping(strip, f) {
		if math.Abs(h.Rect.Y-bottom) > tol {
			continue
		}
		if box.X >= h.Rect.Right() || box.Right() <= h.Rect.X {
			continue
		}
		return h, true
	}
	return Hit{}, false
}

// DropThrough nudges a box standing on a platform below it and returns the
// time until which the caller should resolve with IgnorePlatforms. The box
// is returned unchanged with a zero time when it is not on a platform or
// solid ground is also underfoot.
func (e *Engine) DropThrough(box gamemath.Rect) (gamemath.Rect, time.Time) {
	if !e.IsOnPlatform(box) {
		return box, time.Time{}
	}
	if _, solid := e.restingOn(box, FilterSolid); solid {
		return box, time.Time{}
	}
	return box.Translate(0, e.cfg.DropThroughDistance), e.now().Add(e.cfg.DropThroughGrace)
}

// PlatformsSuppressed reports whether a drop-through deadline is still
// running.
func (e *Engine) PlatformsSuppressed(until time.Time) bool {
	return !until.IsZero() && e.now().Before(until)
}
