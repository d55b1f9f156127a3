package collision

import (
	"fmt"
	"math"

	"github.com/automoto/tilecollide/shared/gamemath"
)

type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// Side is the side of the moving box that made contact.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
	SideTop
	SideBottom
)

var sideNames = [...]string{"none", "left", "right", "top", "bottom"}

func (s Side) String() string {
	if s < 0 || int(s) >= len(sideNames) {
		return fmt.Sprintf("Side(%d)", int(s))
	}
	return sideNames[s]
}

// separation returns the signed push that moves box out of t along axis.
// The box goes toward whichever side of t its center is on; an exactly
// centered box is pushed against its displacement, or negative when still.
func separation(box, t gamemath.Rect, axis Axis, disp float64) float64 {
	var neg, pos, bc, tc float64
	if axis == AxisX {
		neg, pos = t.X-box.Right(), t.Right()-box.X
		bc, tc = box.CenterX(), t.CenterX()
	} else {
		neg, pos = t.Y-box.Bottom(), t.Bottom()-box.Y
		bc, tc = box.CenterY(), t.CenterY()
	}
	switch {
	case bc < tc:
		return neg
	case bc > tc:
		return pos
	case disp > 0:
		return neg
	case disp < 0:
		return pos
	}
	return neg
}

func sideOf(axis Axis, sep float64) Side {
	switch {
	case axis == AxisX && sep < 0:
		return SideRight
	case axis == AxisX && sep > 0:
		return SideLeft
	case axis == AxisY && sep < 0:
		return SideBottom
	case axis == AxisY && sep > 0:
		return SideTop
	}
	return SideNone
}

// ResolveAxis pushes box out of the overlapping hit needing the smallest
// correction along axis. Equal magnitudes prefer the push opposing disp
// (negative when disp is zero), then the earliest hit.
func (e *Engine) ResolveAxis(box gamemath.Rect, hits []Hit, axis Axis, disp float64) (gamemath.Rect, Side, bool) {
	out, side, _, ok := resolveAxis(box, hits, axis, disp)
	return out, side, ok
}

func resolveAxis(box gamemath.Rect, hits []Hit, axis Axis, disp float64) (gamemath.Rect, Side, Hit, bool) {
	var (
		best    float64
		bestHit Hit
		found   bool
	)
	for _, h := range hits {
		if !box.Overlaps(h.Rect) {
			continue
		}
		sep := separation(box, h.Rect, axis, disp)
		if !found || better(sep, best, disp) {
			best, bestHit, found = sep, h, true
		}
	}
	if !found {
		return box, SideNone, Hit{}, false
	}
	if axis == AxisX {
		box.X += best
	} else {
		box.Y += best
	}
	return box, sideOf(axis, best), bestHit, true
}

func better(sep, best, disp float64) bool {
	a, b := math.Abs(sep), math.Abs(best)
	if a != b {
		return a < b
	}
	if sep == best {
		return false
	}
	if disp > 0 {
		return sep < best
	}
	if disp < 0 {
		return sep > best
	}
	return sep < best
}
