package gamemath

import (
	"fmt"
	"math"
)

// Rect is an axis-aligned box in world units. Y grows downward.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64   { return r.X + r.W }
func (r Rect) Bottom() float64  { return r.Y + r.H }
func (r Rect) CenterX() float64 { return r.X + r.W/2 }
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Translate returns the rect moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Overlaps reports whether r and o share a region of positive area.
// Touching edges do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && r.Right() > o.X && r.Y < o.Bottom() && r.Bottom() > o.Y
}

// Touches reports whether r and o overlap or share an edge.
func (r Rect) Touches(o Rect) bool {
	return r.X <= o.Right() && r.Right() >= o.X && r.Y <= o.Bottom() && r.Bottom() >= o.Y
}

// Valid returns an error describing why r cannot be used as a collision box.
func (r Rect) Valid() error {
	for _, v := range [...]float64{r.X, r.Y, r.W, r.H} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("non-finite field in %+v", r)
		}
	}
	if r.W <= 0 || r.H <= 0 {
		return fmt.Errorf("non-positive size in %+v", r)
	}
	return nil
}

// MustValid panics if r is degenerate or non-finite. Collision code calls it
// on every entry point so that caller bugs surface at the call site.
func (r Rect) MustValid() Rect {
	if err := r.Valid(); err != nil {
		panic("gamemath: invalid rect: " + err.Error())
	}
	return r
}

// MustFinite panics when v is NaN or infinite.
func MustFinite(name string, v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic(fmt.Sprintf("gamemath: %s is not finite: %v", name, v))
	}
	return v
}

// ClampFloat constrains a value to the range [min, max]
func ClampFloat(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
