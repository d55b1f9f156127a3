package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectValid(t *testing.T) {
	cases := []struct {
		name string
		r    Rect
		ok   bool
	}{
		{"ok", Rect{X: 1, Y: 2, W: 3, H: 4}, true},
		{"zero_width", Rect{W: 0, H: 4}, false},
		{"negative_height", Rect{W: 3, H: -1}, false},
		{"nan_x", Rect{X: math.NaN(), W: 1, H: 1}, false},
		{"inf_y", Rect{Y: math.Inf(1), W: 1, H: 1}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if c.ok {
				assert.NoError(t, c.r.Valid())
				assert.NotPanics(t, func() { c.r.MustValid() })
			} else {
				assert.Error(t, c.r.Valid())
				assert.Panics(t, func() { c.r.MustValid() })
			}
		})
	}
}

func TestRectOverlapsIgnoresTouchingEdges(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 32, H: 32}
	assert.False(t, a.Overlaps(Rect{X: 32, Y: 0, W: 32, H: 32}))
	assert.False(t, a.Overlaps(Rect{X: 0, Y: 32, W: 32, H: 32}))
	assert.True(t, a.Overlaps(Rect{X: 31, Y: 31, W: 2, H: 2}))
}

func TestSlopeSurfaceY(t *testing.T) {
	// rising right: bottom at the left edge, top at the right edge
	assert.Equal(t, 352.0, SlopeSurfaceY(160, 320, 32, 160, true))
	assert.Equal(t, 336.0, SlopeSurfaceY(160, 320, 32, 176, true))
	assert.Equal(t, 320.0, SlopeSurfaceY(160, 320, 32, 192, true))
	assert.Equal(t, 320.0, SlopeSurfaceY(160, 320, 32, 500, true))

	assert.Equal(t, 320.0, SlopeSurfaceY(160, 320, 32, 160, false))
	assert.Equal(t, 352.0, SlopeSurfaceY(160, 320, 32, 192, false))
	assert.Equal(t, 320.0, SlopeSurfaceY(160, 320, 32, 0, false))
}

func TestApproachAndFriction(t *testing.T) {
	assert.Equal(t, 3.0, Approach(2, 3, 5))
	assert.Equal(t, 2.5, Approach(2, 3, 0.5))
	assert.Equal(t, -1.0, Approach(0, -1, 2))
	assert.Equal(t, 0.0, ApplyFriction(0.3, 0.5))
	assert.Equal(t, 1.5, ApplyFriction(2, 0.5))
	assert.Equal(t, -6.0, ClampSpeed(-9, 6))
}

func TestMustFinitePanics(t *testing.T) {
	assert.Panics(t, func() { MustFinite("dx", math.NaN()) })
	assert.Equal(t, 2.0, MustFinite("dx", 2))
}
