package collision

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/automoto/tilecollide/shared/gamemath"
	"github.com/automoto/tilecollide/spatial"
	"github.com/automoto/tilecollide/tile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type placed struct {
	col, row int
	t        tile.Type
}

func newTestEngine(t *testing.T, w, h int, tiles ...placed) (*Engine, *tile.Grid) {
	t.Helper()
	g := tile.NewGrid(w, h)
	for _, p := range tiles {
		g.Set(p.col, p.row, p.t)
	}
	return New(g, nil, DefaultConfig()), g
}

func row(r, from, to int, t tile.Type) []placed {
	var out []placed
	for c := from; c <= to; c++ {
		out = append(out, placed{c, r, t})
	}
	return out
}

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func box(x, y, w, h float64) gamemath.Rect { return gamemath.Rect{X: x, Y: y, W: w, H: h} }

func TestFloorLanding(t *testing.T) {
	e, _ := newTestEngine(t, 40, 20, row(14, 0, 39, tile.Solid)...)

	b := Body{Box: box(100, 440, 16, 16), VelY: 10}
	res := e.MoveBody(&b, ResolveOptions{})

	assert.Equal(t, 432.0, b.Box.Y)
	assert.Equal(t, 100.0, b.Box.X)
	assert.Zero(t, b.VelY)
	assert.True(t, res.OnGround)
	assert.True(t, res.CollidedY)
	assert.False(t, res.CollidedX)
	assert.Equal(t, tile.Solid, res.Ground)
	assert.Equal(t, tile.Coord{Col: 3, Row: 14}, res.GroundCoord)
}

func TestPlatformPassThroughUpward(t *testing.T) {
	e, _ := newTestEngine(t, 20, 20, placed{5, 10, tile.Platform})

	out, res := e.Resolve(box(168, 330, 16, 16), 0, -10)
	assert.Equal(t, 320.0, out.Y)
	assert.False(t, res.Collided)

	for dy := -1.0; dy >= -40; dy-- {
		for _, y := range []float64{300, 316, 330, 345} {
			out, res := e.Resolve(box(168, y, 16, 16), 0, dy)
			require.Equal(t, y+dy, out.Y, "y=%v dy=%v", y, dy)
			require.False(t, res.Collided)
		}
	}
}

func TestPlatformIgnoresHorizontalMotion(t *testing.T) {
	e, _ := newTestEngine(t, 20, 20, row(10, 3, 8, tile.Platform)...)

	out, res := e.Resolve(box(100, 320, 16, 16), 40, 0)
	assert.Equal(t, box(140, 320, 16, 16), out)
	assert.False(t, res.Collided)
}

func TestPlatformLanding(t *testing.T) {
	e, _ := newTestEngine(t, 20, 20, placed{5, 10, tile.Platform})

	out, res := e.Resolve(box(168, 310, 16, 16), 0, 10)
	assert.Equal(t, 304.0, out.Y)
	assert.True(t, res.OnGround)
	assert.True(t, res.OnPlatform)
	assert.Equal(t, tile.Platform, res.Ground)

	top, ok := e.CheckPlatform(box(168, 320, 16, 16), 10)
	assert.True(t, ok)
	assert.Equal(t, 320.0, top)
}

func TestPlatformRejectsFootStartedTooDeep(t *testing.T) {
	e, _ := newTestEngine(t, 20, 20, placed{5, 10, tile.Platform})

	// Foot starts 11 below the top, past the threshold of 8.
	out, res := e.Resolve(box(168, 315, 16, 16), 0, 10)
	assert.Equal(t, 325.0, out.Y)
	assert.False(t, res.OnGround)

	_, ok := e.CheckPlatform(box(168, 325, 16, 16), 10)
	assert.False(t, ok)
	_, ok = e.CheckPlatform(box(168, 300, 16, 16), -4)
	assert.False(t, ok)
	_, ok = e.CheckPlatform(box(200, 310, 16, 16), 10)
	assert.False(t, ok, "no horizontal overlap")
}

func TestPlatformPicksHighestTop(t *testing.T) {
	e, _ := newTestEngine(t, 20, 20, placed{5, 10, tile.Platform}, placed{6, 9, tile.Platform})

	// Fast fall sweeping across both tops.
	top, ok := e.CheckPlatform(box(180, 322, 16, 16), 45)
	require.True(t, ok)
	assert.Equal(t, 288.0, top)
}

func TestSlopeHeight(t *testing.T) {
	e, _ := newTestEngine(t, 20, 20, placed{5, 10, tile.SlopeLeft}, placed{7, 10, tile.SlopeRight})
	at := tile.Coord{Col: 5, Row: 10}

	h, ok := e.SlopeHeightAt(at, 160)
	require.True(t, ok)
	assert.Equal(t, 352.0, h)
	h, _ = e.SlopeHeightAt(at, 176)
	assert.Equal(t, 336.0, h)
	h, _ = e.SlopeHeightAt(at, 191)
	assert.InDelta(t, 320.0, h, 1.01)

	t.Run("clamped outside tile", func(t *testing.T) {
		h, _ := e.SlopeHeightAt(at, 100)
		assert.Equal(t, 352.0, h)
		h, _ = e.SlopeHeightAt(at, 500)
		assert.Equal(t, 320.0, h)
	})

	t.Run("monotonic", func(t *testing.T) {
		prevL, prevR := math.Inf(1), math.Inf(-1)
		for x := 150.0; x <= 270; x += 0.5 {
			l, _ := e.SlopeHeightAt(at, x)
			r, _ := e.SlopeHeightAt(tile.Coord{Col: 7, Row: 10}, x)
			assert.LessOrEqual(t, l, prevL)
			assert.GreaterOrEqual(t, r, prevR)
			prevL, prevR = l, r
		}
	})

	_, ok = e.SlopeHeightAt(tile.Coord{Col: 6, Row: 10}, 200)
	assert.False(t, ok)
}

func TestCornerContact(t *testing.T) {
	e, _ := newTestEngine(t, 20, 20,
		placed{10, 10, tile.Solid}, placed{9, 11, tile.Solid}, placed{10, 11, tile.Solid})

	b := Body{Box: box(300, 330, 16, 16), VelX: 10, VelY: 10}
	res := e.MoveBody(&b, ResolveOptions{})

	assert.Equal(t, box(304, 336, 16, 16), b.Box)
	assert.True(t, res.OnRightWall)
	assert.True(t, res.OnGround)
	assert.Zero(t, b.VelX)
	assert.Zero(t, b.VelY)
}

// Starting 11px into the wall column, the box cannot reach the floor below
// row 11, so only the wall reports contact.
func TestCornerContactFromInsideWall(t *testing.T) {
	e, _ := newTestEngine(t, 20, 20, placed{10, 10, tile.Solid}, placed{10, 11, tile.Solid})

	b := Body{Box: box(315, 345, 16, 16), VelX: 10, VelY: 10}
	res := e.MoveBody(&b, ResolveOptions{})

	assert.Equal(t, box(304, 355, 16, 16), b.Box)
	assert.True(t, res.CollidedX)
	assert.True(t, res.OnRightWall)
	assert.False(t, res.OnLeftWall)
	assert.False(t, res.CollidedY)
	assert.False(t, res.OnGround)
	assert.Zero(t, b.VelX)
	assert.Equal(t, 10.0, b.VelY)
}

func TestSunkenBoxLeavesFloorToYPass(t *testing.T) {
	e, _ := newTestEngine(t, 40, 20, row(14, 0, 39, tile.Solid)...)

	tests := []struct {
		name   string
		start  gamemath.Rect
		dx, dy float64
		want   gamemath.Rect
	}{
		{"still", box(100, 440, 16, 16), 0, 0, box(100, 432, 16, 16)},
		{"falling", box(100, 440, 16, 16), 0, 10, box(100, 432, 16, 16)},
		{"walking across a seam", box(120, 440, 16, 16), 4, 0, box(124, 432, 16, 16)},
		{"walking left", box(120, 440, 16, 16), -4, 2, box(116, 432, 16, 16)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, res := e.Resolve(tt.start, tt.dx, tt.dy)
			assert.Equal(t, tt.want, out)
			assert.False(t, res.CollidedX)
			assert.False(t, res.OnLeftWall || res.OnRightWall)
			assert.True(t, res.OnGround)
		})
	}
}

func TestAxisOrderMatters(t *testing.T) {
	e, _ := newTestEngine(t, 20, 20, placed{10, 10, tile.Solid})
	start := box(300, 300, 16, 16)

	out, res := e.Resolve(start, 10, 10)
	assert.Equal(t, box(310, 304, 16, 16), out)
	assert.True(t, res.OnGround)
	assert.False(t, res.OnRightWall)

	// The same step resolved Y first lands against the wall instead.
	moved := start.Translate(0, 10)
	moved, _, ok := e.ResolveAxis(moved, e.TilesOverlapping(moved, FilterSolid), AxisY, 10)
	assert.False(t, ok)
	moved = moved.Translate(10, 0)
	moved, side, ok := e.ResolveAxis(moved, e.TilesOverlapping(moved, FilterSolid), AxisX, 10)
	require.True(t, ok)
	assert.Equal(t, SideRight, side)
	assert.Equal(t, box(304, 310, 16, 16), moved)
}

func TestResolveAxisMinimalSeparation(t *testing.T) {
	e, _ := newTestEngine(t, 4, 4)
	b := box(0, 0, 10, 10)
	below := Hit{Rect: box(0, 8, 32, 32)}   // needs -2
	above := Hit{Rect: box(0, -30, 32, 32)} // needs +2
	deep := Hit{Rect: box(0, 7, 32, 32)}    // needs -3

	tests := []struct {
		name string
		hits []Hit
		disp float64
		want float64
		side Side
	}{
		{"smallest wins", []Hit{deep, above}, 5, 2, SideTop},
		{"tie opposes downward motion", []Hit{above, below}, 5, -2, SideBottom},
		{"tie opposes upward motion", []Hit{below, above}, -5, 2, SideTop},
		{"tie without motion goes negative", []Hit{above, below}, 0, -2, SideBottom},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, side, ok := e.ResolveAxis(b, tt.hits, AxisY, tt.disp)
			require.True(t, ok)
			assert.Equal(t, tt.want, out.Y)
			assert.Equal(t, tt.side, side)
		})
	}

	t.Run("touching only", func(t *testing.T) {
		out, side, ok := e.ResolveAxis(b, []Hit{{Rect: box(10, 0, 32, 32)}}, AxisX, 1)
		assert.False(t, ok)
		assert.Equal(t, SideNone, side)
		assert.Equal(t, b, out)
	})
}

func TestTileSpanEpsilon(t *testing.T) {
	e, _ := newTestEngine(t, 10, 10)

	c0, r0, c1, r1 := e.TileSpan(box(64, 0, 32, 32))
	assert.Equal(t, []int{2, 0, 2, 0}, []int{c0, r0, c1, r1})

	_, _, c1, _ = e.TileSpan(box(64, 0, 32.02, 32))
	assert.Equal(t, 3, c1)

	c0, r0, c1, r1 = e.TileSpan(box(-1, -1, 2, 2))
	assert.Equal(t, []int{-1, -1, 0, 0}, []int{c0, r0, c1, r1})
}

func TestTilesOverlappingRowMajorAndFiltered(t *testing.T) {
	e, _ := newTestEngine(t, 10, 10,
		placed{1, 1, tile.Solid}, placed{2, 1, tile.Hazard}, placed{1, 2, tile.Ladder}, placed{2, 2, tile.Ice})

	all := e.TilesOverlapping(box(32, 32, 64, 64), FilterAll)
	require.Len(t, all, 4)
	assert.Equal(t, tile.Coord{Col: 1, Row: 1}, all[0].Coord)
	assert.Equal(t, tile.Coord{Col: 2, Row: 1}, all[1].Coord)
	assert.Equal(t, tile.Coord{Col: 1, Row: 2}, all[2].Coord)
	assert.Equal(t, tile.Coord{Col: 2, Row: 2}, all[3].Coord)
	assert.Equal(t, box(64, 64, 32, 32), all[3].Rect)

	solid := e.TilesOverlapping(box(32, 32, 64, 64), FilterSolid)
	require.Len(t, solid, 2)
	assert.Equal(t, tile.Solid, solid[0].Type)
	assert.Equal(t, tile.Ice, solid[1].Type)
	assert.Equal(t, 0.05, solid[1].Props.Friction)

	assert.Len(t, e.TilesOverlapping(box(32, 32, 64, 64), FilterHazard), 1)
	assert.Len(t, e.TilesOverlapping(box(32, 32, 64, 64), FilterClimbable), 1)
	assert.Empty(t, e.TilesOverlapping(box(32, 32, 64, 64), FilterSlope))
}

func TestOutOfBoundsIsSolid(t *testing.T) {
	e, _ := newTestEngine(t, 10, 10)

	hits := e.TilesOverlapping(box(-40, 0, 16, 16), FilterSolid)
	require.Len(t, hits, 2)
	assert.Equal(t, tile.Coord{Col: -2, Row: 0}, hits[0].Coord)
	assert.Equal(t, tile.Solid, hits[1].Type)

	out, res := e.Resolve(box(2, 100, 16, 16), -10, 0)
	assert.Equal(t, 0.0, out.X)
	assert.True(t, res.OnLeftWall)

	out, res = e.Resolve(box(100, 300, 16, 16), 0, 10)
	assert.Equal(t, 304.0, out.Y)
	assert.True(t, res.OnGround)
}

func TestRestingContactIsIdempotent(t *testing.T) {
	tiles := append(row(14, 0, 19, tile.Solid), placed{5, 10, tile.Platform}, placed{10, 10, tile.SlopeLeft})
	e, _ := newTestEngine(t, 20, 20, tiles...)

	tests := []struct {
		name            string
		start           gamemath.Rect
		platform, slope bool
		ground          tile.Type
	}{
		{"solid", box(100, 432, 16, 16), false, false, tile.Solid},
		{"platform", box(168, 304, 16, 16), true, false, tile.Platform},
		{"slope", box(328, 320, 16, 16), false, true, tile.SlopeLeft},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.start
			for i := 0; i < 5; i++ {
				var res Result
				b, res = e.Resolve(b, 0, 0)
				require.Equal(t, tt.start, b)
				require.True(t, res.OnGround)
				assert.False(t, res.Collided)
				assert.Equal(t, tt.platform, res.OnPlatform)
				assert.Equal(t, tt.slope, res.OnSlope)
				assert.Equal(t, tt.ground, res.Ground)
			}
		})
	}

	assert.True(t, e.IsOnPlatform(box(168, 304, 16, 16)))
	assert.False(t, e.IsOnPlatform(box(100, 432, 16, 16)))
	assert.True(t, e.IsOnSlope(box(328, 320, 16, 16)))
	assert.False(t, e.IsOnSlope(box(328, 310, 16, 16)))
}

func TestWalkUpSlopeOntoLedge(t *testing.T) {
	tiles := append(row(11, 0, 19, tile.Solid), row(10, 6, 19, tile.Solid)...)
	tiles = append(tiles, placed{5, 10, tile.SlopeLeft})
	e, _ := newTestEngine(t, 20, 15, tiles...)

	b := Body{Box: box(140, 336, 16, 16)}
	for i := 0; i < 20; i++ {
		b.VelX = 4
		b.VelY++
		res := e.MoveBody(&b, ResolveOptions{})
		require.False(t, res.CollidedX, "step %d blocked at %+v", i, b.Box)
		require.True(t, res.OnGround, "step %d airborne at %+v", i, b.Box)
		if cx := b.Box.CenterX(); cx > 160 && cx < 192 {
			h, _ := e.SlopeHeightAt(tile.Coord{Col: 5, Row: 10}, cx)
			if b.Box.Right() <= 192 {
				assert.Equal(t, h, b.Box.Bottom(), "step %d", i)
			}
		}
	}
	assert.Equal(t, 220.0, b.Box.X)
	assert.Equal(t, 304.0, b.Box.Y)
}

func TestStickToSlopeWalkingDown(t *testing.T) {
	e, _ := newTestEngine(t, 20, 15, placed{5, 10, tile.SlopeRight})

	out, res := e.Resolve(box(156, 308, 16, 16), 4, 0)
	assert.Equal(t, box(160, 312, 16, 16), out)
	assert.True(t, res.OnSlope)
	assert.True(t, res.OnGround)

	// Hovering above the surface does not stick.
	out, res = e.Resolve(box(156, 304, 16, 16), 4, 0)
	assert.Equal(t, box(160, 304, 16, 16), out)
	assert.False(t, res.OnGround)
}

func TestFallOntoSlope(t *testing.T) {
	e, _ := newTestEngine(t, 20, 15, placed{5, 10, tile.SlopeLeft})

	// Center at 176 where the surface is 336.
	out, res := e.Resolve(box(168, 314, 16, 16), 0, 10)
	assert.Equal(t, 320.0, out.Y)
	assert.True(t, res.OnSlope)
	assert.True(t, res.CollidedY)
	assert.Equal(t, tile.Coord{Col: 5, Row: 10}, res.GroundCoord)

	// Moving up through a slope never snaps.
	out, res = e.Resolve(box(168, 330, 16, 16), 0, -4)
	assert.Equal(t, 326.0, out.Y)
	assert.False(t, res.OnGround)
}

func TestDropThrough(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	g := tile.NewGrid(20, 20)
	g.Set(5, 10, tile.Platform)
	g.Set(6, 10, tile.Solid)
	e := New(g, nil, DefaultConfig(), WithClock(clock.Now))

	onPlatform := box(168, 304, 16, 16)
	out, until := e.DropThrough(onPlatform)
	assert.Equal(t, 313.0, out.Y)
	assert.Equal(t, clock.now.Add(200*time.Millisecond), until)
	assert.True(t, e.PlatformsSuppressed(until))

	out, res := e.ResolveWith(out, 0, 5, ResolveOptions{IgnorePlatforms: true})
	assert.Equal(t, 318.0, out.Y)
	assert.False(t, res.OnGround)

	clock.Advance(201 * time.Millisecond)
	assert.False(t, e.PlatformsSuppressed(until))
	out, res = e.Resolve(out, 0, 5)
	assert.Equal(t, 323.0, out.Y)
	assert.False(t, res.OnGround, "foot is past the threshold once grace ends")

	t.Run("not on platform", func(t *testing.T) {
		b := box(168, 200, 16, 16)
		out, until := e.DropThrough(b)
		assert.Equal(t, b, out)
		assert.True(t, until.IsZero())
		assert.False(t, e.PlatformsSuppressed(until))
	})

	t.Run("solid also underfoot", func(t *testing.T) {
		b := box(184, 304, 16, 16)
		out, until := e.DropThrough(b)
		assert.Equal(t, b, out)
		assert.True(t, until.IsZero())
	})
}

func TestMoveBodyZeroesBlockedVelocity(t *testing.T) {
	e, _ := newTestEngine(t, 20, 20, append(row(5, 0, 19, tile.Solid), placed{12, 8, tile.Solid})...)

	t.Run("ceiling", func(t *testing.T) {
		b := Body{Box: box(100, 195, 16, 16), VelX: 2, VelY: -10}
		res := e.MoveBody(&b, ResolveOptions{})
		assert.True(t, res.OnCeiling)
		assert.Equal(t, 192.0, b.Box.Y)
		assert.Zero(t, b.VelY)
		assert.Equal(t, 2.0, b.VelX)
	})

	t.Run("wall", func(t *testing.T) {
		b := Body{Box: box(370, 260, 16, 16), VelX: 10}
		res := e.MoveBody(&b, ResolveOptions{})
		assert.True(t, res.OnRightWall)
		assert.Equal(t, 368.0, b.Box.X)
		assert.Zero(t, b.VelX)
	})

	t.Run("free flight keeps velocity", func(t *testing.T) {
		b := Body{Box: box(100, 300, 16, 16), VelX: 3, VelY: -3}
		res := e.MoveBody(&b, ResolveOptions{})
		assert.False(t, res.Collided)
		assert.Equal(t, 3.0, b.VelX)
		assert.Equal(t, -3.0, b.VelY)
	})
}

func TestCacheFollowsGrid(t *testing.T) {
	e, g := newTestEngine(t, 10, 10, placed{3, 3, tile.Solid})
	r := box(96, 96, 32, 32)

	hits := e.TilesOverlapping(r, FilterAll)
	require.Len(t, hits, 1)
	assert.Equal(t, 1, e.CacheLen())

	g.Set(3, 3, tile.Ice)
	assert.Zero(t, e.CacheLen())
	hits = e.TilesOverlapping(r, FilterAll)
	require.Len(t, hits, 1)
	assert.Equal(t, tile.Ice, hits[0].Type)
	assert.Equal(t, 0.05, hits[0].Props.Friction)

	g.Enqueue(tile.Command{Kind: tile.CommandDestroy, At: tile.Coord{Col: 3, Row: 3}})
	g.ApplyPending()
	assert.Empty(t, e.TilesOverlapping(r, FilterSolid))
}

func TestReloadAppliesTableOverrides(t *testing.T) {
	g := tile.NewGrid(10, 10)
	g.Set(2, 2, tile.Hazard)
	tb := tile.NewTable()
	e := New(g, tb, DefaultConfig())
	r := box(64, 64, 32, 32)

	assert.Empty(t, e.TilesOverlapping(r, FilterSolid))
	require.NoError(t, tb.Override(tile.Hazard, tile.Properties{Solid: true, Damage: 2}))
	e.Reload()

	hits := e.TilesOverlapping(r, FilterSolid)
	require.Len(t, hits, 1)
	assert.Equal(t, 2, hits[0].Props.Damage)
	assert.Equal(t, 2, e.Properties(tile.Coord{Col: 2, Row: 2}).Damage)
}

func TestTileIndexDoesNotChangeResults(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	g := tile.NewGrid(64, 48)
	for i := 0; i < 600; i++ {
		g.Set(rng.Intn(64), rng.Intn(48), tile.Type(rng.Intn(int(tile.NumTypes))))
	}
	plain := New(g, nil, DefaultConfig())
	indexed := New(g, nil, DefaultConfig(), WithTileIndex(spatial.NewTileIndex(g, 4)))

	check := func() {
		for i := 0; i < 300; i++ {
			b := box(rng.Float64()*1900, rng.Float64()*1400, 4+rng.Float64()*60, 4+rng.Float64()*60)
			dx, dy := rng.Float64()*40-20, rng.Float64()*40-20
			for f := FilterAll; f < numFilters; f++ {
				require.Equal(t, plain.TilesOverlapping(b, f), indexed.TilesOverlapping(b, f), "filter %s box %+v", f, b)
			}
			pb, pr := plain.Resolve(b, dx, dy)
			ib, ir := indexed.Resolve(b, dx, dy)
			require.Equal(t, pb, ib)
			require.Equal(t, pr, ir)
		}
	}
	check()

	for i := 0; i < 200; i++ {
		g.Enqueue(tile.Command{Kind: tile.CommandPlace, At: tile.Coord{Col: rng.Intn(64), Row: rng.Intn(48)}, Type: tile.Type(rng.Intn(int(tile.NumTypes)))})
		g.Enqueue(tile.Command{Kind: tile.CommandDestroy, At: tile.Coord{Col: rng.Intn(64), Row: rng.Intn(48)}})
	}
	g.ApplyPending()
	check()
}

func TestInvalidInputPanics(t *testing.T) {
	e, _ := newTestEngine(t, 4, 4)
	assert.Panics(t, func() { e.Resolve(box(0, 0, 0, 10), 1, 1) })
	assert.Panics(t, func() { e.Resolve(box(0, 0, 10, 10), math.NaN(), 1) })
	assert.Panics(t, func() { e.Resolve(box(0, 0, 10, 10), 0, math.Inf(1)) })
	assert.Panics(t, func() { e.TilesOverlapping(box(0, 0, 10, 10), Filter(99)) })
	assert.Panics(t, func() { New(nil, nil, DefaultConfig()) })

	cfg := DefaultConfig()
	cfg.TileSize = 0
	assert.Panics(t, func() { New(tile.NewGrid(1, 1), nil, cfg) })
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"tile size", func(c *Config) { c.TileSize = -1 }},
		{"epsilon", func(c *Config) { c.Epsilon = 0 }},
		{"threshold", func(c *Config) { c.PlatformThreshold = -1 }},
		{"drop distance", func(c *Config) { c.DropThroughDistance = c.PlatformThreshold }},
		{"grace", func(c *Config) { c.DropThroughGrace = -time.Second }},
		{"contact", func(c *Config) { c.ContactTolerance = 0 }},
		{"slope", func(c *Config) { c.SlopeSnapTolerance = -1 }},
		{"partition", func(c *Config) { c.PartitionCellTiles = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "bottom", SideBottom.String())
	assert.Equal(t, "y", AxisY.String())
	assert.Equal(t, "platform", FilterPlatform.String())
	assert.Equal(t, "Side(9)", Side(9).String())
}
