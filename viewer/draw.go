package viewer

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/automoto/tilecollide/collision"
	"github.com/automoto/tilecollide/components"
	cfg "github.com/automoto/tilecollide/config"
	"github.com/automoto/tilecollide/fonts"
	"github.com/automoto/tilecollide/shared/gamemath"
	"github.com/automoto/tilecollide/tags"
	"github.com/automoto/tilecollide/tile"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var tileColors = [tile.NumTypes]color.RGBA{
	tile.Solid:      {100, 100, 100, 255},
	tile.Platform:   {150, 110, 60, 255},
	tile.SlopeLeft:  {90, 140, 90, 255},
	tile.SlopeRight: {90, 140, 90, 255},
	tile.Hazard:     {200, 40, 40, 255},
	tile.Ladder:     {180, 150, 60, 255},
	tile.Ice:        {150, 210, 240, 255},
	tile.Bounce:     {230, 120, 200, 255},
}

// view returns the world-to-screen offset and the visible world rect.
func view(e *ecs.ECS, screen *ebiten.Image) (offX, offY float64, visible gamemath.Rect, ok bool) {
	cameraEntry, found := components.Camera.First(e.World)
	if !found {
		return 0, 0, gamemath.Rect{}, false
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	offX = math.Round(width/2 - camera.Position.X)
	offY = math.Round(height/2 - camera.Position.Y)
	return offX, offY, gamemath.Rect{X: -offX, Y: -offY, W: width, H: height}, true
}

// cursorWorld returns the mouse position in world coordinates.
func cursorWorld(e *ecs.ECS) (float64, float64) {
	mx, my := ebiten.CursorPosition()
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return float64(mx), float64(my)
	}
	camera := components.Camera.Get(cameraEntry)
	offX := math.Round(float64(cfg.Viewer.Width)/2 - camera.Position.X)
	offY := math.Round(float64(cfg.Viewer.Height)/2 - camera.Position.Y)
	return float64(mx) - offX, float64(my) - offY
}

func levelData(e *ecs.ECS) *components.LevelData {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return nil
	}
	return components.Level.Get(entry)
}

func outline(screen *ebiten.Image, r gamemath.Rect, offX, offY float64, c color.Color) {
	x, y := float32(r.X+offX), float32(r.Y+offY)
	w, h := float32(r.W), float32(r.H)
	vector.FillRect(screen, x, y, w, 1, c, false)     // Top
	vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
	vector.FillRect(screen, x, y, 1, h, c, false)     // Left
	vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
}

// DrawLevel renders the visible tiles. Slopes are drawn as their surface
// line.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	level := levelData(e)
	if level == nil {
		return
	}
	offX, offY, visible, ok := view(e, screen)
	if !ok {
		return
	}
	engine := level.Engine
	grid := engine.Grid()
	size := engine.Config().TileSize

	c0, r0, c1, r1 := engine.TileSpan(visible)
	c0, r0 = max(c0, 0), max(r0, 0)
	c1, r1 = min(c1, grid.Width()-1), min(r1, grid.Height()-1)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			t := grid.Get(col, row)
			if t == tile.Empty {
				continue
			}
			at := tile.Coord{Col: col, Row: row}
			r := engine.TileRect(at)
			clr := tileColors[t]
			x, y := float32(r.X+offX), float32(r.Y+offY)

			switch {
			case t.IsSlope():
				left, _ := engine.SlopeHeightAt(at, r.X)
				right, _ := engine.SlopeHeightAt(at, r.Right())
				vector.StrokeLine(screen, x, float32(left+offY), x+float32(size), float32(right+offY), 2, clr, false)
			case t == tile.Ladder:
				outline(screen, r, offX, offY, clr)
				for step := 0.25; step < 1; step += 0.25 {
					ry := y + float32(size*step)
					vector.StrokeLine(screen, x, ry, x+float32(size), ry, 1, clr, false)
				}
			case t == tile.Platform:
				vector.FillRect(screen, x, y, float32(size), 3, clr, false)
			default:
				vector.FillRect(screen, x, y, float32(size), float32(size), clr, false)
			}
		}
	}
}

// DrawBodies outlines every body and marks the sides it touched last step.
func DrawBodies(e *ecs.ECS, screen *ebiten.Image) {
	offX, offY, _, ok := view(e, screen)
	if !ok {
		return
	}
	components.Body.Each(e.World, func(entry *donburi.Entry) {
		body := components.Body.Get(entry)
		c := cfg.LightBlue
		if entry.HasComponent(tags.Walker) {
			c = cfg.Orange
		}
		if entry.HasComponent(components.Health) && components.Health.Get(entry).Invuln%8 >= 4 {
			c = cfg.White
		}
		outline(screen, body.Box, offX, offY, c)

		x, y := float32(body.Box.X+offX), float32(body.Box.Y+offY)
		w, h := float32(body.Box.W), float32(body.Box.H)
		contact := body.Contact
		if contact.OnGround {
			ground := cfg.Green
			switch {
			case contact.OnPlatform:
				ground = cfg.Yellow
			case contact.OnSlope:
				ground = cfg.LightGreen
			}
			vector.FillRect(screen, x, y+h-2, w, 2, ground, false)
		}
		if contact.OnCeiling {
			vector.FillRect(screen, x, y, w, 2, cfg.Red, false)
		}
		if contact.OnLeftWall {
			vector.FillRect(screen, x, y, 2, h, cfg.Red, false)
		}
		if contact.OnRightWall {
			vector.FillRect(screen, x+w-2, y, 2, h, cfg.Red, false)
		}
	})
}

// DrawDebug draws dead zones, patrol targets, the hovered tile and, when
// enabled, the tile index chunks.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Draw {
		return
	}
	level := levelData(e)
	if level == nil {
		return
	}
	offX, offY, visible, ok := view(e, screen)
	if !ok {
		return
	}

	for _, dz := range level.CurrentLevel.DeadZones {
		outline(screen, dz, offX, offY, cfg.Magenta)
	}

	components.Patrol.Each(e.World, func(entry *donburi.Entry) {
		patrol := components.Patrol.Get(entry)
		pts := patrol.Path.Points
		for i := 0; i+1 < len(pts); i++ {
			vector.StrokeLine(screen,
				float32(pts[i].X+offX), float32(pts[i].Y+offY),
				float32(pts[i+1].X+offX), float32(pts[i+1].Y+offY),
				1, cfg.Gray, false)
		}
		box := components.Body.Get(entry).Box
		vector.FillRect(screen, float32(patrol.TargetX+offX)-1, float32(box.Bottom()+offY)+2, 3, 3, cfg.Orange, false)
	})

	if cfg.Debug.ShowChunks && level.Index != nil {
		drawChunks(screen, level, visible, offX, offY)
	}

	wx, wy := cursorWorld(e)
	hovered := level.Engine.TileAt(wx, wy)
	if level.Engine.Grid().InBounds(hovered.Col, hovered.Row) {
		outline(screen, level.Engine.TileRect(hovered), offX, offY, cfg.White)
	}
}

func drawChunks(screen *ebiten.Image, level *components.LevelData, visible gamemath.Rect, offX, offY float64) {
	engine := level.Engine
	grid := engine.Grid()
	n := level.Index.CellTiles()
	size := engine.Config().TileSize

	c0, r0, c1, r1 := engine.TileSpan(visible)
	c0, r0 = max(c0, 0)/n*n, max(r0, 0)/n*n
	for row := r0; row <= r1 && row < grid.Height(); row += n {
		for col := c0; col <= c1 && col < grid.Width(); col += n {
			c := cfg.Gray
			if level.Index.Mask(col, row)&^tile.MaskOf(tile.Empty) == 0 {
				c = color.RGBA{R: 40, G: 40, B: 40, A: 255}
			}
			r := gamemath.Rect{X: float64(col) * size, Y: float64(row) * size, W: float64(n) * size, H: float64(n) * size}
			outline(screen, r, offX, offY, c)
		}
	}
}

func (s *Scene) drawHUD(e *ecs.ECS, screen *ebiten.Image) {
	if !fonts.Loaded(fonts.Mono) {
		return
	}
	level := levelData(e)
	if level == nil {
		return
	}
	player, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	body := components.Body.Get(player)
	health := components.Health.Get(player)

	var b strings.Builder
	fmt.Fprintf(&b, "%s  tick %d  cache %d\n", level.CurrentLevel.Name, level.Tick, level.Engine.CacheLen())
	fmt.Fprintf(&b, "pos %.1f,%.1f  vel %.2f,%.2f\n", body.Box.X, body.Box.Y, body.VelX, body.VelY)
	fmt.Fprintf(&b, "%s\n", contactLine(body.Contact, body.OnLadder))
	fmt.Fprintf(&b, "hp %d/%d  deaths %d  brush %s", health.Current, health.Max, components.Spawn.Get(player).Deaths, s.brush)
	if level.Engine.PlatformsSuppressed(body.DropUntil) {
		b.WriteString("  dropping")
	}

	face := fonts.Mono.Get()
	text.Draw(screen, b.String(), face, 6, 14, cfg.White)
}

func contactLine(c collision.Result, ladder bool) string {
	var parts []string
	if c.OnGround {
		parts = append(parts, fmt.Sprintf("ground:%s%s", c.Ground, c.GroundCoord))
	}
	for _, f := range []struct {
		on   bool
		name string
	}{
		{c.OnPlatform, "platform"},
		{c.OnSlope, "slope"},
		{c.OnCeiling, "ceiling"},
		{c.OnLeftWall, "wall-left"},
		{c.OnRightWall, "wall-right"},
		{ladder, "ladder"},
	} {
		if f.on {
			parts = append(parts, f.name)
		}
	}
	if len(parts) == 0 {
		return "airborne"
	}
	return strings.Join(parts, " ")
}
