package leveldata

import (
	"fmt"
	"strings"

	"github.com/automoto/tilecollide/tile"
)

var asciiTiles = map[rune]tile.Type{
	'.':  tile.Empty,
	'P':  tile.Empty,
	'#':  tile.Solid,
	'-':  tile.Platform,
	'/':  tile.SlopeLeft,
	'\\': tile.SlopeRight,
	'^':  tile.Hazard,
	'H':  tile.Ladder,
	'~':  tile.Ice,
	'*':  tile.Bounce,
}

// ParseRows builds a level from equal-length text rows, top row first.
// 'P' marks a spawn on an empty cell.
//
//	.  empty      #  solid     -  platform
//	/  slope up   \  slope down
//	^  hazard     H  ladder    ~  ice       *  bounce
func ParseRows(tileSize float64, rows ...string) (*Level, error) {
	if !(tileSize > 0) {
		return nil, fmt.Errorf("%w: tile size %v", ErrBadLayout, tileSize)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrBadLayout)
	}
	width := len([]rune(rows[0]))
	if width == 0 {
		return nil, fmt.Errorf("%w: empty row", ErrBadLayout)
	}

	grid := tile.NewGrid(width, len(rows))
	level := &Level{Name: "ascii", Grid: grid, TileSize: tileSize}
	for y, line := range rows {
		cells := []rune(line)
		if len(cells) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrBadLayout, y, len(cells), width)
		}
		for x, ch := range cells {
			t, ok := asciiTiles[ch]
			if !ok {
				return nil, fmt.Errorf("%w: row %d col %d: unknown cell %q", ErrBadLayout, y, x, ch)
			}
			grid.Set(x, y, t)
			if ch == 'P' {
				level.Spawns = append(level.Spawns, SpawnPoint{
					X:     float64(x) * tileSize,
					Y:     float64(y) * tileSize,
					Index: len(level.Spawns),
				})
			}
		}
	}
	sortSpawns(level.Spawns)
	return level, nil
}

// MustParseRows is ParseRows for fixed layouts; it panics on error.
func MustParseRows(tileSize float64, rows ...string) *Level {
	level, err := ParseRows(tileSize, rows...)
	if err != nil {
		panic(err)
	}
	return level
}

// Rows renders g back into the ParseRows alphabet.
func Rows(g *tile.Grid) []string {
	glyphs := make(map[tile.Type]rune, len(asciiTiles))
	for ch, t := range asciiTiles {
		if ch != 'P' {
			glyphs[t] = ch
		}
	}
	out := make([]string, g.Height())
	var b strings.Builder
	for y := 0; y < g.Height(); y++ {
		b.Reset()
		for x := 0; x < g.Width(); x++ {
			b.WriteRune(glyphs[g.Get(x, y)])
		}
		out[y] = b.String()
	}
	return out
}
