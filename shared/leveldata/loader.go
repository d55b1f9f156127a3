package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/tilecollide/shared/gamemath"
	"github.com/automoto/tilecollide/tile"
	"github.com/lafriks/go-tiled"
)

// LoadLevel parses a TMX file and builds the collision grid from layerName.
// A tileset tile's "collision" property names its tile type; the older
// "slope" property ("45_up_right", "45_up_left") is honoured too. Any other
// non-empty cell is Solid. It takes an fs.FS so callers can pass embed.FS
// or os.DirFS.
func LoadLevel(fsys fs.FS, tmxPath, layerName string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth != levelMap.TileHeight {
		return nil, fmt.Errorf("load TMX %s: %w: non-square tiles %dx%d",
			tmxPath, ErrBadLayout, levelMap.TileWidth, levelMap.TileHeight)
	}
	if levelMap.Width <= 0 || levelMap.Height <= 0 {
		return nil, fmt.Errorf("load TMX %s: %w: empty map", tmxPath, ErrBadLayout)
	}

	var layer *tiled.Layer
	for _, l := range levelMap.Layers {
		if l.Name == layerName {
			layer = l
			break
		}
	}
	if layer == nil {
		return nil, fmt.Errorf("load TMX %s: %w: %q", tmxPath, ErrLayerNotFound, layerName)
	}

	grid := tile.NewGrid(levelMap.Width, levelMap.Height)
	for y := 0; y < levelMap.Height; y++ {
		for x := 0; x < levelMap.Width; x++ {
			lt := layer.Tiles[y*levelMap.Width+x]
			if lt.IsNil() {
				continue
			}
			t, err := tileType(lt)
			if err != nil {
				return nil, fmt.Errorf("load TMX %s: tile (%d,%d): %w", tmxPath, x, y, err)
			}
			grid.Set(x, y, t)
		}
	}

	level := &Level{
		Name:     strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Grid:     grid,
		TileSize: float64(levelMap.TileWidth),
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "PlayerSpawn":
			for _, o := range og.Objects {
				level.Spawns = append(level.Spawns, SpawnPoint{
					X:     o.X,
					Y:     o.Y,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		case "EnemySpawn":
			for _, o := range og.Objects {
				level.Walkers = append(level.Walkers, WalkerSpawn{
					X:          o.X,
					Y:          o.Y,
					PatrolPath: o.Properties.GetString("pathName"),
				})
			}
		case "PatrolPaths":
			for _, o := range og.Objects {
				if len(o.PolyLines) == 0 {
					continue
				}
				// Use the first polyline if multiple polylines exist
				polyline := o.PolyLines[0]
				if polyline.Points == nil || len(*polyline.Points) < 2 {
					continue
				}
				points := make([]Point, 0, len(*polyline.Points))
				for _, pt := range *polyline.Points {
					points = append(points, Point{X: o.X + pt.X, Y: o.Y + pt.Y})
				}
				if level.PatrolPaths == nil {
					level.PatrolPaths = make(map[string]PatrolPath)
				}
				level.PatrolPaths[o.Name] = PatrolPath{Name: o.Name, Points: points}
			}
		case "DeadZones":
			for _, o := range og.Objects {
				level.DeadZones = append(level.DeadZones, gamemath.Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		}
	}
	sortSpawns(level.Spawns)
	return level, nil
}

func tileType(lt *tiled.LayerTile) (tile.Type, error) {
	tilesetTile, err := lt.Tileset.GetTilesetTile(lt.ID)
	if err != nil {
		// Tiles without custom properties are plain walls.
		return tile.Solid, nil
	}
	name := tilesetTile.Properties.GetString("collision")
	if name == "" {
		name = tilesetTile.Properties.GetString("slope")
	}
	if name == "" {
		return tile.Solid, nil
	}
	return tile.ParseType(name)
}

// Sort spawns left-to-right for consistent assignment
func sortSpawns(spawns []SpawnPoint) {
	sort.SliceStable(spawns, func(i, j int) bool {
		return spawns[i].X < spawns[j].X
	})
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads each
// one, and returns a map keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir, layerName string) (map[string]*Level, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		level, err := LoadLevel(fsys, path, layerName)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
