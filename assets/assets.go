package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/automoto/tilecollide/shared/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// LevelsDir is the directory of the embedded TMX maps inside FS.
const LevelsDir = "levels"

// FS exposes the embedded assets for leveldata loaders.
func FS() fs.FS { return assetFS }

// MustLoadLevels loads every embedded map, sorted by name.
func MustLoadLevels(layer string) []*leveldata.Level {
	byName, names, err := leveldata.LoadAllLevels(assetFS, LevelsDir, layer)
	if err != nil {
		panic(fmt.Sprintf("Failed to load embedded levels: %v", err))
	}
	levels := make([]*leveldata.Level, 0, len(names))
	for _, name := range names {
		levels = append(levels, byName[name])
	}
	return levels
}
