// Command headless runs the simulation without a window and logs where the
// player ends up. It is useful for profiling the collision engine and for
// checking level edits from scripts.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/automoto/tilecollide/assets"
	"github.com/automoto/tilecollide/components"
	"github.com/automoto/tilecollide/config"
	"github.com/automoto/tilecollide/shared/leveldata"
	"github.com/automoto/tilecollide/systems"
	"github.com/automoto/tilecollide/systems/factory"
	"github.com/automoto/tilecollide/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func main() {
	cfgPath := flag.String("config", "", "YAML config file")
	levelName := flag.String("level", "", "embedded level name (defaults to the config's viewer.level)")
	tmxPath := flag.String("tmx", "", "TMX file on disk to load instead of an embedded level")
	steps := flag.Int("steps", 600, "simulation steps to run")
	walk := flag.Float64("walk", 1, "player horizontal intent, -1..1")
	jumpEvery := flag.Int("jump-every", 0, "jump every N steps, 0 to never jump")
	flag.Parse()

	if *cfgPath != "" {
		if err := config.LoadFile(*cfgPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *levelName != "" {
		config.Viewer.Level = *levelName
	}

	levels, idx, err := loadLevels(*tmxPath)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	e := ecs.NewECS(donburi.NewWorld())
	systems.AddSimulation(e)
	levelEntry := factory.SetupLevel(e, levels, idx)
	level := components.Level.Get(levelEntry)

	player, ok := tags.Player.First(e.World)
	if !ok {
		log.Fatal("no player spawned")
	}
	intent := components.Intent.Get(player)
	body := components.Body.Get(player)

	var grounded, airborne int
	start := time.Now()
	for i := 1; i <= *steps; i++ {
		intent.MoveX = *walk
		intent.Jump = *jumpEvery > 0 && i%*jumpEvery == 0
		e.Update()
		if body.Contact.OnGround {
			grounded++
		} else {
			airborne++
		}
	}
	elapsed := time.Since(start)

	log.Printf("Ran %d steps on %s in %v (%v/step)", *steps, level.CurrentLevel.Name, elapsed, elapsed/time.Duration(max(*steps, 1)))
	log.Printf("Player at (%.2f, %.2f) vel (%.2f, %.2f) grounded %d airborne %d deaths %d",
		body.Box.X, body.Box.Y, body.VelX, body.VelY, grounded, airborne, components.Spawn.Get(player).Deaths)
	log.Printf("Last contact: ground=%v(%s %s) platform=%v slope=%v walls=%v/%v ceiling=%v",
		body.Contact.OnGround, body.Contact.Ground, body.Contact.GroundCoord, body.Contact.OnPlatform,
		body.Contact.OnSlope, body.Contact.OnLeftWall, body.Contact.OnRightWall, body.Contact.OnCeiling)
	log.Printf("Tile cache entries: %d, tile index: %v, bodies: %d",
		level.Engine.CacheLen(), level.Index != nil, level.Bodies.Len())
}

func loadLevels(tmxPath string) ([]*leveldata.Level, int, error) {
	if tmxPath != "" {
		level, err := leveldata.LoadLevel(os.DirFS(filepath.Dir(tmxPath)), filepath.Base(tmxPath), config.Viewer.Layer)
		if err != nil {
			return nil, 0, err
		}
		return []*leveldata.Level{level}, 0, nil
	}

	levels := assets.MustLoadLevels(config.Viewer.Layer)
	for i, l := range levels {
		if l.Name == config.Viewer.Level {
			return levels, i, nil
		}
	}
	log.Printf("Warning: level %q not found, using %s", config.Viewer.Level, levels[0].Name)
	return levels, 0, nil
}
